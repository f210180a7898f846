package interests

import "time"

// Interest registra "este adopter dio like a este listing". Append-only:
// no hay unlike. A lo sumo un registro por par (adopter, listing), deduplicado
// con lookup-before-insert (best-effort, no es un constraint del storage).
type Interest struct {
	ID        string
	AdopterID string
	ListingID string

	CreatedAt time.Time
}
