package messages

import "time"

// Message es un mensaje dentro de una conversación. Append-only: no existe
// editar ni borrar. CreatedAt lo asigna el servidor al insertar y define el
// orden de lectura (ascendente).
type Message struct {
	ID             string
	ConversationID string
	AuthorID       string
	Text           string

	CreatedAt time.Time
}
