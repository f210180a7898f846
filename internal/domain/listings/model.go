package listings

import "time"

// Gender del perro, tal como lo captura el formulario del shelter.
// @Enum Male, Female
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Status del listing.
// @Enum available, adopted
type Status string

const (
	StatusAvailable Status = "available"
	StatusAdopted   Status = "adopted"
)

// Listing es la publicación de un perro en adopción.
// ShelterID nunca cambia después de la creación: el listing pertenece
// exclusivamente al shelter que lo publicó.
type Listing struct {
	ID        string
	ShelterID string

	Name        string
	Age         int
	Breed       string
	Gender      Gender
	Description string

	VaccinationStatus string
	HealthStatus      string

	ImageURLs []string // al menos una al crear; URLs del asset host externo
	VoiceURL  string   // opcional

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
