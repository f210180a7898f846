package conversations

import "time"

// Conversation es el hilo de chat entre un adopter y un shelter por un
// listing concreto. A lo sumo una por par (adopter, listing).
//
// ShelterID es un snapshot del dueño del listing al momento de crear la
// conversación; si el ownership cambiara después, la conversación no lo sigue.
type Conversation struct {
	ID        string
	AdopterID string
	ShelterID string
	ListingID string

	CreatedAt time.Time
}

// HasParticipant responde si userID es una de las dos partes del hilo.
func (c Conversation) HasParticipant(userID string) bool {
	return userID != "" && (c.AdopterID == userID || c.ShelterID == userID)
}

// OtherParticipant devuelve la contraparte de userID en el hilo.
func (c Conversation) OtherParticipant(userID string) string {
	if c.AdopterID == userID {
		return c.ShelterID
	}
	return c.AdopterID
}
