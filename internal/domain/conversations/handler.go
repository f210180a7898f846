package conversations

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pawmatch/internal/domain/listings"
	"pawmatch/internal/domain/users"
	"pawmatch/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, usersSvc *users.Service, listingsSvc *listings.Service) {
	r.Get("/conversations", listConversationsHandler(svc, usersSvc, listingsSvc))
	r.Get("/conversations/{conversationID}", getConversationHandler(svc, usersSvc, listingsSvc))
}

// conversationSummary es la proyección para la bandeja de entrada: el hilo
// más los datos de display del listing y de la contraparte.
type conversationSummary struct {
	ID        string    `json:"id"`
	AdopterID string    `json:"adopter_id"`
	ShelterID string    `json:"shelter_id"`
	ListingID string    `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`

	DogName       string     `json:"dog_name,omitempty"`
	DogImageURL   string     `json:"dog_image_url,omitempty"`
	OtherUserName string     `json:"other_user_name,omitempty"`
	OtherUserRole users.Role `json:"other_user_role,omitempty"`
}

// conversationDetails alimenta el header del chat.
type conversationDetails struct {
	DogName           string `json:"dog_name,omitempty"`
	DogImageURL       string `json:"dog_image_url,omitempty"`
	OtherUserName     string `json:"other_user_name,omitempty"`
	OtherUserImageURL string `json:"other_user_image_url,omitempty"`
}

// @Summary Hilos del usuario (como adopter o como shelter), más recientes primero
// @Tags conversations
// @Produce json
// @Success 200 {array} conversationSummary
// @Router /conversations [get]
func listConversationsHandler(svc *Service, usersSvc *users.Service, listingsSvc *listings.Service) http.HandlerFunc {
	// Soft: sin usuario => lista vacía, no error.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		user, found, err := usersSvc.CurrentUser(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !found {
			writeJSON(w, http.StatusOK, []conversationSummary{})
			return
		}

		items, err := svc.ListForUser(r.Context(), user.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]conversationSummary, 0, len(items))
		for _, c := range items {
			s := conversationSummary{
				ID:        c.ID,
				AdopterID: c.AdopterID,
				ShelterID: c.ShelterID,
				ListingID: c.ListingID,
				CreatedAt: c.CreatedAt,
			}

			// Joins de display; se toleran referencias muertas.
			if l, err := listingsSvc.GetByID(r.Context(), c.ListingID); err == nil {
				s.DogName = l.Name
				if len(l.ImageURLs) > 0 {
					s.DogImageURL = l.ImageURLs[0]
				}
			}
			if other, err := usersSvc.GetByID(r.Context(), c.OtherParticipant(user.ID)); err == nil {
				s.OtherUserName = other.Name
				s.OtherUserRole = other.Role
			}

			out = append(out, s)
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Detalle de un hilo para el header del chat (solo participantes)
// @Tags conversations
// @Produce json
// @Success 200 {object} conversationDetails
// @Router /conversations/{conversationID} [get]
func getConversationHandler(svc *Service, usersSvc *users.Service, listingsSvc *listings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		user, err := usersSvc.RequireUser(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, users.ErrUnauthenticated) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "conversationID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "conversation not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !c.HasParticipant(user.ID) {
			http.Error(w, "not a participant", http.StatusForbidden)
			return
		}

		out := conversationDetails{}
		if l, err := listingsSvc.GetByID(r.Context(), c.ListingID); err == nil {
			out.DogName = l.Name
			if len(l.ImageURLs) > 0 {
				out.DogImageURL = l.ImageURLs[0]
			}
		}
		if other, err := usersSvc.GetByID(r.Context(), c.OtherParticipant(user.ID)); err == nil {
			out.OtherUserName = other.Name
			out.OtherUserImageURL = other.ImageURL
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
