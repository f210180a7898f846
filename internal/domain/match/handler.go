package match

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawmatch/internal/domain/listings"
	"pawmatch/internal/domain/users"
	"pawmatch/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, usersSvc *users.Service) {
	r.Post("/listings/{listingID}/like", likeHandler(svc, usersSvc))
}

type likeResponse struct {
	InterestID     string `json:"interest_id"`
	ConversationID string `json:"conversation_id"`
}

// @Summary Like a un listing; abre (o devuelve) la conversación del match
// @Tags match
// @Produce json
// @Success 200 {object} likeResponse
// @Router /listings/{listingID}/like [post]
func likeHandler(svc *Service, usersSvc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Escritura al ledger: acá no hay fallback razonable a lista vacía,
		// por eso la variante estricta.
		user, err := usersSvc.RequireUser(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, users.ErrUnauthenticated) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		res, err := svc.LikeAndMatch(r.Context(), user.ID, chi.URLParam(r, "listingID"))
		if err != nil {
			if errors.Is(err, listings.ErrNotFound) {
				http.Error(w, "listing not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, likeResponse{
			InterestID:     res.InterestID,
			ConversationID: res.ConversationID,
		})
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
