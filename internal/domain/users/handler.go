package users

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"pawmatch/internal/middleware"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func RegisterRoutes(r chi.Router, svc *Service) {
	// Perfil propio
	r.Get("/me", getMeHandler(svc))
	r.Patch("/me/profile", updateProfileHandler(svc))
}

type userResponse struct {
	ID          string    `json:"id"`
	IdentityKey string    `json:"identity_key"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type updateProfileRequest struct {
	Role    string `json:"role" validate:"required,oneof=adopter shelter"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

// getMeHandler devuelve el usuario del caller, o null si todavía no existe
// (resolución soft: la UI hace polling durante el onboarding).
//
// @Summary Usuario actual
// @Tags users
// @Produce json
// @Success 200 {object} userResponse
// @Router /me [get]
func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		u, found, err := svc.CurrentUser(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !found {
			writeJSON(w, http.StatusOK, nil)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// @Summary Onboarding: setear rol, dirección y teléfono
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} userResponse
// @Router /me/profile [patch]
func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		user, err := svc.RequireUser(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateProfile(r.Context(), user.ID, ProfileInput{
			Role:    Role(req.Role),
			Address: req.Address,
			Phone:   req.Phone,
		})
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(updated))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:          u.ID,
		IdentityKey: u.IdentityKey,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Address:     u.Address,
		Phone:       u.Phone,
		ImageURL:    u.ImageURL,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
