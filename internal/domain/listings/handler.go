package listings

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"pawmatch/internal/domain/interests"
	"pawmatch/internal/domain/users"
	"pawmatch/internal/middleware"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func RegisterRoutes(r chi.Router, svc *Service, usersSvc *users.Service, interestsSvc *interests.Service) {
	// Lado shelter
	r.Post("/listings", createListingHandler(svc, usersSvc))
	r.Get("/shelter/listings", listOwnedHandler(svc, usersSvc))
	r.Patch("/listings/{listingID}", updateListingHandler(svc, usersSvc))
	r.Delete("/listings/{listingID}", removeListingHandler(svc, usersSvc))
	r.Post("/listings/{listingID}/adopt", markAdoptedHandler(svc, usersSvc))

	// Lado adopter
	r.Get("/listings/available", listAvailableHandler(svc, usersSvc, interestsSvc))
	r.Get("/listings/liked", listLikedHandler(svc, usersSvc, interestsSvc))
}

type createListingRequest struct {
	Name              string   `json:"name" validate:"required"`
	Age               int      `json:"age" validate:"gte=0"`
	Breed             string   `json:"breed" validate:"required"`
	Gender            string   `json:"gender" validate:"required,oneof=Male Female"`
	Description       string   `json:"description"`
	VaccinationStatus string   `json:"vaccination_status"`
	HealthStatus      string   `json:"health_status"`
	ImageURLs         []string `json:"image_urls" validate:"required,min=1,dive,url"`
	VoiceURL          string   `json:"voice_url" validate:"omitempty,url"`
}

type updateListingRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name              *string   `json:"name" validate:"omitnil,min=1"`
	Age               *int      `json:"age" validate:"omitnil,gte=0"`
	Breed             *string   `json:"breed"`
	Gender            *string   `json:"gender" validate:"omitnil,oneof=Male Female"`
	Description       *string   `json:"description"`
	VaccinationStatus *string   `json:"vaccination_status"`
	HealthStatus      *string   `json:"health_status"`
	ImageURLs         *[]string `json:"image_urls" validate:"omitnil,min=1,dive,url"`
	VoiceURL          *string   `json:"voice_url"`
}

type listingResponse struct {
	ID                string    `json:"id"`
	ShelterID         string    `json:"shelter_id"`
	Name              string    `json:"name"`
	Age               int       `json:"age"`
	Breed             string    `json:"breed"`
	Gender            Gender    `json:"gender"`
	Description       string    `json:"description"`
	VaccinationStatus string    `json:"vaccination_status"`
	HealthStatus      string    `json:"health_status"`
	ImageURLs         []string  `json:"image_urls"`
	VoiceURL          string    `json:"voice_url,omitempty"`
	Status            Status    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// @Summary Publicar un listing (solo shelters)
// @Tags listings
// @Accept json
// @Produce json
// @Success 201 {object} listingResponse
// @Router /listings [post]
func createListingHandler(svc *Service, usersSvc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, usersSvc)
		if !ok {
			return
		}
		if user.Role != users.RoleShelter {
			http.Error(w, "only shelters can create listings", http.StatusForbidden)
			return
		}

		var req createListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		l, err := svc.Create(r.Context(), user.ID, CreateInput{
			Name:              req.Name,
			Age:               req.Age,
			Breed:             req.Breed,
			Gender:            Gender(req.Gender),
			Description:       req.Description,
			VaccinationStatus: req.VaccinationStatus,
			HealthStatus:      req.HealthStatus,
			ImageURLs:         req.ImageURLs,
			VoiceURL:          req.VoiceURL,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toListingResponse(l))
	}
}

// @Summary Listings del shelter autenticado, más recientes primero
// @Tags listings
// @Produce json
// @Success 200 {array} listingResponse
// @Router /shelter/listings [get]
func listOwnedHandler(svc *Service, usersSvc *users.Service) http.HandlerFunc {
	// Soft: sin usuario o sin rol shelter => lista vacía, no error.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		user, found, err := usersSvc.CurrentUser(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !found || user.Role != users.RoleShelter {
			writeJSON(w, http.StatusOK, []listingResponse{})
			return
		}

		items, err := svc.ListByShelter(r.Context(), user.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toListingResponses(items))
	}
}

// @Summary Editar un listing propio
// @Tags listings
// @Accept json
// @Produce json
// @Success 200 {object} listingResponse
// @Router /listings/{listingID} [patch]
func updateListingHandler(svc *Service, usersSvc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, usersSvc)
		if !ok {
			return
		}

		listingID := chi.URLParam(r, "listingID")
		if !authorizeOwner(w, r, svc, listingID, user.ID) {
			return
		}

		var req updateListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), listingID, UpdateInput{
			Name:              req.Name,
			Age:               req.Age,
			Breed:             req.Breed,
			Gender:            req.Gender,
			Description:       req.Description,
			VaccinationStatus: req.VaccinationStatus,
			HealthStatus:      req.HealthStatus,
			ImageURLs:         req.ImageURLs,
			VoiceURL:          req.VoiceURL,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "listing not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toListingResponse(updated))
	}
}

// @Summary Borrar un listing propio
// @Tags listings
// @Success 204
// @Router /listings/{listingID} [delete]
func removeListingHandler(svc *Service, usersSvc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, usersSvc)
		if !ok {
			return
		}

		listingID := chi.URLParam(r, "listingID")
		if !authorizeOwner(w, r, svc, listingID, user.ID) {
			return
		}

		if err := svc.Remove(r.Context(), listingID); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "listing not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary Marcar un listing propio como adoptado
// @Tags listings
// @Produce json
// @Success 200 {object} listingResponse
// @Router /listings/{listingID}/adopt [post]
func markAdoptedHandler(svc *Service, usersSvc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, usersSvc)
		if !ok {
			return
		}

		listingID := chi.URLParam(r, "listingID")
		if !authorizeOwner(w, r, svc, listingID, user.ID) {
			return
		}

		updated, err := svc.MarkAdopted(r.Context(), listingID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "listing not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toListingResponse(updated))
	}
}

// @Summary Listings disponibles para swipe (excluye los ya likeados)
// @Tags listings
// @Produce json
// @Success 200 {array} listingResponse
// @Router /listings/available [get]
func listAvailableHandler(svc *Service, usersSvc *users.Service, interestsSvc *interests.Service) http.HandlerFunc {
	// Soft: sin usuario => lista vacía, no error.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		user, found, err := usersSvc.CurrentUser(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !found {
			writeJSON(w, http.StatusOK, []listingResponse{})
			return
		}

		likes, err := interestsSvc.ListByAdopter(r.Context(), user.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		liked := make(map[string]struct{}, len(likes))
		for _, like := range likes {
			liked[like.ListingID] = struct{}{}
		}

		available, err := svc.ListAvailable(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]listingResponse, 0, len(available))
		for _, l := range available {
			if _, ok := liked[l.ID]; ok {
				continue
			}
			out = append(out, toListingResponse(l))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Listings que el adopter ya likeó
// @Tags listings
// @Produce json
// @Success 200 {array} listingResponse
// @Router /listings/liked [get]
func listLikedHandler(svc *Service, usersSvc *users.Service, interestsSvc *interests.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		user, found, err := usersSvc.CurrentUser(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !found {
			writeJSON(w, http.StatusOK, []listingResponse{})
			return
		}

		likes, err := interestsSvc.ListByAdopter(r.Context(), user.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]listingResponse, 0, len(likes))
		for _, like := range likes {
			l, err := svc.GetByID(r.Context(), like.ListingID)
			if err != nil {
				// tolera likes colgando (listing borrado por el shelter)
				continue
			}
			out = append(out, toListingResponse(l))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// requireUser resuelve el caller en modo estricto; escribe 401 y devuelve
// ok=false si no hay identidad o el registro todavía no existe.
func requireUser(w http.ResponseWriter, r *http.Request, usersSvc *users.Service) (users.User, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return users.User{}, false
	}

	user, err := usersSvc.RequireUser(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, users.ErrUnauthenticated) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return users.User{}, false
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return users.User{}, false
	}
	return user, true
}

// authorizeOwner chequea que el listing exista y pertenezca al caller.
// Política uniforme: inexistente => 404, ajeno => 403. Los listings son
// públicos en el browse, así que diferenciar no filtra existencia.
func authorizeOwner(w http.ResponseWriter, r *http.Request, svc *Service, listingID, userID string) bool {
	l, err := svc.GetByID(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "listing not found", http.StatusNotFound)
			return false
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return false
	}
	if l.ShelterID != userID {
		http.Error(w, "not authorized", http.StatusForbidden)
		return false
	}
	return true
}

func toListingResponse(l Listing) listingResponse {
	return listingResponse{
		ID:                l.ID,
		ShelterID:         l.ShelterID,
		Name:              l.Name,
		Age:               l.Age,
		Breed:             l.Breed,
		Gender:            l.Gender,
		Description:       l.Description,
		VaccinationStatus: l.VaccinationStatus,
		HealthStatus:      l.HealthStatus,
		ImageURLs:         l.ImageURLs,
		VoiceURL:          l.VoiceURL,
		Status:            l.Status,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

func toListingResponses(items []Listing) []listingResponse {
	out := make([]listingResponse, 0, len(items))
	for _, l := range items {
		out = append(out, toListingResponse(l))
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
