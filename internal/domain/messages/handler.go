package messages

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"pawmatch/internal/domain/conversations"
	"pawmatch/internal/domain/users"
	"pawmatch/internal/middleware"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func RegisterRoutes(r chi.Router, svc *Service, usersSvc *users.Service, convSvc *conversations.Service) {
	r.Get("/conversations/{conversationID}/messages", listMessagesHandler(svc, usersSvc, convSvc))
	r.Post("/conversations/{conversationID}/messages", sendMessageHandler(svc, usersSvc, convSvc))
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type messageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	AuthorID       string    `json:"author_id"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`

	AuthorName     string `json:"author_name,omitempty"`
	AuthorImageURL string `json:"author_image_url,omitempty"`
}

// @Summary Mensajes de un hilo, ascendentes por fecha (solo participantes)
// @Tags messages
// @Produce json
// @Success 200 {array} messageResponse
// @Router /conversations/{conversationID}/messages [get]
func listMessagesHandler(svc *Service, usersSvc *users.Service, convSvc *conversations.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, c, ok := requireParticipant(w, r, usersSvc, convSvc)
		if !ok {
			return
		}

		items, err := svc.ListByConversation(r.Context(), c.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]messageResponse, 0, len(items))
		for _, m := range items {
			resp := toMessageResponse(m)
			// Join de display del autor; tolera autores borrados.
			if author, err := usersSvc.GetByID(r.Context(), m.AuthorID); err == nil {
				resp.AuthorName = author.Name
				resp.AuthorImageURL = author.ImageURL
			}
			out = append(out, resp)
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Enviar un mensaje a un hilo (solo participantes)
// @Tags messages
// @Accept json
// @Produce json
// @Success 201 {object} messageResponse
// @Router /conversations/{conversationID}/messages [post]
func sendMessageHandler(svc *Service, usersSvc *users.Service, convSvc *conversations.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, c, ok := requireParticipant(w, r, usersSvc, convSvc)
		if !ok {
			return
		}

		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		m, err := svc.Send(r.Context(), c.ID, user.ID, req.Text)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := toMessageResponse(m)
		resp.AuthorName = user.Name
		resp.AuthorImageURL = user.ImageURL

		writeJSON(w, http.StatusCreated, resp)
	}
}

// requireParticipant resuelve el caller y chequea que participe del hilo.
// 401 sin identidad, 404 hilo inexistente, 403 si no es adopter ni shelter
// del hilo.
func requireParticipant(w http.ResponseWriter, r *http.Request, usersSvc *users.Service, convSvc *conversations.Service) (users.User, conversations.Conversation, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return users.User{}, conversations.Conversation{}, false
	}

	user, err := usersSvc.RequireUser(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, users.ErrUnauthenticated) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return users.User{}, conversations.Conversation{}, false
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return users.User{}, conversations.Conversation{}, false
	}

	c, err := convSvc.GetByID(r.Context(), chi.URLParam(r, "conversationID"))
	if err != nil {
		if errors.Is(err, conversations.ErrNotFound) {
			http.Error(w, "conversation not found", http.StatusNotFound)
			return users.User{}, conversations.Conversation{}, false
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return users.User{}, conversations.Conversation{}, false
	}
	if !c.HasParticipant(user.ID) {
		http.Error(w, "not a participant", http.StatusForbidden)
		return users.User{}, conversations.Conversation{}, false
	}

	return user, c, true
}

func toMessageResponse(m Message) messageResponse {
	return messageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		AuthorID:       m.AuthorID,
		Text:           m.Text,
		CreatedAt:      m.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
