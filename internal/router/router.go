package router

import (
	"database/sql"
	"net/http"
	"os"

	"pawmatch/internal/adapters/auth/clerk"
	"pawmatch/internal/adapters/media/imagekit"
	mem "pawmatch/internal/adapters/storage/memory"
	pg "pawmatch/internal/adapters/storage/postgres"
	"pawmatch/internal/domain/conversations"
	"pawmatch/internal/domain/interests"
	"pawmatch/internal/domain/listings"
	"pawmatch/internal/domain/match"
	"pawmatch/internal/domain/messages"
	"pawmatch/internal/domain/users"
	"pawmatch/internal/middleware"
	"pawmatch/internal/platform/logger"
	"pawmatch/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: logger estructurado. Si es nil se usa uno nop.
	Logger logger.Logger

	// Secret de firma de los webhooks de identidad. Vacío = sin verificación (dev).
	WebhookSecret string

	// Opcional: credenciales de ImageKit para subidas directas.
	Media *imagekit.Client

	// Orígenes permitidos para CORS. Vacío = "*".
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		usersRepo         users.Repository
		listingsRepo      listings.Repository
		interestsRepo     interests.Repository
		conversationsRepo conversations.Repository
		messagesRepo      messages.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("db dsn set but open failed, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		usersRepo = pg.NewUsersRepo(db)
		listingsRepo = pg.NewListingsRepo(db)
		interestsRepo = pg.NewInterestsRepo(db)
		conversationsRepo = pg.NewConversationsRepo(db)
		messagesRepo = pg.NewMessagesRepo(db)
	} else {
		usersRepo = mem.NewUserRepo()
		listingsRepo = mem.NewListingRepo()
		interestsRepo = mem.NewInterestRepo()
		conversationsRepo = mem.NewConversationRepo()
		messagesRepo = mem.NewMessageRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(usersRepo)
	listingsSvc := listings.NewService(listingsRepo)
	interestsSvc := interests.NewService(interestsRepo)
	conversationsSvc := conversations.NewService(conversationsRepo)
	messagesSvc := messages.NewService(messagesRepo)
	matchSvc := match.NewService(interestsSvc, listingsSvc, conversationsSvc)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	listings.RegisterRoutes(r, listingsSvc, usersSvc, interestsSvc)
	match.RegisterRoutes(r, matchSvc, usersSvc)
	conversations.RegisterRoutes(r, conversationsSvc, usersSvc, listingsSvc)
	messages.RegisterRoutes(r, messagesSvc, usersSvc, conversationsSvc)

	// Sync de identidades (Clerk -> users)
	r.Post("/webhooks/identity", clerk.NewWebhookHandler(usersSvc, opts.WebhookSecret, log))

	// Credenciales efímeras de subida
	media := opts.Media
	if media == nil {
		media = imagekit.NewClient(imagekit.Config{})
	}
	r.Get("/media/upload-auth", imagekit.NewUploadAuthHandler(media))

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
