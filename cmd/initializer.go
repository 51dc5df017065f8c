package main

import (
	"log"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/redis/go-redis/v9"

	"worknestBack/internal/handlers"
	"worknestBack/internal/i18n"
	"worknestBack/internal/repositories"
	"worknestBack/internal/services"
	"worknestBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	translator *i18n.Resolver
	tokens     *utils.Manager

	jobService  *services.JobService
	homeService *services.HomeService
	userService *services.UserService

	jobHandler  *handlers.JobHandler
	homeHandler *handlers.HomeHandler
	userHandler *handlers.UserHandler
	i18nHandler *handlers.I18nHandler

	hub *ListingHub
}

type appDeps struct {
	firestoreClient *firestore.Client
	redisClient     *redis.Client
	provider        services.IdentityProvider
	storage         *utils.Storage
	tokens          *utils.Manager
	translator      *i18n.Resolver
	accessTTL       time.Duration
	refreshTTL      time.Duration
}

func initializeApp(deps appDeps, errorLog, infoLog *log.Logger) *application {
	// Repositories
	jobRepo := repositories.JobRepository{Client: deps.firestoreClient, ErrorLog: errorLog}
	homeRepo := repositories.HomeRepository{Client: deps.firestoreClient, ErrorLog: errorLog}
	sessionRepo := repositories.SessionRepository{Client: deps.redisClient}

	hub := newListingHub()

	// Services
	jobService := &services.JobService{JobRepo: &jobRepo}
	homeService := &services.HomeService{HomeRepo: &homeRepo}
	jobService.OnChange = func(total int) { hub.Notify("jobs", total) }
	homeService.OnChange = func(total int) { hub.Notify("homes", total) }

	userService := &services.UserService{
		Provider:     deps.provider,
		Sessions:     &sessionRepo,
		TokenManager: deps.tokens,
		AccessTTL:    deps.accessTTL,
		RefreshTTL:   deps.refreshTTL,
	}

	// Handlers
	jobHandler := &handlers.JobHandler{Service: jobService, T: deps.translator}
	homeHandler := &handlers.HomeHandler{Service: homeService, Storage: deps.storage, T: deps.translator}
	userHandler := &handlers.UserHandler{Service: userService, T: deps.translator}
	i18nHandler := &handlers.I18nHandler{Resolver: deps.translator}

	return &application{
		errorLog:    errorLog,
		infoLog:     infoLog,
		translator:  deps.translator,
		tokens:      deps.tokens,
		jobService:  jobService,
		homeService: homeService,
		userService: userService,
		jobHandler:  jobHandler,
		homeHandler: homeHandler,
		userHandler: userHandler,
		i18nHandler: i18nHandler,
		hub:         hub,
	}
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin-allow-popups")
		w.Header().Set("Cross-Origin-Resource-Policy", "cross-origin")
		next.ServeHTTP(w, r)
	})
}
