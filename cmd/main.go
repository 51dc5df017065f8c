package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"google.golang.org/api/option"

	"worknestBack/internal/config"
	"worknestBack/internal/i18n"
	"worknestBack/internal/services"
	"worknestBack/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	addr := flag.String("addr", cfg.Server.Address, "HTTP network address")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	translator, err := i18n.Load()
	if err != nil {
		errorLog.Fatal(err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}
	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		errorLog.Fatal(err)
	}

	firestoreClient, err := fbApp.Firestore(ctx)
	if err != nil {
		errorLog.Fatal(err)
	}
	defer firestoreClient.Close()

	authClient, err := fbApp.Auth(ctx)
	if err != nil {
		errorLog.Fatal(err)
	}

	provider, err := services.NewFirebaseIdentityProvider(ctx, cfg.Firebase.WebAPIKey, authClient)
	if err != nil {
		errorLog.Fatal(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		errorLog.Fatal(err)
	}
	defer redisClient.Close()

	storage, err := utils.NewStorage(utils.StorageConfig{
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
	})
	if err != nil {
		errorLog.Fatal(err)
	}

	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	app := initializeApp(appDeps{
		firestoreClient: firestoreClient,
		redisClient:     redisClient,
		provider:        provider,
		storage:         storage,
		tokens:          tokens,
		translator:      translator,
		accessTTL:       cfg.Auth.AccessTTL,
		refreshTTL:      cfg.Auth.RefreshTTL,
	}, errorLog, infoLog)

	go app.hub.Run()

	feedCtx, stopFeeds := context.WithCancel(ctx)
	app.jobService.Start(feedCtx)
	app.homeService.Start(feedCtx)
	defer func() {
		stopFeeds()
		app.jobService.Stop()
		app.homeService.Stop()
	}()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:5174"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Refresh-Token", "Accept-Language"},
	})

	srv := &http.Server{
		Addr:         *addr,
		ErrorLog:     errorLog,
		Handler:      addSecurityHeaders(c.Handler(app.routes())),
		IdleTimeout:  time.Minute,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		infoLog.Printf("Starting server on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errorLog.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infoLog.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errorLog.Printf("Server shutdown: %v", err)
	}
}
