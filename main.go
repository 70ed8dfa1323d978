package main

import (
	"context"
	"errors"
	"eureka/auth"
	"eureka/catalog"
	"eureka/config"
	"eureka/handlers"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	gin.SetMode(cfg.GinMode)

	seed, err := catalog.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		log.Fatal("Failed to load seed data:", err)
	}

	authors := catalog.NewAuthorDirectory(seed.Authors, seed.UserModels())
	cat := catalog.New(seed.Projects, authors)

	creds := make([]auth.Credential, 0, len(seed.Users))
	for _, u := range seed.Users {
		cred, err := auth.NewCredential(u.User, u.Password)
		if err != nil {
			log.Fatal("Failed to load credentials:", err)
		}
		creds = append(creds, cred)
	}
	authenticator := auth.NewAuthenticator(creds)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handlers.NewRouter(cat, authenticator),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
