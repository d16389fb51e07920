package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/terraincognita07/pacer/internal/api"
	"github.com/terraincognita07/pacer/internal/db"
	"github.com/terraincognita07/pacer/internal/identity"
)

func main() {
	dbPath := getEnv("DB_PATH", filepath.Join("data", "pacer.db"))
	port := getEnv("PORT", "8080")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repositories := db.NewRepositories(database)
	if err := repositories.Plans.SeedDefaultPlans(); err != nil {
		log.Fatalf("plan seeding failed: %v", err)
	}

	verifier, err := buildVerifier()
	if err != nil {
		log.Fatalf("identity verifier init failed: %v", err)
	}

	handler := api.NewHandler(database, verifier)

	app := fiber.New(fiber.Config{
		AppName:               "Pacer",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Pacer listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// buildVerifier picks the identity-provider client: a remote verification
// endpoint when IDENTITY_VERIFY_URL is set, otherwise local HS256
// verification with the shared IDENTITY_SECRET.
func buildVerifier() (identity.TokenVerifier, error) {
	if verifyURL := os.Getenv("IDENTITY_VERIFY_URL"); verifyURL != "" {
		return identity.NewRemoteVerifier(verifyURL, nil), nil
	}

	secret := getEnv("IDENTITY_SECRET", "")
	if secret == "" {
		log.Println("IDENTITY_SECRET not set, using insecure development secret")
		secret = "change_me_in_production"
	}
	return identity.NewJWTVerifier(secret), nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
