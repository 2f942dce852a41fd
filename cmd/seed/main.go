package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"docyo/database"
	"docyo/internal/cache"
	"docyo/internal/config"
	"docyo/internal/logger"
	"docyo/internal/repository"
	"docyo/internal/utils"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		// running from cmd/seed/
		_ = godotenv.Load("../../.env")
	}
}

func main() {
	doctorsCmd := flag.NewFlagSet("doctors", flag.ExitOnError)

	patientCmd := flag.NewFlagSet("patient", flag.ExitOnError)
	patientEmail := patientCmd.String("email", "", "Email stored on the seeded profile")

	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	tokenUser := tokenCmd.String("user", "", "User id (uuid) to sign the token for")
	tokenTTL := tokenCmd.Duration("ttl", utils.DefaultTokenTTL, "Token lifetime")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	switch os.Args[1] {
	case "doctors":
		doctorsCmd.Parse(os.Args[2:])
		gateway := connect(ctx, cfg)

		if err := utils.SeedDoctors(ctx, gateway.Doctors, utils.DoctorCatalogSeed()); err != nil {
			logger.Fatal("Error seeding doctors", "error", err)
		}
		invalidateCatalogCache(ctx, cfg)

	case "patient":
		patientCmd.Parse(os.Args[2:])
		gateway := connect(ctx, cfg)

		profile, err := utils.SeedPatient(ctx, gateway.Profiles, *patientEmail)
		if err != nil {
			logger.Fatal("Error seeding patient", "error", err)
		}
		token, err := utils.GenerateSessionToken(cfg.JWTSecret, profile.UserID, utils.DefaultTokenTTL)
		if err != nil {
			logger.Fatal("Error signing token", "error", err)
		}
		fmt.Printf("user_id: %s\ntoken:   %s\n", profile.UserID, token)

	case "token":
		tokenCmd.Parse(os.Args[2:])

		userID, err := uuid.Parse(*tokenUser)
		if err != nil {
			logger.Fatal("Invalid --user", "error", err)
		}
		token, err := utils.GenerateSessionToken(cfg.JWTSecret, userID, *tokenTTL)
		if err != nil {
			logger.Fatal("Error signing token", "error", err)
		}
		fmt.Println(token)

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func connect(ctx context.Context, cfg *config.Config) *repository.Gateway {
	db, err := database.ConnectDatabase(ctx, cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.MigrateDatabase(db); err != nil {
		logger.Fatal("Failed to run database migrations", "error", err)
	}
	return repository.NewGateway(db)
}

// invalidateCatalogCache drops the cached snapshot so the API reloads the new catalog.
func invalidateCatalogCache(ctx context.Context, cfg *config.Config) {
	if cfg.Redis.URL == "" {
		return
	}
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		logger.Warn("Skipping catalog cache invalidation", "error", err)
		return
	}
	defer redisClient.Close()

	if err := redisClient.DeleteDoctorCatalog(ctx); err != nil {
		logger.Warn("Failed to invalidate catalog cache", "error", err)
		return
	}
	logger.Info("Doctor catalog cache invalidated")
}

func printHelp() {
	fmt.Println("Docyo seed tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/seed <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  doctors                       Upsert the doctor catalog and invalidate its cache")
	fmt.Println("  patient [--email addr]        Create a fresh profile and print a session token")
	fmt.Println("  token --user <uuid> [--ttl d] Print a session token for an existing user")
	fmt.Println("  help                          Show this help")
}
