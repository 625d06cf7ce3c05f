package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go-linkedin-job-source/internal/database"
	"go-linkedin-job-source/internal/protocol"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(".env"); err != nil {
		godotenv.Load("../../.env") // Fallback
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set. Please check your .env file.")
	}

	fmt.Println("Attempting to connect to PostgreSQL...")

	// Set a timeout context
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := database.ConnectDB(ctx, dbURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to the database: %v", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("❌ %v", err)
	}
	fmt.Println("✅ Schema ready")

	for _, stream := range protocol.Streams {
		n, err := repo.CountRecords(ctx, stream)
		if err != nil {
			log.Fatalf("❌ Query failed: %v", err)
		}
		last, err := repo.LastState(ctx, stream)
		if err != nil {
			fmt.Printf("📦 %-18s %6d records, never checkpointed\n", stream, n)
			continue
		}
		fmt.Printf("📦 %-18s %6d records, last checkpoint %s\n", stream, n, last.Format(time.RFC3339))
	}
}
