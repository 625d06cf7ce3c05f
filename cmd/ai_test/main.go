package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"go-linkedin-job-source/internal/ai"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("OPENAI_API_KEY environment variable not set. Please set it to test the enrichment.")
		return
	}

	model := ai.DefaultPrimaryModel
	if len(os.Args) > 1 {
		model = os.Args[1]
	}

	client := ai.NewOpenAIClient(apiKey)

	jobDesc := `We are looking for a Backend Developer to join our Payments team.
Requirements:
- 2 to 4 years of experience with Go (Golang)
- Experience with Kafka and Redis
- Strong knowledge of PostgreSQL and microservices
- CTC 12-18 LPA. Contact: hiring@example.com`

	fmt.Printf("Sending request to %s to enrich a sample description...\n", model)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	enrichment, err := client.Enrich(ctx, jobDesc, model)
	if err != nil {
		log.Fatalf("Enrich failed: %v", err)
	}
	enrichment.NormalizeExperience()

	out, _ := json.MarshalIndent(enrichment, "", "  ")
	fmt.Println("\nSuccess! Enrichment:")
	fmt.Println(string(out))
}
