package main

import (
	"fmt"
	"log"
	"os"

	"go-linkedin-job-source/internal/config"
	"go-linkedin-job-source/internal/roles"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	path := "secrets/config.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("❌ Config invalid: %v", err)
	}
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Job role: %s (%d roles to search)\n", cfg.JobRole, len(roles.Resolve(cfg.JobRole)))
	fmt.Printf("   Filters: %+v\n", cfg.Filters())
	fmt.Printf("   Models: %s, fallback %s\n", cfg.PrimaryModel, cfg.FallbackModel)
	fmt.Printf("   Chrome: %q, driver: %q\n", cfg.ChromeBin, cfg.ChromeDriverPath)
	fmt.Printf("   Postgres mirror: %t, Telegram summary: %t\n", cfg.DatabaseURL != "", cfg.TelegramEnabled())
}
