package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-linkedin-job-source/internal/app"
	"go-linkedin-job-source/internal/config"
	"go-linkedin-job-source/internal/protocol"
)

const usage = `usage: source <spec|check|discover|read> [--config file] [--catalog file] [--state file]`

func main() {
	// stdout carries protocol messages only
	log.SetOutput(os.Stderr)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	cmd := os.Args[1]

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	configPath := fs.String("config", "", "path to the connector config (JSON or YAML)")
	// accepted for compatibility; every stream is always read in full
	fs.String("catalog", "", "path to the configured catalog")
	fs.String("state", "", "path to the previous state")
	if err := fs.Parse(os.Args[2:]); err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := protocol.NewJSONWriter(os.Stdout)

	var err error
	switch cmd {
	case "spec":
		err = app.Spec(ctx, out)
	case "check":
		err = app.Check(ctx, out)
	case "discover":
		err = app.Discover(ctx, out)
	case "read":
		err = read(ctx, *configPath, out)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		stop()
		log.Fatalf("❌ %s failed: %v", cmd, err)
	}
}

func read(ctx context.Context, configPath string, out protocol.Writer) error {
	if configPath == "" {
		return fmt.Errorf("--config is required for read")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log.Printf("🔧 Config loaded. Role: %s, location: %s", cfg.JobRole, cfg.Location)

	_, err = app.Read(ctx, cfg, out)
	return err
}
