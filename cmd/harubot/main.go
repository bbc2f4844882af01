// cmd/harubot/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/airai75/harubot/internal/ai"
	"github.com/airai75/harubot/internal/config"
	"github.com/airai75/harubot/internal/discord"
	"github.com/airai75/harubot/internal/storage"
	v "github.com/airai75/harubot/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v %v...", v.AppName, v.AppVersion)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.New()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	provider, err := ai.NewProvider(cfg)
	if err != nil {
		log.Fatal("AI provider init failed: ", err)
	}
	provider = ai.WithRetry(provider)

	bot := discord.NewBot(cfg, store, provider)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
