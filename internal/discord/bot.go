package discord

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/airai75/harubot/internal/ai"
	"github.com/airai75/harubot/internal/config"
	"github.com/airai75/harubot/internal/mind"
	"github.com/airai75/harubot/internal/persona"
	"github.com/airai75/harubot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// Bot owns the Discord session and wires the mind runner to it once the
// gateway reports ready.
type Bot struct {
	dg        *discordgo.Session
	cfg       *config.Config
	store     *storage.Storage
	provider  ai.Provider
	runCtx    context.Context
	readyOnce sync.Once
}

func NewBot(cfg *config.Config, store *storage.Storage, provider ai.Provider) *Bot {
	return &Bot{
		cfg:      cfg,
		store:    store,
		provider: provider,
	}
}

// Run opens the Discord session and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg
	b.runCtx = ctx
	b.configureIntents()
	dg.AddHandler(b.onReady)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsAll
}

// onReady is called when the bot is ready. It runs onboarding once and then
// hands control to the tick loop.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.readyOnce.Do(func() {
		log.Printf("[INFO] ✅ %v is logged in. Exam-season mode on.", s.State.User.Username)

		var msgr mind.Messenger
		if ch := b.targetChannel(s); ch != nil {
			msgr = ch
		}

		runner := mind.NewRunner(msgr, persona.New(b.provider), b.cfg.Location())

		go func() {
			if msgr != nil {
				// Start hidden; the runner surfaces on its own schedule.
				if err := msgr.SetPresence(b.runCtx, mind.PresenceInvisible); err != nil {
					log.Println("[WARN] Failed to set initial presence:", err)
				}
			}
			if err := runner.RunOnboarding(b.runCtx, b.store); err != nil {
				log.Println("[ERR] Introduction failed:", err)
			}
			runner.Run(b.runCtx)
		}()
	})
}

// targetChannel resolves TARGET_CHANNEL_ID. Any problem disables posting but
// never stops the loop.
func (b *Bot) targetChannel(s *discordgo.Session) *Channel {
	id := b.cfg.TargetChannelID
	if id == "" {
		return nil
	}
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		log.Printf("[ERR] TARGET_CHANNEL_ID %q is not a valid channel id: %v", id, err)
		return nil
	}
	if _, err := s.Channel(id); err != nil {
		log.Printf("[ERR] Target channel %s not found: %v", id, err)
		return nil
	}
	return NewChannel(s, id)
}
