package mind

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/airai75/harubot/internal/persona"
)

const firstBootMarker = "first_boot"

// RunOnboarding sends the one-shot first-time introduction, gated purely by
// the persisted marker. Runs once at process start, outside the tick loop.
func (r *Runner) RunOnboarding(ctx context.Context, markers MarkerStore) error {
	if r.msgr == nil {
		log.Println("[WARN] No target channel configured, skipping introduction")
		return nil
	}
	if markers.Exists(firstBootMarker) {
		log.Println("[INFO] First-boot marker present, introduction already sent")
		return nil
	}

	log.Println("[MIND] action=introduce (first boot)")
	text, err := r.decider.Compose(ctx, persona.KindIntro)
	if err != nil {
		return fmt.Errorf("introduction: %w", err)
	}
	if err := r.deliver(ctx, text); err != nil {
		return fmt.Errorf("introduction send: %w", err)
	}

	if err := markers.Create(firstBootMarker, time.Now().In(r.loc).Format(time.RFC3339)); err != nil {
		return err
	}
	log.Println("[INFO] First-boot marker created, introduction will not repeat")
	return nil
}
