package persona

import (
	"context"
	"fmt"
	"strings"

	"github.com/airai75/harubot/internal/ai"
)

// Decider fuses classification and composition into a single generation call.
// The model returns either a ready-to-send reply or the ignore sentinel; the
// sentinel never escapes this package.
type Decider struct {
	provider ai.Provider
}

func New(provider ai.Provider) *Decider {
	return &Decider{provider: provider}
}

// Decide runs a classification kind (mention, ego-search) over a transcript.
func (d *Decider) Decide(ctx context.Context, kind Kind, transcript string) (Outcome, error) {
	mission, ok := missions[kind]
	if !ok {
		return Outcome{}, fmt.Errorf("unknown task kind %d", kind)
	}

	reply, err := d.provider.Generate(ctx, []ai.Message{
		{Role: "system", Content: characterBlock + "\n\n" + mission},
		{Role: "user", Content: "[Conversation log]\n" + transcript},
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("decide %v: %w", kind, err)
	}

	if strings.Contains(reply, ignoreSentinel) {
		return Outcome{Ignore: true}, nil
	}
	return Outcome{Reply: strings.TrimSpace(reply)}, nil
}

// Compose runs an announcement kind (wrap-up, sleep, casual, intro). These
// have no ignore path: a message is always produced.
func (d *Decider) Compose(ctx context.Context, kind Kind) (string, error) {
	mission, ok := missions[kind]
	if !ok {
		return "", fmt.Errorf("unknown task kind %d", kind)
	}

	reply, err := d.provider.Generate(ctx, []ai.Message{
		{Role: "system", Content: characterBlock + "\n\n" + mission},
		{Role: "user", Content: "Now."},
	})
	if err != nil {
		return "", fmt.Errorf("compose %v: %w", kind, err)
	}
	return strings.TrimSpace(reply), nil
}
