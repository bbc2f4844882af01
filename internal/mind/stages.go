package mind

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/airai75/harubot/internal/persona"
)

// StageResult tells the runner whether a stage spoke this tick. The first
// stage to consume the tick suppresses everything below it.
type StageResult int

const (
	NotConsumed StageResult = iota
	Consumed
)

type stage struct {
	name string
	run  func(ctx context.Context, now time.Time) (StageResult, error)
}

const (
	mentionScanLimit   = 50
	mentionContextSize = 3
	egoSearchWindow    = 10
)

// mentionStage answers the oldest unhandled direct mention, if any. Only one
// mention is processed per tick; the watermark advances to that mention's own
// timestamp so newer ones in the same batch surface next cycle.
func (r *Runner) mentionStage(ctx context.Context, now time.Time) (StageResult, error) {
	history, err := r.msgr.History(ctx, HistoryQuery{
		After:  r.session.MentionWatermark,
		Before: now,
		Limit:  mentionScanLimit,
	})
	if err != nil {
		return NotConsumed, fmt.Errorf("mention history: %w", err)
	}

	var mention *ChatMessage
	for i := range history {
		m := &history[i]
		if m.MentionsSelf && m.AuthorID != r.msgr.SelfID() {
			mention = m
			break
		}
	}
	if mention == nil {
		r.session.AdvanceMentionWatermark(now)
		return NotConsumed, nil
	}

	log.Printf("[MIND] action=mention from=%s", mention.AuthorName)

	ctxMsgs, err := r.msgr.History(ctx, HistoryQuery{
		BeforeID: mention.ID,
		Limit:    mentionContextSize,
	})
	if err != nil {
		// Context is nice to have; the mention alone still classifies.
		log.Printf("[WARN] Mention context fetch failed: %v", err)
		ctxMsgs = nil
	}

	var b strings.Builder
	for _, m := range ctxMsgs {
		b.WriteString(r.displayName(m) + ": " + m.Content + "\n")
	}
	b.WriteString("--- mention here ---\n")
	b.WriteString(mention.AuthorName + ": " + mention.Content + "\n")

	out, err := r.decider.Decide(ctx, persona.KindMention, b.String())
	if err != nil {
		return NotConsumed, err
	}

	consumed := NotConsumed
	if !out.Ignore {
		if err := r.deliver(ctx, out.Reply); err != nil {
			return NotConsumed, fmt.Errorf("mention reply: %w", err)
		}
		consumed = Consumed
	}

	r.session.AdvanceMentionWatermark(mention.CreatedAt)
	return consumed, nil
}

// egoSearchStage looks at the last few channel messages for an unaddressed
// reference to the agent right after one of its own messages.
func (r *Runner) egoSearchStage(ctx context.Context, now time.Time) (StageResult, error) {
	history, err := r.msgr.History(ctx, HistoryQuery{Limit: egoSearchWindow})
	if err != nil {
		return NotConsumed, fmt.Errorf("ego-search history: %w", err)
	}

	var b strings.Builder
	ownFound := false
	for _, m := range history {
		if m.AuthorID == r.msgr.SelfID() {
			ownFound = true
		}
		b.WriteString(r.displayName(m) + ": " + m.Content + "\n")
	}
	if !ownFound {
		// Nothing of ours in the window, nothing to anchor a reply to.
		return NotConsumed, nil
	}

	out, err := r.decider.Decide(ctx, persona.KindEgoSearch, b.String())
	if err != nil {
		return NotConsumed, err
	}
	if out.Ignore {
		return NotConsumed, nil
	}

	if err := r.deliver(ctx, out.Reply); err != nil {
		return NotConsumed, fmt.Errorf("ego-search reply: %w", err)
	}
	return Consumed, nil
}

// announcementStage posts at most one unprompted status message, first match
// wins: the daily wrap-up, then the 23:00 good-night, then the once-per-day
// casual post.
func (r *Runner) announcementStage(ctx context.Context, now time.Time) (StageResult, error) {
	switch {
	case r.session.FirstSurfaceOfDay:
		log.Println("[MIND] action=announce kind=wrapup (first surface of the day)")
		if err := r.composeAndSend(ctx, persona.KindWrapUp); err != nil {
			return NotConsumed, err
		}
		r.session.FirstSurfaceOfDay = false
		r.session.DailyCasualPosted = true
		return Consumed, nil

	case now.Hour() == 23:
		log.Println("[MIND] action=announce kind=sleep")
		if err := r.composeAndSend(ctx, persona.KindSleep); err != nil {
			return NotConsumed, err
		}
		return Consumed, nil

	case !r.session.DailyCasualPosted:
		log.Println("[MIND] action=announce kind=casual")
		if err := r.composeAndSend(ctx, persona.KindCasual); err != nil {
			return NotConsumed, err
		}
		r.session.DailyCasualPosted = true
		return Consumed, nil
	}

	return NotConsumed, nil
}

func (r *Runner) composeAndSend(ctx context.Context, kind persona.Kind) error {
	text, err := r.decider.Compose(ctx, kind)
	if err != nil {
		return err
	}
	return r.deliver(ctx, text)
}

// displayName labels the agent's own lines with the persona name so the
// model recognizes which messages are "its".
func (r *Runner) displayName(m ChatMessage) string {
	if m.AuthorID == r.msgr.SelfID() {
		return persona.SelfName
	}
	return m.AuthorName
}
