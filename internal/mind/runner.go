package mind

import (
	"context"
	"log"
	"math/rand"
	"time"
)

const tickInterval = 60 * time.Second

// Delay ranges in seconds. The pre-action jitter hides the on-the-minute poll
// pattern; the typing delay makes replies arrive at human speed.
const (
	surfaceJitterMin = 1
	surfaceJitterMax = 10
	typingDelayMin   = 10
	typingDelayMax   = 20
)

// Runner owns the session state and drives one tick at a time through the
// gate and the stage pipeline. All mutation of Session happens on this single
// path, so no locking is needed.
type Runner struct {
	session *Session
	msgr    Messenger // nil when no target channel is configured
	decider Decider
	loc     *time.Location
	stages  []stage

	// overridable in tests
	sleep   func(ctx context.Context, d time.Duration) bool
	randInt func(min, max int) int
}

// NewRunner creates a runner with freshly seeded session state. msgr may be
// nil; the loop then runs harmlessly without posting.
func NewRunner(msgr Messenger, decider Decider, loc *time.Location) *Runner {
	if loc == nil {
		loc = time.UTC
	}
	r := &Runner{
		session: NewSession(time.Now().In(loc)),
		msgr:    msgr,
		decider: decider,
		loc:     loc,
		sleep:   sleepCtx,
		randInt: randBetween,
	}
	r.stages = []stage{
		{name: "mention", run: r.mentionStage},
		{name: "egosearch", run: r.egoSearchStage},
		{name: "announce", run: r.announcementStage},
	}
	return r
}

// Run ticks every minute until ctx is done. The handler runs inline in this
// goroutine, so a tick can never overlap a still-running predecessor; ticks
// that fire while the handler is busy are dropped by the ticker.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.HandleTick(ctx, time.Now().In(r.loc))
		}
	}
}

// HandleTick processes one tick at the given local instant.
func (r *Runner) HandleTick(ctx context.Context, now time.Time) {
	if !r.session.Gate(now) {
		return
	}
	r.surface(ctx, now)
}

// surface runs the full engagement pipeline as one unit of work: presence
// goes active on entry and is restored to invisible on every exit path.
func (r *Runner) surface(ctx context.Context, now time.Time) {
	if !r.wait(ctx, surfaceJitterMin, surfaceJitterMax) {
		return
	}

	if r.msgr == nil {
		log.Println("[WARN] No target channel configured, staying silent this hour")
		r.session.LastSurfaceCheck = now
		return
	}

	log.Printf("[MIND] action=surface at=%s", now.Format("2006-01-02 15:04:05"))

	if err := r.msgr.SetPresence(ctx, PresenceActive); err != nil {
		log.Printf("[WARN] Failed to set active presence: %v", err)
	}
	defer func() {
		if p := recover(); p != nil {
			log.Printf("[ERR] Tick panicked, abandoning: %v", p)
			r.session.FailForward(now)
		}
		// Restore runs on a fresh context so shutdown cannot leave the agent
		// stuck visibly online.
		if err := r.msgr.SetPresence(context.Background(), PresenceInvisible); err != nil {
			log.Printf("[WARN] Failed to restore invisible presence: %v", err)
		}
	}()

	for _, st := range r.stages {
		res, err := st.run(ctx, now)
		if err != nil {
			log.Printf("[ERR] Stage %s failed, abandoning tick: %v", st.name, err)
			r.session.FailForward(now)
			return
		}
		if res == Consumed {
			log.Printf("[MIND] action=spoke stage=%s", st.name)
			break
		}
	}

	r.session.LastSurfaceCheck = now
}

// deliver shows the typing indicator, waits a human-looking interval, then
// sends. The wait is a real suspension and aborts on shutdown.
func (r *Runner) deliver(ctx context.Context, text string) error {
	if err := r.msgr.Typing(ctx); err != nil {
		log.Printf("[WARN] Typing indicator failed: %v", err)
	}
	if !r.wait(ctx, typingDelayMin, typingDelayMax) {
		return ctx.Err()
	}
	return r.msgr.Send(ctx, text)
}

func (r *Runner) wait(ctx context.Context, minSec, maxSec int) bool {
	return r.sleep(ctx, time.Duration(r.randInt(minSec, maxSec))*time.Second)
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func randBetween(min, max int) int {
	return min + rand.Intn(max-min+1)
}
