// Package cleanup runs the periodic and inline sweeps over the stores.
package cleanup

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"lisa-bot/internal/config"
	"lisa-bot/internal/observability"
)

type Conversations interface {
	SweepInactive(maxIdle time.Duration) int
}

type Profiles interface {
	SweepOldMemories(maxAge time.Duration) int
	TrimUserMemories(userID int64, maxAge time.Duration)
}

// Scheduler sweeps stale conversations and old memories on a fixed interval.
// A fault in one sweep is logged and the loop keeps ticking.
type Scheduler struct {
	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	conv    Conversations
	prof    Profiles
	metrics *observability.Metrics
}

func New(conv Conversations, prof Profiles, metrics *observability.Metrics) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		ctx:     ctx,
		cancel:  cancel,
		conv:    conv,
		prof:    prof,
		metrics: metrics,
	}
}

// Start schedules the periodic sweep.
func (s *Scheduler) Start() error {
	spec := fmt.Sprintf("@every %s", config.CleanupInterval)
	_, err := s.cron.AddFunc(spec, func() {
		select {
		case <-s.ctx.Done():
			return
		default:
		}
		s.RunSweeps()
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("🧹 Cleanup scheduler started - sweeping every %s", config.CleanupInterval)
	return nil
}

// RunSweeps executes both periodic sweeps once.
func (s *Scheduler) RunSweeps() {
	s.runGuarded("conversation sweep", func() {
		n := s.conv.SweepInactive(config.ConversationMaxIdle)
		log.Printf("🧹 Cleaned up conversations for %d inactive users", n)
		if s.metrics != nil {
			s.metrics.SweptConversations.Add(float64(n))
		}
	})
	s.runGuarded("memory sweep", func() {
		n := s.prof.SweepOldMemories(config.MemoryMaxAge)
		log.Printf("🧹 Cleaned up %d old memories", n)
		if s.metrics != nil {
			s.metrics.SweptMemories.Add(float64(n))
		}
	})
}

// SweepUser applies the stricter inline cutoff and the memory cap to one
// user, right after a memory merge. Never raises to the caller.
func (s *Scheduler) SweepUser(userID int64) {
	s.runGuarded("inline memory sweep", func() {
		s.prof.TrimUserMemories(userID, config.InlineMemoryMaxAge)
	})
}

func (s *Scheduler) runGuarded(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ %s failed: %v", name, r)
		}
	}()
	fn()
}

// Stop cancels the schedule and waits for an in-flight sweep to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("🧹 Cleanup scheduler stopped")
}
