package cleanup

import (
	"testing"
	"time"

	"lisa-bot/internal/config"
)

type fakeConversations struct {
	calls   int
	maxIdle time.Duration
	panics  bool
}

func (f *fakeConversations) SweepInactive(maxIdle time.Duration) int {
	f.calls++
	f.maxIdle = maxIdle
	if f.panics {
		panic("sweep exploded")
	}
	return 2
}

type fakeProfiles struct {
	sweeps   int
	maxAge   time.Duration
	trimmed  []int64
	trimAges []time.Duration
}

func (f *fakeProfiles) SweepOldMemories(maxAge time.Duration) int {
	f.sweeps++
	f.maxAge = maxAge
	return 3
}

func (f *fakeProfiles) TrimUserMemories(userID int64, maxAge time.Duration) {
	f.trimmed = append(f.trimmed, userID)
	f.trimAges = append(f.trimAges, maxAge)
}

func TestRunSweepsInvokesBoth(t *testing.T) {
	conv := &fakeConversations{}
	prof := &fakeProfiles{}
	s := New(conv, prof, nil)

	s.RunSweeps()

	if conv.calls != 1 || conv.maxIdle != config.ConversationMaxIdle {
		t.Fatalf("conversation sweep not invoked correctly: %+v", conv)
	}
	if prof.sweeps != 1 || prof.maxAge != config.MemoryMaxAge {
		t.Fatalf("memory sweep not invoked correctly: %+v", prof)
	}
}

func TestRunSweepsSurvivesPanic(t *testing.T) {
	conv := &fakeConversations{panics: true}
	prof := &fakeProfiles{}
	s := New(conv, prof, nil)

	s.RunSweeps() // must not propagate the panic

	if prof.sweeps != 1 {
		t.Fatalf("memory sweep should still run after conversation sweep panics")
	}

	// And the next tick works again.
	conv.panics = false
	s.RunSweeps()
	if conv.calls != 2 {
		t.Fatalf("scheduler should keep sweeping after a fault")
	}
}

func TestSweepUserAppliesInlineCutoff(t *testing.T) {
	prof := &fakeProfiles{}
	s := New(&fakeConversations{}, prof, nil)

	s.SweepUser(42)

	if len(prof.trimmed) != 1 || prof.trimmed[0] != 42 {
		t.Fatalf("inline sweep should target the single user: %+v", prof.trimmed)
	}
	if prof.trimAges[0] != config.InlineMemoryMaxAge {
		t.Fatalf("inline sweep should use the stricter cutoff, got %s", prof.trimAges[0])
	}
}

func TestStartAndStop(t *testing.T) {
	s := New(&fakeConversations{}, &fakeProfiles{}, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	s.Stop()
}
