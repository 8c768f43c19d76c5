// Package profile keeps per-user durable state: identity, counters and a
// bounded, deduplicated set of extracted memories. Everything lives in
// process memory; profiles are trimmed by sweeps but never deleted.
package profile

import (
	"strings"
	"sync"
	"time"
)

type Store struct {
	maxMemories int
	now         func() time.Time

	mu       sync.RWMutex
	profiles map[int64]*entry
}

// entry guards one user's profile so concurrent requests from the same user
// serialize on it while other users proceed in parallel.
type entry struct {
	mu sync.Mutex
	p  Profile
}

func NewStore(maxMemories int) *Store {
	return &Store{
		maxMemories: maxMemories,
		now:         time.Now,
		profiles:    make(map[int64]*entry),
	}
}

// Touch creates the profile if absent, bumps the interaction counter and
// records the display name the first time one is seen.
func (s *Store) Touch(userID int64, displayName string) {
	e := s.entryFor(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.p.LastInteraction = s.now()
	e.p.TotalMessages++
	if displayName != "" && e.p.Name == "" {
		e.p.Name = displayName
	}
}

// Get returns a detached snapshot of the user's profile.
func (s *Store) Get(userID int64) (Profile, bool) {
	s.mu.RLock()
	e := s.profiles[userID]
	s.mu.RUnlock()
	if e == nil {
		return Profile{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.p
	p.Memories = append([]MemoryFact(nil), e.p.Memories...)
	return p, true
}

// LastInteraction reports when the user was last seen, without creating
// a profile for unknown users.
func (s *Store) LastInteraction(userID int64) (time.Time, bool) {
	s.mu.RLock()
	e := s.profiles[userID]
	s.mu.RUnlock()
	if e == nil {
		return time.Time{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.p.LastInteraction, true
}

// AddMemories merges candidates into the user's profile. Candidates with an
// unknown type or empty content are dropped, contents already present
// (case-insensitively) are skipped, and the result is capped to the most
// recent maxMemories facts.
func (s *Store) AddMemories(userID int64, candidates []Candidate) {
	e := s.entryFor(userID)
	now := s.now()

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, c := range candidates {
		t, ok := ParseMemoryType(c.Type)
		content := strings.TrimSpace(c.Content)
		if !ok || content == "" {
			continue
		}
		if hasContent(e.p.Memories, content) {
			continue
		}
		e.p.Memories = append(e.p.Memories, MemoryFact{Type: t, Content: content, Timestamp: now})
	}
	e.p.Memories = capMemories(e.p.Memories, s.maxMemories)
}

// ClearConversation resets a profile after the user wipes their history:
// memories, name and creation time survive, the message counter does not.
func (s *Store) ClearConversation(userID int64) {
	s.mu.RLock()
	e := s.profiles[userID]
	s.mu.RUnlock()
	if e == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.p = Profile{
		UserID:          e.p.UserID,
		Name:            e.p.Name,
		CreatedAt:       e.p.CreatedAt,
		LastInteraction: s.now(),
		Memories:        e.p.Memories,
	}
}

// SweepOldMemories drops memories older than maxAge from every profile and
// re-applies the size cap. Returns the total number of facts removed.
func (s *Store) SweepOldMemories(maxAge time.Duration) int {
	cutoff := s.now().Add(-maxAge)

	removed := 0
	for _, e := range s.snapshot() {
		e.mu.Lock()
		before := len(e.p.Memories)
		e.p.Memories = capMemories(filterNewer(e.p.Memories, cutoff), s.maxMemories)
		removed += before - len(e.p.Memories)
		e.mu.Unlock()
	}
	return removed
}

// TrimUserMemories applies the age cutoff and size cap to a single user.
// Used as the inline sweep right after a memory merge.
func (s *Store) TrimUserMemories(userID int64, maxAge time.Duration) {
	s.mu.RLock()
	e := s.profiles[userID]
	s.mu.RUnlock()
	if e == nil {
		return
	}

	cutoff := s.now().Add(-maxAge)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.p.Memories = capMemories(filterNewer(e.p.Memories, cutoff), s.maxMemories)
}

func (s *Store) entryFor(userID int64) *entry {
	s.mu.RLock()
	e := s.profiles[userID]
	s.mu.RUnlock()
	if e != nil {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e = s.profiles[userID]; e == nil {
		e = &entry{p: Profile{UserID: userID, CreatedAt: s.now()}}
		s.profiles[userID] = e
	}
	return e
}

func (s *Store) snapshot() []*entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entry, 0, len(s.profiles))
	for _, e := range s.profiles {
		out = append(out, e)
	}
	return out
}

func hasContent(memories []MemoryFact, content string) bool {
	for _, m := range memories {
		if strings.EqualFold(m.Content, content) {
			return true
		}
	}
	return false
}

func filterNewer(memories []MemoryFact, cutoff time.Time) []MemoryFact {
	keep := memories[:0]
	for _, m := range memories {
		if m.Timestamp.After(cutoff) {
			keep = append(keep, m)
		}
	}
	return keep
}

func capMemories(memories []MemoryFact, max int) []MemoryFact {
	if len(memories) <= max {
		return memories
	}
	return append([]MemoryFact(nil), memories[len(memories)-max:]...)
}
