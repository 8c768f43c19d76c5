// Package conversation keeps the bounded per-user log of recent exchanges.
package conversation

import (
	"sync"
	"time"
)

// Exchange is one user-message/bot-response pair. Immutable once appended.
type Exchange struct {
	Timestamp   time.Time
	UserMessage string
	BotResponse string
}

// Profiles is the slice of the profile store the conversation log needs:
// appends touch the profile, sweeps consult its last-interaction time.
type Profiles interface {
	Touch(userID int64, displayName string)
	LastInteraction(userID int64) (time.Time, bool)
}

type Store struct {
	maxHistory int
	profiles   Profiles
	now        func() time.Time

	mu   sync.RWMutex
	logs map[int64]*userLog
}

type userLog struct {
	mu      sync.Mutex
	entries []Exchange
}

func NewStore(maxHistory int, profiles Profiles) *Store {
	return &Store{
		maxHistory: maxHistory,
		profiles:   profiles,
		now:        time.Now,
		logs:       make(map[int64]*userLog),
	}
}

// Append records an exchange, keeping only the most recent maxHistory
// entries, and touches the user's profile.
func (s *Store) Append(userID int64, displayName string, ex Exchange) {
	l := s.userLog(userID)

	l.mu.Lock()
	l.entries = append(l.entries, ex)
	if len(l.entries) > s.maxHistory {
		l.entries = append([]Exchange(nil), l.entries[len(l.entries)-s.maxHistory:]...)
	}
	l.mu.Unlock()

	s.profiles.Touch(userID, displayName)
}

// History returns a copy of the user's log, oldest first. Empty for
// unknown users.
func (s *Store) History(userID int64) []Exchange {
	s.mu.RLock()
	l := s.logs[userID]
	s.mu.RUnlock()
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Exchange(nil), l.entries...)
}

// Clear removes the user's entire log. No-op if there is none.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	delete(s.logs, userID)
	s.mu.Unlock()
}

// SweepInactive removes the logs of users whose profile has been idle for
// longer than maxIdle. Profiles themselves are left alone. Returns the
// number of users whose log was dropped.
func (s *Store) SweepInactive(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.RLock()
	ids := make([]int64, 0, len(s.logs))
	for id := range s.logs {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	removed := 0
	for _, id := range ids {
		last, ok := s.profiles.LastInteraction(id)
		if !ok || !last.Before(cutoff) {
			continue
		}
		s.mu.Lock()
		if _, present := s.logs[id]; present {
			delete(s.logs, id)
			removed++
		}
		s.mu.Unlock()
	}
	return removed
}

func (s *Store) userLog(userID int64) *userLog {
	s.mu.RLock()
	l := s.logs[userID]
	s.mu.RUnlock()
	if l != nil {
		return l
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if l = s.logs[userID]; l == nil {
		l = &userLog{}
		s.logs[userID] = l
	}
	return l
}
