package profile

import (
	"strings"
	"time"
)

// MemoryType categorizes a remembered fact.
type MemoryType string

const (
	MemoryInterest    MemoryType = "interest"
	MemoryGoal        MemoryType = "goal"
	MemoryAchievement MemoryType = "achievement"
	MemoryPreference  MemoryType = "preference"
	MemoryDesire      MemoryType = "desire"
	MemoryFantasy     MemoryType = "fantasy"
	MemorySecret      MemoryType = "secret"
	MemoryPassion     MemoryType = "passion"
	MemoryWeakness    MemoryType = "weakness"
)

// memoryTypeOrder fixes the display order for rendered summaries.
var memoryTypeOrder = []MemoryType{
	MemoryInterest, MemoryGoal, MemoryAchievement, MemoryPreference,
	MemoryDesire, MemoryFantasy, MemorySecret, MemoryPassion, MemoryWeakness,
}

var memoryTypes = func() map[MemoryType]bool {
	m := make(map[MemoryType]bool, len(memoryTypeOrder))
	for _, t := range memoryTypeOrder {
		m[t] = true
	}
	return m
}()

// ParseMemoryType normalizes a raw candidate type and reports whether it is
// one of the known categories.
func ParseMemoryType(s string) (MemoryType, bool) {
	t := MemoryType(strings.ToLower(strings.TrimSpace(s)))
	return t, memoryTypes[t]
}

// MemoryFact is one durable, categorized fact about a user.
type MemoryFact struct {
	Type      MemoryType
	Content   string
	Timestamp time.Time
}

// Profile aggregates everything remembered about a user. Snapshots returned
// by the store are detached copies; mutations go through store methods.
type Profile struct {
	UserID          int64
	Name            string
	CreatedAt       time.Time
	LastInteraction time.Time
	TotalMessages   int
	Memories        []MemoryFact
}

// Candidate is a proposed memory before validation. Unknown types and empty
// contents are discarded silently on insert.
type Candidate struct {
	Type    string
	Content string
}
