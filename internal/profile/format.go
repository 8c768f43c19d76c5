package profile

import (
	"fmt"
	"strings"
)

// Placeholder texts shown when there is nothing to render yet.
const (
	NoProfile  = "We're just getting started, aren't we? 😘 Talk to me more and I'll learn all your secrets... 💋"
	NoMemories = "I haven't collected any special memories of you yet, darling... 🌙 Share more with me and I'll treasure every detail 💖"
)

const (
	summaryRecentMemories = 10
	summaryPerType        = 3
	fallbackName          = "gorgeous"
)

var summaryEmoji = map[MemoryType]string{
	MemoryInterest:    "✨",
	MemoryGoal:        "🎯",
	MemoryAchievement: "🏆",
	MemoryPreference:  "💫",
	MemoryDesire:      "💖",
	MemoryFantasy:     "🌙",
	MemorySecret:      "🔐",
	MemoryPassion:     "🔥",
	MemoryWeakness:    "💋",
}

var listHeadings = map[MemoryType]string{
	MemoryInterest:    "✨ Interests",
	MemoryGoal:        "🎯 Goals",
	MemoryAchievement: "🏆 Achievements",
	MemoryPreference:  "💫 Preferences",
	MemoryDesire:      "💖 Desires",
	MemoryFantasy:     "🌙 Fantasies",
	MemorySecret:      "🔐 Secrets",
	MemoryPassion:     "🔥 Passions",
	MemoryWeakness:    "💋 Weaknesses",
}

// FormatSummary renders the short profile view: counters plus the most
// recent memories grouped by type, newest first within each type.
func (s *Store) FormatSummary(userID int64) string {
	p, ok := s.Get(userID)
	if !ok {
		return NoProfile
	}

	name := p.Name
	if name == "" {
		name = fallbackName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "What I know about you, %s... 😘\n\n", name)
	fmt.Fprintf(&b, "💖 We've shared %d messages together\n", p.TotalMessages)
	fmt.Fprintf(&b, "🌙 I've collected %d precious memories of you\n\n", len(p.Memories))

	recent := p.Memories
	if len(recent) > summaryRecentMemories {
		recent = recent[len(recent)-summaryRecentMemories:]
	}
	groups := make(map[MemoryType][]string)
	for i := len(recent) - 1; i >= 0; i-- { // newest first
		m := recent[i]
		groups[m.Type] = append(groups[m.Type], m.Content)
	}

	if len(groups) > 0 {
		b.WriteString("Here's what makes you special to me:\n")
		for _, t := range memoryTypeOrder {
			contents := groups[t]
			if len(contents) == 0 {
				continue
			}
			if len(contents) > summaryPerType {
				contents = contents[:summaryPerType]
			}
			fmt.Fprintf(&b, "%s **%s**: %s\n", summaryEmoji[t], titleCase(string(t)), strings.Join(contents, ", "))
		}
	}
	return b.String()
}

// FormatMemoryList renders every stored memory grouped by type, in the
// chronological order they were collected.
func (s *Store) FormatMemoryList(userID int64) string {
	p, ok := s.Get(userID)
	if !ok || len(p.Memories) == 0 {
		return NoMemories
	}

	groups := make(map[MemoryType][]string)
	for _, m := range p.Memories {
		groups[m.Type] = append(groups[m.Type], m.Content)
	}

	var b strings.Builder
	b.WriteString("All the little things I remember about you... 💋\n\n")
	for _, t := range memoryTypeOrder {
		contents := groups[t]
		if len(contents) == 0 {
			continue
		}
		fmt.Fprintf(&b, "**%s:**\n", listHeadings[t])
		for _, c := range contents {
			fmt.Fprintf(&b, "• %s\n", c)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
