package profile

import (
	"strings"
	"testing"
)

func TestFormatSummaryNoProfile(t *testing.T) {
	s := NewStore(50)
	if got := s.FormatSummary(1); got != NoProfile {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestFormatMemoryListNoMemories(t *testing.T) {
	s := NewStore(50)
	if got := s.FormatMemoryList(1); got != NoMemories {
		t.Fatalf("expected placeholder for unknown user, got %q", got)
	}

	// A profile without memories also gets the placeholder.
	s.Touch(1, "Alice")
	if got := s.FormatMemoryList(1); got != NoMemories {
		t.Fatalf("expected placeholder for empty memories, got %q", got)
	}
}

func TestFormatSummary(t *testing.T) {
	s := NewStore(50)
	s.Touch(1, "Alice")
	s.Touch(1, "")
	s.AddMemories(1, []Candidate{
		{Type: "interest", Content: "loves hiking"},
		{Type: "interest", Content: "plays chess"},
		{Type: "goal", Content: "run a marathon"},
	})

	got := s.FormatSummary(1)
	if !strings.Contains(got, "Alice") {
		t.Fatalf("summary should address the user by name: %q", got)
	}
	if !strings.Contains(got, "2 messages") {
		t.Fatalf("summary should show message count: %q", got)
	}
	if !strings.Contains(got, "3 precious memories") {
		t.Fatalf("summary should show memory count: %q", got)
	}
	// Within a type, newest first.
	if !strings.Contains(got, "**Interest**: plays chess, loves hiking") {
		t.Fatalf("interest group missing or out of order: %q", got)
	}
	if !strings.Contains(got, "**Goal**: run a marathon") {
		t.Fatalf("goal group missing: %q", got)
	}
}

func TestFormatSummaryFallbackName(t *testing.T) {
	s := NewStore(50)
	s.Touch(1, "")
	if got := s.FormatSummary(1); !strings.Contains(got, fallbackName) {
		t.Fatalf("expected fallback name in summary: %q", got)
	}
}

func TestFormatSummaryConsidersOnlyRecentMemories(t *testing.T) {
	s := NewStore(50)
	var cs []Candidate
	cs = append(cs, Candidate{Type: "secret", Content: "buried secret"})
	for i := 0; i < 10; i++ {
		cs = append(cs, Candidate{Type: "interest", Content: "interest " + string(rune('a'+i))})
	}
	s.AddMemories(1, cs)

	if got := s.FormatSummary(1); strings.Contains(got, "buried secret") {
		t.Fatalf("summary should only consider the last 10 memories: %q", got)
	}
}

func TestFormatMemoryListGroupsByType(t *testing.T) {
	s := NewStore(50)
	s.AddMemories(1, []Candidate{
		{Type: "interest", Content: "loves hiking"},
		{Type: "passion", Content: "photography"},
		{Type: "interest", Content: "plays chess"},
	})

	got := s.FormatMemoryList(1)
	for _, want := range []string{"✨ Interests", "🔥 Passions", "• loves hiking", "• plays chess", "• photography"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in listing: %q", want, got)
		}
	}
	// Chronological within a type.
	if strings.Index(got, "loves hiking") > strings.Index(got, "plays chess") {
		t.Fatalf("listing should be chronological within a type: %q", got)
	}
}

func TestParseMemoryType(t *testing.T) {
	if tt, ok := ParseMemoryType("  Interest "); !ok || tt != MemoryInterest {
		t.Fatalf("expected normalized interest, got %q ok=%v", tt, ok)
	}
	if _, ok := ParseMemoryType("favorite_color"); ok {
		t.Fatalf("unknown type must not validate")
	}
	if _, ok := ParseMemoryType(""); ok {
		t.Fatalf("empty type must not validate")
	}
}
