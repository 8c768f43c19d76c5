package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// MemoryCandidate is a fact proposed by the model for long-term storage.
// The type is kept as a raw string here; the profile store validates it
// against the known categories and drops anything unrecognized.
type MemoryCandidate struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const extractionPromptFmt = `Analyze this conversation and extract any personal information, preferences, interests, goals, or emotional details that should be remembered about the user.

User message: %q
My response: %q

Extract memories in these categories only: interest, goal, achievement, preference, desire, fantasy, secret, passion, weakness

Return a JSON array of memories like: [{"type": "interest", "content": "loves hiking"}, {"type": "preference", "content": "prefers tea over coffee"}]

Only extract clear, specific details. Return an empty array [] if nothing significant to remember. Return only JSON, no prose and no formatting.`

// ExtractMemories asks the model for memory candidates from one exchange.
// A response that is not valid JSON yields an empty list, not an error.
func ExtractMemories(ctx context.Context, client Client, userMessage, botResponse string) ([]MemoryCandidate, error) {
	prompt := fmt.Sprintf(extractionPromptFmt, userMessage, botResponse)
	resp, err := client.Generate(ctx, []Message{{Role: "user", Content: prompt}})
	if err != nil {
		return nil, fmt.Errorf("memory extraction failed: %w", err)
	}
	return ParseMemoryCandidates(resp.Content), nil
}

// ParseMemoryCandidates decodes the model's JSON array, tolerating markdown
// code fences. Entries without a type or content are dropped.
func ParseMemoryCandidates(raw string) []MemoryCandidate {
	raw = stripCodeFence(raw)

	var decoded []MemoryCandidate
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil
	}

	var out []MemoryCandidate
	for _, c := range decoded {
		if strings.TrimSpace(c.Type) == "" || strings.TrimSpace(c.Content) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:] // drop the language tag line
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
