package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/habit-tracker/internal/domain"
)

func TestNewOpenAIClient_EmptyKey(t *testing.T) {
	if c := NewOpenAIClient("", "model", ""); c != nil {
		t.Fatalf("expected nil client without an API key")
	}
}

func TestNewOpenAIClient_Defaults(t *testing.T) {
	c := NewOpenAIClient("key", "", "  ")
	if c.model != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", c.model)
	}
	if c.systemPrompt != DefaultSystemPrompt {
		t.Errorf("expected default system prompt")
	}
}

func TestGenerateCoaching_NilClient(t *testing.T) {
	var c *OpenAIClient
	_, err := c.GenerateCoaching(context.Background(), &domain.CoachingContext{})
	if !errors.Is(err, ErrOpenAIUnavailable) {
		t.Fatalf("expected ErrOpenAIUnavailable, got %v", err)
	}
}

func TestParseCoachingMessage(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantErr   bool
		wantSteps int
	}{
		{
			name:      "plain json",
			content:   `{"headline":"Small steps","message":"You did well.","next_steps":["Walk 2 minutes","Log it"]}`,
			wantSteps: 2,
		},
		{
			name:      "fenced json",
			content:   "```json\n{\"headline\":\"Hi\",\"message\":\"Keep going.\"}\n```",
			wantSteps: 0,
		},
		{
			name:    "not json",
			content: "Keep going!",
			wantErr: true,
		},
		{
			name:    "missing message",
			content: `{"headline":"Hi"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoachingMessage(tt.content)
			if tt.wantErr {
				if !errors.Is(err, ErrOpenAIResponse) {
					t.Fatalf("expected ErrOpenAIResponse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got.NextSteps) != tt.wantSteps {
				t.Errorf("next steps = %d, want %d", len(got.NextSteps), tt.wantSteps)
			}
		})
	}
}
