package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultSystemPrompt is used when no prompt is managed in Langfuse.
const DefaultSystemPrompt = `You are a warm, practical habit coach.

You receive a recovery assessment for a single user: the detected triggers (streak breaks, completion declines, life disruptions, overcommitment), the chosen recovery strategy with its emotional tone and recommendations, and a summary of recent completion analytics. Base everything only on the provided data.

Your goals:
- Acknowledge what happened without judgement.
- Match the emotional tone given in the plan.
- Turn the top recommendation into a first step small enough to do today.

Rules:
- Do NOT provide medical or psychological diagnoses.
- Do NOT invent numbers that are not in the data.
- Keep it short and concrete.

You must respond as strict JSON with exactly this shape:

{
  "headline": "One short sentence.",
  "message": "2-4 sentences of encouragement that reference the user's situation.",
  "next_steps": ["2-4 concrete actions, the first one doable today"]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's current habit situation.

- "recovery" lists the triggers that fired and the recovery plan (strategy, emotional_tone, estimated_recovery_days, recommendations ordered by priority).
- "analytics" summarizes the last weeks: overall completion rate, consistency score, streaks and per-habit rates.
- "goals" are the user's own stated goals, possibly empty.

JSON:

%s

Based on this data, respond in the required JSON format.`

// CoachLLM writes motivational copy for a recovery plan.
type CoachLLM interface {
	GenerateCoaching(ctx context.Context, coachingCtx *domain.CoachingContext) (*domain.CoachingMessage, error)
}

// OpenAIClient implements CoachLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI coaching client.
// Returns nil if apiKey is empty. An empty systemPrompt selects DefaultSystemPrompt.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateCoaching calls OpenAI to write a coaching message.
func (c *OpenAIClient) GenerateCoaching(ctx context.Context, coachingCtx *domain.CoachingContext) (*domain.CoachingMessage, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(coachingCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(contextJSON))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return ParseCoachingMessage(resp.Choices[0].Message.Content)
}

// ParseCoachingMessage decodes the model's JSON reply. Models occasionally wrap
// JSON in a markdown fence despite instructions; the fence is stripped.
func ParseCoachingMessage(content string) (*domain.CoachingMessage, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var output domain.CoachingMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.Headline == "" || output.Message == "" {
		return nil, fmt.Errorf("%w: missing headline or message", ErrOpenAIResponse)
	}
	if output.NextSteps == nil {
		output.NextSteps = []string{}
	}
	return &output, nil
}
