package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dotcommander/kiroscore/internal/analyzer"
	"github.com/dotcommander/kiroscore/internal/engine"
)

const systemPrompt = `You are a hackathon judge for the Kiroween competition.
Score the submission against the four categories (resurrection, frankenstein,
skeleton-crew, costume-contest) and the three judged criteria (Potential
Value, Implementation, Quality and Design). Respond with a single JSON object
with keys "category_analysis" and "criteria_analysis" matching the schema you
were shown. Fit scores are 0-10; criteria and sub-scores are 1-5.`

// Client is the model-based analysis pathway. It produces the same output
// shape as the rule-based engine but shares none of its scoring logic;
// callers wrap it with analyzer.WithFallback for resilience.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates an AI analysis client.
func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI pathway requires an API key")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Client{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// aiPayload is the response shape requested from the model.
type aiPayload struct {
	Categories engine.CategoryAnalysis `json:"category_analysis"`
	Criteria   engine.CriteriaAnalysis `json:"criteria_analysis"`
}

// Analyze asks the model to score the submission and parses the result.
func (c *Client) Analyze(ctx context.Context, sub engine.Submission) (analyzer.Result, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(sub)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return analyzer.Result{}, fmt.Errorf("AI analysis request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return analyzer.Result{}, fmt.Errorf("AI analysis returned no choices")
	}

	var payload aiPayload
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &payload); err != nil {
		return analyzer.Result{}, fmt.Errorf("AI analysis returned malformed JSON: %w", err)
	}
	if err := checkPayload(payload); err != nil {
		return analyzer.Result{}, err
	}

	return analyzer.Result{
		Categories: payload.Categories,
		Criteria:   payload.Criteria,
		Viability:  engine.CombineViability(&payload.Categories, &payload.Criteria),
	}, nil
}

// checkPayload rejects responses that do not cover the full taxonomy and
// rubric, so the caller can fall back to the rule-based engine.
func checkPayload(payload aiPayload) error {
	if len(payload.Categories.Evaluations) != len(engine.AllCategories) {
		return fmt.Errorf("AI analysis covered %d categories, want %d",
			len(payload.Categories.Evaluations), len(engine.AllCategories))
	}
	if !payload.Categories.BestMatch.Valid() {
		return fmt.Errorf("AI analysis picked unknown best match %q", payload.Categories.BestMatch)
	}
	if len(payload.Criteria.Scores) != len(engine.CriterionOrder) {
		return fmt.Errorf("AI analysis covered %d criteria, want %d",
			len(payload.Criteria.Scores), len(engine.CriterionOrder))
	}
	return nil
}

func buildPrompt(sub engine.Submission) string {
	var builder strings.Builder
	builder.WriteString("Project description:\n")
	builder.WriteString(sub.Description)
	builder.WriteString("\n\nKiro usage:\n")
	if sub.KiroUsage == "" {
		builder.WriteString("(not provided)")
	} else {
		builder.WriteString(sub.KiroUsage)
	}
	if sub.Materials != nil {
		builder.WriteString(fmt.Sprintf("\n\nSupporting materials: %d screenshot(s), demo link: %q",
			len(sub.Materials.Screenshots), sub.Materials.DemoLink))
	}
	return builder.String()
}
