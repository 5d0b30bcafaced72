package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type gptExtraction struct {
	Intent      string  `json:"intent"`
	TaskName    string  `json:"task_name"`
	Assignee    string  `json:"assignee"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"due_date"`
	ProjectName string  `json:"project_name"`
	Title       string  `json:"title"`
	Attendees   string  `json:"attendees"`
	Date        string  `json:"date"`
	Confidence  float64 `json:"confidence"`
}

// GPTExtractor asks a chat model to classify the utterance. Any API or
// parse failure falls back to the heuristic extractor, so callers see
// the same never-fails contract as HeuristicExtractor.
type GPTExtractor struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	fallback    *HeuristicExtractor
	logger      *zap.Logger
}

func NewGPTExtractor(apiKey, model string, maxTokens int, temperature float64, logger *zap.Logger) *GPTExtractor {
	return &GPTExtractor{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		fallback:    NewHeuristicExtractor(),
		logger:      logger,
	}
}

func (e *GPTExtractor) Extract(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return e.fallback.Extract(ctx, text)
	}

	prompt := fmt.Sprintf(`Classify the following message into exactly one intent:
create_task, create_project, schedule_meeting, status_query, general_query.

Extract any entities present (leave missing ones as empty strings).

Return the response as a JSON object with this structure:
{
    "intent": "intent_label",
    "task_name": "",
    "assignee": "",
    "priority": "",
    "due_date": "",
    "project_name": "",
    "title": "",
    "attendees": "",
    "date": "",
    "confidence": 0.0
}

Message: %s`, text)

	resp, err := e.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: e.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   e.maxTokens,
			Temperature: float32(e.temperature),
		},
	)
	if err != nil {
		e.logger.Error("Failed to get GPT extraction", zap.Error(err))
		return e.fallback.Extract(ctx, text)
	}

	var extraction gptExtraction
	response := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(response), &extraction); err != nil {
		e.logger.Error("Failed to parse GPT extraction",
			zap.Error(err),
			zap.String("response", response))
		return e.fallback.Extract(ctx, text)
	}

	label := Label(extraction.Intent)
	switch label {
	case CreateTask, CreateProject, ScheduleMeeting, StatusQuery, GeneralQuery:
	default:
		e.logger.Warn("GPT returned unknown intent label",
			zap.String("intent", extraction.Intent))
		return e.fallback.Extract(ctx, text)
	}

	return Result{
		Intent: label,
		Entities: Entities{
			TaskName:    extraction.TaskName,
			Assignee:    extraction.Assignee,
			Priority:    extraction.Priority,
			DueDate:     extraction.DueDate,
			ProjectName: extraction.ProjectName,
			Title:       extraction.Title,
			Attendees:   extraction.Attendees,
			Date:        extraction.Date,
		},
		Confidence: extraction.Confidence,
	}, nil
}
