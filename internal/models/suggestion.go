package models

import "time"

type SuggestionKind string

const (
	TaskCreationSuggestion        SuggestionKind = "task_creation"
	DeadlinePredictionSuggestion  SuggestionKind = "deadline_prediction"
	ResourceAllocationSuggestion  SuggestionKind = "resource_allocation"
	RiskDetectionSuggestion       SuggestionKind = "risk_detection"
	OptimizationSuggestion        SuggestionKind = "optimization"
	BudgetAlertSuggestion         SuggestionKind = "budget_alert"
	WorkflowImprovementSuggestion SuggestionKind = "workflow_improvement"
)

type SuggestionStatus string

const (
	SuggestionPending   SuggestionStatus = "pending"
	SuggestionAccepted  SuggestionStatus = "accepted"
	SuggestionDismissed SuggestionStatus = "dismissed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Suggestion is a proposed action surfaced to the user. Its status only
// moves forward: pending, then exactly one of accepted or dismissed.
type Suggestion struct {
	ID          string            `json:"id"`
	Kind        SuggestionKind    `json:"kind"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Confidence  int               `json:"confidence"` // 0-100, display value only
	Payload     SuggestionPayload `json:"payload,omitempty"`
	Status      SuggestionStatus  `json:"status"`
	Priority    Priority          `json:"priority"`
	CreatedAt   time.Time         `json:"created_at"`
}

// SuggestionPayload is the kind-specific data attached to a suggestion.
// Each SuggestionKind has exactly one payload type; consumers switch on
// the concrete type.
type SuggestionPayload interface {
	SuggestionKind() SuggestionKind
}

type TaskCreationPayload struct {
	SuggestedTasks []TaskDraft `json:"suggested_tasks"`
}

type DeadlinePredictionPayload struct {
	Project       string    `json:"project"`
	PredictedDate time.Time `json:"predicted_date"`
	DaysLate      int       `json:"days_late"`
}

type ResourceAllocationPayload struct {
	FromAssignee string `json:"from_assignee"`
	ToAssignee   string `json:"to_assignee"`
	TaskCount    int    `json:"task_count"`
}

type RiskDetectionPayload struct {
	Project string   `json:"project"`
	Risks   []string `json:"risks"`
}

type OptimizationPayload struct {
	Area           string `json:"area"`
	EstimatedHours int    `json:"estimated_hours"`
}

type BudgetAlertPayload struct {
	Project   string  `json:"project"`
	Spent     float64 `json:"spent"`
	Budget    float64 `json:"budget"`
	Remaining float64 `json:"remaining"`
}

type WorkflowImprovementPayload struct {
	Workflow string   `json:"workflow"`
	Steps    []string `json:"steps"`
}

func (TaskCreationPayload) SuggestionKind() SuggestionKind        { return TaskCreationSuggestion }
func (DeadlinePredictionPayload) SuggestionKind() SuggestionKind  { return DeadlinePredictionSuggestion }
func (ResourceAllocationPayload) SuggestionKind() SuggestionKind  { return ResourceAllocationSuggestion }
func (RiskDetectionPayload) SuggestionKind() SuggestionKind       { return RiskDetectionSuggestion }
func (OptimizationPayload) SuggestionKind() SuggestionKind        { return OptimizationSuggestion }
func (BudgetAlertPayload) SuggestionKind() SuggestionKind         { return BudgetAlertSuggestion }
func (WorkflowImprovementPayload) SuggestionKind() SuggestionKind { return WorkflowImprovementSuggestion }
