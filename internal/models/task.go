package models

import "time"

// TaskDraft is the shape handed to the task-management collaborator
// when a task_creation suggestion is accepted or a create_task intent
// is confirmed. The assistant core never creates tasks itself.
type TaskDraft struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	Assignee       string `json:"assignee"`
	DueDate        string `json:"due_date"`
	Project        string `json:"project"`
	EstimatedHours int    `json:"estimated_hours"`
}

type NotificationKind string

const (
	NotificationSuggestionAccepted  NotificationKind = "suggestion_accepted"
	NotificationSuggestionDismissed NotificationKind = "suggestion_dismissed"
	NotificationTaskCreated         NotificationKind = "task_created"
)

// Notification is a user-visible lifecycle event handed to the
// notification collaborator.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}

// Actor identifies the current user, supplied read-only by the
// identity collaborator.
type Actor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
}
