package assistant

import (
	"fmt"
	"strings"

	"github.com/flowboard/assistant/internal/intent"
	"github.com/flowboard/assistant/internal/models"
)

// compose builds the canned assistant reply for an extraction result.
// Replies are presentation text only; real state changes happen through
// the actions attached to the turn.
func (e *Engine) compose(result intent.Result) (string, []models.Action) {
	switch result.Intent {
	case intent.CreateTask:
		return e.composeCreateTask(result.Entities)
	case intent.CreateProject:
		return e.composeCreateProject(result.Entities), nil
	case intent.ScheduleMeeting:
		return e.composeScheduleMeeting(result.Entities), nil
	case intent.StatusQuery:
		return e.composeStatus(), nil
	default:
		return e.composeGeneral(), nil
	}
}

func (e *Engine) composeCreateTask(entities intent.Entities) (string, []models.Action) {
	priority := entities.Priority
	if priority == "" {
		priority = "Medium"
	}
	assignee := entities.Assignee
	if assignee == "" {
		assignee = "Unassigned"
	}
	dueDate := entities.DueDate
	if dueDate == "" {
		dueDate = "Not set"
	}

	draft := models.TaskDraft{
		Name:     entities.TaskName,
		Status:   "todo",
		Priority: strings.ToLower(priority),
		Assignee: entities.Assignee,
		DueDate:  entities.DueDate,
	}

	content := fmt.Sprintf(`I can create that task for you:

Task: %s
Assignee: %s
Priority: %s
Due date: %s

Should I go ahead?`, entities.TaskName, assignee, priority, dueDate)

	actions := []models.Action{
		{
			Label:    "Create task",
			Emphasis: models.EmphasisPrimary,
			Effect:   func() { e.createTask(draft) },
		},
		{
			Label:    "Not now",
			Emphasis: models.EmphasisSecondary,
		},
	}
	return content, actions
}

func (e *Engine) composeCreateProject(entities intent.Entities) string {
	name := entities.ProjectName
	if name == "" {
		name = "New Project"
	}
	var details []string
	if entities.TeamSize != "" {
		details = append(details, fmt.Sprintf("Team size: %s", entities.TeamSize))
	}
	if entities.Duration != "" {
		details = append(details, fmt.Sprintf("Duration: %s", entities.Duration))
	}
	if entities.Priority != "" {
		details = append(details, fmt.Sprintf("Priority: %s", entities.Priority))
	}

	content := fmt.Sprintf("Here's what I understood for project %q.", name)
	if len(details) > 0 {
		content += "\n\n" + strings.Join(details, "\n")
	}
	content += "\n\nOpen the project board to set it up with these defaults."
	return content
}

func (e *Engine) composeScheduleMeeting(entities intent.Entities) string {
	title := entities.Title
	if title == "" {
		title = "Team meeting"
	}
	date := entities.Date
	if date == "" {
		date = "the next free slot"
	}

	content := fmt.Sprintf("I'll pencil in %q for %s.", title, date)
	if entities.Attendees != "" {
		content += fmt.Sprintf(" Attendees: %s.", entities.Attendees)
	}
	content += " Check the calendar view to confirm the invite."
	return content
}

func (e *Engine) composeStatus() string {
	pending := len(e.suggestions.ListPending())
	insights := len(e.insights.ListAll())
	turns := len(e.log.History())

	return fmt.Sprintf(`Here's where things stand:

Pending suggestions: %d
Insights available: %d
Messages this conversation: %d

Ask me to analyze your workload for a detailed breakdown.`, pending, insights, turns)
}

func (e *Engine) composeGeneral() string {
	return `I can help you with:

- Creating tasks ("create a task for the landing page, assign to Dana")
- Setting up projects ("create a project for the mobile app")
- Scheduling meetings ("schedule a meeting with the design team tomorrow")
- Status updates ("what's the status of my projects?")

What would you like to do?`
}
