package intent

import (
	"context"
	"regexp"
	"strings"
)

type Label string

const (
	CreateTask      Label = "create_task"
	CreateProject   Label = "create_project"
	ScheduleMeeting Label = "schedule_meeting"
	StatusQuery     Label = "status_query"
	GeneralQuery    Label = "general_query"
)

// Entities holds the fields heuristically captured from an utterance.
// All fields are best-effort; empty string means not found.
type Entities struct {
	TaskName    string `json:"task_name,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
	TeamSize    string `json:"team_size,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Title       string `json:"title,omitempty"`
	Attendees   string `json:"attendees,omitempty"`
	Date        string `json:"date,omitempty"`
}

// Result is what extraction produces for one utterance. Confidence is a
// fixed per-branch display constant, not a calibrated probability.
type Result struct {
	Intent     Label    `json:"intent"`
	Entities   Entities `json:"entities"`
	Confidence float64  `json:"confidence"`
}

// Extractor maps free text to an intent and entities. Implementations
// must degrade to GeneralQuery rather than fail on unparseable input.
type Extractor interface {
	Extract(ctx context.Context, text string) (Result, error)
}

var (
	dueDatePattern  = regexp.MustCompile(`(?i)\b(?:by|due|on)\s+([a-zA-Z]+\s+\d+\w*)`)
	teamSizePattern = regexp.MustCompile(`(?i)\b(\d+)\s*(?:people|members|developers|engineers)\b`)
	durationPattern = regexp.MustCompile(`(?i)\b(\d+)\s*(weeks?|months?|days?|hours?|minutes?)\b`)
	clauseEnd       = regexp.MustCompile(`[.,!?;]`)
)

// HeuristicExtractor classifies with case-insensitive substring tests,
// first match wins. It is pure and never returns an error.
type HeuristicExtractor struct{}

func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

func (e *HeuristicExtractor) Extract(_ context.Context, text string) (Result, error) {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)
	if lower == "" {
		return Result{Intent: GeneralQuery, Confidence: 0.65}, nil
	}

	switch {
	case strings.Contains(lower, "create") && strings.Contains(lower, "task"):
		return Result{
			Intent:     CreateTask,
			Entities:   extractTaskEntities(text, lower),
			Confidence: 0.85,
		}, nil
	case strings.Contains(lower, "create") && strings.Contains(lower, "project"):
		return Result{
			Intent:     CreateProject,
			Entities:   extractProjectEntities(text, lower),
			Confidence: 0.88,
		}, nil
	case strings.Contains(lower, "schedule") && strings.Contains(lower, "meeting"):
		return Result{
			Intent:     ScheduleMeeting,
			Entities:   extractMeetingEntities(text, lower),
			Confidence: 0.90,
		}, nil
	case strings.Contains(lower, "status") || strings.Contains(lower, "progress"):
		return Result{Intent: StatusQuery, Confidence: 0.92}, nil
	default:
		return Result{Intent: GeneralQuery, Confidence: 0.65}, nil
	}
}

func extractTaskEntities(text, lower string) Entities {
	ent := Entities{
		TaskName: captureAfter(text, lower, "task for ", "task called ", "task to "),
		Assignee: captureAfter(text, lower, "assign it to ", "assign to ", "assigned to "),
		Priority: extractPriority(lower),
		DueDate:  firstSubmatch(dueDatePattern, text),
	}
	if ent.TaskName == "" {
		ent.TaskName = "New Task"
	}
	return ent
}

func extractProjectEntities(text, lower string) Entities {
	return Entities{
		ProjectName: captureAfter(text, lower, "project for ", "project called ", "project named "),
		TeamSize:    firstSubmatch(teamSizePattern, text),
		Duration:    firstMatch(durationPattern, text),
		Priority:    extractPriority(lower),
	}
}

func extractMeetingEntities(text, lower string) Entities {
	ent := Entities{
		Title:     captureAfter(text, lower, "meeting about ", "meeting for ", "meeting on "),
		Attendees: captureAfter(text, lower, "meeting with ", "with "),
		Duration:  firstMatch(durationPattern, text),
		Date:      firstSubmatch(dueDatePattern, text),
	}
	if ent.Date == "" {
		for _, word := range []string{"tomorrow", "today", "next week", "next month"} {
			if strings.Contains(lower, word) {
				ent.Date = word
				break
			}
		}
	}
	return ent
}

// captureAfter returns the original-case text following the first
// matching marker, trimmed at the end of the clause.
func captureAfter(text, lower string, markers ...string) string {
	for _, marker := range markers {
		idx := strings.Index(lower, marker)
		if idx < 0 {
			continue
		}
		rest := text[idx+len(marker):]
		if loc := clauseEnd.FindStringIndex(rest); loc != nil {
			rest = rest[:loc[0]]
		}
		rest = strings.Trim(strings.TrimSpace(rest), `"'`)
		if rest != "" {
			return rest
		}
	}
	return ""
}

func extractPriority(lower string) string {
	switch {
	case strings.Contains(lower, "urgent") || strings.Contains(lower, "high"):
		return "High"
	case strings.Contains(lower, "low"):
		return "Low"
	default:
		// Empty means unknown; callers default to "Medium".
		return ""
	}
}

func firstSubmatch(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func firstMatch(re *regexp.Regexp, text string) string {
	return strings.TrimSpace(re.FindString(text))
}
