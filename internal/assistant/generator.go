package assistant

import (
	"context"
	"fmt"

	"github.com/flowboard/assistant/internal/models"
	"go.uber.org/zap"
)

// GenerateSuggestions simulates a backend analysis round trip and then
// creates a batch of canned suggestions. Cancelling ctx during the
// delay creates nothing.
func (e *Engine) GenerateSuggestions(ctx context.Context) ([]*models.Suggestion, error) {
	if err := e.wait(ctx, e.suggestionDelay); err != nil {
		return nil, err
	}

	created := []*models.Suggestion{
		e.suggestions.Create(
			models.TaskCreationSuggestion,
			"Break down the website redesign",
			"The redesign milestone has no subtasks yet. These would cover the remaining work.",
			91,
			models.TaskCreationPayload{
				SuggestedTasks: []models.TaskDraft{
					{Name: "Wireframe review", Status: "todo", Priority: "high", EstimatedHours: 4},
					{Name: "Update style guide", Status: "todo", Priority: "medium", EstimatedHours: 6},
					{Name: "Accessibility audit", Status: "todo", Priority: "medium", EstimatedHours: 8},
				},
			},
			models.PriorityHigh,
		),
		e.suggestions.Create(
			models.DeadlinePredictionSuggestion,
			"Mobile app release is trending late",
			"At the current pace the release lands 6 days past the committed date.",
			85,
			models.DeadlinePredictionPayload{Project: "Mobile App", DaysLate: 6},
			models.PriorityMedium,
		),
		e.suggestions.Create(
			models.BudgetAlertSuggestion,
			"Marketing site is at 80% of budget",
			"Spend is ahead of schedule with a third of the work remaining.",
			88,
			models.BudgetAlertPayload{Project: "Marketing Site", Spent: 24000, Budget: 30000, Remaining: 6000},
			models.PriorityHigh,
		),
	}

	e.logger.Info("Generated suggestions", zap.Int("count", len(created)))
	return created, nil
}

// GenerateInsights simulates a backend analysis round trip and then
// records a batch of canned insights.
func (e *Engine) GenerateInsights(ctx context.Context) ([]*models.Insight, error) {
	if err := e.wait(ctx, e.insightDelay); err != nil {
		return nil, err
	}

	created := []*models.Insight{
		e.insights.Create(
			models.ProductivityInsight,
			"Completion rate is climbing",
			"The team closed 18% more tasks this sprint than last.",
			models.ImpactMedium,
			[]string{
				"Keep the current sprint scope",
				"Reserve Fridays for review work",
			},
			models.Metrics{Current: 78, Target: 85, Trend: models.TrendUp},
		),
		e.insights.Create(
			models.RiskInsight,
			"Two projects share a single reviewer",
			"Review turnaround is the longest stage for both projects.",
			models.ImpactHigh,
			[]string{
				"Add a second reviewer to the mobile project",
				"Batch small changes into a single review",
			},
			models.Metrics{Current: 36, Target: 12, Trend: models.TrendDown},
		),
		e.insights.Create(
			models.TimelineInsight,
			"Milestones are front-loaded",
			"Three of four milestones land in the first half of the quarter.",
			models.ImpactLow,
			[]string{"Spread milestone dates across the quarter"},
			models.Metrics{Current: 3, Target: 2, Trend: models.TrendStable},
		),
	}

	e.logger.Info("Generated insights", zap.Int("count", len(created)))
	return created, nil
}

// Analyze produces a text summary of the current stores after the
// simulated processing delay.
func (e *Engine) Analyze(ctx context.Context) (string, error) {
	if err := e.wait(ctx, e.insightDelay); err != nil {
		return "", err
	}

	pending := e.suggestions.ListPending()
	insights := e.insights.ListAll()

	report := fmt.Sprintf("Workload analysis\n\nPending suggestions: %d\n", len(pending))
	for _, suggestion := range pending {
		report += fmt.Sprintf("- [%s] %s (%d%%)\n", suggestion.Priority, suggestion.Title, suggestion.Confidence)
	}
	report += fmt.Sprintf("\nInsights: %d\n", len(insights))
	for _, insight := range insights {
		report += fmt.Sprintf("- [%s] %s\n", insight.Category, insight.Title)
	}
	return report, nil
}
