package models

import "time"

type InsightCategory string

const (
	ProductivityInsight InsightCategory = "productivity"
	BudgetInsight       InsightCategory = "budget"
	TimelineInsight     InsightCategory = "timeline"
	TeamInsight         InsightCategory = "team"
	RiskInsight         InsightCategory = "risk"
	QualityInsight      InsightCategory = "quality"
	PerformanceInsight  InsightCategory = "performance"
)

type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Metrics pairs an observed value with its target.
type Metrics struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Trend   Trend   `json:"trend"`
}

// Insight is a read-only analytical observation. Insights have no
// lifecycle beyond creation.
type Insight struct {
	ID              string          `json:"id"`
	Category        InsightCategory `json:"category"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Impact          Impact          `json:"impact"`
	Recommendations []string        `json:"recommendations"`
	Metrics         Metrics         `json:"metrics"`
	CreatedAt       time.Time       `json:"created_at"`
}
