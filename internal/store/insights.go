package store

import (
	"sync"
	"time"

	"github.com/flowboard/assistant/internal/models"
	"github.com/google/uuid"
)

// InsightStore is append-only: insights are never updated or removed.
type InsightStore struct {
	mu       sync.RWMutex
	insights []*models.Insight
}

func NewInsightStore() *InsightStore {
	return &InsightStore{}
}

func (s *InsightStore) Create(category models.InsightCategory, title, description string, impact models.Impact, recommendations []string, metrics models.Metrics) *models.Insight {
	s.mu.Lock()
	defer s.mu.Unlock()

	insight := &models.Insight{
		ID:              uuid.New().String(),
		Category:        category,
		Title:           title,
		Description:     description,
		Impact:          impact,
		Recommendations: append([]string(nil), recommendations...),
		Metrics:         metrics,
		CreatedAt:       time.Now(),
	}

	s.insights = append([]*models.Insight{insight}, s.insights...)
	return insight
}

// ListAll returns every insight, most recent first.
func (s *InsightStore) ListAll() []*models.Insight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*models.Insight, 0, len(s.insights))
	for _, insight := range s.insights {
		copied := *insight
		all = append(all, &copied)
	}
	return all
}
