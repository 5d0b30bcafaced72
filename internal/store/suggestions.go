package store

import (
	"sync"
	"time"

	"github.com/flowboard/assistant/internal/models"
	"github.com/google/uuid"
)

// SuggestionStore holds suggestions most-recent-first and enforces the
// one-way pending -> accepted|dismissed lifecycle. It only manages
// state; side effects of accepting (task creation, notifications) are
// the caller's job.
type SuggestionStore struct {
	mu          sync.RWMutex
	suggestions []*models.Suggestion
	byID        map[string]*models.Suggestion
}

func NewSuggestionStore() *SuggestionStore {
	return &SuggestionStore{
		byID: make(map[string]*models.Suggestion),
	}
}

func (s *SuggestionStore) Create(kind models.SuggestionKind, title, description string, confidence int, payload models.SuggestionPayload, priority models.Priority) *models.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()

	suggestion := &models.Suggestion{
		ID:          uuid.New().String(),
		Kind:        kind,
		Title:       title,
		Description: description,
		Confidence:  confidence,
		Payload:     payload,
		Status:      models.SuggestionPending,
		Priority:    priority,
		CreatedAt:   time.Now(),
	}

	s.suggestions = append([]*models.Suggestion{suggestion}, s.suggestions...)
	s.byID[suggestion.ID] = suggestion
	return suggestion
}

// Accept moves a pending suggestion to accepted. Terminal states are
// final: a second Accept or Dismiss returns ErrInvalidTransition and
// changes nothing.
func (s *SuggestionStore) Accept(id string) error {
	return s.transition(id, models.SuggestionAccepted)
}

// Dismiss moves a pending suggestion to dismissed.
func (s *SuggestionStore) Dismiss(id string) error {
	return s.transition(id, models.SuggestionDismissed)
}

func (s *SuggestionStore) transition(id string, target models.SuggestionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	suggestion, exists := s.byID[id]
	if !exists {
		return ErrNotFound
	}
	if suggestion.Status != models.SuggestionPending {
		return ErrInvalidTransition
	}

	suggestion.Status = target
	return nil
}

func (s *SuggestionStore) Get(id string) (*models.Suggestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	suggestion, exists := s.byID[id]
	if !exists {
		return nil, ErrNotFound
	}
	copied := *suggestion
	return &copied, nil
}

// ListPending returns pending suggestions, most recent first.
func (s *SuggestionStore) ListPending() []*models.Suggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := make([]*models.Suggestion, 0)
	for _, suggestion := range s.suggestions {
		if suggestion.Status == models.SuggestionPending {
			copied := *suggestion
			pending = append(pending, &copied)
		}
	}
	return pending
}

// ListAll returns every suggestion, most recent first.
func (s *SuggestionStore) ListAll() []*models.Suggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*models.Suggestion, 0, len(s.suggestions))
	for _, suggestion := range s.suggestions {
		copied := *suggestion
		all = append(all, &copied)
	}
	return all
}
