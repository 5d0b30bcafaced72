package store

import (
	"sync"
	"time"

	"github.com/flowboard/assistant/internal/models"
	"github.com/google/uuid"
)

// ConversationLog is an append-only sequence of turns. At most one
// assistant reply may be outstanding: AppendUser takes the turn lock
// and fails with ErrBusy until AppendAssistant or Abort releases it.
type ConversationLog struct {
	mu    sync.RWMutex
	turns []*models.Turn
	busy  bool
}

func NewConversationLog() *ConversationLog {
	return &ConversationLog{}
}

// AppendUser records a user turn and marks the conversation busy until
// the matching assistant turn (or an Abort) arrives.
func (l *ConversationLog) AppendUser(content string, author models.Actor) (*models.Turn, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.busy {
		return nil, ErrBusy
	}

	turn := &models.Turn{
		ID:         uuid.New().String(),
		Speaker:    models.SpeakerUser,
		Content:    content,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Timestamp:  time.Now(),
	}

	l.turns = append(l.turns, turn)
	l.busy = true
	return turn, nil
}

// AppendAssistant records the assistant's reply and releases the turn
// lock taken by AppendUser.
func (l *ConversationLog) AppendAssistant(content string, actions []models.Action) *models.Turn {
	l.mu.Lock()
	defer l.mu.Unlock()

	turn := &models.Turn{
		ID:        uuid.New().String(),
		Speaker:   models.SpeakerAssistant,
		Content:   content,
		Timestamp: time.Now(),
		Actions:   actions,
	}

	l.turns = append(l.turns, turn)
	l.busy = false
	return turn
}

// Abort releases the turn lock without appending a reply. Used when an
// in-flight generation is cancelled so the conversation is not stuck.
func (l *ConversationLog) Abort() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.busy = false
}

// Busy reports whether an assistant reply is outstanding.
func (l *ConversationLog) Busy() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.busy
}

// History returns all turns, oldest first.
func (l *ConversationLog) History() []*models.Turn {
	l.mu.RLock()
	defer l.mu.RUnlock()

	history := make([]*models.Turn, 0, len(l.turns))
	for _, turn := range l.turns {
		copied := *turn
		history = append(history, &copied)
	}
	return history
}
