package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/flowboard/assistant/internal/intent"
	"github.com/flowboard/assistant/internal/models"
	"github.com/flowboard/assistant/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskCreator is the task-management collaborator. The engine never
// touches task state itself; it hands drafts to the caller's
// implementation when the user confirms a creation.
type TaskCreator interface {
	CreateTask(draft models.TaskDraft) error
}

// Notifier surfaces lifecycle events as user-visible notifications.
type Notifier interface {
	Notify(notification models.Notification)
}

// Identity supplies the current actor for stamping user turns.
type Identity interface {
	Current() models.Actor
}

// Engine drives one conversation: it owns the turn flow, the suggestion
// and insight stores, and the collaborator side effects. Generation
// latency is simulated with timers so a real backend can be swapped in
// behind the same contract later.
type Engine struct {
	log         *store.ConversationLog
	suggestions *store.SuggestionStore
	insights    *store.InsightStore
	extractor   intent.Extractor
	tasks       TaskCreator
	notifier    Notifier
	identity    Identity
	logger      *zap.Logger

	responseDelay   time.Duration
	suggestionDelay time.Duration
	insightDelay    time.Duration
}

type Config struct {
	ResponseDelay   time.Duration
	SuggestionDelay time.Duration
	InsightDelay    time.Duration
}

func New(extractor intent.Extractor, tasks TaskCreator, notifier Notifier, identity Identity, cfg Config, logger *zap.Logger) *Engine {
	return &Engine{
		log:             store.NewConversationLog(),
		suggestions:     store.NewSuggestionStore(),
		insights:        store.NewInsightStore(),
		extractor:       extractor,
		tasks:           tasks,
		notifier:        notifier,
		identity:        identity,
		logger:          logger,
		responseDelay:   cfg.ResponseDelay,
		suggestionDelay: cfg.SuggestionDelay,
		insightDelay:    cfg.InsightDelay,
	}
}

func (e *Engine) Conversation() *store.ConversationLog { return e.log }

func (e *Engine) Suggestions() *store.SuggestionStore { return e.suggestions }

func (e *Engine) Insights() *store.InsightStore { return e.insights }

// Submit records a user turn, classifies it, and appends the assistant
// reply after the simulated processing delay. A second submission while
// a reply is outstanding fails with store.ErrBusy. Cancelling ctx
// during the delay releases the conversation without appending anything,
// so a stale reply can never land after the request was abandoned.
func (e *Engine) Submit(ctx context.Context, text string) (*models.Turn, error) {
	actor := e.identity.Current()
	if _, err := e.log.AppendUser(text, actor); err != nil {
		return nil, err
	}

	result, err := e.extractor.Extract(ctx, text)
	if err != nil {
		e.log.Abort()
		return nil, fmt.Errorf("extract intent: %w", err)
	}

	if err := e.wait(ctx, e.responseDelay); err != nil {
		e.log.Abort()
		return nil, err
	}

	content, actions := e.compose(result)
	return e.log.AppendAssistant(content, actions), nil
}

// AcceptSuggestion transitions the suggestion and runs its side
// effects: task_creation payloads are handed to the task collaborator
// draft by draft, and the acceptance is surfaced via the notifier.
func (e *Engine) AcceptSuggestion(id string) error {
	suggestion, err := e.suggestions.Get(id)
	if err != nil {
		return err
	}
	if err := e.suggestions.Accept(id); err != nil {
		return err
	}

	if payload, ok := suggestion.Payload.(models.TaskCreationPayload); ok {
		for _, draft := range payload.SuggestedTasks {
			e.createTask(draft)
		}
	}

	e.notify(models.NotificationSuggestionAccepted,
		fmt.Sprintf("Suggestion accepted: %s", suggestion.Title))
	return nil
}

func (e *Engine) DismissSuggestion(id string) error {
	suggestion, err := e.suggestions.Get(id)
	if err != nil {
		return err
	}
	if err := e.suggestions.Dismiss(id); err != nil {
		return err
	}

	e.notify(models.NotificationSuggestionDismissed,
		fmt.Sprintf("Suggestion dismissed: %s", suggestion.Title))
	return nil
}

func (e *Engine) createTask(draft models.TaskDraft) {
	if err := e.tasks.CreateTask(draft); err != nil {
		e.logger.Error("Failed to create task",
			zap.Error(err),
			zap.String("task", draft.Name))
		return
	}
	e.notify(models.NotificationTaskCreated,
		fmt.Sprintf("Task created: %s", draft.Name))
}

func (e *Engine) notify(kind models.NotificationKind, message string) {
	e.notifier.Notify(models.Notification{
		ID:        uuid.New().String(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// wait blocks for the simulated backend round trip, or returns early
// with the context's error if the request is cancelled.
func (e *Engine) wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
