package assistant

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/flowboard/assistant/internal/intent"
	"github.com/flowboard/assistant/internal/models"
	"github.com/flowboard/assistant/internal/store"
)

type fakeTasks struct {
	mu     sync.Mutex
	drafts []models.TaskDraft
}

func (f *fakeTasks) CreateTask(draft models.TaskDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drafts = append(f.drafts, draft)
	return nil
}

func (f *fakeTasks) created() []models.TaskDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.TaskDraft(nil), f.drafts...)
}

type fakeNotifier struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (f *fakeNotifier) Notify(n models.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, n)
}

func (f *fakeNotifier) kinds() []models.NotificationKind {
	f.mu.Lock()
	defer f.mu.Unlock()
	kinds := make([]models.NotificationKind, 0, len(f.notifications))
	for _, n := range f.notifications {
		kinds = append(kinds, n.Kind)
	}
	return kinds
}

type fakeIdentity struct{}

func (fakeIdentity) Current() models.Actor {
	return models.Actor{ID: "u1", Name: "Test User", Initials: "TU"}
}

// gateExtractor blocks extraction until released, so tests can observe
// the in-flight state deterministically.
type gateExtractor struct {
	gate  chan struct{}
	inner intent.Extractor
}

func (g *gateExtractor) Extract(ctx context.Context, text string) (intent.Result, error) {
	<-g.gate
	return g.inner.Extract(ctx, text)
}

func newTestEngine(extractor intent.Extractor) (*Engine, *fakeTasks, *fakeNotifier) {
	tasks := &fakeTasks{}
	notifier := &fakeNotifier{}
	engine := New(extractor, tasks, notifier, fakeIdentity{}, Config{}, zap.NewNop())
	return engine, tasks, notifier
}

func TestSubmitAppendsUserAndAssistantTurns(t *testing.T) {
	engine, _, _ := newTestEngine(intent.NewHeuristicExtractor())

	turn, err := engine.Submit(context.Background(), "Create a task for website testing")
	require.NoError(t, err)

	assert.Equal(t, models.SpeakerAssistant, turn.Speaker)
	assert.Contains(t, turn.Content, "website testing")
	require.Len(t, turn.Actions, 2)
	assert.Equal(t, models.EmphasisPrimary, turn.Actions[0].Emphasis)

	history := engine.Conversation().History()
	require.Len(t, history, 2)
	assert.Equal(t, models.SpeakerUser, history[0].Speaker)
	assert.Equal(t, "u1", history[0].AuthorID)
	assert.False(t, engine.Conversation().Busy())
}

func TestSubmitTaskActionCreatesTask(t *testing.T) {
	engine, tasks, notifier := newTestEngine(intent.NewHeuristicExtractor())

	turn, err := engine.Submit(context.Background(), "Create an urgent task for login fixes, assign to Dana")
	require.NoError(t, err)
	require.NotEmpty(t, turn.Actions)

	turn.Actions[0].Effect()

	created := tasks.created()
	require.Len(t, created, 1)
	assert.Equal(t, "login fixes", created[0].Name)
	assert.Equal(t, "high", created[0].Priority)
	assert.Equal(t, "Dana", created[0].Assignee)
	assert.Contains(t, notifier.kinds(), models.NotificationTaskCreated)
}

func TestSubmitRejectsConcurrentTurn(t *testing.T) {
	gate := &gateExtractor{gate: make(chan struct{}), inner: intent.NewHeuristicExtractor()}
	engine, _, _ := newTestEngine(gate)

	done := make(chan error, 1)
	go func() {
		_, err := engine.Submit(context.Background(), "first question")
		done <- err
	}()

	require.Eventually(t, engine.Conversation().Busy, time.Second, time.Millisecond)

	_, err := engine.Submit(context.Background(), "second question")
	assert.ErrorIs(t, err, store.ErrBusy)

	close(gate.gate)
	require.NoError(t, <-done)
	assert.Len(t, engine.Conversation().History(), 2)
}

func TestSubmitCancellationDiscardsReply(t *testing.T) {
	engine, _, _ := newTestEngine(intent.NewHeuristicExtractor())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Submit(ctx, "Create a task for anything")
	assert.ErrorIs(t, err, context.Canceled)

	history := engine.Conversation().History()
	require.Len(t, history, 1, "no assistant turn after cancellation")
	assert.Equal(t, models.SpeakerUser, history[0].Speaker)
	assert.False(t, engine.Conversation().Busy(), "cancellation must release the turn lock")
}

func TestStatusQueryReply(t *testing.T) {
	engine, _, _ := newTestEngine(intent.NewHeuristicExtractor())

	turn, err := engine.Submit(context.Background(), "What's the status of my projects?")
	require.NoError(t, err)

	assert.Contains(t, turn.Content, "Pending suggestions: 0")
	assert.Empty(t, turn.Actions)
}

func TestGenerateSuggestions(t *testing.T) {
	engine, _, _ := newTestEngine(intent.NewHeuristicExtractor())

	created, err := engine.GenerateSuggestions(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, created)

	pending := engine.Suggestions().ListPending()
	assert.Len(t, pending, len(created))
	for _, suggestion := range pending {
		assert.Equal(t, models.SuggestionPending, suggestion.Status)
	}
}

func TestGenerateSuggestionsCancelled(t *testing.T) {
	tasks := &fakeTasks{}
	notifier := &fakeNotifier{}
	engine := New(intent.NewHeuristicExtractor(), tasks, notifier, fakeIdentity{},
		Config{SuggestionDelay: time.Minute}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.GenerateSuggestions(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, engine.Suggestions().ListAll(), "cancelled generation must not create suggestions")
}

func TestAcceptTaskCreationSuggestionCreatesTasks(t *testing.T) {
	engine, tasks, notifier := newTestEngine(intent.NewHeuristicExtractor())

	created, err := engine.GenerateSuggestions(context.Background())
	require.NoError(t, err)

	var target *models.Suggestion
	for _, suggestion := range created {
		if suggestion.Kind == models.TaskCreationSuggestion {
			target = suggestion
			break
		}
	}
	require.NotNil(t, target)

	payload := target.Payload.(models.TaskCreationPayload)
	require.NoError(t, engine.AcceptSuggestion(target.ID))

	assert.Len(t, tasks.created(), len(payload.SuggestedTasks))
	assert.Contains(t, notifier.kinds(), models.NotificationSuggestionAccepted)

	assert.ErrorIs(t, engine.AcceptSuggestion(target.ID), store.ErrInvalidTransition)
	assert.Len(t, tasks.created(), len(payload.SuggestedTasks), "re-accepting must not duplicate side effects")
}

func TestDismissSuggestionSkipsSideEffects(t *testing.T) {
	engine, tasks, notifier := newTestEngine(intent.NewHeuristicExtractor())

	created, err := engine.GenerateSuggestions(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, created)

	require.NoError(t, engine.DismissSuggestion(created[0].ID))

	assert.Empty(t, tasks.created())
	assert.Contains(t, notifier.kinds(), models.NotificationSuggestionDismissed)
}

func TestGenerateInsightsAppendOnly(t *testing.T) {
	engine, _, _ := newTestEngine(intent.NewHeuristicExtractor())

	first, err := engine.GenerateInsights(context.Background())
	require.NoError(t, err)
	second, err := engine.GenerateInsights(context.Background())
	require.NoError(t, err)

	assert.Len(t, engine.Insights().ListAll(), len(first)+len(second))
}

func TestAnalyzeReportsStores(t *testing.T) {
	engine, _, _ := newTestEngine(intent.NewHeuristicExtractor())

	_, err := engine.GenerateSuggestions(context.Background())
	require.NoError(t, err)

	report, err := engine.Analyze(context.Background())
	require.NoError(t, err)
	assert.Contains(t, report, "Pending suggestions: 3")
}
