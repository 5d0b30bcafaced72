package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowboard/assistant/internal/models"
)

var tester = models.Actor{ID: "u1", Name: "Test User", Initials: "TU"}

func TestConversationOrdering(t *testing.T) {
	log := NewConversationLog()

	first, err := log.AppendUser("hello", tester)
	require.NoError(t, err)
	second := log.AppendAssistant("hi there", nil)

	history := log.History()
	require.Len(t, history, 2)
	assert.Equal(t, first.ID, history[0].ID)
	assert.Equal(t, second.ID, history[1].ID)
	assert.Equal(t, models.SpeakerUser, history[0].Speaker)
	assert.Equal(t, models.SpeakerAssistant, history[1].Speaker)
	assert.Equal(t, "u1", history[0].AuthorID)
}

func TestConversationRejectsConcurrentSubmission(t *testing.T) {
	log := NewConversationLog()

	_, err := log.AppendUser("first question", tester)
	require.NoError(t, err)
	assert.True(t, log.Busy())

	_, err = log.AppendUser("second question", tester)
	assert.ErrorIs(t, err, ErrBusy)

	history := log.History()
	assert.Len(t, history, 1, "rejected submission must not append a turn")

	log.AppendAssistant("answer", nil)
	assert.False(t, log.Busy())

	_, err = log.AppendUser("second question", tester)
	assert.NoError(t, err)
}

func TestConversationAbortReleasesLock(t *testing.T) {
	log := NewConversationLog()

	_, err := log.AppendUser("question", tester)
	require.NoError(t, err)

	log.Abort()
	assert.False(t, log.Busy())

	_, err = log.AppendUser("retry", tester)
	assert.NoError(t, err)
}

func TestConversationHistoryIsStable(t *testing.T) {
	log := NewConversationLog()

	_, err := log.AppendUser("question", tester)
	require.NoError(t, err)
	log.AppendAssistant("answer", nil)

	first := log.History()
	second := log.History()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}

	// Mutating a returned turn must not leak into the log.
	first[0].Content = "tampered"
	assert.Equal(t, "question", log.History()[0].Content)
}

func TestConversationAssistantActions(t *testing.T) {
	log := NewConversationLog()

	_, err := log.AppendUser("create a task", tester)
	require.NoError(t, err)

	ran := false
	turn := log.AppendAssistant("shall I?", []models.Action{
		{Label: "Create task", Emphasis: models.EmphasisPrimary, Effect: func() { ran = true }},
		{Label: "Not now", Emphasis: models.EmphasisSecondary},
	})

	require.Len(t, turn.Actions, 2)
	turn.Actions[0].Effect()
	assert.True(t, ran)
}
