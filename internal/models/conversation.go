package models

import "time"

type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

type Emphasis string

const (
	EmphasisPrimary   Emphasis = "primary"
	EmphasisSecondary Emphasis = "secondary"
)

// Action is a side-effecting choice offered on an assistant turn.
// Effect is bound by the engine at composition time and runs against
// the surrounding application state.
type Action struct {
	Label    string   `json:"label"`
	Emphasis Emphasis `json:"emphasis"`
	Effect   func()   `json:"-"`
}

// Turn is one message in a conversation. Turns are immutable once
// appended to the log.
type Turn struct {
	ID         string    `json:"id"`
	Speaker    Speaker   `json:"speaker"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"author_id,omitempty"`
	AuthorName string    `json:"author_name,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Actions    []Action  `json:"actions,omitempty"`
}
