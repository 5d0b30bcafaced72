package models

// ReactionEvent records one user reacting to a message with one emoji.
// A user has at most one event per emoji on a given message; toggling
// the same emoji again removes the event.
type ReactionEvent struct {
	Emoji    string `json:"emoji"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

// ReactionGroup is the display form derived from a message's events:
// one group per distinct emoji, in first-seen order.
type ReactionGroup struct {
	Emoji string   `json:"emoji"`
	Count int      `json:"count"`
	Users []string `json:"users"`
}
