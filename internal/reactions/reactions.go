package reactions

import "github.com/flowboard/assistant/internal/models"

// Aggregate folds a message's reaction events into display groups, one
// per distinct emoji in first-seen order. Toggle guarantees events are
// unique per (emoji, user), so user lists need no dedup here.
func Aggregate(events []models.ReactionEvent) []models.ReactionGroup {
	groups := make([]models.ReactionGroup, 0)
	index := make(map[string]int)

	for _, event := range events {
		i, seen := index[event.Emoji]
		if !seen {
			index[event.Emoji] = len(groups)
			groups = append(groups, models.ReactionGroup{Emoji: event.Emoji})
			i = len(groups) - 1
		}
		groups[i].Count++
		groups[i].Users = append(groups[i].Users, event.UserName)
	}

	return groups
}

// Toggle adds the user's reaction if absent and removes it if present.
// The input slice is not mutated; applying the same toggle twice
// returns a list equal to the original.
func Toggle(events []models.ReactionEvent, emoji, userID, userName string) []models.ReactionEvent {
	updated := make([]models.ReactionEvent, 0, len(events)+1)
	removed := false

	for _, event := range events {
		if event.Emoji == emoji && event.UserID == userID {
			removed = true
			continue
		}
		updated = append(updated, event)
	}

	if !removed {
		updated = append(updated, models.ReactionEvent{
			Emoji:    emoji,
			UserID:   userID,
			UserName: userName,
		})
	}

	return updated
}
