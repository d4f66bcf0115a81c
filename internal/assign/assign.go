// Package assign implements the multi-assignee completion state machine over
// the comma-joined name lists stored on a todo.
package assign

import (
	"errors"
	"strings"

	"dooo/internal/model"
)

// ErrAlreadyCompleted is returned when toggling a fully-completed todo. The
// only legal transition out of that state is deletion.
var ErrAlreadyCompleted = errors.New("todo is fully completed; it can only be discarded")

const sep = ", "

// SplitNames splits a comma-space-joined name list into trimmed names.
// Duplicates are not removed; malformed input keeps them.
func SplitNames(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, strings.TrimSpace(p))
	}
	return names
}

func JoinNames(names []string) string {
	return strings.Join(names, sep)
}

// Contains reports whether name appears in the joined list. Matching is exact
// on the trimmed names.
func Contains(list, name string) bool {
	for _, n := range SplitNames(list) {
		if n == name {
			return true
		}
	}
	return false
}

// ContainsFold is the case-insensitive membership check used for lookups and
// dedup, where the stored casing may not match the query.
func ContainsFold(list, name string) bool {
	for _, n := range SplitNames(list) {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// Toggle flips the actor's individual completion mark. If the actor is already
// in completedBy it is removed (undo), otherwise appended. The aggregate flag
// is recomputed by comparing list sizes, not set equality, so a duplicate name
// in either list can complete the todo early or hold it open.
func Toggle(assignedTo, completedBy string, completed bool, actor string) (string, bool, error) {
	if completed {
		return completedBy, completed, ErrAlreadyCompleted
	}

	done := SplitNames(completedBy)
	if Contains(completedBy, actor) {
		kept := make([]string, 0, len(done))
		for _, n := range done {
			if n != actor {
				kept = append(kept, n)
			}
		}
		done = kept
	} else {
		done = append(done, actor)
	}

	newCompletedBy := JoinNames(done)
	allDone := len(done) > 0 && len(done) == len(SplitNames(assignedTo))
	return newCompletedBy, allDone, nil
}

// Less orders todos the way clients render them: completed items last, then
// newest created_at first.
func Less(a, b model.Todo) bool {
	if a.Completed != b.Completed {
		return !a.Completed
	}
	return a.CreatedAt.After(b.CreatedAt)
}
