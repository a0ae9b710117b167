package cmd

import (
	"strings"

	"github.com/manav03panchal/planner/internal/errors"
	"github.com/manav03panchal/planner/internal/model"
)

// Commands accept either a full record id or a unique prefix of one,
// matched against the loaded mirror. Habits can also be addressed by a
// name prefix.

func resolveID[T any](items []*T, arg string, idOf func(*T) string, notFound error) (string, error) {
	var match string
	for _, item := range items {
		id := idOf(item)
		if id == arg {
			return id, nil
		}
		if strings.HasPrefix(id, arg) {
			if match != "" {
				return "", errors.NewUserErrorWithField("id", arg,
					"Ambiguous id prefix",
					"Provide more characters of the id")
			}
			match = id
		}
	}
	if match == "" {
		return "", notFound
	}
	return match, nil
}

func resolveTask(arg string) (string, error) {
	return resolveID(ctx.Tasks.Tasks(), arg,
		func(t *model.Task) string { return t.ID }, errors.ErrTaskNotFound)
}

func resolveHabit(arg string) (string, error) {
	habits := ctx.Habits.Habits()
	id, err := resolveID(habits, arg,
		func(h *model.Habit) string { return h.ID }, errors.ErrHabitNotFound)
	if err == nil {
		return id, nil
	}

	// Fall back to a name prefix match.
	var match string
	lower := strings.ToLower(arg)
	for _, h := range habits {
		if strings.HasPrefix(strings.ToLower(h.Name), lower) {
			if match != "" {
				return "", errors.NewUserErrorWithField("habit", arg,
					"Ambiguous habit name",
					"Provide more of the name or use the id")
			}
			match = h.ID
		}
	}
	if match == "" {
		return "", errors.ErrHabitNotFound
	}
	return match, nil
}

func resolveNote(arg string) (string, error) {
	return resolveID(ctx.Notes.Notes(), arg,
		func(n *model.Note) string { return n.ID }, errors.ErrNoteNotFound)
}

func resolveMeeting(arg string) (string, error) {
	return resolveID(ctx.Meetings.Meetings(), arg,
		func(m *model.Meeting) string { return m.ID }, errors.ErrMeetingNotFound)
}

func resolveGoal(arg string) (string, error) {
	return resolveID(ctx.Finance.Goals(), arg,
		func(g *model.FinancialGoal) string { return g.ID }, errors.ErrGoalNotFound)
}
