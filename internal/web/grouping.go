package web

import (
	"gymlog/workout-app/internal/domain"
)

// dateKeyLayout is the human-readable form a calendar date is grouped under.
const dateKeyLayout = "Jan 2, 2006"

// DateGroup is the ordered sub-sequence of workouts sharing one formatted
// calendar date.
type DateGroup struct {
	Date     string
	Workouts []domain.Workout
}

// GroupByDate partitions workouts by formatted calendar date. Groups appear
// in first-seen retrieval order and each group keeps its workouts in the
// original order; same-day records are retained side by side, never merged.
func GroupByDate(workouts []domain.Workout) []DateGroup {
	groups := []DateGroup{}
	index := map[string]int{}

	for _, w := range workouts {
		key := w.Date.Format(dateKeyLayout)
		i, seen := index[key]
		if !seen {
			index[key] = len(groups)
			groups = append(groups, DateGroup{Date: key})
			i = len(groups) - 1
		}
		groups[i].Workouts = append(groups[i].Workouts, w)
	}

	return groups
}
