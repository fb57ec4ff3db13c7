package service

import (
	"math"

	"github.com/Cj170303/PPIA-Pro/internal/dto"
)

type Stats struct {
	Attempts        int
	Correct         int
	Accuracy        int
	Streak          int
	UniqueQuestions int
}

// ComputeStats aggregates history items as returned by the backend, most
// recent first. Streak counts leading successes up to the first failure.
func ComputeStats(items []dto.HistoryItem) Stats {
	st := Stats{Attempts: len(items)}

	seen := make(map[dto.QuestionID]struct{}, len(items))
	streakOpen := true
	for _, it := range items {
		if it.Success {
			st.Correct++
			if streakOpen {
				st.Streak++
			}
		} else {
			streakOpen = false
		}
		seen[it.QuestionID] = struct{}{}
	}
	st.UniqueQuestions = len(seen)

	if st.Attempts > 0 {
		st.Accuracy = int(math.Round(float64(100*st.Correct) / float64(st.Attempts)))
	}
	return st
}

func (s Stats) DTO() dto.StatsResponse {
	return dto.StatsResponse{
		Attempts:        s.Attempts,
		Correct:         s.Correct,
		Accuracy:        s.Accuracy,
		Streak:          s.Streak,
		UniqueQuestions: s.UniqueQuestions,
	}
}
