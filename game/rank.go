package game

import "sort"

type scored struct {
	nickname string
	score    uint
}

// denseRank sorts by descending score and assigns dense ranks: tied scores
// share a rank, and the next distinct score gets the immediately following
// integer, starting at 1.
func denseRank(entries []scored) []Score {
	sorted := make([]scored, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].score > sorted[j].score
	})

	scores := make([]Score, 0, len(sorted))

	rank := uint(0)
	hasLast := false
	var lastScore uint

	for _, e := range sorted {
		if !hasLast || e.score < lastScore {
			rank++
		}

		hasLast = true
		lastScore = e.score

		scores = append(scores, Score{
			Rank:     rank,
			Nickname: e.nickname,
			Score:    e.score,
		})
	}

	return scores
}
