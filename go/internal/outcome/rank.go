package outcome

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/samber/lo"

	"github.com/mcdev12/lettersoup/go/internal/models"
)

// Standing is one player's line in the final ranking.
type Standing struct {
	PlayerID string `json:"player_id"`
	Solved   int    `json:"solved"`
}

// Ranking is ordered by solved count, highest first.
type Ranking []Standing

// Rank counts solved words per roster player and orders the result.
//
// Ties are broken by player id so the output never depends on the order the game
// service happened to list solved words in. Attributions to players outside the
// roster are ignored.
func Rank(players []models.PlayerInRoom, solved []models.SolvedWord) Ranking {
	ids := lo.Uniq(lo.FilterMap(players, func(p models.PlayerInRoom, _ int) (string, bool) {
		return p.PlayerID, p.PlayerID != ""
	}))

	ranking := make(Ranking, 0, len(ids))
	for _, id := range ids {
		ranking = append(ranking, Standing{
			PlayerID: id,
			Solved: lo.CountBy(solved, func(s models.SolvedWord) bool {
				return s.SolvedBy == id
			}),
		})
	}

	slices.SortFunc(ranking, func(a, b Standing) int {
		if a.Solved != b.Solved {
			return cmp.Compare(b.Solved, a.Solved)
		}
		return comparePlayerIDs(a.PlayerID, b.PlayerID)
	})
	return ranking
}

// comparePlayerIDs orders numeric ids numerically ("2" before "10") and places them
// ahead of non-numeric ids, which compare lexically.
func comparePlayerIDs(a, b string) int {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		if c := cmp.Compare(ai, bi); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
