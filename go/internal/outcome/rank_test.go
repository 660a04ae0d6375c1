package outcome

import (
	"math/rand"
	"testing"

	"github.com/matryer/is"

	"github.com/mcdev12/lettersoup/go/internal/models"
)

func roster(ids ...string) []models.PlayerInRoom {
	players := make([]models.PlayerInRoom, len(ids))
	for i, id := range ids {
		players[i] = models.PlayerInRoom{PlayerID: id, Name: "p" + id}
	}
	return players
}

func TestRankCountsPerPlayer(t *testing.T) {
	is := is.New(t)
	solved := []models.SolvedWord{
		{Word: "SOUP", SolvedBy: "0"},
		{Word: "LETTER", SolvedBy: "1"},
		{Word: "GRID", SolvedBy: "0"},
		{Word: "WORD"},
	}

	ranking := Rank(roster("0", "1"), solved)
	is.Equal(ranking, Ranking{{PlayerID: "0", Solved: 2}, {PlayerID: "1", Solved: 1}})
}

func TestRankTiesBrokenByPlayerID(t *testing.T) {
	is := is.New(t)
	solved := []models.SolvedWord{
		{Word: "A", SolvedBy: "10"},
		{Word: "B", SolvedBy: "2"},
		{Word: "C", SolvedBy: "bot"},
	}

	ranking := Rank(roster("bot", "10", "2", "3"), solved)
	is.Equal(ranking, Ranking{
		{PlayerID: "2", Solved: 1},
		{PlayerID: "10", Solved: 1},
		{PlayerID: "bot", Solved: 1},
		{PlayerID: "3", Solved: 0},
	})
}

func TestRankIsOrderIndependent(t *testing.T) {
	is := is.New(t)
	solved := []models.SolvedWord{
		{Word: "A", SolvedBy: "0"},
		{Word: "B", SolvedBy: "1"},
		{Word: "C", SolvedBy: "2"},
		{Word: "D", SolvedBy: "1"},
		{Word: "E", SolvedBy: "2"},
		{Word: "F"},
	}
	players := roster("0", "1", "2")
	want := Rank(players, solved)
	is.Equal(Rank(players, solved), want)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]models.SolvedWord(nil), solved...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		reversedPlayers := []models.PlayerInRoom{players[2], players[0], players[1]}
		is.Equal(Rank(reversedPlayers, shuffled), want)
	}
}

func TestRankIgnoresUnknownAndDuplicatePlayers(t *testing.T) {
	is := is.New(t)
	solved := []models.SolvedWord{
		{Word: "A", SolvedBy: "0"},
		{Word: "B", SolvedBy: "7"},
	}

	ranking := Rank(roster("0", "0", ""), solved)
	is.Equal(ranking, Ranking{{PlayerID: "0", Solved: 1}})
	is.Equal(len(Rank(nil, solved)), 0)
}
