package game

import (
	"sort"

	"lastnumber/internal/models"
)

// placementSentinel sorts unplaced players last in the standings. Should be
// unreachable in a correct run.
const placementSentinel = 999

// NewPool returns the numbers 1..boardSize
func NewPool(boardSize int) []int {
	pool := make([]int, boardSize)
	for i := range pool {
		pool[i] = i + 1
	}
	return pool
}

// RemoveNumber deletes value from the pool, reporting whether it was present
func RemoveNumber(pool []int, value int) ([]int, bool) {
	for i, n := range pool {
		if n == value {
			return append(pool[:i], pool[i+1:]...), true
		}
	}
	return pool, false
}

// Remaining returns the players still in the round, preserving order
func Remaining(players []*models.Player) []*models.Player {
	out := make([]*models.Player, 0, len(players))
	for _, p := range players {
		if !p.IsEliminated {
			out = append(out, p)
		}
	}
	return out
}

// EliminatedCount returns how many players have been knocked out so far
func EliminatedCount(players []*models.Player) int {
	count := 0
	for _, p := range players {
		if p.IsEliminated {
			count++
		}
	}
	return count
}

// AllSamePick reports whether every player has picked and all picks are
// identical. False for fewer than two players.
func AllSamePick(players []*models.Player) bool {
	if len(players) < 2 {
		return false
	}
	var first *int
	for _, p := range players {
		if p.SelectedNumber == nil {
			return false
		}
		if first == nil {
			first = p.SelectedNumber
		} else if *p.SelectedNumber != *first {
			return false
		}
	}
	return true
}

// NextTurn returns the id of the next non-eliminated player after the given
// one in join order, wrapping around. An unknown id anchors at the start of
// the order. Returns "" when nobody is left standing.
func NextTurn(players []*models.Player, after string) string {
	if len(players) == 0 {
		return ""
	}
	start := 0
	for i, p := range players {
		if p.ID == after {
			start = i
			break
		}
	}
	for i := 1; i <= len(players); i++ {
		candidate := players[(start+i)%len(players)]
		if !candidate.IsEliminated {
			return candidate.ID
		}
	}
	return ""
}

// PlacementTable builds the final standings sorted ascending by placement
func PlacementTable(players []*models.Player) []models.PlacementEntry {
	entries := make([]models.PlacementEntry, 0, len(players))
	for _, p := range players {
		entries = append(entries, models.PlacementEntry{
			Name:      p.Name,
			Number:    p.SelectedNumber,
			Placement: p.Placement,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return placementOrSentinel(entries[i].Placement) < placementOrSentinel(entries[j].Placement)
	})
	return entries
}

func placementOrSentinel(p *int) int {
	if p == nil {
		return placementSentinel
	}
	return *p
}
