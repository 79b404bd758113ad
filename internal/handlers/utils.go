package handlers

import (
	"lastnumber/internal/models"
)

// snapshotPlayers copies the roster in join order so broadcasts never race
// with later mutations (must be called with lock held)
func snapshotPlayers(lobby *models.Lobby) []models.Player {
	players := lobby.PlayersInOrder()
	out := make([]models.Player, 0, len(players))
	for _, p := range players {
		out = append(out, *p)
	}
	return out
}

// snapshotNumbers copies the current number pool (must be called with lock held)
func snapshotNumbers(lobby *models.Lobby) []int {
	return append([]int(nil), lobby.Numbers...)
}
