package handlers

import (
	"log"

	"lastnumber/internal/game"
	"lastnumber/internal/models"
	"lastnumber/internal/ws"
)

// outbound is a pending event, broadcast to the lobby unless To is set
type outbound struct {
	To    string // connection ID for unicasts, "" for broadcast
	Event models.Event
}

// resolveElimination applies the consequences of removing number from the
// pool and returns the events to deliver, in order. Must be called with the
// lobby lock held, after the number has been taken out of the pool.
func resolveElimination(lobby *models.Lobby, actorID string, number int) []outbound {
	players := lobby.PlayersInOrder()
	total := len(players)
	// Simultaneous eliminees share one placement value: first knocked out
	// places 1, a later batch of three all place eliminatedBefore+1.
	batchPlacement := game.EliminatedCount(players) + 1

	var events []outbound
	for _, p := range players {
		if p.IsEliminated || p.SelectedNumber == nil || *p.SelectedNumber != number {
			continue
		}
		p.IsEliminated = true
		placement := batchPlacement
		p.Placement = &placement

		events = append(events,
			outbound{Event: models.Event{Event: ws.EventPlayerEliminated, Data: models.PlayerEliminatedPayload{
				PlayerName:   p.Name,
				Number:       number,
				Placement:    placement,
				TotalPlayers: total,
			}}},
			outbound{Event: models.Event{Event: ws.EventPlayerList, Data: snapshotPlayers(lobby)}},
			outbound{To: p.ID, Event: models.Event{Event: ws.EventYouWon, Data: models.PlacedPayload{
				Placement:    placement,
				TotalPlayers: total,
				Number:       p.SelectedNumber,
			}}},
		)
	}

	remaining := game.Remaining(players)

	switch {
	case len(remaining) > 1 && game.AllSamePick(remaining):
		// Everyone left is holding the same number. Nobody can win the
		// standoff, so they all share last place and the round ends.
		log.Printf("EliminateNumber: all %d remaining players tied in lobby %s, round over", len(remaining), lobby.Code)
		for _, p := range remaining {
			p.IsEliminated = true
			placement := total
			p.Placement = &placement
		}
		events = append(events, outbound{Event: models.Event{Event: ws.EventGameOver, Data: models.GameOverPayload{
			Placements: game.PlacementTable(players),
		}}})
		resetAfterGameOver(lobby)

	case len(remaining) == 1:
		loser := remaining[0]
		placement := total
		loser.Placement = &placement
		log.Printf("EliminateNumber: %s is last player standing in lobby %s, round over", loser.ID, lobby.Code)
		events = append(events,
			outbound{To: loser.ID, Event: models.Event{Event: ws.EventYouLost, Data: models.PlacedPayload{
				Placement:    placement,
				TotalPlayers: total,
				Number:       loser.SelectedNumber,
			}}},
			outbound{Event: models.Event{Event: ws.EventGameOver, Data: models.GameOverPayload{
				Placements: game.PlacementTable(players),
			}}},
		)
		resetAfterGameOver(lobby)

	default:
		lobby.CurrentTurn = game.NextTurn(players, actorID)
		turnPlayer, _ := lobby.Player(lobby.CurrentTurn)
		events = append(events, outbound{Event: models.Event{Event: ws.EventNumberEliminated, Data: models.NumberEliminatedPayload{
			Number:            number,
			RemainingNumbers:  snapshotNumbers(lobby),
			CurrentTurn:       lobby.CurrentTurn,
			CurrentPlayerName: turnPlayer.Name,
		}}})
	}

	return events
}

// resetAfterGameOver folds the lobby back to its forming state. The roster
// is cleared entirely; players rejoin via playerReadyForReplay. Must be
// called with the lobby lock held.
func resetAfterGameOver(lobby *models.Lobby) {
	lobby.GameStarted = false
	lobby.Numbers = game.NewPool(lobby.BoardSize)
	lobby.CurrentTurn = ""
	lobby.ClearPlayers()
}
