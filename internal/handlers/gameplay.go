package handlers

import (
	"log"
	"math/rand"

	"lastnumber/internal/game"
	"lastnumber/internal/models"
	"lastnumber/internal/ws"
)

// SelectNumber records the caller's secret pick. Picks are not validated
// against the pool and duplicates are allowed: secrecy requires accepting
// whatever the client sends.
func (ctx *Context) SelectNumber(connID string, reply chan models.Event, number int) {
	lobby, ok := ctx.Store.Resolve(connID)
	if !ok {
		return
	}

	lobby.Lock()
	player, ok := lobby.Player(connID)
	if !ok {
		lobby.Unlock()
		return
	}
	n := number
	player.SelectedNumber = &n
	players := snapshotPlayers(lobby)
	lobby.Unlock()

	ws.Broadcast(lobby, ws.EventPlayerList, players)
}

// StartGame begins a round. Only the leader (earliest surviving join) may
// start; non-leader intents are ignored.
func (ctx *Context) StartGame(connID string, reply chan models.Event) {
	lobby, ok := ctx.Store.Resolve(connID)
	if !ok {
		return
	}

	lobby.Lock()
	if lobby.Leader() != connID {
		lobby.Unlock()
		return
	}
	if lobby.PlayerCount() < game.MinPlayers {
		lobby.Unlock()
		ws.Error(reply, "At least 2 players required to start the game.")
		return
	}

	players := lobby.PlayersInOrder()
	if game.AllSamePick(players) {
		// A round where everyone picked the same number would end on the
		// first elimination with nobody left. Clear the picks instead.
		for _, p := range players {
			p.SelectedNumber = nil
		}
		roster := snapshotPlayers(lobby)
		lobby.Unlock()

		log.Printf("StartGame: all picks identical in lobby %s, picks reset", lobby.Code)
		ws.Broadcast(lobby, ws.EventPlayerList, roster)
		ws.Broadcast(lobby, ws.EventResetNumbers, "Everyone picked the same number. Pick again!")
		return
	}

	order := lobby.Order()
	turn := order[rand.Intn(len(order))]
	lobby.GameStarted = true
	lobby.CurrentTurn = turn
	turnPlayer, _ := lobby.Player(turn)
	payload := models.GameStartedPayload{
		CurrentTurn:       turn,
		CurrentPlayerName: turnPlayer.Name,
		Numbers:           snapshotNumbers(lobby),
	}
	lobby.Unlock()

	log.Printf("Game started: code=%s firstTurn=%s", lobby.Code, turn)
	ws.Broadcast(lobby, ws.EventGameStarted, payload)
}

// EliminateNumber resolves the turn holder removing a number from the pool,
// knocking out every player whose secret pick matches it.
func (ctx *Context) EliminateNumber(connID string, reply chan models.Event, number int) {
	lobby, ok := ctx.Store.Resolve(connID)
	if !ok {
		return
	}

	lobby.Lock()
	if !lobby.GameStarted || lobby.CurrentTurn != connID {
		lobby.Unlock()
		return
	}
	if actor, ok := lobby.Player(connID); ok &&
		actor.SelectedNumber != nil && *actor.SelectedNumber == number {
		lobby.Unlock()
		ws.Error(reply, "You can't eliminate your own secret number!")
		return
	}

	pool, removed := game.RemoveNumber(lobby.Numbers, number)
	if !removed {
		// Stale client eliminating an already-gone number.
		lobby.Unlock()
		return
	}
	lobby.Numbers = pool

	events := resolveElimination(lobby, connID, number)
	lobby.Unlock()

	for _, out := range events {
		if out.To == "" {
			ws.Broadcast(lobby, out.Event.Event, out.Event.Data)
		} else {
			ws.Unicast(lobby, out.To, out.Event.Event, out.Event.Data)
		}
	}
}
