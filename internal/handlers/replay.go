package handlers

import (
	"fmt"
	"log"

	"lastnumber/internal/game"
	"lastnumber/internal/models"
	"lastnumber/internal/ws"
)

// ReplayGame resets the round while keeping the roster and code
func (ctx *Context) ReplayGame(connID string, reply chan models.Event) {
	lobby, ok := ctx.Store.Resolve(connID)
	if !ok {
		return
	}

	lobby.Lock()
	lobby.GameStarted = false
	lobby.Numbers = game.NewPool(lobby.BoardSize)
	lobby.CurrentTurn = ""
	for _, p := range lobby.PlayersInOrder() {
		p.Reset()
	}
	payload := models.LobbyResetPayload{
		BoardSize: lobby.BoardSize,
		Players:   snapshotPlayers(lobby),
		Numbers:   snapshotNumbers(lobby),
	}
	lobby.Unlock()

	log.Printf("Lobby reset for replay: code=%s by conn=%s", lobby.Code, connID)

	ws.Broadcast(lobby, ws.EventLobbyReset, payload)
	ws.Broadcast(lobby, ws.EventPlayerList, payload.Players)
}

// ReadyForReplay reinserts the caller into the roster between rounds,
// restoring their remembered name when the game-over reset cleared them out
func (ctx *Context) ReadyForReplay(connID string, reply chan models.Event) {
	lobby, ok := ctx.Store.Resolve(connID)
	if !ok {
		return
	}

	lobby.Lock()
	name, remembered := lobby.PendingReplayName(connID)
	if !remembered {
		if existing, ok := lobby.Player(connID); ok {
			name = existing.Name
		} else {
			name = fallbackName(connID)
		}
	}
	lobby.AddPlayer(&models.Player{ID: connID, Name: name})
	lobby.ClearPendingReplay(connID)
	payload := models.LobbyResetPayload{
		BoardSize: lobby.BoardSize,
		Players:   snapshotPlayers(lobby),
		Numbers:   snapshotNumbers(lobby),
	}
	lobby.Unlock()

	ws.AddClient(lobby, reply, connID)

	log.Printf("Player ready for replay: code=%s conn=%s name=%s", lobby.Code, connID, name)

	ws.Broadcast(lobby, ws.EventPlayerList, payload.Players)
	ws.Send(reply, models.Event{Event: ws.EventLobbyReset, Data: payload})
}

// fallbackName labels a replay rejoiner whose name was never remembered
func fallbackName(connID string) string {
	short := connID
	if len(short) > 4 {
		short = short[:4]
	}
	return fmt.Sprintf("Player-%s", short)
}
