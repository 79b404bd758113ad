package handlers

import (
	"log"

	"lastnumber/internal/game"
	"lastnumber/internal/models"
	"lastnumber/internal/ws"
)

// CreateLobby allocates a new lobby and replies with its code. The caller is
// not a member until they join.
func (ctx *Context) CreateLobby(connID string, reply chan models.Event, boardSize int) {
	if boardSize < 1 {
		boardSize = game.DefaultBoardSize
	}

	code := game.UniqueCode(ctx.Store)
	lobby := models.NewLobby(code, boardSize, game.NewPool(boardSize))
	ctx.Store.Set(code, lobby)

	log.Printf("Created lobby: code=%s boardSize=%d conn=%s", code, boardSize, connID)

	ws.Send(reply, models.Event{Event: ws.EventLobbyCreated, Data: code})
}

// JoinLobby adds the connection's player to a lobby and binds the connection
// to it
func (ctx *Context) JoinLobby(connID string, reply chan models.Event, code, playerName string) {
	lobby, exists := ctx.Store.Get(code)
	if !exists {
		ws.Error(reply, "Lobby not found")
		return
	}

	lobby.Lock()
	if lobby.PlayerCount() >= game.MaxPlayers {
		lobby.Unlock()
		ws.Error(reply, "Game is full")
		return
	}
	lobby.AddPlayer(&models.Player{ID: connID, Name: playerName})
	players := snapshotPlayers(lobby)
	boardSize := lobby.BoardSize
	lobby.Unlock()

	ctx.Store.Bind(connID, code)
	ws.AddClient(lobby, reply, connID)

	log.Printf("Player joined lobby: code=%s conn=%s name=%s", code, connID, playerName)

	ws.Broadcast(lobby, ws.EventPlayerList, players)
	ws.Send(reply, models.Event{Event: ws.EventLobbyJoined, Data: models.LobbyJoinedPayload{BoardSize: boardSize}})
}

// LeaveLobby removes the connection's player from its lobby. Also the
// cleanup path for closed connections.
func (ctx *Context) LeaveLobby(connID string, reply chan models.Event) {
	lobby, ok := ctx.Store.Resolve(connID)
	if !ok {
		ctx.Store.Unbind(connID)
		return
	}

	lobby.Lock()
	lobby.RemovePlayer(connID)
	lobby.ClearPendingReplay(connID)
	if lobby.CurrentTurn == connID {
		// Hand the turn to the next survivor so it never points at a player
		// who is gone.
		lobby.CurrentTurn = game.NextTurn(lobby.PlayersInOrder(), connID)
	}
	players := snapshotPlayers(lobby)
	code := lobby.Code
	lobby.Unlock()

	ws.RemoveClient(lobby, reply)
	ctx.Store.Unbind(connID)

	log.Printf("Player left lobby: code=%s conn=%s", code, connID)

	ws.Broadcast(lobby, ws.EventPlayerList, players)
	ctx.Store.DeleteIfEmpty(code)
}
