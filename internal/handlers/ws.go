package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"lastnumber/internal/game"
	"lastnumber/internal/models"
	"lastnumber/internal/ws"
)

// intent is an inbound client message
type intent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type createLobbyPayload struct {
	BoardSize int `json:"boardSize"`
}

type joinLobbyPayload struct {
	Code       string `json:"code"`
	PlayerName string `json:"playerName"`
}

// HandleWS upgrades the connection and runs its read loop. Each connection
// gets an opaque identity and a buffered send channel; writes happen on a
// dedicated goroutine so broadcasts never block on the network.
func (ctx *Context) HandleWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if ctx.Cfg.AllowedOrigin == "*" {
				return true
			}
			origin := r.Header.Get("Origin")
			return origin == "" || origin == ctx.Cfg.AllowedOrigin
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("HandleWS: upgrade failed: %v", err)
		return
	}

	connID := uuid.New().String()
	send := make(chan models.Event, game.SendBufferSize)
	done := make(chan struct{})

	log.Printf("HandleWS: connection %s opened", connID)

	go writePump(conn, send, done)

	for {
		var in intent
		if err := conn.ReadJSON(&in); err != nil {
			if debug {
				log.Printf("HandleWS: read from %s: %v", connID, err)
			}
			break
		}
		ctx.dispatch(connID, send, in)
	}

	// Connection closed: same cleanup as an explicit leave.
	ctx.LeaveLobby(connID, send)
	close(done)
	conn.Close()
	log.Printf("HandleWS: connection %s closed", connID)
}

// writePump serializes outbound events onto the socket
func writePump(conn *websocket.Conn, send chan models.Event, done chan struct{}) {
	for {
		select {
		case ev := <-send:
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// dispatch routes one intent to its handler. Malformed payloads are dropped:
// a stale or buggy client must never disturb lobby state. A panic in one
// handler is contained to that intent.
func (ctx *Context) dispatch(connID string, send chan models.Event, in intent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("dispatch: panic handling %s from %s: %v", in.Event, connID, r)
		}
	}()

	if debug {
		log.Printf("dispatch: event=%s conn=%s", in.Event, connID)
	}

	switch in.Event {
	case ws.IntentCreateLobby:
		var p createLobbyPayload
		if len(in.Data) > 0 && json.Unmarshal(in.Data, &p) != nil {
			return
		}
		ctx.CreateLobby(connID, send, p.BoardSize)

	case ws.IntentJoinLobby:
		var p joinLobbyPayload
		if json.Unmarshal(in.Data, &p) != nil {
			return
		}
		ctx.JoinLobby(connID, send, p.Code, p.PlayerName)

	case ws.IntentSelectNumber:
		var number int
		if json.Unmarshal(in.Data, &number) != nil {
			return
		}
		ctx.SelectNumber(connID, send, number)

	case ws.IntentEliminate:
		var number int
		if json.Unmarshal(in.Data, &number) != nil {
			return
		}
		ctx.EliminateNumber(connID, send, number)

	case ws.IntentStartGame:
		ctx.StartGame(connID, send)

	case ws.IntentReplayGame:
		ctx.ReplayGame(connID, send)

	case ws.IntentReadyForReplay:
		ctx.ReadyForReplay(connID, send)

	case ws.IntentLeaveLobby:
		ctx.LeaveLobby(connID, send)

	default:
		if debug {
			log.Printf("dispatch: unknown event %q from %s", in.Event, connID)
		}
	}
}
