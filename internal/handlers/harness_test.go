package handlers

import (
	"testing"
	"time"

	"lastnumber/internal/models"
	"lastnumber/internal/store"
	"lastnumber/internal/ws"
)

func newTestContext() *Context {
	return &Context{Store: store.NewLobbyStore()}
}

func newClient() chan models.Event {
	return make(chan models.Event, 256)
}

// waitEvent reads from the channel until the named event arrives, skipping
// everything else
func waitEvent(t *testing.T, ch chan models.Event, name string) models.Event {
	t.Helper()
	deadline := time.After(1 * time.Second)
	for {
		select {
		case ev := <-ch:
			if ev.Event == name {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q event", name)
		}
	}
}

// expectNoEvent asserts the channel holds nothing
func expectNoEvent(t *testing.T, ch chan models.Event) {
	t.Helper()
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %q", ev.Event)
	default:
	}
}

func drain(ch chan models.Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

// makeLobby creates a lobby and returns its code
func makeLobby(t *testing.T, ctx *Context, boardSize int) string {
	t.Helper()
	ch := newClient()
	ctx.CreateLobby("creator", ch, boardSize)
	ev := waitEvent(t, ch, ws.EventLobbyCreated)
	code, ok := ev.Data.(string)
	if !ok || code == "" {
		t.Fatalf("lobbyCreated carried %#v, want a code string", ev.Data)
	}
	return code
}

// joinPlayer joins a lobby and returns the player's event channel
func joinPlayer(t *testing.T, ctx *Context, code, id, name string) chan models.Event {
	t.Helper()
	ch := newClient()
	ctx.JoinLobby(id, ch, code, name)
	waitEvent(t, ch, ws.EventLobbyJoined)
	return ch
}

func rosterFrom(t *testing.T, ev models.Event) []models.Player {
	t.Helper()
	players, ok := ev.Data.([]models.Player)
	if !ok {
		t.Fatalf("playerList carried %#v, want []models.Player", ev.Data)
	}
	return players
}
