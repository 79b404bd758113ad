package ws

import (
	"log"
	"os"
	"time"

	"lastnumber/internal/game"
	"lastnumber/internal/models"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// AddClient registers a connection's send channel with the lobby
func AddClient(lobby *models.Lobby, client chan models.Event, connID string) {
	lobby.Lock()
	defer lobby.Unlock()

	// Warn if the same connection registers more than one channel.
	// Re-registering the same channel (replay rejoin) is fine.
	dup := 0
	for ch, id := range lobby.GetClients() {
		if id == connID && ch != client {
			dup++
		}
	}
	if dup > 0 {
		log.Printf("WARN: connection %s registered %d additional channel(s)", connID, dup)
	}
	lobby.AddClient(client, connID)
}

// RemoveClient unregisters a connection's send channel from the lobby
func RemoveClient(lobby *models.Lobby, client chan models.Event) {
	lobby.Lock()
	defer lobby.Unlock()
	lobby.RemoveClient(client)
	if debug {
		log.Printf("removeClient: client removed, now have %d total clients", lobby.ClientCount())
	}
}

// Broadcast sends an event to every client in the lobby
func Broadcast(lobby *models.Lobby, event string, data any) {
	lobby.RLock()
	// Collect all client channels while holding the lock
	clients := lobby.GetClients()
	lobby.RUnlock()

	if debug {
		log.Printf("broadcast: event=%s to %d clients", event, len(clients))
	}

	// Send WITHOUT holding the lock
	msg := models.Event{Event: event, Data: data}
	for client := range clients {
		Send(client, msg)
	}
}

// Unicast sends an event to the one lobby client bound to connID
func Unicast(lobby *models.Lobby, connID, event string, data any) {
	lobby.RLock()
	clients := lobby.GetClients()
	lobby.RUnlock()

	msg := models.Event{Event: event, Data: data}
	for client, id := range clients {
		if id == connID {
			Send(client, msg)
		}
	}
}

// Send delivers an event to a single channel, dropping it after a timeout so
// a slow client never stalls the caller
func Send(client chan models.Event, msg models.Event) {
	select {
	case client <- msg:
	case <-time.After(time.Duration(game.SendTimeoutSeconds) * time.Second):
		if debug {
			log.Printf("send: timeout delivering event=%s", msg.Event)
		}
	}
}

// Error sends a human-readable error message to a single channel
func Error(client chan models.Event, message string) {
	Send(client, models.Event{Event: EventError, Data: message})
}
