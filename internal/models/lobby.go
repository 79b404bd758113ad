package models

import "sync"

// Lobby represents one game instance keyed by a short code
type Lobby struct {
	Code        string
	BoardSize   int
	Numbers     []int // pool of numbers still eliminable this round
	CurrentTurn string
	GameStarted bool

	players map[string]*Player
	order   []string // join order; order[0] is the leader

	// Names of players cleared out at game over, kept so they can rejoin
	// between rounds via playerReadyForReplay.
	pendingReplay map[string]string

	mu      sync.RWMutex
	clients map[chan Event]string // channel -> connection/player ID
}

// NewLobby creates an empty lobby with a full number pool
func NewLobby(code string, boardSize int, numbers []int) *Lobby {
	return &Lobby{
		Code:          code,
		BoardSize:     boardSize,
		Numbers:       numbers,
		players:       make(map[string]*Player),
		order:         make([]string, 0),
		pendingReplay: make(map[string]string),
		clients:       make(map[chan Event]string),
	}
}

// Lock acquires the lobby's write lock
func (l *Lobby) Lock() {
	l.mu.Lock()
}

// Unlock releases the lobby's write lock
func (l *Lobby) Unlock() {
	l.mu.Unlock()
}

// RLock acquires the lobby's read lock
func (l *Lobby) RLock() {
	l.mu.RLock()
}

// RUnlock releases the lobby's read lock
func (l *Lobby) RUnlock() {
	l.mu.RUnlock()
}

// Player returns the player with the given id (must be called with lock held)
func (l *Lobby) Player(id string) (*Player, bool) {
	p, ok := l.players[id]
	return p, ok
}

// AddPlayer inserts a player at the end of the join order. Re-adding an
// existing id replaces the record but keeps its original position.
func (l *Lobby) AddPlayer(p *Player) {
	if _, exists := l.players[p.ID]; !exists {
		l.order = append(l.order, p.ID)
	}
	l.players[p.ID] = p
}

// RemovePlayer deletes a player from the roster and the join order
func (l *Lobby) RemovePlayer(id string) {
	if _, exists := l.players[id]; !exists {
		return
	}
	delete(l.players, id)
	for i, pid := range l.order {
		if pid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// ClearPlayers empties the roster, remembering names for replay rejoins
func (l *Lobby) ClearPlayers() {
	for id, p := range l.players {
		l.pendingReplay[id] = p.Name
	}
	l.players = make(map[string]*Player)
	l.order = l.order[:0]
}

// PlayerCount returns the current roster size
func (l *Lobby) PlayerCount() int {
	return len(l.players)
}

// PlayersInOrder returns the roster in join order
func (l *Lobby) PlayersInOrder() []*Player {
	out := make([]*Player, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.players[id])
	}
	return out
}

// Order returns the player ids in join order
func (l *Lobby) Order() []string {
	return l.order
}

// Leader returns the id of the earliest surviving join, or "" for an empty
// lobby. Recomputed each call: if the original leader leaves, the next
// earliest player is promoted.
func (l *Lobby) Leader() string {
	if len(l.order) == 0 {
		return ""
	}
	return l.order[0]
}

// PendingReplayName reports the remembered name for a cleared-out player
func (l *Lobby) PendingReplayName(id string) (string, bool) {
	name, ok := l.pendingReplay[id]
	return name, ok
}

// ClearPendingReplay forgets a remembered player
func (l *Lobby) ClearPendingReplay(id string) {
	delete(l.pendingReplay, id)
}

// PendingReplayCount returns how many cleared-out players could still rejoin
func (l *Lobby) PendingReplayCount() int {
	return len(l.pendingReplay)
}

// GetClients returns a copy of the client map (must be called with lock held)
func (l *Lobby) GetClients() map[chan Event]string {
	clients := make(map[chan Event]string, len(l.clients))
	for k, v := range l.clients {
		clients[k] = v
	}
	return clients
}

// AddClient registers an outbound event channel for a connection
func (l *Lobby) AddClient(client chan Event, connID string) {
	if l.clients == nil {
		l.clients = make(map[chan Event]string)
	}
	l.clients[client] = connID
}

// RemoveClient unregisters an outbound event channel
func (l *Lobby) RemoveClient(client chan Event) {
	delete(l.clients, client)
}

// ClientCount returns the number of connected clients
func (l *Lobby) ClientCount() int {
	return len(l.clients)
}
