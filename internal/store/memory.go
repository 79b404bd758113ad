package store

import (
	"sync"

	"lastnumber/internal/models"
)

// LobbyStore manages lobby storage and the connection-to-lobby bindings
type LobbyStore struct {
	lobbies  map[string]*models.Lobby
	bindings map[string]string // connection ID -> lobby code
	mu       sync.RWMutex
}

// NewLobbyStore creates a new lobby store
func NewLobbyStore() *LobbyStore {
	return &LobbyStore{
		lobbies:  make(map[string]*models.Lobby),
		bindings: make(map[string]string),
	}
}

// Get retrieves a lobby by code
func (s *LobbyStore) Get(code string) (*models.Lobby, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lobby, exists := s.lobbies[code]
	return lobby, exists
}

// Set stores a lobby
func (s *LobbyStore) Set(code string, lobby *models.Lobby) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lobbies[code] = lobby
}

// Delete removes a lobby
func (s *LobbyStore) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lobbies, code)
}

// Exists checks if a lobby code exists
func (s *LobbyStore) Exists(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.lobbies[code]
	return exists
}

// Bind maps a connection to a lobby code
func (s *LobbyStore) Bind(connID, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings[connID] = code
}

// Unbind removes a connection's lobby binding
func (s *LobbyStore) Unbind(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bindings, connID)
}

// Resolve returns the lobby a connection is bound to, if any. A stale
// binding to a deleted lobby resolves to nothing.
func (s *LobbyStore) Resolve(connID string) (*models.Lobby, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	code, bound := s.bindings[connID]
	if !bound {
		return nil, false
	}
	lobby, exists := s.lobbies[code]
	return lobby, exists
}

// DeleteIfEmpty removes the lobby when it has no players and nobody is
// pending a replay rejoin. Called after any player removal.
func (s *LobbyStore) DeleteIfEmpty(code string) {
	lobby, exists := s.Get(code)
	if !exists {
		return
	}
	lobby.RLock()
	empty := lobby.PlayerCount() == 0 && lobby.PendingReplayCount() == 0
	lobby.RUnlock()
	if empty {
		s.Delete(code)
	}
}
