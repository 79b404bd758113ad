package models

// Event is an outbound message addressed to one connection's send channel.
// Data is marshaled by the websocket writer.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// LobbyJoinedPayload is the private snapshot sent to a joining connection
type LobbyJoinedPayload struct {
	BoardSize int `json:"boardSize"`
}

// GameStartedPayload announces the start of a round
type GameStartedPayload struct {
	CurrentTurn       string `json:"currentTurn"`
	CurrentPlayerName string `json:"currentPlayerName"`
	Numbers           []int  `json:"numbers"`
}

// PlayerEliminatedPayload announces one player knocked out by an elimination
type PlayerEliminatedPayload struct {
	PlayerName   string `json:"playerName"`
	Number       int    `json:"number"`
	Placement    int    `json:"placement"`
	TotalPlayers int    `json:"totalPlayers"`
}

// NumberEliminatedPayload announces the pool change and the next turn holder
type NumberEliminatedPayload struct {
	Number            int    `json:"number"`
	RemainingNumbers  []int  `json:"remainingNumbers"`
	CurrentTurn       string `json:"currentTurn"`
	CurrentPlayerName string `json:"currentPlayerName"`
}

// PlacementEntry is one row of the final standings table
type PlacementEntry struct {
	Name      string `json:"name"`
	Number    *int   `json:"number"`
	Placement *int   `json:"placement"`
}

// GameOverPayload carries the standings sorted ascending by placement
type GameOverPayload struct {
	Placements []PlacementEntry `json:"placements"`
}

// PlacedPayload is the private "you placed" notice (youWon / youLost)
type PlacedPayload struct {
	Placement    int  `json:"placement"`
	TotalPlayers int  `json:"totalPlayers"`
	Number       *int `json:"number"`
}

// LobbyResetPayload is the snapshot broadcast after a replay reset
type LobbyResetPayload struct {
	BoardSize int      `json:"boardSize"`
	Players   []Player `json:"players"`
	Numbers   []int    `json:"numbers"`
}
