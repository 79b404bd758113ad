package game

const (
	// MinPlayers is the minimum number of players required to start a round
	MinPlayers = 2

	// MaxPlayers is the lobby capacity
	MaxPlayers = 12

	// DefaultBoardSize is the pool size used when a client asks for none
	DefaultBoardSize = 20

	// LobbyCodeLength is the length of generated lobby codes
	LobbyCodeLength = 5

	// LobbyCodeChars are the characters used for generating lobby codes
	LobbyCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// SendBufferSize is the buffer size for per-connection event channels
	SendBufferSize = 16

	// SendTimeoutSeconds is the timeout for delivering an event to a client
	SendTimeoutSeconds = 1
)
