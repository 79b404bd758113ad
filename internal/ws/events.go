package ws

// Outbound event type constants
const (
	EventLobbyCreated     = "lobbyCreated"
	EventLobbyJoined      = "lobbyJoined"
	EventPlayerList       = "playerList"
	EventGameStarted      = "gameStarted"
	EventPlayerEliminated = "playerEliminated"
	EventNumberEliminated = "numberEliminated"
	EventGameOver         = "gameOver"
	EventYouWon           = "youWon"
	EventYouLost          = "youLost"
	EventResetNumbers     = "resetNumbers"
	EventLobbyReset       = "lobbyReset"
	EventError            = "error"
)

// Inbound intent type constants
const (
	IntentCreateLobby    = "createLobby"
	IntentJoinLobby      = "joinLobby"
	IntentSelectNumber   = "selectNumber"
	IntentEliminate      = "eliminateNumber"
	IntentStartGame      = "startGame"
	IntentReplayGame     = "replayGame"
	IntentReadyForReplay = "playerReadyForReplay"
	IntentLeaveLobby     = "leaveLobby"
)
