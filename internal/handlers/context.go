package handlers

import (
	"os"

	"lastnumber/internal/config"
	"lastnumber/internal/store"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Context holds shared application dependencies
type Context struct {
	Store *store.LobbyStore
	Cfg   *config.Config
}
