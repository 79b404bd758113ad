package main

import (
	"log"
	"net/http"

	"lastnumber/internal/config"
	"lastnumber/internal/handlers"
	"lastnumber/internal/store"
)

func main() {
	cfg := config.Load()

	ctx := &handlers.Context{
		Store: store.NewLobbyStore(),
		Cfg:   cfg,
	}

	// Routes
	http.HandleFunc("/ws", ctx.HandleWS)
	http.HandleFunc("/qr/", ctx.HandleQR)
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	log.Printf("Server running on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
