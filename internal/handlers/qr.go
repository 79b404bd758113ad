package handlers

import (
	"net/http"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// HandleQR renders a QR code pointing at the join URL for a lobby, for
// players sharing a screen
func (ctx *Context) HandleQR(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/qr/")
	if code == "" {
		http.NotFound(w, r)
		return
	}
	if !ctx.Store.Exists(code) {
		http.Error(w, "Lobby not found", http.StatusNotFound)
		return
	}

	png, err := qrcode.Encode(ctx.Cfg.PublicURL+"/?code="+code, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to render QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
