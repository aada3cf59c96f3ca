package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"hangman/game"
)

// serveGameQR handles GET /api/game/:code/qr with a PNG QR code of the
// browser join URL, for sharing a room with players in the same room.
func serveGameQR(cfg *Config, manager *game.Manager, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		code, err := game.ParseCode(ps.ByName("code"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		if _, found := manager.Lookup(code); !found {
			http.Error(w, "game not found", http.StatusNotFound)

			return
		}

		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		url := scheme + "://" + r.Host + cfg.prefix + "/game/" + code.String()

		const qrSize = 320 // mobile-friendly size
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)

			return
		}

		securityHeaders(cfg, w)
		w.Header().Set("Content-Type", "image/png")

		if _, err := w.Write(png); err != nil {
			errs <- err
		}
	}
}
