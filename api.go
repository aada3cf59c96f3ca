package main

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"hangman/game"
)

type createGameBody struct {
	Token    game.UserToken    `json:"token"`
	Settings game.GameSettings `json:"settings"`
}

// serveCreateGame handles POST /api/game: it spawns a room for the supplied
// settings, owned by the supplied token, and answers 201 with the game code
// as a JSON string.
func serveCreateGame(cfg *Config, manager *game.Manager, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var body createGameBody

		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)

			return
		}

		if err := body.Settings.Normalize(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		code := manager.Create(body.Token, body.Settings)

		logf(cfg, "GAMES: Created %s game %s for %s", body.Settings.Mode, code, realIP(r))

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		securityHeaders(cfg, w)
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(code); err != nil {
			errs <- err
		}
	}
}
