package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"hangman/game"
)

// Close codes surfaced to the browser client.
const (
	closeGameNotFound = 4000
	closeGameClosed   = 4001
)

const closeGracePeriod = time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// session bridges one websocket to one game loop: a reader goroutine decodes
// frames into the loop's mailbox, a writer goroutine drains the outbound
// queue the loop broadcasts into.
type session struct {
	cfg   *Config
	conn  *websocket.Conn
	room  *game.Room
	token game.UserToken
	send  chan game.ServerMessage
}

// serveGameSocket handles GET /api/game/:code/ws. A code that names no live
// room still upgrades, then immediately closes with 4000 so the client can
// tell "no such game" apart from transport failures.
func serveGameSocket(cfg *Config, manager *game.Manager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		code, err := game.ParseCode(ps.ByName("code"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		nickname := r.URL.Query().Get("nickname")
		if nickname == "" {
			http.Error(w, "missing nickname", http.StatusBadRequest)

			return
		}

		token, err := game.ParseToken(r.URL.Query().Get("token"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		room, found := manager.Lookup(code)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "GAMES: Upgrade error for %s: %v", realIP(r), err)

			return
		}

		if !found {
			closeWith(conn, closeGameNotFound, "game not found")

			return
		}

		logf(cfg, "GAMES: New connection by %q for game %s", nickname, code)

		s := &session{
			cfg:   cfg,
			conn:  conn,
			room:  room,
			token: token,
			// The loop always sends total state, so one in-flight message
			// per player is enough.
			send: make(chan game.ServerMessage, 1),
		}

		joined := room.Send(game.Join{
			User:   game.User{Nickname: nickname, Token: token},
			Sender: s.send,
		})
		if !joined {
			closeWith(conn, closeGameClosed, "the game was closed")

			return
		}

		go s.writePump()
		s.readPump()
	}
}

// readPump decodes client frames and forwards them to the loop. Malformed
// frames are logged and skipped; any transport error maps to Leave.
func (s *session) readPump() {
	defer func() {
		s.room.Send(game.Leave{Token: s.token})
		_ = s.conn.Close()
	}()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg game.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logf(s.cfg, "GAMES: Failed to parse ws message: %v", err)

			continue
		}

		if !s.room.Send(game.Input{Token: s.token, Message: msg}) {
			return
		}
	}
}

// writePump serializes loop output onto the wire. The loop closing the send
// channel means the game ended; the client gets a 4001 close frame.
func (s *session) writePump() {
	for msg := range s.send {
		if err := s.conn.WriteJSON(msg); err != nil {
			logf(s.cfg, "GAMES: Failed to send ws message: %v", err)
			_ = s.conn.Close()

			return
		}
	}

	closeWith(s.conn, closeGameClosed, "the game was closed")
}

func closeWith(conn *websocket.Conn, code int, reason string) {
	deadline := time.Now().Add(closeGracePeriod)
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline)
	_ = conn.Close()
}
