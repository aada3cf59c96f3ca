// Package game hosts short-lived, code-addressable hangman rooms. Each room
// is owned by a single goroutine (its game loop) fed through a bounded
// mailbox; the Manager keeps the code → room registry.
package game

import (
	"log"
	"sync"
)

const mailboxSize = 10

// WordSource draws a target word for the given language and difficulty.
// Implementations must be safe for concurrent use.
type WordSource interface {
	Generate(lang GameLanguage, difficulty Difficulty) (string, error)
}

// Room is the handle a session uses to reach a game loop: the mode, the
// send end of the loop's mailbox, and a done channel closed when the loop
// returns.
type Room struct {
	Mode  GameMode
	inbox chan GameMessage
	done  chan struct{}
}

func newRoom(mode GameMode) *Room {
	return &Room{
		Mode:  mode,
		inbox: make(chan GameMessage, mailboxSize),
		done:  make(chan struct{}),
	}
}

// Send delivers a message to the loop, or reports false if the loop has
// already terminated.
func (r *Room) Send(msg GameMessage) bool {
	select {
	case r.inbox <- msg:
		return true
	case <-r.done:
		return false
	}
}

// Done is closed once the loop has returned.
func (r *Room) Done() <-chan struct{} {
	return r.done
}

// Manager owns the game registry. An entry exists exactly as long as its
// loop goroutine runs.
type Manager struct {
	mu    sync.Mutex
	rooms map[GameCode]*Room
	words WordSource
}

func NewManager(words WordSource) *Manager {
	return &Manager{
		rooms: make(map[GameCode]*Room),
		words: words,
	}
}

// Create allocates a fresh code, spawns the mode-specific loop, and indexes
// it. Settings are assumed normalized by the caller.
func (m *Manager) Create(owner UserToken, settings GameSettings) GameCode {
	m.mu.Lock()

	code := RandomCode()
	for {
		if _, exists := m.rooms[code]; !exists {
			break
		}

		code = RandomCode()
	}

	room := newRoom(settings.Mode)
	m.rooms[code] = room

	m.mu.Unlock()

	go func() {
		defer m.remove(code)
		defer close(room.done)

		switch settings.Mode {
		case ModeCompetitive:
			competitiveLoop(room, code, settings, owner, m.words, competitiveRoundLength)
		default:
			teamLoop(room, code, settings, owner, m.words)
		}

		log.Printf("[%s] game loop finished, removing game", code)
	}()

	log.Printf("new game: %s", code)

	return code
}

// Lookup returns the room handle for a code, if the game is still live.
func (m *Manager) Lookup(code GameCode) (*Room, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[code]

	return room, ok
}

// Count reports the number of live games.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.rooms)
}

func (m *Manager) remove(code GameCode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.rooms, code)
}
