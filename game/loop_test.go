package game

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const recvTimeout = 2 * time.Second

// scriptedWords hands out a fixed sequence of targets, repeating the last
// one once the script runs out.
type scriptedWords struct {
	mu    sync.Mutex
	queue []string
	last  string
}

func (s *scriptedWords) Generate(GameLanguage, Difficulty) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		if s.last == "" {
			return "", errors.New("word script exhausted")
		}

		return s.last, nil
	}

	s.last = s.queue[0]
	s.queue = s.queue[1:]

	return s.last, nil
}

type failingWords struct{}

func (failingWords) Generate(GameLanguage, Difficulty) (string, error) {
	return "", errors.New("wordlist unavailable")
}

func testSettings(mode GameMode) GameSettings {
	return GameSettings{
		Mode:       mode,
		Language:   LanguageEnglish,
		Difficulty: DifficultyMedium,
	}
}

// startTeam spawns a team loop the way the Manager does, with an
// observable done channel.
func startTeam(owner UserToken, words WordSource) *Room {
	room := newRoom(ModeTeam)

	go func() {
		defer close(room.done)
		teamLoop(room, GameCode(0x1337), testSettings(ModeTeam), owner, words)
	}()

	return room
}

func startCompetitive(owner UserToken, words WordSource, roundLen time.Duration) *Room {
	room := newRoom(ModeCompetitive)

	go func() {
		defer close(room.done)
		competitiveLoop(room, GameCode(0x1337), testSettings(ModeCompetitive), owner, words, roundLen)
	}()

	return room
}

type testPlayer struct {
	user User
	ch   chan ServerMessage
}

func joinPlayer(t *testing.T, room *Room, nickname string, token UserToken) *testPlayer {
	t.Helper()

	p := &testPlayer{
		user: User{Nickname: nickname, Token: token},
		// Roomy queues: these tests assert on every intermediate update, so
		// nothing may be dropped.
		ch: make(chan ServerMessage, 64),
	}

	require.True(t, room.Send(Join{User: p.user, Sender: p.ch}), "join send failed: loop already gone")

	return p
}

func (p *testPlayer) guess(t *testing.T, room *Room, text string) {
	t.Helper()

	ok := room.Send(Input{
		Token:   p.user.Token,
		Message: ClientMessage{Type: ClientChatMessage, Data: text},
	})
	require.True(t, ok, "guess send failed: loop already gone")
}

func (p *testPlayer) nextRound(t *testing.T, room *Room) {
	t.Helper()

	ok := room.Send(Input{
		Token:   p.user.Token,
		Message: ClientMessage{Type: ClientNextRound},
	})
	require.True(t, ok, "next_round send failed: loop already gone")
}

func (p *testPlayer) leave(t *testing.T, room *Room) {
	t.Helper()

	require.True(t, room.Send(Leave{Token: p.user.Token}), "leave send failed: loop already gone")
}

func (p *testPlayer) next(t *testing.T) ServerMessage {
	t.Helper()

	select {
	case msg, ok := <-p.ch:
		require.True(t, ok, "outbound queue for %s closed", p.user.Nickname)
		return msg
	case <-time.After(recvTimeout):
		t.Fatalf("timed out waiting for a message to %s", p.user.Nickname)
		return ServerMessage{}
	}
}

func (p *testPlayer) nextTeam(t *testing.T) Game[TeamState] {
	t.Helper()

	msg := p.next(t)
	require.Equal(t, ServerUpdateGame, msg.Type)

	env, ok := msg.Data.(Game[TeamState])
	require.True(t, ok, "unexpected payload type %T", msg.Data)

	return env
}

func (p *testPlayer) nextCompetitive(t *testing.T) Game[CompetitiveState] {
	t.Helper()

	msg := p.next(t)
	require.Equal(t, ServerUpdateGame, msg.Type)

	env, ok := msg.Data.(Game[CompetitiveState])
	require.True(t, ok, "unexpected payload type %T", msg.Data)

	return env
}

// nextResults drains update frames until a scoreboard arrives.
func (p *testPlayer) nextResults(t *testing.T) []Score {
	t.Helper()

	for i := 0; i < 16; i++ {
		msg := p.next(t)
		if msg.Type != ServerResults {
			continue
		}

		scores, ok := msg.Data.([]Score)
		require.True(t, ok, "unexpected payload type %T", msg.Data)

		return scores
	}

	t.Fatalf("no results arrived for %s", p.user.Nickname)
	return nil
}

// expectNone asserts that no message reaches the player for a short while.
func (p *testPlayer) expectNone(t *testing.T) {
	t.Helper()

	select {
	case msg := <-p.ch:
		t.Fatalf("unexpected %s message to %s: %+v", msg.Type, p.user.Nickname, msg.Data)
	case <-time.After(100 * time.Millisecond):
	}
}

// expectClosed drains the player's queue until the loop drops it.
func (p *testPlayer) expectClosed(t *testing.T) {
	t.Helper()

	deadline := time.After(recvTimeout)
	for {
		select {
		case _, ok := <-p.ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("outbound queue for %s was never closed", p.user.Nickname)
		}
	}
}

func expectDone(t *testing.T, room *Room) {
	t.Helper()

	select {
	case <-room.Done():
	case <-time.After(recvTimeout):
		t.Fatal("game loop did not terminate")
	}
}

func lastChat(env []ChatMessage) ChatMessage {
	if len(env) == 0 {
		return ChatMessage{}
	}

	return env[len(env)-1]
}
