package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// longRound keeps the countdown from firing during tests that never want
// results.
const longRound = time.Hour

func TestCompetitiveIndependentProgress(t *testing.T) {
	owner := UserToken(1)
	room := startCompetitive(owner, &scriptedWords{queue: []string{"dog", "cat"}}, longRound)

	alice := joinPlayer(t, room, "Alice", owner)
	alice.nextCompetitive(t)
	bob := joinPlayer(t, room, "Bob", UserToken(2))
	alice.nextCompetitive(t)
	bob.nextCompetitive(t)

	alice.nextRound(t, room)
	env := alice.nextCompetitive(t)
	require.NotNil(t, env.State)
	assert.Equal(t, "___", env.State.Word)
	assert.Zero(t, env.State.WordIndex)
	bob.nextCompetitive(t)

	// Alice solves her first word and moves on; Bob stays on word zero.
	alice.guess(t, room, "dog")
	env = alice.nextCompetitive(t)
	require.NotNil(t, env.State)
	assert.Equal(t, uint(1), env.State.Score)
	assert.Equal(t, 1, env.State.WordIndex)
	assert.Equal(t, "___", env.State.Word, "a fresh word starts fully hidden")
	assert.Zero(t, env.State.TriesUsed)

	// Only the guesser gets an update.
	bob.expectNone(t)

	bob.guess(t, room, "d")
	env = bob.nextCompetitive(t)
	require.NotNil(t, env.State)
	assert.Equal(t, "d__", env.State.Word)
	assert.Zero(t, env.State.WordIndex)
	assert.Zero(t, env.State.Score)

	alice.leave(t, room)
	expectDone(t, room)
}

func TestCompetitiveSharedDrawOrder(t *testing.T) {
	owner := UserToken(1)
	room := startCompetitive(owner, &scriptedWords{queue: []string{"dog", "cat", "owl"}}, longRound)

	alice := joinPlayer(t, room, "Alice", owner)
	alice.nextCompetitive(t)
	bob := joinPlayer(t, room, "Bob", UserToken(2))
	alice.nextCompetitive(t)
	bob.nextCompetitive(t)

	alice.nextRound(t, room)
	alice.nextCompetitive(t)
	bob.nextCompetitive(t)

	// Alice races ahead, fixing the draw order for everyone behind her.
	alice.guess(t, room, "dog")
	env := alice.nextCompetitive(t)
	require.NotNil(t, env.State)
	assert.Equal(t, 1, env.State.WordIndex)

	alice.guess(t, room, "c")
	env = alice.nextCompetitive(t)
	require.NotNil(t, env.State)
	assert.Equal(t, "c__", env.State.Word)

	// Bob reaches index 1 later and sees the same word Alice fixed there.
	bob.guess(t, room, "dog")
	bob.nextCompetitive(t)
	bob.guess(t, room, "c")
	env = bob.nextCompetitive(t)
	require.NotNil(t, env.State)
	assert.Equal(t, "c__", env.State.Word)
	assert.Equal(t, 1, env.State.WordIndex)

	alice.leave(t, room)
	expectDone(t, room)
}

func TestCompetitiveOutOfTriesAdvances(t *testing.T) {
	owner := UserToken(1)
	room := startCompetitive(owner, &scriptedWords{queue: []string{"dog", "cat"}}, longRound)

	alice := joinPlayer(t, room, "Alice", owner)
	alice.nextCompetitive(t)
	alice.nextRound(t, room)
	alice.nextCompetitive(t)

	for _, letter := range []string{"a", "b", "c", "e", "f", "h", "i", "j"} {
		alice.guess(t, room, letter)
		env := alice.nextCompetitive(t)
		require.NotNil(t, env.State)
		assert.Zero(t, env.State.WordIndex)
	}

	// The ninth miss burns the word without scoring and moves on.
	alice.guess(t, room, "k")
	env := alice.nextCompetitive(t)
	require.NotNil(t, env.State)
	assert.Equal(t, 1, env.State.WordIndex)
	assert.Zero(t, env.State.Score)
	assert.Zero(t, env.State.TriesUsed)
	assert.Equal(t, "___", env.State.Word)

	// Failed words are wiped from the per-player chat except banners.
	for _, m := range env.State.Chat {
		assert.Empty(t, m.From)
	}

	alice.leave(t, room)
	expectDone(t, room)
}

func TestCompetitiveResultsOnce(t *testing.T) {
	owner := UserToken(1)
	room := startCompetitive(owner, &scriptedWords{queue: []string{"dog", "cat"}}, 250*time.Millisecond)

	alice := joinPlayer(t, room, "Alice", owner)
	alice.nextCompetitive(t)
	bob := joinPlayer(t, room, "Bob", UserToken(2))
	alice.nextCompetitive(t)
	bob.nextCompetitive(t)

	alice.nextRound(t, room)
	alice.nextCompetitive(t)
	bob.nextCompetitive(t)

	alice.guess(t, room, "dog")
	alice.nextCompetitive(t)

	scores := alice.nextResults(t)
	assert.Equal(t, []Score{
		{Rank: 1, Nickname: "Alice", Score: 1},
		{Rank: 2, Nickname: "Bob", Score: 0},
	}, scores)
	assert.Equal(t, scores, bob.nextResults(t))

	// Guesses after the deadline are dead, and no second scoreboard arrives.
	bob.guess(t, room, "dog")
	bob.expectNone(t)
	alice.expectNone(t)

	alice.leave(t, room)
	expectDone(t, room)
}

func TestCompetitiveRestartDropsStaleCountdown(t *testing.T) {
	owner := UserToken(1)
	room := startCompetitive(owner, &scriptedWords{queue: []string{"dog", "cat"}}, 300*time.Millisecond)

	alice := joinPlayer(t, room, "Alice", owner)
	alice.nextCompetitive(t)
	alice.nextRound(t, room)
	alice.nextCompetitive(t)

	// Restarting mid-round supersedes the first deadline. Its timer still
	// fires, but the stale generation is discarded.
	alice.nextRound(t, room)
	env := alice.nextCompetitive(t)
	require.NotNil(t, env.State)
	assert.Equal(t, ChatMessage{Content: "Alice started a new round", Color: ColorNeutral}, lastChat(env.State.Chat))

	scores := alice.nextResults(t)
	assert.Equal(t, []Score{{Rank: 1, Nickname: "Alice", Score: 0}}, scores)

	// Exactly one scoreboard in total.
	alice.expectNone(t)

	alice.leave(t, room)
	expectDone(t, room)
}

func TestCompetitiveAnyoneRestartsAfterResults(t *testing.T) {
	owner := UserToken(1)
	room := startCompetitive(owner, &scriptedWords{queue: []string{"dog", "cat"}}, 200*time.Millisecond)

	alice := joinPlayer(t, room, "Alice", owner)
	alice.nextCompetitive(t)
	bob := joinPlayer(t, room, "Bob", UserToken(2))
	alice.nextCompetitive(t)
	bob.nextCompetitive(t)

	alice.nextRound(t, room)
	alice.nextCompetitive(t)
	bob.nextCompetitive(t)

	alice.nextResults(t)
	bob.nextResults(t)

	bob.nextRound(t, room)
	env := bob.nextCompetitive(t)
	require.NotNil(t, env.State)
	assert.Equal(t, "___", env.State.Word)
	assert.Zero(t, env.State.Score)
	assert.Equal(t, ChatMessage{Content: "Bob started a new round", Color: ColorNeutral}, lastChat(env.State.Chat))
	alice.nextCompetitive(t)

	alice.nextResults(t)
	bob.nextResults(t)

	alice.leave(t, room)
	expectDone(t, room)
}

func TestCompetitiveRejoinResumes(t *testing.T) {
	owner := UserToken(1)
	bobToken := UserToken(2)
	room := startCompetitive(owner, &scriptedWords{queue: []string{"dog", "cat"}}, longRound)

	alice := joinPlayer(t, room, "Alice", owner)
	alice.nextCompetitive(t)
	bob := joinPlayer(t, room, "Bob", bobToken)
	alice.nextCompetitive(t)
	bob.nextCompetitive(t)

	alice.nextRound(t, room)
	alice.nextCompetitive(t)
	bob.nextCompetitive(t)

	bob.guess(t, room, "d")
	env := bob.nextCompetitive(t)
	require.NotNil(t, env.State)
	require.Equal(t, "d__", env.State.Word)

	bob.leave(t, room)
	bob.expectClosed(t)
	alice.nextCompetitive(t)

	// The same token picks up exactly where it left off.
	rejoined := joinPlayer(t, room, "Bob", bobToken)
	env = rejoined.nextCompetitive(t)
	require.NotNil(t, env.State)
	assert.Equal(t, "d__", env.State.Word)
	assert.Zero(t, env.State.WordIndex)
	alice.nextCompetitive(t)

	alice.leave(t, room)
	expectDone(t, room)
}

func TestCompetitiveLateJoinerStartsAtFirstWord(t *testing.T) {
	owner := UserToken(1)
	room := startCompetitive(owner, &scriptedWords{queue: []string{"dog", "cat"}}, longRound)

	alice := joinPlayer(t, room, "Alice", owner)
	alice.nextCompetitive(t)
	alice.nextRound(t, room)
	alice.nextCompetitive(t)

	alice.guess(t, room, "dog")
	alice.nextCompetitive(t)

	carol := joinPlayer(t, room, "Carol", UserToken(3))
	env := carol.nextCompetitive(t)
	require.NotNil(t, env.State)
	assert.Equal(t, "___", env.State.Word)
	assert.Zero(t, env.State.WordIndex)
	alice.nextCompetitive(t)

	alice.leave(t, room)
	expectDone(t, room)
}
