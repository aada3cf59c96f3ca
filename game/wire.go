package game

import "time"

// Wire messages are tagged unions: {"type": "<snake_case variant>", "data": <payload>}.

// ChatColor styles one chat entry on the client.
type ChatColor string

const (
	ColorNeutral ChatColor = "neutral"
	ColorGreen   ChatColor = "green"
	ColorRed     ChatColor = "red"
)

// ChatMessage is one chat entry. An empty From denotes a system banner.
type ChatMessage struct {
	From    string    `json:"from,omitempty"`
	Content string    `json:"content"`
	Color   ChatColor `json:"color"`
}

// ClientMessage is a frame received from a player. ChatMessage frames carry
// the raw guess text in Data; NextRound frames carry no payload.
type ClientMessage struct {
	Type ClientMessageType `json:"type"`
	Data string            `json:"data,omitempty"`
}

type ClientMessageType string

const (
	ClientChatMessage ClientMessageType = "chat_message"
	ClientNextRound   ClientMessageType = "next_round"
)

// ServerMessage is a frame sent to a player. Data is either a full Game
// envelope or a scoreboard.
type ServerMessage struct {
	Type ServerMessageType `json:"type"`
	Data any               `json:"data"`
}

type ServerMessageType string

const (
	ServerUpdateGame ServerMessageType = "update_game"
	ServerResults    ServerMessageType = "results"
)

// Game is the total-state envelope sent on every change. A nil State means
// the room is still in its pre-start waiting phase.
type Game[S any] struct {
	OwnerHash UserToken    `json:"owner_hash"`
	Settings  GameSettings `json:"settings"`
	Players   []string     `json:"players"`
	State     *S           `json:"state"`
}

// TeamState is the shared state every player of a team game sees.
type TeamState struct {
	Players       []string      `json:"players"`
	Chat          []ChatMessage `json:"chat"`
	TriesUsed     uint          `json:"tries_used"`
	Word          string        `json:"word"`
	RoundFinished bool          `json:"round_finished"`
}

// CompetitiveState is the per-player state of a competitive game.
type CompetitiveState struct {
	TriesUsed uint          `json:"tries_used"`
	Chat      []ChatMessage `json:"chat"`
	Word      string        `json:"word"`
	Countdown time.Time     `json:"countdown"`
	WordIndex int           `json:"word_index"`
	Score     uint          `json:"score"`
}

// Score is one scoreboard row.
type Score struct {
	Rank     uint   `json:"rank"`
	Nickname string `json:"nickname"`
	Score    uint   `json:"score"`
}
