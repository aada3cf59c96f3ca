package game

// GameMessage is the typed mailbox input of a game loop. Every concurrent
// source (sessions, countdown timers) funnels through it, so the loop is the
// single writer of its state.
type GameMessage interface {
	gameMessage()
}

// Join registers a player and the send end of its outbound queue.
type Join struct {
	User   User
	Sender chan<- ServerMessage
}

// Leave removes a player, either on an explicit close frame or on an
// abnormal transport close.
type Leave struct {
	Token UserToken
}

// Input carries one decoded client frame.
type Input struct {
	Token   UserToken
	Message ClientMessage
}

// timeUp ends a competitive round. Generation identifies the round whose
// countdown scheduled it; stale generations are dropped.
type timeUp struct {
	generation int
}

func (Join) gameMessage()   {}
func (Leave) gameMessage()  {}
func (Input) gameMessage()  {}
func (timeUp) gameMessage() {}
