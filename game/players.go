package game

import "log"

type player struct {
	user   User
	sender chan<- ServerMessage
}

// players is the ordered token → (sender, user) mapping a loop owns. Order
// is join order, so player lists render consistently across broadcasts.
type players struct {
	order []UserToken
	byTok map[UserToken]*player
}

func newPlayers() *players {
	return &players{
		byTok: make(map[UserToken]*player),
	}
}

// add registers a player, replacing the sender of a rejoining token while
// keeping its original position. The superseded queue is closed so the old
// session's writer shuts down instead of blocking on an orphaned channel.
func (p *players) add(user User, sender chan<- ServerMessage) {
	if existing, ok := p.byTok[user.Token]; ok {
		close(existing.sender)
		existing.user = user
		existing.sender = sender

		return
	}

	p.order = append(p.order, user.Token)
	p.byTok[user.Token] = &player{user: user, sender: sender}
}

func (p *players) remove(token UserToken) (*player, bool) {
	pl, ok := p.byTok[token]
	if !ok {
		return nil, false
	}

	delete(p.byTok, token)

	for i, t := range p.order {
		if t == token {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}

	return pl, true
}

func (p *players) get(token UserToken) (*player, bool) {
	pl, ok := p.byTok[token]

	return pl, ok
}

func (p *players) len() int {
	return len(p.order)
}

func (p *players) names() []string {
	names := make([]string, 0, len(p.order))

	for _, t := range p.order {
		names = append(names, p.byTok[t].user.Nickname)
	}

	return names
}

func (p *players) each(f func(*player)) {
	for _, t := range p.order {
		f(p.byTok[t])
	}
}

// send delivers a message to one player without ever blocking the loop. A
// full or dead outbound queue is logged and skipped; the next inbound close
// frame produces the authoritative leave.
func (p *player) send(msg ServerMessage) {
	select {
	case p.sender <- msg:
	default:
		log.Printf("dropping %s message to %s: outbound queue full or gone", msg.Type, p.user.Nickname)
	}
}

// broadcast sends the same message to every player.
func (p *players) broadcast(msg ServerMessage) {
	p.each(func(pl *player) {
		pl.send(msg)
	})
}

// closeAll drops every outbound queue, which makes session writers close
// their transports with code 4001.
func (p *players) closeAll() {
	p.each(func(pl *player) {
		close(pl.sender)
	})

	p.order = nil
	p.byTok = make(map[UserToken]*player)
}
