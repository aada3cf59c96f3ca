package game

import "log"

// maxTries is the number of misses that ends a round in failure.
const maxTries = 9

// teamLoop is the single-writer state machine of a collaborative game: one
// shared word, shared tries, and byte-identical state for every player.
func teamLoop(room *Room, code GameCode, settings GameSettings, owner UserToken, words WordSource) {
	ps := newPlayers()
	defer ps.closeAll()

	var chat []ChatMessage
	var word *Word

	started := false
	roundFinished := false
	triesUsed := uint(0)

	envelope := func() Game[TeamState] {
		var state *TeamState
		if started {
			state = &TeamState{
				Players:       ps.names(),
				Chat:          copyChat(chat),
				TriesUsed:     triesUsed,
				Word:          word.Render(),
				RoundFinished: roundFinished,
			}
		}

		return Game[TeamState]{
			OwnerHash: owner.Hashed(),
			Settings:  settings,
			Players:   ps.names(),
			State:     state,
		}
	}

	broadcast := func() {
		ps.broadcast(ServerMessage{Type: ServerUpdateGame, Data: envelope()})
	}

	draw := func() (*Word, bool) {
		target, err := words.Generate(settings.Language, settings.Difficulty)
		if err != nil {
			log.Printf("[%s] failed to generate word: %v", code, err)
			return nil, false
		}

		return NewWord(target), true
	}

	for msg := range room.inbox {
		switch msg := msg.(type) {
		case Join:
			log.Printf("[%s] %s joins the game", code, msg.User.Nickname)
			ps.add(msg.User, msg.Sender)
			chat = append(chat, joinMessage(msg.User.Nickname))
			broadcast()

		case Leave:
			left, ok := ps.remove(msg.Token)
			if !ok {
				log.Printf("[%s] there was no user in this game with this token", code)
				continue
			}

			log.Printf("[%s] %s left the game", code, left.user.Nickname)
			close(left.sender)
			chat = append(chat, leaveMessage(left.user.Nickname))
			broadcast()

			if ps.len() == 0 {
				log.Printf("[%s] all players left the game, closing", code)
				return
			}

			if msg.Token == owner {
				log.Printf("[%s] the game owner left the game, closing", code)
				return
			}

		case Input:
			pl, ok := ps.get(msg.Token)
			if !ok {
				log.Printf("[%s] there was no user in this game with this token", code)
				continue
			}

			switch msg.Message.Type {
			case ClientChatMessage:
				if !started {
					log.Printf("[%s] %s guessed before the game started, ignoring", code, pl.user.Nickname)
					continue
				}
				if roundFinished {
					log.Printf("[%s] %s guessed after the round finished, ignoring", code, pl.user.Nickname)
					continue
				}

				text := msg.Message.Data
				guess := word.Guess(text)

				switch guess {
				case Miss:
					log.Printf("[%s] %s guessed wrong", code, pl.user.Nickname)
					triesUsed++
				case Hit:
					log.Printf("[%s] %s guessed right", code, pl.user.Nickname)
				case Solved:
					log.Printf("[%s] %s solved the word", code, pl.user.Nickname)
				}

				chat = append(chat, ChatMessage{
					From:    pl.user.Nickname,
					Content: text,
					Color:   guess.Color(),
				})

				if guess == Solved {
					roundFinished = true
					chat = append(chat, solvedMessage())
				} else if triesUsed == maxTries {
					roundFinished = true
					chat = append(chat, outOfTriesMessage(word.Target()))
				}

				broadcast()

			case ClientNextRound:
				switch {
				case !started:
					if msg.Token != owner {
						log.Printf("[%s] %s tried to start the game but is not the owner", code, pl.user.Nickname)
						continue
					}

					next, ok := draw()
					if !ok {
						continue
					}

					word = next
					started = true
					roundFinished = false
					triesUsed = 0
					chat = append(chat, startMessage(pl.user.Nickname))
					log.Printf("[%s] %s started the game", code, pl.user.Nickname)
					broadcast()

				case roundFinished:
					next, ok := draw()
					if !ok {
						continue
					}

					word = next
					roundFinished = false
					triesUsed = 0
					chat = stripUserChat(chat)
					chat = append(chat, newRoundMessage(pl.user.Nickname))
					log.Printf("[%s] %s started next round", code, pl.user.Nickname)
					broadcast()

				default:
					log.Printf("[%s] %s sent next_round during a live round, ignoring", code, pl.user.Nickname)
				}

			default:
				log.Printf("[%s] unknown client message type %q", code, msg.Message.Type)
			}

		case timeUp:
			// No countdown in team games.
		}
	}
}
