package game

import (
	"log"
	"time"
)

// competitiveRoundLength is how long a competitive round runs before the
// countdown fires and scores are ranked.
const competitiveRoundLength = 3 * time.Minute

type playerState struct {
	triesUsed uint
	chat      []ChatMessage
	word      *Word
	wordIndex int
	score     uint
}

func newPlayerState(target string, chat []ChatMessage) *playerState {
	return &playerState{
		chat: chat,
		word: NewWord(target),
	}
}

// competitiveLoop is the single-writer state machine of a competitive game:
// every player races through the same word sequence against a shared
// deadline, and each sees only its own state.
func competitiveLoop(room *Room, code GameCode, settings GameSettings, owner UserToken, words WordSource, roundLen time.Duration) {
	ps := newPlayers()
	defer ps.closeAll()

	states := make(map[UserToken]*playerState)
	var globalChat []ChatMessage
	var history []string // append-only word draw order, shared by all players
	var deadline time.Time
	var results []Score

	started := false
	generation := 0

	sample := func() (string, bool) {
		target, err := words.Generate(settings.Language, settings.Difficulty)
		if err != nil {
			log.Printf("[%s] failed to generate word: %v", code, err)
			return "", false
		}

		return target, true
	}

	// wordAt memoizes the draw at each index, so whichever player reaches an
	// index first fixes the word every other player will see there.
	wordAt := func(index int) (string, bool) {
		if index < len(history) {
			return history[index], true
		}

		target, ok := sample()
		if !ok {
			return "", false
		}

		history = append(history, target)

		return target, true
	}

	sendState := func(pl *player) {
		var state *CompetitiveState

		if started {
			st, ok := states[pl.user.Token]
			if !ok {
				log.Printf("[%s] failed to find player state for %s", code, pl.user.Token)
				return
			}

			state = &CompetitiveState{
				TriesUsed: st.triesUsed,
				Chat:      copyChat(st.chat),
				Word:      st.word.Render(),
				Countdown: deadline,
				WordIndex: st.wordIndex,
				Score:     st.score,
			}
		}

		pl.send(ServerMessage{
			Type: ServerUpdateGame,
			Data: Game[CompetitiveState]{
				OwnerHash: owner.Hashed(),
				Settings:  settings,
				Players:   ps.names(),
				State:     state,
			},
		})
	}

	broadcastStates := func() {
		ps.each(sendState)
	}

	pushBanner := func(banner ChatMessage) {
		globalChat = append(globalChat, banner)
		for _, st := range states {
			st.chat = append(st.chat, banner)
		}
	}

	scheduleCountdown := func(gen int) {
		timer := time.NewTimer(roundLen)

		go func() {
			defer timer.Stop()

			select {
			case <-timer.C:
				select {
				case room.inbox <- timeUp{generation: gen}:
				case <-room.done:
				}
			case <-room.done:
			}
		}()
	}

	for msg := range room.inbox {
		switch msg := msg.(type) {
		case Join:
			log.Printf("[%s] %s joins the game", code, msg.User.Nickname)
			ps.add(msg.User, msg.Sender)

			token := msg.User.Token
			if started {
				if _, ok := states[token]; ok {
					log.Printf("[%s] %s rejoined, using previous session", code, msg.User.Nickname)
				} else {
					states[token] = newPlayerState(history[0], copyChat(globalChat))
				}
			}

			pushBanner(joinMessage(msg.User.Nickname))

			if results != nil {
				if pl, ok := ps.get(token); ok {
					pl.send(ServerMessage{Type: ServerResults, Data: results})
				}
			} else {
				broadcastStates()
			}

		case Leave:
			left, ok := ps.remove(msg.Token)
			if !ok {
				log.Printf("[%s] there was no user in this game with this token", code)
				continue
			}

			log.Printf("[%s] %s left the game", code, left.user.Nickname)
			close(left.sender)

			// The player state survives so the same token can rejoin and
			// resume where it left off.
			pushBanner(leaveMessage(left.user.Nickname))

			if results == nil {
				broadcastStates()
			}

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
				if results != nil {
					log.Printf("[%s] %s guessed after the round ended, ignoring", code, pl.user.Nickname)
					continue
				}

				st, ok := states[msg.Token]
				if !ok {
					log.Printf("[%s] failed to find player state for %s", code, msg.Token)
					continue
				}

				text := msg.Message.Data
				guess := st.word.Guess(text)

				switch guess {
				case Miss:
					log.Printf("[%s] %s guessed wrong", code, pl.user.Nickname)
					st.triesUsed++
				case Hit:
					log.Printf("[%s] %s guessed right", code, pl.user.Nickname)
				case Solved:
					log.Printf("[%s] %s solved the word", code, pl.user.Nickname)
					st.score++
				}

				st.chat = append(st.chat, ChatMessage{
					From:    pl.user.Nickname,
					Content: text,
					Color:   guess.Color(),
				})

				if guess == Solved || st.triesUsed == maxTries {
					if guess == Solved {
						st.chat = append(st.chat, solvedMessage())
					} else {
						st.chat = append(st.chat, outOfTriesMessage(st.word.Target()))
					}

					st.chat = stripUserChat(st.chat)
					st.triesUsed = 0
					st.wordIndex++

					if target, ok := wordAt(st.wordIndex); ok {
						st.word = NewWord(target)
					} else {
						// Keep the finished word; the index stays consistent
						// with the draw history.
						st.wordIndex--
					}
				}

				sendState(pl)

			case ClientNextRound:
				if !started {
					if msg.Token != owner {
						log.Printf("[%s] %s tried to start the game but is not the owner", code, pl.user.Nickname)
						continue
					}

					if _, ok := wordAt(0); !ok {
						continue
					}

					started = true
					generation++
					deadline = time.Now().Add(roundLen)
					results = nil
					globalChat = append(globalChat, startMessage(pl.user.Nickname))

					ps.each(func(member *player) {
						states[member.user.Token] = newPlayerState(history[0], copyChat(globalChat))
					})

					scheduleCountdown(generation)
					log.Printf("[%s] %s started the game", code, pl.user.Nickname)
					broadcastStates()

					continue
				}

				// A running or finished match may be restarted by anyone.
				target, ok := sample()
				if !ok {
					continue
				}

				history = []string{target}
				generation++
				deadline = time.Now().Add(roundLen)
				results = nil
				globalChat = []ChatMessage{newRoundMessage(pl.user.Nickname)}

				for token := range states {
					states[token] = newPlayerState(history[0], copyChat(globalChat))
				}
				ps.each(func(member *player) {
					if _, ok := states[member.user.Token]; !ok {
						states[member.user.Token] = newPlayerState(history[0], copyChat(globalChat))
					}
				})

				scheduleCountdown(generation)
				log.Printf("[%s] %s started a new round", code, pl.user.Nickname)
				broadcastStates()

			default:
				log.Printf("[%s] unknown client message type %q", code, msg.Message.Type)
			}

		case timeUp:
			if msg.generation != generation {
				log.Printf("[%s] dropping countdown for stale round %d", code, msg.generation)
				continue
			}
			if results != nil {
				continue
			}

			log.Printf("[%s] game round finished", code)

			entries := make([]scored, 0, ps.len())
			ps.each(func(member *player) {
				if st, ok := states[member.user.Token]; ok {
					entries = append(entries, scored{
						nickname: member.user.Nickname,
						score:    st.score,
					})
				}
			})

			results = denseRank(entries)
			ps.broadcast(ServerMessage{Type: ServerResults, Data: results})
		}
	}
}
