package game

import "fmt"

func joinMessage(nickname string) ChatMessage {
	return ChatMessage{
		Content: fmt.Sprintf("%s joined the game", nickname),
		Color:   ColorNeutral,
	}
}

func leaveMessage(nickname string) ChatMessage {
	return ChatMessage{
		Content: fmt.Sprintf("%s left the game", nickname),
		Color:   ColorNeutral,
	}
}

func startMessage(nickname string) ChatMessage {
	return ChatMessage{
		Content: fmt.Sprintf("%s started the game", nickname),
		Color:   ColorNeutral,
	}
}

func newRoundMessage(nickname string) ChatMessage {
	return ChatMessage{
		Content: fmt.Sprintf("%s started a new round", nickname),
		Color:   ColorNeutral,
	}
}

func solvedMessage() ChatMessage {
	return ChatMessage{
		Content: "You guessed the word!",
		Color:   ColorGreen,
	}
}

func outOfTriesMessage(target string) ChatMessage {
	return ChatMessage{
		Content: fmt.Sprintf("No tries left! The word was %q", target),
		Color:   ColorRed,
	}
}

// stripUserChat drops player entries and keeps system banners.
func stripUserChat(chat []ChatMessage) []ChatMessage {
	kept := chat[:0]

	for _, m := range chat {
		if m.From == "" {
			kept = append(kept, m)
		}
	}

	return kept
}

func copyChat(chat []ChatMessage) []ChatMessage {
	return append([]ChatMessage(nil), chat...)
}
