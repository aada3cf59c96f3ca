package game

import "fmt"

// GameMode selects between the collaborative and the per-player scored loop.
type GameMode string

const (
	ModeTeam        GameMode = "team"
	ModeCompetitive GameMode = "competitive"
)

// GameLanguage selects which wordlist a game draws from.
type GameLanguage string

const (
	LanguageEnglish GameLanguage = "english"
	LanguageSpanish GameLanguage = "spanish"
	LanguageFrench  GameLanguage = "french"
	LanguageGerman  GameLanguage = "german"
	LanguageRussian GameLanguage = "russian"
	LanguageTurkish GameLanguage = "turkish"
)

// Languages lists every supported wordlist language.
func Languages() []GameLanguage {
	return []GameLanguage{
		LanguageEnglish,
		LanguageSpanish,
		LanguageFrench,
		LanguageGerman,
		LanguageRussian,
		LanguageTurkish,
	}
}

// Difficulty selects which frequency quarter of a wordlist is sampled.
type Difficulty string

const (
	DifficultyRandom Difficulty = "random"
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyInsane Difficulty = "insane"
)

// GameSettings is supplied once at room creation and never changes.
type GameSettings struct {
	Mode       GameMode     `json:"mode"`
	Language   GameLanguage `json:"language"`
	Difficulty Difficulty   `json:"difficulty"`
}

// Normalize fills in defaults and rejects unknown variants.
func (s *GameSettings) Normalize() error {
	if s.Difficulty == "" {
		s.Difficulty = DifficultyMedium
	}

	switch s.Mode {
	case ModeTeam, ModeCompetitive:
	default:
		return fmt.Errorf("unknown game mode: %q", s.Mode)
	}

	switch s.Difficulty {
	case DifficultyRandom, DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyInsane:
	default:
		return fmt.Errorf("unknown difficulty: %q", s.Difficulty)
	}

	for _, lang := range Languages() {
		if s.Language == lang {
			return nil
		}
	}

	return fmt.Errorf("unknown game language: %q", s.Language)
}
