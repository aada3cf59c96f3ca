// Package words samples hangman targets from Leipzig-corpora frequency
// wordlists. Raw lists are preprocessed once at startup into plain
// one-word-per-line files; sampling then picks a single line by index, so no
// list is ever held in memory.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"hangman/game"
)

var ErrLanguageNotPreprocessed = errors.New("this language was not preprocessed")

// Generator samples words by (language, difficulty). It is read-only after
// Preprocess and safe for concurrent use.
type Generator struct {
	dir    string
	limits map[game.GameLanguage]int

	intn func(n int) int // swapped out in tests
}

// Preprocess prepares every listed language: an existing <list>.pre.txt is
// reused, otherwise it is generated from the raw list. Word counts are
// recorded for sampling. Any missing or unreadable list is fatal.
func Preprocess(dir string, languages []game.GameLanguage) (*Generator, error) {
	g := &Generator{
		dir:    dir,
		limits: make(map[game.GameLanguage]int),
		intn:   rand.Intn,
	}

	for _, lang := range languages {
		pre := preprocessedPath(dir, lang)

		n, err := countLines(pre)
		if errors.Is(err, os.ErrNotExist) {
			n, err = preprocessFile(rawPath(dir, lang), pre)
		}
		if err != nil {
			return nil, fmt.Errorf("preprocessing %s: %w", lang, err)
		}

		log.Printf("finished preprocessing for %s: %d words", lang, n)
		g.limits[lang] = n
	}

	return g, nil
}

// Generate draws a random word. Random samples the whole list; the named
// difficulties sample one of four contiguous quarters, ordered from most to
// least frequent.
func (g *Generator) Generate(lang game.GameLanguage, difficulty game.Difficulty) (string, error) {
	n, ok := g.limits[lang]
	if !ok {
		return "", ErrLanguageNotPreprocessed
	}

	lo, hi := 0, n
	if difficulty != game.DifficultyRandom {
		frac := n / 4
		k := quarter(difficulty)
		lo, hi = k*frac, (k+1)*frac
	}

	if hi <= lo {
		return "", fmt.Errorf("wordlist for %s is too small to sample %s", lang, difficulty)
	}

	return g.wordAt(lang, lo+g.intn(hi-lo))
}

func quarter(difficulty game.Difficulty) int {
	switch difficulty {
	case game.DifficultyEasy:
		return 0
	case game.DifficultyMedium:
		return 1
	case game.DifficultyHard:
		return 2
	default:
		return 3
	}
}

// wordAt re-reads the preprocessed file and returns line index. Draws are
// rare enough that a scan per draw beats keeping six wordlists resident.
func (g *Generator) wordAt(lang game.GameLanguage, index int) (string, error) {
	file, err := os.Open(preprocessedPath(g.dir, lang))
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for i := 0; scanner.Scan(); i++ {
		if i == index {
			return scanner.Text(), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("wordlist for %s has no line %d", lang, index)
}

func countLines(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	n := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		n++
	}

	return n, scanner.Err()
}

// rawPath names the Leipzig corpus file for a language.
func rawPath(dir string, lang game.GameLanguage) string {
	var name string

	switch lang {
	case game.LanguageEnglish:
		name = "eng-com_web-public_2018_1M-words.txt"
	case game.LanguageSpanish:
		name = "spa_web_2016_1M-words.txt"
	case game.LanguageFrench:
		name = "fra_mixed_2009_1M-words.txt"
	case game.LanguageGerman:
		name = "deu-de_web_2021_1M-words.txt"
	case game.LanguageRussian:
		name = "rus-ru_web-public_2019_1M-words.txt"
	case game.LanguageTurkish:
		name = "tur-tr_web_2019_1M-words.txt"
	}

	return filepath.Join(dir, name)
}

func preprocessedPath(dir string, lang game.GameLanguage) string {
	raw := rawPath(dir, lang)

	return strings.TrimSuffix(raw, ".txt") + ".pre.txt"
}
