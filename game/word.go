package game

import (
	"strings"

	"github.com/rivo/uniseg"
)

// GuessResult classifies one guess against a Word.
type GuessResult int

const (
	Miss GuessResult = iota
	Hit
	Solved
)

func (g GuessResult) Color() ChatColor {
	if g == Miss {
		return ColorRed
	}

	return ColorGreen
}

// Word tracks guessing progress against a single target. The unit of
// matching and rendering is the extended grapheme cluster, so combining
// marks and non-Latin scripts behave as single characters.
type Word struct {
	target  []string
	current []string // empty slot = not yet guessed
}

func NewWord(target string) *Word {
	t := graphemes(target)

	return &Word{
		target:  t,
		current: make([]string, len(t)),
	}
}

func graphemes(s string) []string {
	var out []string

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}

	return out
}

// Target returns the full target word.
func (w *Word) Target() string {
	return strings.Join(w.target, "")
}

// Render returns the current partially revealed word, with "_" standing in
// for unguessed slots. Revealed slots preserve the target's casing.
func (w *Word) Render() string {
	var b strings.Builder

	for _, c := range w.current {
		if c == "" {
			b.WriteString("_")
		} else {
			b.WriteString(c)
		}
	}

	return b.String()
}

func (w *Word) unknowns() int {
	n := 0

	for _, c := range w.current {
		if c == "" {
			n++
		}
	}

	return n
}

// Guess applies one guess, either a whole word or a single grapheme, and
// reveals any matches. Comparison is case-insensitive.
func (w *Word) Guess(s string) GuessResult {
	gs := graphemes(s)
	for i := range gs {
		gs[i] = strings.ToLower(gs[i])
	}

	if w.matchesTarget(gs) {
		copy(w.current, w.target)

		return Solved
	}

	if len(gs) != 1 {
		return Miss
	}

	found := false

	for i, t := range w.target {
		if strings.ToLower(t) == gs[0] {
			w.current[i] = t
			found = true
		}
	}

	switch {
	case !found:
		return Miss
	case w.unknowns() == 0:
		return Solved
	default:
		return Hit
	}
}

func (w *Word) matchesTarget(lowered []string) bool {
	if len(lowered) != len(w.target) {
		return false
	}

	for i, t := range w.target {
		if strings.ToLower(t) != lowered[i] {
			return false
		}
	}

	return true
}
