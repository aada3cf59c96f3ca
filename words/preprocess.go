package words

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// preprocessFile filters a raw frequency list (lines of "id word
// occurrences", most frequent first) into a plain word-per-line file at
// prePath and returns the word count. The words of the first 100 ids are
// treated as special tokens: punctuation, markup fragments and the like.
// A later word is kept iff it occurs at least 100 times, contains no digit,
// and contains no special token as a substring.
func preprocessFile(rawPath, prePath string) (int, error) {
	raw, err := os.Open(rawPath)
	if err != nil {
		return 0, err
	}
	defer raw.Close()

	pre, err := os.Create(prePath)
	if err != nil {
		return 0, err
	}
	defer pre.Close()

	out := bufio.NewWriter(pre)

	var specialTokens []string

	count := 0

	scanner := bufio.NewScanner(raw)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			continue
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, fmt.Errorf("failed to parse id in %s: %w", rawPath, err)
		}

		word := fields[1]

		occurrences, err := strconv.Atoi(fields[2])
		if err != nil {
			return 0, fmt.Errorf("failed to parse occurrences in %s: %w", rawPath, err)
		}

		if id <= 100 {
			specialTokens = append(specialTokens, word)
			continue
		}

		if occurrences >= 100 && !containsDigit(word) && !containsAny(word, specialTokens) {
			if _, err := fmt.Fprintln(out, word); err != nil {
				return 0, err
			}

			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}

	if err := out.Flush(); err != nil {
		return 0, err
	}

	return count, nil
}

func containsDigit(word string) bool {
	return strings.ContainsFunc(word, unicode.IsDigit)
}

func containsAny(word string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(word, token) {
			return true
		}
	}

	return false
}
