package game

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// GameCode is the two-byte room identifier, rendered as exactly four
// uppercase hex digits. Parsing is case-insensitive.
type GameCode uint16

var ErrCodeLength = errors.New("game code must be 4 characters long")

// RandomCode draws a uniformly random code via crypto/rand.
func RandomCode() GameCode {
	var buf [2]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("crypto/rand failure: " + err.Error())
	}

	return GameCode(binary.BigEndian.Uint16(buf[:]))
}

func ParseCode(s string) (GameCode, error) {
	if len(s) != 4 {
		return 0, ErrCodeLength
	}

	n, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid game code: %w", err)
	}

	return GameCode(n), nil
}

func (c GameCode) String() string {
	return fmt.Sprintf("%04X", uint16(c))
}

func (c GameCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *GameCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseCode(s)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
