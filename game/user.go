package game

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// UserToken is the 64-bit identifier a client generates for itself,
// transmitted as 16 lowercase hex digits. It is unforgeable by length,
// not authenticated.
type UserToken uint64

// RandomToken draws a uniformly random token via crypto/rand.
func RandomToken() UserToken {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("crypto/rand failure: " + err.Error())
	}

	return UserToken(binary.BigEndian.Uint64(buf[:]))
}

var ErrTokenLength = errors.New("user token must be 16 characters long")

func ParseToken(s string) (UserToken, error) {
	if len(s) != 16 {
		return 0, ErrTokenLength
	}

	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user token: %w", err)
	}

	return UserToken(n), nil
}

func (t UserToken) String() string {
	return fmt.Sprintf("%016x", uint64(t))
}

// Hashed maps the token through the SplitMix64 finalizer, a fixed 64-bit
// permutation. The result announces ownership to other players without
// revealing the owner's raw token.
func (t UserToken) Hashed() UserToken {
	z := uint64(t)
	z ^= z >> 30
	z *= 0xbf58476d1ce4e9b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31

	return UserToken(z)
}

func (t UserToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *UserToken) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseToken(s)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// User identifies one connected player.
type User struct {
	Nickname string    `json:"nickname"`
	Token    UserToken `json:"token"`
}
