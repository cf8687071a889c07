// Package session keeps per-session identity, the counterpart of browser
// session storage. Nothing is persisted beyond the running process.
package session

import (
	"errors"
	"os"
	"strings"
	"unicode/utf8"
)

// PlayerEnv pre-fills the player name, skipping the entry screen.
const PlayerEnv = "LANES_PLAYER"

// MaxNameLength is the longest accepted player name, in runes.
const MaxNameLength = 20

var (
	ErrEmptyName   = errors.New("player name is empty")
	ErrNameTooLong = errors.New("player name is too long")
)

// Store holds the player name of the running session.
type Store struct {
	player string
	set    bool
}

func NewStore() *Store {
	return &Store{}
}

// FromEnv returns a store pre-filled from PlayerEnv, if it holds a valid name.
func FromEnv() *Store {
	s := NewStore()
	if name := os.Getenv(PlayerEnv); name != "" {
		_ = s.SetPlayerName(name)
	}
	return s
}

// SetPlayerName validates and stores name. Surrounding spaces are trimmed.
func (s *Store) SetPlayerName(name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return ErrEmptyName
	case utf8.RuneCountInString(name) > MaxNameLength:
		return ErrNameTooLong
	}
	s.player = name
	s.set = true
	return nil
}

// PlayerName implements interfaces.Identity.
func (s *Store) PlayerName() (string, bool) {
	return s.player, s.set
}

// Clear forgets the player, like closing the browser tab.
func (s *Store) Clear() {
	s.player = ""
	s.set = false
}
