// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rps

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Move is one of the three hand shapes.
type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
)

// Moves lists the valid moves in a fixed order.
var Moves = []Move{Rock, Paper, Scissors}

// beats maps each move to the move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// Outcome is the result of a round from the user's side.
type Outcome int

const (
	Tie Outcome = iota
	Win
	Lose
)

// String returns the line printed for the outcome.
func (o Outcome) String() string {
	switch o {
	case Win:
		return "You won!"
	case Lose:
		return "You lost!"
	default:
		return "It's a tie!"
	}
}

// Winner decides a round.
func Winner(user, computer Move) Outcome {
	switch {
	case user == computer:
		return Tie
	case beats[user] == computer:
		return Win
	default:
		return Lose
	}
}

var (
	// ErrQuit is returned by ParseMove for the quit command.
	ErrQuit = errors.New("quit")

	// ErrInvalidMove is returned by ParseMove for anything else.
	ErrInvalidMove = errors.New("invalid move")
)

// ParseMove reads a move from user input. Input is NFKC-normalized,
// trimmed and lower-cased, so "  ROCK " and fullwidth "ｒｏｃｋ" both work.
// "q" yields ErrQuit.
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
	if s == "q" {
		return "", ErrQuit
	}
	for _, m := range Moves {
		if s == string(m) {
			return m, nil
		}
	}
	return "", ErrInvalidMove
}

// Chooser picks the computer's move.
type Chooser interface {
	Choose() Move
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func() Move

// Choose calls f.
func (f ChooserFunc) Choose() Move { return f() }

// RandomChooser picks uniformly among Moves.
type RandomChooser struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomChooser returns a chooser seeded with seed, or with the clock
// when seed is zero.
func NewRandomChooser(seed int64) *RandomChooser {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomChooser{rng: rand.New(rand.NewSource(seed))}
}

// Choose implements Chooser.
func (c *RandomChooser) Choose() Move {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Moves[c.rng.Intn(len(Moves))]
}

// Scoreboard counts rounds won by each side. Ties are not counted.
type Scoreboard struct {
	User     int
	Computer int
}

// Record adds the outcome of one round.
func (s *Scoreboard) Record(o Outcome) {
	switch o {
	case Win:
		s.User++
	case Lose:
		s.Computer++
	}
}
