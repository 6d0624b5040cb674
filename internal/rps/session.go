// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rps

import (
	"errors"
	"fmt"
	"io"
)

// Prompt and messages printed by the session.
const (
	PromptMove = "Type Rock/Paper/Scissors (Q to quit): "
	MsgInvalid = "Invalid choice. Try again."
)

// LineReader reads one line of input after showing a prompt and returns
// io.EOF when input ends.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Session is the game loop.
type Session struct {
	in      LineReader
	out     io.Writer
	chooser Chooser
	score   Scoreboard
}

// NewSession creates a game reading moves from in. A nil chooser means a
// clock-seeded RandomChooser.
func NewSession(in LineReader, out io.Writer, chooser Chooser) *Session {
	if chooser == nil {
		chooser = NewRandomChooser(0)
	}
	return &Session{in: in, out: out, chooser: chooser}
}

// Score returns the current scoreboard.
func (s *Session) Score() Scoreboard {
	return s.score
}

// Run plays rounds until the user quits or input ends, then prints the
// final score. Read errors other than io.EOF are returned after the final
// score is printed.
func (s *Session) Run() error {
	var runErr error
	for {
		user, err := s.readMove()
		if err != nil {
			if !errors.Is(err, ErrQuit) && !errors.Is(err, io.EOF) {
				runErr = err
			}
			break
		}
		s.Play(user)
	}

	fmt.Fprintln(s.out, "Final score:")
	fmt.Fprintf(s.out, "You won %d times.\n", s.score.User)
	fmt.Fprintf(s.out, "Computer won %d times.\n", s.score.Computer)
	return runErr
}

// Play runs one round against the chooser and prints the result.
func (s *Session) Play(user Move) Outcome {
	computer := s.chooser.Choose()
	fmt.Fprintf(s.out, "Computer picked: %s\n", computer)

	outcome := Winner(user, computer)
	fmt.Fprintln(s.out, outcome)
	s.score.Record(outcome)

	fmt.Fprintf(s.out, "Score: You %d - Computer %d\n\n", s.score.User, s.score.Computer)
	return outcome
}

// readMove prompts until a valid move, quit or a read error.
func (s *Session) readMove() (Move, error) {
	for {
		line, err := s.in.Prompt(PromptMove)
		if err != nil {
			return "", err
		}
		move, err := ParseMove(line)
		if errors.Is(err, ErrInvalidMove) {
			fmt.Fprintln(s.out, MsgInvalid)
			continue
		}
		return move, err
	}
}
