// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package currency

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jeranaias/pocketkit/internal/calc"
)

// Messages printed by the session.
const (
	Banner = "Hello! Commands:\n" +
		"- list: show available currencies\n" +
		"- rate: show exchange rate between two currencies\n" +
		"- convert: convert an amount\n" +
		"- q: quit\n"

	PromptCommand    = "Enter a command (q to quit): "
	PromptHave       = "Enter a currency you have: "
	PromptWant       = "Enter a currency you want to get: "
	PromptConvertTo  = "Enter a currency to convert to: "
	promptAmountFmt  = "Enter an amount in %s: "
	MsgMissingAPIKey = "CURRENCY_API_KEY is not set. Export it or put it in your .env."
	MsgEmpty         = "Invalid currencies or empty response."
	MsgUnsupported   = "Invalid currencies or unsupported pair."
	MsgInvalidAmount = "Invalid amount."
	MsgUnrecognized  = "Unrecognized command."
	MsgParseFailure  = "Failed to parse API response."
)

// LineReader reads one line of input after showing a prompt. It returns
// io.EOF when input ends. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// API is the part of Client a Session uses.
type API interface {
	Currencies(ctx context.Context) ([]Currency, error)
	Rate(ctx context.Context, from, to string) (Rate, error)
}

// Session is the interactive converter loop.
type Session struct {
	api   API
	in    LineReader
	out   io.Writer
	cache []Currency
}

// NewSession creates a session reading commands from in and printing to out.
func NewSession(api API, in LineReader, out io.Writer) *Session {
	return &Session{api: api, in: in, out: out}
}

// Run prints the banner and handles commands until "q" or end of input.
// A missing API key ends the session with ErrMissingAPIKey; every other
// API failure is reported and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprint(s.out, Banner+"\n")

	for {
		line, err := s.in.Prompt(PromptCommand)
		if err != nil {
			return endOfInput(err)
		}

		err = s.handle(ctx, strings.ToLower(strings.TrimSpace(line)))
		var inErr *inputError
		switch {
		case errors.Is(err, errQuit):
			return nil
		case errors.As(err, &inErr):
			return endOfInput(inErr.err)
		case errors.Is(err, ErrMissingAPIKey):
			fmt.Fprintln(s.out, MsgMissingAPIKey)
			return err
		case err != nil && ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			s.report(err)
		}
	}
}

var errQuit = errors.New("quit")

func (s *Session) handle(ctx context.Context, command string) error {
	switch command {
	case "q":
		return errQuit
	case "list":
		return s.list(ctx)
	case "rate":
		return s.rate(ctx)
	case "convert":
		return s.convert(ctx)
	default:
		fmt.Fprintln(s.out, MsgUnrecognized)
		return nil
	}
}

func (s *Session) list(ctx context.Context) error {
	if s.cache == nil {
		currencies, err := s.api.Currencies(ctx)
		if err != nil {
			return err
		}
		s.cache = currencies
	}
	for _, c := range s.cache {
		fmt.Fprintf(s.out, "%s - %s - %s\n", c.ID, c.Name, c.Symbol)
	}
	return nil
}

func (s *Session) rate(ctx context.Context) error {
	from, err := s.ask(PromptHave)
	if err != nil {
		return err
	}
	to, err := s.ask(PromptConvertTo)
	if err != nil {
		return err
	}
	_, err = s.fetchRate(ctx, NormalizeCode(from), NormalizeCode(to))
	return err
}

func (s *Session) convert(ctx context.Context) error {
	from, err := s.ask(PromptHave)
	if err != nil {
		return err
	}
	from = NormalizeCode(from)
	amountText, err := s.ask(fmt.Sprintf(promptAmountFmt, from))
	if err != nil {
		return err
	}
	to, err := s.ask(PromptWant)
	if err != nil {
		return err
	}
	to = NormalizeCode(to)

	r, err := s.fetchRate(ctx, from, to)
	if err != nil {
		return err
	}
	if r == nil {
		return nil
	}

	amount, err := ParseAmount(amountText)
	if err != nil {
		fmt.Fprintln(s.out, MsgInvalidAmount)
		return nil
	}
	rateValue, err := r.Float()
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s %s is equal to %.4f %s\n", calc.Repr(amount), from, rateValue*amount, to)
	return nil
}

// fetchRate prints the rate line. A nil Rate with a nil error means the
// service had no usable answer and a message was already printed.
func (s *Session) fetchRate(ctx context.Context, from, to string) (*Rate, error) {
	r, err := s.api.Rate(ctx, from, to)
	switch {
	case errors.Is(err, ErrEmptyResponse):
		fmt.Fprintln(s.out, MsgEmpty)
		return nil, nil
	case errors.Is(err, ErrUnsupportedPair):
		fmt.Fprintln(s.out, MsgUnsupported)
		return nil, nil
	case err != nil:
		return nil, err
	}
	value, err := r.Float()
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(s.out, "%s -> %s = %s\n", from, to, calc.Repr(value))
	return &r, nil
}

// ParseAmount parses a decimal amount. Underscores are accepted between
// digits ("1_000"); hexadecimal forms such as "0x1p3" are rejected.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	if strings.Contains(s, "_") {
		var b strings.Builder
		for i := 0; i < len(s); i++ {
			if s[i] != '_' {
				b.WriteByte(s[i])
				continue
			}
			if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
				return 0, fmt.Errorf("invalid amount %q", s)
			}
		}
		s = b.String()
	}
	return strconv.ParseFloat(s, 64)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ask prompts for a sub-command answer, trimmed.
func (s *Session) ask(prompt string) (string, error) {
	line, err := s.in.Prompt(prompt)
	if err != nil {
		return "", &inputError{err}
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) report(err error) {
	if errors.Is(err, ErrMalformedResponse) {
		fmt.Fprintln(s.out, MsgParseFailure)
		return
	}
	fmt.Fprintf(s.out, "Network/API error: %v\n", err)
}

// inputError carries a read failure out of a command handler.
type inputError struct{ err error }

func (e *inputError) Error() string { return "read input: " + e.err.Error() }

func (e *inputError) Unwrap() error { return e.err }

// endOfInput treats the end of input as a normal quit and passes other read
// errors through.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
