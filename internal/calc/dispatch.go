// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Event names accepted by Dispatch, besides the digits "0" to "9" and the
// operator symbols.
const (
	EventPoint     = "."
	EventNegate    = "neg"
	EventBackspace = "back"
	EventClear     = "clear"
	EventEquals    = "="
)

// ErrUnknownEvent is returned by Dispatch for an unregistered event name.
var ErrUnknownEvent = errors.New("unknown event")

// handlers maps event names to state-machine operations. Button wiring in
// any front end reduces to a lookup in this table.
var handlers = map[string]func(c *Calculator){
	EventPoint:     (*Calculator).AddPoint,
	EventNegate:    (*Calculator).Negate,
	EventBackspace: (*Calculator).Backspace,
	EventClear:     (*Calculator).ClearAll,
	EventEquals:    func(c *Calculator) { c.Calculate() },
}

// aliases maps alternative key names to canonical event names.
var aliases = map[string]string{
	"n":         EventNegate,
	"±":         EventNegate,
	"negate":    EventNegate,
	"c":         EventClear,
	"esc":       EventClear,
	"<":         EventBackspace,
	"backspace": EventBackspace,
	"x":         string(Mul),
	"×":         string(Mul),
	"÷":         string(Div),
	"enter":     EventEquals,
	",":         EventPoint,
}

func init() {
	for d := 0; d <= 9; d++ {
		digit := d
		handlers[string(rune('0'+d))] = func(c *Calculator) { _ = c.AddDigit(digit) }
	}
	for _, op := range Operators {
		operator := op
		handlers[string(op)] = func(c *Calculator) { c.ApplyOperator(operator) }
	}
}

// Canonical resolves an alias to its event name.
func Canonical(event string) string {
	if name, ok := aliases[strings.ToLower(event)]; ok {
		return name
	}
	return event
}

// IsOperatorEvent reports whether event is disabled in the error state.
func IsOperatorEvent(event string) bool {
	event = Canonical(event)
	if event == EventEquals {
		return true
	}
	_, ok := ParseOperator(event)
	return ok
}

// Dispatch applies one named event.
func (c *Calculator) Dispatch(event string) error {
	h, ok := handlers[Canonical(event)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	h(c)
	return nil
}

// Run dispatches events in order, stopping at the first unknown one.
func (c *Calculator) Run(events ...string) error {
	for _, e := range events {
		if err := c.Dispatch(e); err != nil {
			return err
		}
	}
	return nil
}

// ParseKeys splits a compact key string such as "12+3=" or "5 / 0 =" into
// event names. Words ("neg", "back", "clear", "enter", ...) are kept whole;
// every other non-space rune is one event.
func ParseKeys(s string) []string {
	var events []string
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			continue
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			events = append(events, splitWord(string(runes[i:j]))...)
			i = j - 1
		default:
			events = append(events, string(r))
		}
	}
	return events
}

// splitWord keeps known multi-letter event names whole and splits anything
// else into single-letter keys.
func splitWord(word string) []string {
	lower := strings.ToLower(word)
	if _, ok := handlers[lower]; ok {
		return []string{lower}
	}
	if _, ok := aliases[lower]; ok {
		return []string{lower}
	}
	out := make([]string, 0, len(word))
	for _, r := range lower {
		out = append(out, string(r))
	}
	return out
}
