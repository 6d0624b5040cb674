// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"errors"
	"math/big"
	"strings"
)

// DefaultEntry is the entry shown after a reset.
const DefaultEntry = "0"

// ErrInvalidDigit is returned by AddDigit for values outside 0-9.
var ErrInvalidDigit = errors.New("digit out of range")

// State is the calculator state derived from its fields.
type State int

const (
	StateIdle          State = iota // Nothing typed, no pending expression
	StateEnteringLeft               // Typing the first operand
	StatePendingOp                  // Operator chosen, right operand not started
	StateEnteringRight              // Typing the second operand
	StateResultShown                // Entry holds a finalized result
	StateError                      // Arithmetic fault on display
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateEnteringLeft:
		return "EnteringLeft"
	case StatePendingOp:
		return "PendingOp"
	case StateEnteringRight:
		return "EnteringRight"
	case StateResultShown:
		return "ResultShown"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Display is the visible state handed to a renderer after every event.
type Display struct {
	Entry            string
	Expression       string
	OperatorsEnabled bool
}

// pending is the stored left operand and operator awaiting a right operand.
type pending struct {
	left     float64
	leftText string
	op       Operator

	// leftInt is the exact left operand when it was entered without a point.
	leftInt *big.Int

	// rightText is set once "=" succeeds; the expression is then final.
	rightText string
	final     bool
}

func (p *pending) String() string {
	if p.final {
		return p.leftText + " " + string(p.op) + " " + p.rightText + " ="
	}
	return p.leftText + " " + string(p.op)
}

// Calculator is the input/display state machine. The zero value is not
// ready for use; call New.
//
// A Calculator is owned by a single event loop and is not safe for
// concurrent use.
type Calculator struct {
	entry       string
	pending     *pending
	resultShown bool
	errMsg      string

	// rightStarted marks that the right operand has been edited since the
	// operator was chosen.
	rightStarted bool
}

// New returns a calculator showing "0".
func New() *Calculator {
	return &Calculator{entry: DefaultEntry}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Entry returns the entry text (or the error message in the error state).
func (c *Calculator) Entry() string {
	if c.errMsg != "" {
		return c.errMsg
	}
	return c.entry
}

// Expression returns the pending-expression line, empty when none.
func (c *Calculator) Expression() string {
	if c.pending == nil {
		return ""
	}
	return c.pending.String()
}

// Err returns the active error message, empty when none.
func (c *Calculator) Err() string {
	return c.errMsg
}

// InError reports whether operator input is disabled by an arithmetic fault.
func (c *Calculator) InError() bool {
	return c.errMsg != ""
}

// ResultShown reports whether the entry holds a finalized result.
func (c *Calculator) ResultShown() bool {
	return c.resultShown
}

// Display returns the snapshot a renderer draws.
func (c *Calculator) Display() Display {
	return Display{
		Entry:            c.Entry(),
		Expression:       c.Expression(),
		OperatorsEnabled: !c.InError(),
	}
}

// State derives the current state.
func (c *Calculator) State() State {
	switch {
	case c.errMsg != "":
		return StateError
	case c.resultShown:
		return StateResultShown
	case c.pending == nil:
		if c.entry == DefaultEntry {
			return StateIdle
		}
		return StateEnteringLeft
	case c.rightStarted:
		return StateEnteringRight
	default:
		return StatePendingOp
	}
}

// =============================================================================
// ENTRY EDITOR
// =============================================================================

// AddDigit appends digit d (0-9) to the entry. A lone "0" is replaced
// rather than prefixed, and a shown result is replaced by a fresh entry.
func (c *Calculator) AddDigit(d int) error {
	if d < 0 || d > 9 {
		return ErrInvalidDigit
	}
	c.clearError()
	c.clearFinalExpression()
	c.startFreshAfterResult()

	digit := string(rune('0' + d))
	if c.entry == DefaultEntry {
		c.entry = digit
	} else {
		c.entry += digit
	}
	c.markRightStarted()
	return nil
}

// AddPoint appends a decimal point unless the entry already has one.
func (c *Calculator) AddPoint() {
	c.clearError()
	c.clearFinalExpression()
	c.startFreshAfterResult()

	if !strings.Contains(c.entry, ".") {
		c.entry += "."
	}
	c.markRightStarted()
}

// Negate toggles a leading minus sign. It does nothing on "0" and while an
// error is shown.
func (c *Calculator) Negate() {
	if c.InError() {
		return
	}
	c.clearFinalExpression()

	switch {
	case strings.HasPrefix(c.entry, "-"):
		c.entry = c.entry[1:]
	case c.entry != DefaultEntry:
		c.entry = "-" + c.entry
	}
}

// Backspace deletes the last entry character. Leaving the error state or
// dismissing a shown result resets the entry instead of deleting.
func (c *Calculator) Backspace() {
	if c.InError() {
		c.clearError()
		c.clearFinalExpression()
		return
	}
	c.clearFinalExpression()

	if c.resultShown {
		c.entry = DefaultEntry
		c.resultShown = false
		return
	}

	c.entry = c.entry[:len(c.entry)-1]
	if c.entry == "" || c.entry == "-" {
		c.entry = DefaultEntry
	}
	c.markRightStarted()
}

// ClearAll resets the calculator.
func (c *Calculator) ClearAll() {
	c.entry = DefaultEntry
	c.pending = nil
	c.resultShown = false
	c.errMsg = ""
	c.rightStarted = false
}

// =============================================================================
// OPERATORS AND EVALUATION
// =============================================================================

// ApplyOperator handles an operator key. With no pending expression, or
// with a finalized one, the entry becomes the left operand. Pressed again
// before "=", it only swaps the operator. Ignored in the error state.
func (c *Calculator) ApplyOperator(op Operator) {
	if c.InError() || !op.Valid() {
		return
	}

	if c.pending == nil || c.pending.final {
		left, err := parseEntry(c.entry)
		if err != nil {
			return
		}
		c.pending = &pending{
			left:     left,
			leftText: FormatNumber(left),
			op:       op,
		}
		if exact, ok := parseInteger(c.entry); ok {
			c.pending.leftInt = exact
		}
		c.entry = DefaultEntry
		c.rightStarted = false
	} else {
		c.pending.op = op
	}
	c.resultShown = false
}

// Calculate evaluates the pending expression with the entry as the right
// operand. On success the expression is finalized, the entry holds the
// result and the result string is returned with true. Division faults put
// the calculator in the error state. Without an open expression it does
// nothing.
func (c *Calculator) Calculate() (string, bool) {
	if c.InError() || c.pending == nil || c.pending.final {
		return "", false
	}

	right, err := parseEntry(c.entry)
	if err != nil {
		return "", false
	}

	value, known, err := c.evaluate(right)
	if !known {
		return "", false
	}
	if err != nil {
		var arith *ArithmeticError
		if errors.As(err, &arith) {
			c.showError(arith.Message)
		}
		return "", false
	}

	result := FormatNumber(value)
	c.pending.rightText = c.entry
	c.pending.final = true
	c.entry = result
	c.resultShown = true
	c.rightStarted = false
	return result, true
}

// evaluate uses exact integer arithmetic when both operands were entered
// without a point, and float arithmetic otherwise. Division is always float.
func (c *Calculator) evaluate(right float64) (float64, bool, error) {
	if c.pending.leftInt != nil {
		if rightInt, ok := parseInteger(c.entry); ok {
			if value, known, err := evaluateExact(c.pending.leftInt, c.pending.op, rightInt); known {
				return value, known, err
			}
		}
	}
	return Evaluate(c.pending.left, c.pending.op, right)
}

// =============================================================================
// INTERNAL TRANSITIONS
// =============================================================================

func (c *Calculator) showError(msg string) {
	c.errMsg = msg
}

// clearError leaves the error state with a "0" entry.
func (c *Calculator) clearError() {
	if c.errMsg == "" {
		return
	}
	c.errMsg = ""
	c.entry = DefaultEntry
}

// clearFinalExpression drops a finalized "a op b =" line once the user
// starts editing again.
func (c *Calculator) clearFinalExpression() {
	if c.pending != nil && c.pending.final {
		c.pending = nil
	}
}

func (c *Calculator) startFreshAfterResult() {
	if c.resultShown {
		c.entry = DefaultEntry
		c.resultShown = false
	}
}

func (c *Calculator) markRightStarted() {
	if c.pending != nil && !c.pending.final {
		c.rightStarted = true
	}
}
