// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"math"
	"math/big"
)

// Operator is a binary arithmetic operator.
type Operator string

const (
	Add Operator = "+"
	Sub Operator = "-"
	Mul Operator = "*"
	Div Operator = "/"
)

// Operators lists the supported operators in keypad order.
var Operators = []Operator{Add, Sub, Mul, Div}

// ParseOperator returns the operator for symbol s.
func ParseOperator(s string) (Operator, bool) {
	switch Operator(s) {
	case Add, Sub, Mul, Div:
		return Operator(s), true
	}
	return "", false
}

// Valid reports whether o is one of the supported operators.
func (o Operator) Valid() bool {
	_, ok := ParseOperator(string(o))
	return ok
}

// Display messages shown in place of the entry on an arithmetic fault.
const (
	MsgDivisionByZero = "Division by zero"
	MsgUndefined      = "Result is undefined"
	MsgOverflow       = "Overflow"
)

// ArithmeticError is a fault raised while evaluating an expression.
// Message is the text the display shows in place of the entry.
type ArithmeticError struct {
	Message string
}

func (e *ArithmeticError) Error() string {
	return e.Message
}

// Evaluation faults.
var (
	ErrDivisionByZero = &ArithmeticError{Message: MsgDivisionByZero}
	ErrUndefined      = &ArithmeticError{Message: MsgUndefined}
	ErrOverflow       = &ArithmeticError{Message: MsgOverflow}
)

// Evaluate computes left op right. Division always yields a float
// quotient; 0/0 is ErrUndefined and x/0 is ErrDivisionByZero. The boolean
// is false for an unknown operator.
func Evaluate(left float64, op Operator, right float64) (float64, bool, error) {
	var result float64
	switch op {
	case Add:
		result = left + right
	case Sub:
		result = left - right
	case Mul:
		result = left * right
	case Div:
		if right == 0 {
			if left == 0 {
				return 0, true, ErrUndefined
			}
			return 0, true, ErrDivisionByZero
		}
		result = left / right
	default:
		return 0, false, nil
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, true, ErrOverflow
	}
	return result, true, nil
}

// evaluateExact computes + - * on integer operands without rounding and
// converts the result to float64 once. Division and unknown operators
// report false so the caller falls back to Evaluate.
func evaluateExact(left *big.Int, op Operator, right *big.Int) (float64, bool, error) {
	r := new(big.Int)
	switch op {
	case Add:
		r.Add(left, right)
	case Sub:
		r.Sub(left, right)
	case Mul:
		r.Mul(left, right)
	default:
		return 0, false, nil
	}

	f, _ := new(big.Float).SetInt(r).Float64()
	if math.IsInf(f, 0) {
		return 0, true, ErrOverflow
	}
	return f, true, nil
}
