package calc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDivisionByZero is returned by Apply when the right operand of Divide is 0.
var ErrDivisionByZero = errors.New("division by zero")

var errNotFinite = errors.New("result is not finite")

// Operator is the pending binary operation.
type Operator int

const (
	None Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

// Operators lists the selectable operators in keypad order.
var Operators = []Operator{Add, Subtract, Multiply, Divide}

func (o Operator) String() string {
	switch o {
	case None:
		return "none"
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	}
	return fmt.Sprintf("operator(%d)", int(o))
}

// Symbol is the glyph shown in the expression preview.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	}
	return ""
}

// ParseOperator accepts an operator name or symbol ("add", "+", "x", "÷", ...).
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "plus", "+":
		return Add, nil
	case "subtract", "sub", "minus", "-":
		return Subtract, nil
	case "multiply", "mul", "times", "*", "x", "×":
		return Multiply, nil
	case "divide", "div", "/", "÷":
		return Divide, nil
	case "none", "":
		return None, nil
	}
	return None, fmt.Errorf("unknown operator %q", s)
}

// Apply evaluates a op b. None yields b unchanged.
func Apply(op Operator, a, b float64) (float64, error) {
	switch op {
	case None:
		return b, nil
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("apply: unknown operator %d", int(op))
}
