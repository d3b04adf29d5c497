package calc

import "fmt"

// Mode decides whether the next digit appends to the entry or starts a new one.
type Mode int

const (
	EnteringNumber Mode = iota
	OperatorSelected
	ShowingResult
)

func (m Mode) String() string {
	switch m {
	case EnteringNumber:
		return "entering"
	case OperatorSelected:
		return "operator"
	case ShowingResult:
		return "result"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// restartsEntry reports whether a digit or decimal point should start a
// fresh entry buffer.
func (m Mode) restartsEntry() bool {
	switch m {
	case OperatorSelected, ShowingResult:
		return true
	case EnteringNumber:
		return false
	}
	return false
}
