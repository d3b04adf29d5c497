package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/jask/jaskcalc/internal/display"
)

const (
	DefaultMaxDigits = 10

	labelAllClear = "AC"
	labelClear    = "C"
)

// Options configures an Engine. A nil Formatter selects display.Default.
type Options struct {
	MaxDigits int
	Formatter *display.Formatter
}

// Snapshot is the presenter-facing state after a command.
type Snapshot struct {
	Display    string
	Expression string
	ClearLabel string
	Mode       Mode
	Pending    Operator
	Faulted    bool
}

// Engine holds one accumulated value, one pending operator and one
// in-progress entry. It is not safe for concurrent use.
type Engine struct {
	format    *display.Formatter
	maxDigits int

	entry       string
	hasPoint    bool
	accumulator float64
	last        float64
	pending     Operator
	mode        Mode
	expression  string
	// faulted is set while entry holds an error marker instead of a number.
	faulted bool
}

func New(opts Options) *Engine {
	if opts.MaxDigits < 1 {
		opts.MaxDigits = DefaultMaxDigits
	}
	if opts.Formatter == nil {
		opts.Formatter = display.Default()
	}
	e := &Engine{format: opts.Formatter, maxDigits: opts.MaxDigits}
	e.reset()
	return e
}

// InputDigit appends d (0-9) to the entry, starting a new entry after an
// operator or result.
func (e *Engine) InputDigit(d int) Snapshot {
	if d < 0 || d > 9 {
		return e.Snapshot()
	}
	e.beginEntry()
	digit := strconv.Itoa(d)
	switch {
	case (e.entry == "0" || e.entry == "-0") && !e.hasPoint:
		e.entry = strings.TrimSuffix(e.entry, "0") + digit
	case len(e.entry) < e.maxDigits:
		e.entry += digit
	}
	return e.Snapshot()
}

// InputDecimalPoint appends "." unless the decimal flag is already set. The
// flag survives a result with a point, so "." right after "4.5" is ignored.
func (e *Engine) InputDecimalPoint() Snapshot {
	if e.hasPoint {
		return e.Snapshot()
	}
	e.beginEntry()
	e.entry += "."
	e.hasPoint = true
	return e.Snapshot()
}

// InputOperator selects op as the pending operator. A pending operator
// already waiting on a completed entry is applied first.
func (e *Engine) InputOperator(op Operator) Snapshot {
	if e.faulted {
		e.entry = "0"
		e.faulted = false
	}
	current := e.value()

	switch {
	case e.mode == OperatorSelected:
		e.pending = op
		e.refreshExpression()
		return e.Snapshot()
	case e.mode == ShowingResult:
		e.accumulator = e.last
	case e.pending != None:
		result, err := e.apply(current)
		if err != nil {
			e.fail(err)
			return e.Snapshot()
		}
		e.showResult(result)
		e.accumulator = result
	default:
		e.last = current
		e.accumulator = current
	}

	e.pending = op
	e.mode = OperatorSelected
	e.hasPoint = false
	e.refreshExpression()
	return e.Snapshot()
}

// Calculate completes the pending operation ("=").
func (e *Engine) Calculate() Snapshot {
	current := e.value()
	if e.pending == None {
		e.last = current
		e.mode = ShowingResult
		return e.Snapshot()
	}

	result, err := e.apply(current)
	if err != nil {
		e.fail(err)
		return e.Snapshot()
	}
	e.showResult(result)
	e.expression += " = " + e.entry
	e.mode = ShowingResult
	e.pending = None
	e.hasPoint = strings.Contains(e.entry, ".")
	return e.Snapshot()
}

func (e *Engine) AllClear() Snapshot {
	e.reset()
	return e.Snapshot()
}

// Clear resets the entry only, or everything when a result is showing.
func (e *Engine) Clear() Snapshot {
	if e.mode == ShowingResult {
		e.reset()
		return e.Snapshot()
	}
	e.entry = "0"
	e.hasPoint = false
	e.faulted = false
	return e.Snapshot()
}

// ClearKey is the combined AC/C key: it does whatever ClearLabel advertises.
func (e *Engine) ClearKey() Snapshot {
	if e.ClearLabel() == labelAllClear {
		return e.AllClear()
	}
	return e.Clear()
}

func (e *Engine) Backspace() Snapshot {
	if e.mode == ShowingResult {
		return e.Snapshot()
	}
	if e.faulted {
		return e.Clear()
	}
	if len(e.entry) <= 1 {
		e.entry = "0"
		return e.Snapshot()
	}
	dropped := e.entry[len(e.entry)-1]
	e.entry = e.entry[:len(e.entry)-1]
	if dropped == '.' {
		e.hasPoint = false
	}
	if e.entry == "-" {
		e.entry = "0"
	}
	return e.Snapshot()
}

// ToggleSign flips the sign of the entry. Leaving a result keeps both the
// entry and the pending operator so the result can be edited further.
func (e *Engine) ToggleSign() Snapshot {
	if e.entry == "0" || e.faulted {
		return e.Snapshot()
	}
	if e.mode == ShowingResult {
		e.mode = EnteringNumber
	}
	if rest, ok := strings.CutPrefix(e.entry, "-"); ok {
		e.entry = rest
	} else {
		e.entry = "-" + e.entry
	}
	return e.Snapshot()
}

// Display is the grouped entry buffer.
func (e *Engine) Display() string {
	return e.format.Group(e.entry)
}

func (e *Engine) Expression() string {
	return e.expression
}

// ClearLabel is "AC" when nothing has been entered, otherwise "C".
func (e *Engine) ClearLabel() string {
	if e.Display() == "0" && e.expression == "" {
		return labelAllClear
	}
	return labelClear
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Display:    e.Display(),
		Expression: e.expression,
		ClearLabel: e.ClearLabel(),
		Mode:       e.mode,
		Pending:    e.pending,
		Faulted:    e.faulted,
	}
}

// Entry is the raw, ungrouped entry buffer.
func (e *Engine) Entry() string {
	return e.entry
}

func (e *Engine) beginEntry() {
	if !e.faulted && !e.mode.restartsEntry() {
		return
	}
	e.entry = "0"
	e.faulted = false
	e.mode = EnteringNumber
}

func (e *Engine) value() float64 {
	if e.faulted {
		return 0
	}
	v, err := strconv.ParseFloat(e.entry, 64)
	if err != nil {
		return 0
	}
	return v
}

// apply runs the pending operator against the accumulator. Results that
// overflow to infinity or are NaN fail like a division by zero.
func (e *Engine) apply(current float64) (float64, error) {
	result, err := Apply(e.pending, e.accumulator, current)
	if err != nil {
		return 0, err
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, errNotFinite
	}
	return result, nil
}

func (e *Engine) showResult(v float64) {
	e.last = v
	e.entry = e.format.Result(v)
}

// fail resets everything, then leaves the error marker in the entry until
// the next input replaces it. Division by zero gets its own marker.
func (e *Engine) fail(err error) {
	e.reset()
	if errors.Is(err, ErrDivisionByZero) {
		e.entry = e.format.DivisionByZeroText()
	} else {
		e.entry = e.format.ErrorText()
	}
	e.faulted = true
}

func (e *Engine) refreshExpression() {
	e.expression = e.entry + e.pending.Symbol()
}

func (e *Engine) reset() {
	e.accumulator = 0
	e.last = 0
	e.pending = None
	e.mode = EnteringNumber
	e.entry = "0"
	e.hasPoint = false
	e.expression = ""
	e.faulted = false
}
