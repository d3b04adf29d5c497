package display

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultPrecision          = 8
	DefaultErrorText          = "Error"
	DefaultDivisionByZeroText = "Cannot divide by zero"

	scientificUpper = 1_000_000_000
	scientificLower = 0.00000001
)

// Options configures a Formatter. Blank texts and an undefined language fall
// back to the defaults; a negative Precision selects DefaultPrecision.
type Options struct {
	Language           language.Tag
	Precision          int
	ErrorText          string
	DivisionByZeroText string
}

// Formatter renders results and groups entry strings for one locale.
type Formatter struct {
	printer    *message.Printer
	decimalSep string
	precision  int
	errorText  string
	divZero    string
}

func NewFormatter(opts Options) *Formatter {
	tag := opts.Language
	if tag == language.Und {
		tag = language.English
	}
	if opts.Precision < 0 {
		opts.Precision = DefaultPrecision
	}
	if strings.TrimSpace(opts.ErrorText) == "" {
		opts.ErrorText = DefaultErrorText
	}
	if strings.TrimSpace(opts.DivisionByZeroText) == "" {
		opts.DivisionByZeroText = DefaultDivisionByZeroText
	}
	p := message.NewPrinter(tag)
	return &Formatter{
		printer:    p,
		decimalSep: decimalSeparator(p),
		precision:  opts.Precision,
		errorText:  opts.ErrorText,
		divZero:    opts.DivisionByZeroText,
	}
}

// Default is the English formatter with 8 fractional digits.
func Default() *Formatter {
	return NewFormatter(Options{Precision: DefaultPrecision})
}

func (f *Formatter) ErrorText() string          { return f.errorText }
func (f *Formatter) DivisionByZeroText() string { return f.divZero }
func (f *Formatter) Precision() int             { return f.precision }

// IsMarker reports whether s is one of the error markers.
func (f *Formatter) IsMarker(s string) bool {
	return s == f.errorText || s == f.divZero
}

// Result renders a computed value for the entry buffer. The output is plain
// ASCII ("-1234.5", "1.5e10") so it can be parsed back with strconv.
func (f *Formatter) Result(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return f.errorText
	}
	abs := math.Abs(v)
	if abs > scientificUpper || (abs != 0 && abs < scientificLower) {
		return f.scientific(v)
	}
	s := trimFraction(strconv.FormatFloat(v, 'f', f.precision, 64))
	if s == "-0" {
		return "0"
	}
	return s
}

func (f *Formatter) scientific(v float64) string {
	s := strconv.FormatFloat(v, 'e', f.precision, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return trimFraction(mantissa) + "e" + strconv.Itoa(n)
}

// Group inserts the locale's grouping separator into the integer portion of
// an entry string. The sign and the fractional digits are left alone;
// scientific strings and error markers pass through unchanged.
func (f *Formatter) Group(entry string) string {
	if f.IsMarker(entry) || strings.ContainsAny(entry, "eE") {
		return entry
	}
	body, negative := strings.CutPrefix(entry, "-")
	intPart, frac, hasPoint := strings.Cut(body, ".")

	grouped := intPart
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		grouped = f.printer.Sprintf("%d", n)
	} else if intPart == "" {
		grouped = "0"
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(grouped)
	if hasPoint {
		b.WriteString(f.decimalSep)
		b.WriteString(frac)
	}
	return b.String()
}

// Ungroup strips grouping separators from a displayed string and restores
// "." as the decimal point.
func (f *Formatter) Ungroup(shown string) string {
	if f.IsMarker(shown) || strings.ContainsAny(shown, "eE") {
		return shown
	}
	intPart, frac, hasPoint := strings.Cut(shown, f.decimalSep)
	var b strings.Builder
	for _, r := range intPart {
		if r == '-' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if hasPoint {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

func decimalSeparator(p *message.Printer) string {
	s := p.Sprint(number.Decimal(1.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	if len(s) >= 3 && strings.HasPrefix(s, "1") && strings.HasSuffix(s, "5") {
		return s[1 : len(s)-1]
	}
	return "."
}

func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
