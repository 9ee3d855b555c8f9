package smartledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CueLevel grades the sensory feedback emitted by the keypad.
type CueLevel int

const (
	CueLight  CueLevel = iota // ordinary keystroke
	CueMedium                 // backspace
	CueHeavy                  // completion
)

// CueSink receives sensory cues from the keypad. Implementations decide what
// a cue means on their platform (haptics, sound, a terminal bell, nothing).
type CueSink interface {
	Cue(CueLevel)
}

// DefaultSettleDelay is the pause between the completion cue and the amount
// being returned, so the final display state is perceivable.
const DefaultSettleDelay = 600 * time.Millisecond

// Keypad builds an arithmetic expression one keystroke at a time and keeps
// an always-current minor-unit amount for it. Keys are the digits, "00",
// ".", and the four operators. Invalid keystrokes are rejected without side
// effects.
type Keypad struct {
	expr     strings.Builder
	onChange func(int64)
	cues     CueSink
	settle   time.Duration
}

// NewKeypad returns an empty keypad with the default settle delay.
func NewKeypad() *Keypad {
	return &Keypad{settle: DefaultSettleDelay}
}

// OnChange registers the callback fired with the new amount after every
// accepted keystroke.
func (k *Keypad) OnChange(fn func(int64)) { k.onChange = fn }

// SetCues registers the sensory cue sink.
func (k *Keypad) SetCues(c CueSink) { k.cues = c }

// SetSettleDelay overrides the completion settle delay. Zero disables it.
func (k *Keypad) SetSettleDelay(d time.Duration) { k.settle = d }

// Expression returns the raw expression as typed so far.
func (k *Keypad) Expression() string { return k.expr.String() }

// Amount evaluates the current expression to minor units.
func (k *Keypad) Amount() int64 { return Evaluate(k.expr.String()) }

func (k *Keypad) cue(level CueLevel) {
	if k.cues != nil {
		k.cues.Cue(level)
	}
}

func (k *Keypad) changed() {
	if k.onChange != nil {
		k.onChange(k.Amount())
	}
}

func isOperator(key string) bool {
	return key == "+" || key == "-" || key == "*" || key == "/"
}

// segment returns the expression text since the last operator.
func (k *Keypad) segment() string {
	s := k.expr.String()
	if i := strings.LastIndexAny(s, "+-*/"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Press handles one keystroke and reports whether it was accepted. An
// operator pressed after an operator replaces it; a leading minus opens a
// negative amount; a decimal point is rejected if the current numeric
// segment already holds one.
func (k *Keypad) Press(key string) bool {
	s := k.expr.String()
	switch {
	case isOperator(key):
		if s != "" && isOperator(string(s[len(s)-1])) {
			k.expr.Reset()
			k.expr.WriteString(s[:len(s)-1])
		}
		k.expr.WriteString(key)
	case key == ".":
		if strings.Contains(k.segment(), ".") {
			return false
		}
		k.expr.WriteString(key)
	case key == "00" || (len(key) == 1 && key[0] >= '0' && key[0] <= '9'):
		k.expr.WriteString(key)
	default:
		return false
	}
	k.cue(CueLight)
	k.changed()
	return true
}

// PressSequence presses each rune of s in order and returns how many were
// accepted. It understands only single-rune keys; "00" is just two zeros.
func (k *Keypad) PressSequence(s string) int {
	n := 0
	for _, r := range s {
		if k.Press(string(r)) {
			n++
		}
	}
	return n
}

// Backspace removes the last character. It does nothing on an empty
// expression.
func (k *Keypad) Backspace() {
	s := k.expr.String()
	if s == "" {
		return
	}
	k.expr.Reset()
	k.expr.WriteString(s[:len(s)-1])
	k.cue(CueMedium)
	k.changed()
}

// Clear resets the expression.
func (k *Keypad) Clear() {
	k.expr.Reset()
	k.cue(CueLight)
	k.changed()
}

// Seed replaces the expression with the plain decimal text of the given
// minor-unit amount. Used when an existing record is opened for edition; the
// sign is dropped, signs are owned by the normalizer.
func (k *Keypad) Seed(minor int64) {
	k.expr.Reset()
	k.expr.WriteString(decimal.NewFromInt(minor).Abs().Shift(-2).String())
	k.changed()
}

// Complete emits the heavy cue, waits the settle delay and returns the final
// amount. The expression is left untouched so the caller can still read it.
func (k *Keypad) Complete() int64 {
	k.cue(CueHeavy)
	if k.settle > 0 {
		time.Sleep(k.settle)
	}
	return k.Amount()
}
