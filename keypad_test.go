package smartledger

import "testing"

type recordingCues struct {
	levels []CueLevel
}

func (r *recordingCues) Cue(l CueLevel) { r.levels = append(r.levels, l) }

func newTestKeypad() (*Keypad, *recordingCues, *[]int64) {
	k := NewKeypad()
	k.SetSettleDelay(0)
	cues := &recordingCues{}
	k.SetCues(cues)
	amounts := &[]int64{}
	k.OnChange(func(a int64) { *amounts = append(*amounts, a) })
	return k, cues, amounts
}

func press(t *testing.T, k *Keypad, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if !k.Press(key) {
			t.Fatalf("Press(%q) rejected, expression %q", key, k.Expression())
		}
	}
}

func TestKeypadTyping(t *testing.T) {
	k, _, _ := newTestKeypad()
	press(t, k, "1", "2", ".", "5", "+", "7", ".", "5")
	if got, want := k.Expression(), "12.5+7.5"; got != want {
		t.Fatalf("Expression() = %q, want %q", got, want)
	}
	if got := k.Amount(); got != 2000 {
		t.Errorf("Amount() = %d, want 2000", got)
	}
}

func TestKeypadDoubleZeroKey(t *testing.T) {
	k, _, _ := newTestKeypad()
	press(t, k, "5", "00")
	if got, want := k.Expression(), "500"; got != want {
		t.Errorf("Expression() = %q, want %q", got, want)
	}
}

func TestKeypadOperatorRules(t *testing.T) {
	k, _, _ := newTestKeypad()

	press(t, k, "1", "+")
	// A second operator replaces the trailing one.
	press(t, k, "*")
	if got, want := k.Expression(), "1*"; got != want {
		t.Errorf("Expression() = %q, want %q", got, want)
	}
}

func TestKeypadLeadingMinus(t *testing.T) {
	k, _, _ := newTestKeypad()
	press(t, k, "-", "5")
	if got, want := k.Expression(), "-5"; got != want {
		t.Fatalf("Expression() = %q, want %q", got, want)
	}
	if got := k.Amount(); got != -500 {
		t.Errorf("Amount() = %d, want -500", got)
	}
	// The minus can still be turned into another operator before digits land.
	k2, _, _ := newTestKeypad()
	press(t, k2, "-", "+", "5")
	if got, want := k2.Expression(), "+5"; got != want {
		t.Errorf("Expression() = %q, want %q", got, want)
	}
}

func TestKeypadDecimalPointPerSegment(t *testing.T) {
	k, _, _ := newTestKeypad()
	press(t, k, "1", ".", "5")
	if k.Press(".") {
		t.Errorf("second point in the same segment should be rejected")
	}
	// A new segment opens after an operator, a new point is fine there.
	press(t, k, "+", "2", ".", "5")
	if got, want := k.Expression(), "1.5+2.5"; got != want {
		t.Errorf("Expression() = %q, want %q", got, want)
	}
}

func TestKeypadEvents(t *testing.T) {
	k, cues, amounts := newTestKeypad()

	press(t, k, "1", "2")
	k.Press("a") // rejected: no cue, no event
	k.Backspace()
	k.Clear()

	if got, want := len(*amounts), 4; got != want {
		t.Fatalf("got %d amount events %v, want %d", got, *amounts, want)
	}
	if got := (*amounts)[3]; got != 0 {
		t.Errorf("clear should report amount 0, got %d", got)
	}
	want := []CueLevel{CueLight, CueLight, CueMedium, CueLight}
	for i, l := range want {
		if cues.levels[i] != l {
			t.Errorf("cue %d = %v, want %v", i, cues.levels[i], l)
		}
	}
}

func TestKeypadBackspaceOnEmpty(t *testing.T) {
	k, cues, amounts := newTestKeypad()
	k.Backspace()
	if len(cues.levels) != 0 || len(*amounts) != 0 {
		t.Errorf("backspace on empty keypad should be silent")
	}
}

func TestKeypadComplete(t *testing.T) {
	k, cues, _ := newTestKeypad()
	press(t, k, "1", "0", "*", "3")
	if got := k.Complete(); got != 3000 {
		t.Errorf("Complete() = %d, want 3000", got)
	}
	if last := cues.levels[len(cues.levels)-1]; last != CueHeavy {
		t.Errorf("Complete() should emit the heavy cue, got %v", last)
	}
}

func TestKeypadSeed(t *testing.T) {
	k, _, _ := newTestKeypad()
	k.Seed(-1250)
	if got, want := k.Expression(), "12.5"; got != want {
		t.Errorf("Seed(-1250) expression = %q, want %q", got, want)
	}
	if got := k.Amount(); got != 1250 {
		t.Errorf("Amount() = %d, want 1250", got)
	}
}

func TestKeypadPressSequence(t *testing.T) {
	k, _, _ := newTestKeypad()
	// The second point of the segment is dropped, the rest lands.
	if got := k.PressSequence("+1.2.5"); got != 5 {
		t.Errorf("PressSequence accepted %d keys, want 5", got)
	}
	if got, want := k.Expression(), "+1.25"; got != want {
		t.Errorf("Expression() = %q, want %q", got, want)
	}
}
