package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		ok   bool
	}{
		{"2025-07-31", New(2025, time.July, 31), true},
		{"2025-7-1", New(2025, time.July, 1), true},
		{"not a date", Date{}, false},
		{"2025/07/31", Date{}, false},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("Parse(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalization(t *testing.T) {
	// Day overflow rolls into the next month like time.Date does.
	if got, want := New(2025, time.January, 32), New(2025, time.February, 1); got != want {
		t.Errorf("New(2025, 1, 32) = %v, want %v", got, want)
	}
}

func TestSameMonth(t *testing.T) {
	a := New(2026, time.August, 1)
	b := New(2026, time.August, 31)
	c := New(2026, time.September, 1)
	if !a.SameMonth(b) {
		t.Errorf("%v and %v should share a month", a, b)
	}
	if a.SameMonth(c) {
		t.Errorf("%v and %v should not share a month", a, c)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2026, time.August, 28)
	raw, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(raw) != `"2026-08-28"` {
		t.Fatalf("MarshalJSON = %s, want %q", raw, "2026-08-28")
	}
	var back Date
	if err := back.UnmarshalJSON(raw); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
