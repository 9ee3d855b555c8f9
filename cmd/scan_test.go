package cmd

import "testing"

func TestParsePicks(t *testing.T) {
	keep, err := parsePicks("0, 2,", 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []bool{true, false, true} {
		if keep[i] != want {
			t.Errorf("keep[%d] = %v, want %v", i, keep[i], want)
		}
	}

	if _, err := parsePicks("3", 3); err == nil {
		t.Errorf("out-of-range index should fail")
	}
	if _, err := parsePicks("-1", 3); err == nil {
		t.Errorf("negative index should fail")
	}
	if _, err := parsePicks("x", 3); err == nil {
		t.Errorf("non-numeric index should fail")
	}
}

func TestMimeType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"receipt.PNG", "image/png"},
		{"bill.webp", "image/webp"},
		{"anim.gif", "image/gif"},
		{"photo.jpg", "image/jpeg"},
		{"noext", "image/jpeg"},
	}
	for _, tc := range tests {
		if got := mimeType(tc.path); got != tc.want {
			t.Errorf("mimeType(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
