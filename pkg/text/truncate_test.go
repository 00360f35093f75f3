package text

import (
	"testing"
)

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name string
		text string
		max  int
		want string
	}{
		{
			name: "shorter than limit",
			text: "hello",
			max:  10,
			want: "hello",
		},
		{
			name: "exactly at limit",
			text: "hello",
			max:  5,
			want: "hello",
		},
		{
			name: "one over limit",
			text: "hello!",
			max:  5,
			want: "hello",
		},
		{
			name: "multi-byte runes",
			text: "नमस्ते दुनिया",
			max:  6,
			want: "नमस्ते",
		},
		{
			name: "zero limit",
			text: "hello",
			max:  0,
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.text, tc.max); got != tc.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.text, tc.max, got, tc.want)
			}
		})
	}
}
