package main

import (
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  int
	}{
		{"match", []string{"-E", "(cat|dog)"}, "hotdog\n", 0},
		{"no match", []string{"-E", "(cat|dog)"}, "fish\n", 1},
		{"match without trailing newline", []string{"-E", "fish$"}, "fish", 0},
		{"backreference", []string{"-E", `(\w+) \1`}, "hey hey\n", 0},
		{"anchored miss", []string{"-E", "^dog"}, "hotdog\n", 1},
		{"empty input no match", []string{"-E", "a"}, "", 1},
		{"empty input empty pattern", []string{"-E", ""}, "", 0},
		{"bad pattern", []string{"-E", "(ab"}, "ab\n", 2},
		{"missing flag", []string{"(cat|dog)"}, "cat\n", 2},
		{"no args", nil, "cat\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr strings.Builder
			got := run(tt.args, strings.NewReader(tt.stdin), &stderr)
			if got != tt.want {
				t.Errorf("run(%q) = %d, want %d (stderr: %q)",
					tt.args, got, tt.want, stderr.String())
			}
			if tt.want == 2 && stderr.Len() == 0 {
				t.Error("expected a diagnostic on stderr")
			}
		})
	}
}
