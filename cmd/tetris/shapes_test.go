package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

func TestFormatKind(t *testing.T) {
	want := strings.Join([]string{
		"I",
		"....   .#..   ....   ..#.",
		"####   .#..   ....   ..#.",
		"....   .#..   ####   ..#.",
		"....   .#..   ....   ..#.",
		"",
	}, "\n")

	if got := formatKind(core.KindI); got != want {
		t.Errorf("formatKind(I) =\n%s\nexpected\n%s", got, want)
	}
}

func TestFormatKindEveryKind(t *testing.T) {
	for _, k := range core.AllKinds() {
		lines := strings.Split(strings.TrimSuffix(formatKind(k), "\n"), "\n")
		if len(lines) != 1+core.FrameSize {
			t.Errorf("%s: got %d lines, expected %d", k, len(lines), 1+core.FrameSize)
		}
		if lines[0] != k.String() {
			t.Errorf("header = %q, expected %q", lines[0], k)
		}
	}
}
