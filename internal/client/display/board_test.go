package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderBoard(t *testing.T) {
	ascii := "  a b c d e f g h\n8 . . . . k . . .  8\n1 R . . . K . . .  1\n  a b c d e f g h"

	var out bytes.Buffer
	RenderBoard(&out, ascii)
	got := out.String()

	for _, want := range []string{
		Cyan + "a" + Reset,
		Red + "k" + Reset,
		Blue + "R" + Reset,
		Cyan + "8" + Reset,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(got, "\n"); n != 4 {
		t.Errorf("rendered %d lines; want 4", n)
	}
}

func TestColorForTurn(t *testing.T) {
	if got := ColorForTurn("w"); got != Blue+"White"+Reset {
		t.Errorf("ColorForTurn(w) = %q", got)
	}
	if got := ColorForTurn("b"); got != Red+"Black"+Reset {
		t.Errorf("ColorForTurn(b) = %q", got)
	}
}

func TestPrompt(t *testing.T) {
	if got, want := Prompt("chess"), Yellow+"chess > "+Reset; got != want {
		t.Errorf("Prompt() = %q; want %q", got, want)
	}
}
