package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chessrules/internal/storage"
)

func TestDatabaseCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chess.db")
	var out bytes.Buffer

	if err := Run([]string{"init", "-path", path}, &out); err != nil {
		t.Fatalf("init: %v", err)
	}

	store, err := storage.NewStore(path, false)
	if err != nil {
		t.Fatal(err)
	}
	store.RecordNewGame(storage.GameRecord{
		GameID:     "0123456789abcdef",
		CheckMode:  "strict",
		InitialFEN: "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		State:      "in_progress",
		Turn:       "w",
		CreatedUTC: time.Now().UTC(),
	})
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := Run([]string{"query", "-path", path, "-state", "in_progress"}, &out); err != nil {
		t.Fatalf("query: %v", err)
	}
	for _, want := range []string{"01234567...", "strict", "Found 1 game(s)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("query output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := Run([]string{"query", "-path", path, "-state", "game_over"}, &out); err != nil {
		t.Fatalf("query: %v", err)
	}
	if !strings.Contains(out.String(), "No games found") {
		t.Errorf("filtered query output = %q", out.String())
	}

	if err := Run([]string{"delete", "-path", path}, &out); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("database still present after delete: %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	tests := [][]string{
		nil,
		{"vacuum"},
		{"init"},
		{"query", "-bogus"},
	}
	for _, args := range tests {
		if err := Run(args, &out); err == nil {
			t.Errorf("Run(%v) succeeded", args)
		}
	}
}
