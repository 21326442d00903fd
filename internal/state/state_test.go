package state

import (
	"testing"
	"time"
)

func TestManager_SetGetItemState(t *testing.T) {
	tmpDir := t.TempDir()
	m, err := NewManager(tmpDir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	is := ItemState{
		Status:      "ok",
		Level:       2,
		CommandHash: CommandHash("make app"),
		RanAt:       time.Now().UTC().Format(time.RFC3339),
	}

	if err := m.SetItemState("app", is); err != nil {
		t.Fatalf("SetItemState: %v", err)
	}

	got, ok := m.GetItemState("app")
	if !ok {
		t.Fatal("GetItemState: not found")
	}
	if got.Level != 2 || got.Status != "ok" {
		t.Errorf("got %+v, want %+v", got, is)
	}
}

func TestManager_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	m1, err := NewManager(tmpDir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if err := m1.RecordRun("db", 0, CommandHash("make db"), true); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	m2, err := NewManager(tmpDir)
	if err != nil {
		t.Fatalf("NewManager (reload): %v", err)
	}

	got, ok := m2.GetItemState("db")
	if !ok {
		t.Fatal("GetItemState after reload: not found")
	}
	if got.Status != "ok" || got.Level != 0 {
		t.Errorf("got %+v after reload", got)
	}
}

func TestManager_UpToDate(t *testing.T) {
	tmpDir := t.TempDir()
	m, _ := NewManager(tmpDir)

	h := CommandHash("make db")
	m.RecordRun("db", 0, h, true)

	if !m.UpToDate("db", h) {
		t.Error("UpToDate should be true for unchanged command after success")
	}
	if m.UpToDate("db", CommandHash("make db v2")) {
		t.Error("UpToDate should be false when the command changed")
	}
	if m.UpToDate("missing", h) {
		t.Error("UpToDate should be false for unknown item")
	}

	m.RecordRun("db", 0, h, false)
	if m.UpToDate("db", h) {
		t.Error("UpToDate should be false after a failed run")
	}
}

func TestCommandHash_Stable(t *testing.T) {
	if CommandHash("x") != CommandHash("x") {
		t.Error("hash should be deterministic")
	}
	if CommandHash("x") == CommandHash("y") {
		t.Error("different scripts should hash differently")
	}
}
