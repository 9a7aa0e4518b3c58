package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestScenarioRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")
	want := []Charge{
		NewCharge(Vec2{X: 300, Y: 300}, 1e-6),
		NewCharge(Vec2{X: 700, Y: 300}, -1e-6),
	}

	if err := SaveScenario(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d charges, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("charge %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScenarioLoadMissingFile(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestScenarioLoadAssignsMissingIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")
	raw := `[{"pos":{"X":300,"Y":300},"q":1e-6}]`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	charges, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(charges) != 1 {
		t.Fatalf("got %d charges, want 1", len(charges))
	}
	if charges[0].ID == uuid.Nil {
		t.Error("hand-written charge was not assigned an ID")
	}
}
