package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// SaveScenario writes the charge set to a JSON file.
func SaveScenario(path string, charges []Charge) error {
	data, err := json.MarshalIndent(charges, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal charges: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadScenario reads a charge set previously written by SaveScenario.
// Charges saved without an ID (hand-edited files) get a fresh one so drag
// tracking still works.
func LoadScenario(path string) ([]Charge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var charges []Charge
	if err := json.Unmarshal(data, &charges); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i := range charges {
		if charges[i].ID == uuid.Nil {
			charges[i].ID = uuid.New()
		}
	}
	return charges, nil
}
