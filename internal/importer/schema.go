// Package importer seeds an athlete profile from a JSON training record.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for an athlete import.
type ImportSchema struct {
	Athlete  AthleteImport      `json:"athlete"`
	Position *PositionImport    `json:"position,omitempty"`
	XP       *int               `json:"xp,omitempty"`
	Streak   *int               `json:"streak,omitempty"`
	Ledger   map[string]float64 `json:"ledger,omitempty"`
	Sessions []SessionImport    `json:"sessions,omitempty"`
}

// AthleteImport defines the identity fields of the profile.
type AthleteImport struct {
	Name         string   `json:"name"`
	Age          *int     `json:"age,omitempty"`
	HeightCm     *float64 `json:"height_cm,omitempty"`
	BodyweightKg float64  `json:"bodyweight_kg"`
	GripBaseline *float64 `json:"grip_baseline,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
}

// PositionImport is the program slot to resume from.
type PositionImport struct {
	Week int `json:"week"`
	Day  int `json:"day"`
}

// SessionImport is one past session carried into the history.
type SessionImport struct {
	Date        string `json:"date"`
	Week        int    `json:"week"`
	Day         int    `json:"day"`
	Name        string `json:"name,omitempty"`
	XP          int    `json:"xp"`
	DurationMin *int   `json:"duration_min,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// LoadImportSchema reads and parses an athlete import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

// ParseImportSchema parses an import document. Unknown fields are rejected.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var schema ImportSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
