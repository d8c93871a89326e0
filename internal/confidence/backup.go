package confidence

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidBackup marks a backup payload that does not carry the
// expected confidence data. Import rejects it and leaves the ledger
// unchanged.
var ErrInvalidBackup = errors.New("invalid backup: missing confidenceLevels")

// Backup is the portable JSON structure for export and restore.
type Backup struct {
	ConfidenceLevels map[string]int `json:"confidenceLevels"`
	History          []Change       `json:"history,omitempty"`
	ExportDate       time.Time      `json:"exportDate"`
	Version          string         `json:"version"`
	User             string         `json:"user,omitempty"`
}

// backupSchema constrains a backup document: confidenceLevels is
// required and every level must be an integer 1..5.
var backupSchema = map[string]any{
	"type":     "object",
	"required": []any{"confidenceLevels"},
	"properties": map[string]any{
		"confidenceLevels": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": 5,
			},
		},
		"history": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"topicId", "oldLevel", "newLevel", "timestamp"},
			},
		},
	},
}

var (
	compileBackupSchema sync.Once
	compiledBackup      *jsonschema.Schema
	compileErr          error
)

func getBackupSchema() (*jsonschema.Schema, error) {
	compileBackupSchema.Do(func() {
		b, err := json.Marshal(backupSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal backup schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse backup schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://backup.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledBackup, compileErr = c.Compile("schema://backup.json")
	})
	return compiledBackup, compileErr
}

// Export builds a backup of the full confidence map plus history.
func (l *Ledger) Export() Backup {
	return Backup{
		ConfidenceLevels: l.Levels(),
		History:          l.History(),
		ExportDate:       l.now(),
		Version:          StateVersion,
		User:             l.user,
	}
}

// ExportJSON serializes the backup with indentation for portability.
func (l *Ledger) ExportJSON() ([]byte, error) {
	b, err := json.MarshalIndent(l.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return b, nil
}

// ImportJSON restores the ledger from a backup payload. A payload
// without the confidenceLevels field, or failing schema validation, is
// rejected with ErrInvalidBackup and the ledger is left untouched.
// History is restored when present and cleared otherwise; importing an
// exported backup is a full round trip.
func (l *Ledger) ImportJSON(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return ErrInvalidBackup
	}
	if _, ok := obj["confidenceLevels"]; !ok {
		return ErrInvalidBackup
	}

	schema, err := getBackupSchema()
	if err != nil {
		return fmt.Errorf("backup schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("decode backup: %w", err)
	}

	l.Restore(State{
		ConfidenceLevels: backup.ConfidenceLevels,
		History:          backup.History,
	})
	l.save()
	return nil
}
