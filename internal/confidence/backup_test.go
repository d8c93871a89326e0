package confidence

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestBackupRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 5, 0, 0, time.UTC)
	l := NewLedger(WithClock(fixedClock(now)))
	l.SetConfidence("3.1.1a", 4)
	l.SetConfidence("3.1.1b", 2)
	l.SetConfidence("3.3.1.1a", 5)

	exported, err := l.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	restored := NewLedger()
	if err := restored.ImportJSON(exported); err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}

	if !reflect.DeepEqual(l.Levels(), restored.Levels()) {
		t.Errorf("levels differ:\nwant %v\ngot  %v", l.Levels(), restored.Levels())
	}
	if len(restored.History()) != len(l.History()) {
		t.Errorf("history len = %d, want %d", len(restored.History()), len(l.History()))
	}
}

func TestImportMissingConfidenceField(t *testing.T) {
	l := NewLedger()
	l.SetConfidence("t", 3)

	err := l.ImportJSON([]byte(`{"exportDate": "2026-03-10T00:00:00Z", "version": "1.1"}`))
	if !errors.Is(err, ErrInvalidBackup) {
		t.Fatalf("err = %v, want ErrInvalidBackup", err)
	}

	// State unchanged after rejection.
	if level, ok := l.Confidence("t"); !ok || level != 3 {
		t.Errorf("state changed after rejected import: %d, %v", level, ok)
	}
}

func TestImportRejectsNonObject(t *testing.T) {
	l := NewLedger()
	if err := l.ImportJSON([]byte(`[1, 2, 3]`)); !errors.Is(err, ErrInvalidBackup) {
		t.Errorf("array payload: err = %v", err)
	}
	if err := l.ImportJSON([]byte(`not json`)); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func TestImportRejectsOutOfRangeLevels(t *testing.T) {
	l := NewLedger()
	l.SetConfidence("t", 3)

	payload := `{"confidenceLevels": {"a": 7}}`
	if err := l.ImportJSON([]byte(payload)); !errors.Is(err, ErrInvalidBackup) {
		t.Fatalf("err = %v, want ErrInvalidBackup", err)
	}
	if level, _ := l.Confidence("t"); level != 3 {
		t.Error("state changed after rejected import")
	}
}

func TestImportReplacesState(t *testing.T) {
	l := NewLedger()
	l.SetConfidence("old", 1)

	payload := `{"confidenceLevels": {"new": 5}}`
	if err := l.ImportJSON([]byte(payload)); err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if _, ok := l.Confidence("old"); ok {
		t.Error("import should replace, not merge")
	}
	if level, ok := l.Confidence("new"); !ok || level != 5 {
		t.Errorf("imported level = %d, %v", level, ok)
	}
	if len(l.History()) != 0 {
		t.Error("history should be cleared when backup carries none")
	}
}

func TestExportShape(t *testing.T) {
	l := NewLedger(WithUser("student-7"))
	l.SetConfidence("t", 4)

	raw, err := l.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	for _, key := range []string{"confidenceLevels", "history", "exportDate", "version", "user"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("export missing %q field", key)
		}
	}
}
