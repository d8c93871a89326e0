package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/physiz/internal/confidence"
	"github.com/abhisek/physiz/internal/spec"
)

func testStore() *spec.Store {
	mk := func(prefix string, n int) []spec.Topic {
		topics := make([]spec.Topic, n)
		for i := range topics {
			topics[i] = spec.Topic{ID: prefix + string(rune('a'+i)), Title: "Topic " + prefix}
		}
		return topics
	}
	return spec.NewStore([]spec.Section{
		{ID: "mechanics", Title: "Mechanics", Paper: spec.Paper1, Topics: mk("3.4.1.", 6)},
		{ID: "fields", Title: "Fields", Paper: spec.Paper2, Topics: mk("3.7.1.", 4)},
	})
}

func ledgerWith(levels map[string]int) *confidence.Ledger {
	l := confidence.NewLedger()
	l.Restore(confidence.State{ConfidenceLevels: levels})
	return l
}

func TestComputeOverviewAndMastery(t *testing.T) {
	store := testStore()
	// 10 topics, 4 rated at levels {1, 2, 4, 5}.
	ledger := ledgerWith(map[string]int{
		"3.4.1.a": 1,
		"3.4.1.b": 2,
		"3.7.1.a": 4,
		"3.7.1.b": 5,
	})

	snap := Compute(store, ledger, time.Now())

	if snap.Overview.TotalTopics != 10 || snap.Overview.AssessedTopics != 4 {
		t.Errorf("topics = %d/%d, want 4/10", snap.Overview.AssessedTopics, snap.Overview.TotalTopics)
	}
	if snap.Overview.Progress != 40 {
		t.Errorf("Progress = %d, want 40", snap.Overview.Progress)
	}
	if math.Abs(snap.Overview.AverageConfidence-3.0) > 1e-9 {
		t.Errorf("AverageConfidence = %v, want 3.0", snap.Overview.AverageConfidence)
	}
	if snap.Overview.LowConfidenceCount != 2 {
		t.Errorf("LowConfidenceCount = %d, want 2", snap.Overview.LowConfidenceCount)
	}

	want := MasteryDistribution{NotStarted: 6, Beginning: 1, Developing: 1, Competent: 0, Proficient: 1, Mastered: 1}
	if snap.Mastery != want {
		t.Errorf("Mastery = %+v, want %+v", snap.Mastery, want)
	}
	if snap.Mastery.Total() != snap.Overview.TotalTopics {
		t.Errorf("bucket sum = %d, want %d", snap.Mastery.Total(), snap.Overview.TotalTopics)
	}
}

func TestComputeEmptyInputs(t *testing.T) {
	snap := Compute(spec.NewStore(nil), confidence.NewLedger(), time.Now())
	if snap.Overview.Progress != 0 || snap.Overview.AverageConfidence != 0 {
		t.Errorf("empty store: progress=%d avg=%v, want zeros", snap.Overview.Progress, snap.Overview.AverageConfidence)
	}
	if snap.Patterns.MostActiveDay != "No data" {
		t.Errorf("MostActiveDay = %q", snap.Patterns.MostActiveDay)
	}
	if snap.Patterns.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", snap.Patterns.CurrentStreak)
	}
}

func TestPaperReadiness(t *testing.T) {
	store := testStore()
	ledger := ledgerWith(map[string]int{
		"3.4.1.a": 3, "3.4.1.b": 3, "3.4.1.c": 3, // 3 of 6 in Paper 1
		"3.7.1.a": 5, // 1 of 4 in Paper 2
	})

	snap := Compute(store, ledger, time.Now())
	if snap.Overview.Paper1.Progress != 50 {
		t.Errorf("Paper1.Progress = %d, want 50", snap.Overview.Paper1.Progress)
	}
	if snap.Overview.Paper2.Progress != 25 {
		t.Errorf("Paper2.Progress = %d, want 25", snap.Overview.Paper2.Progress)
	}
	if snap.Overview.Paper2.AverageConfidence != 5 {
		t.Errorf("Paper2.AverageConfidence = %v, want 5", snap.Overview.Paper2.AverageConfidence)
	}
}

func TestCriticalAndStrongTopics(t *testing.T) {
	store := testStore()
	ledger := ledgerWith(map[string]int{
		"3.4.1.a": 2,
		"3.4.1.b": 1,
		"3.4.1.c": 3,
		"3.7.1.a": 4,
		"3.7.1.b": 5,
	})

	snap := Compute(store, ledger, time.Now())

	if len(snap.CriticalTopics) != 2 {
		t.Fatalf("critical len = %d, want 2", len(snap.CriticalTopics))
	}
	// Ascending by level: the level-1 topic leads.
	if snap.CriticalTopics[0].Topic.ID != "3.4.1.b" || snap.CriticalTopics[0].Level != 1 {
		t.Errorf("critical[0] = %s level %d", snap.CriticalTopics[0].Topic.ID, snap.CriticalTopics[0].Level)
	}
	if snap.CriticalTopics[0].SectionTitle != "Mechanics" {
		t.Errorf("SectionTitle = %q", snap.CriticalTopics[0].SectionTitle)
	}

	if len(snap.StrongTopics) != 2 {
		t.Fatalf("strong len = %d, want 2", len(snap.StrongTopics))
	}
	// Descending by level: the level-5 topic leads.
	if snap.StrongTopics[0].Level != 5 || snap.StrongTopics[1].Level != 4 {
		t.Errorf("strong order = %d, %d", snap.StrongTopics[0].Level, snap.StrongTopics[1].Level)
	}
}

func TestProgressPercentRounding(t *testing.T) {
	topics := []spec.Topic{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	levels := map[string]int{"a": 3}
	if got := ProgressPercent(topics, levels); got != 33 {
		t.Errorf("1/3 = %d%%, want 33", got)
	}
	levels["b"] = 3
	if got := ProgressPercent(topics, levels); got != 67 {
		t.Errorf("2/3 = %d%%, want 67", got)
	}
	if got := ProgressPercent(nil, levels); got != 0 {
		t.Errorf("empty set = %d%%, want 0", got)
	}
}

func TestGroupProgress(t *testing.T) {
	mk := func(prefix string, n int) []spec.Topic {
		topics := make([]spec.Topic, n)
		for i := range topics {
			topics[i] = spec.Topic{ID: prefix + string(rune('a'+i))}
		}
		return topics
	}
	store := spec.NewStore([]spec.Section{
		{ID: "current_voltage", Title: "Current and Voltage", Paper: spec.Paper1, Topics: mk("3.5.1.", 4)},
		{ID: "dc_circuits", Title: "DC Circuits", Paper: spec.Paper1, Topics: mk("3.5.2.", 4)},
	})
	levels := map[string]int{"3.5.1.a": 4, "3.5.1.b": 2}

	groups := GroupProgress(store, levels, spec.ModeSpec)

	var elec *GroupReadiness
	for i := range groups {
		if groups[i].Title == "3.5 Electricity" {
			elec = &groups[i]
			break
		}
	}
	if elec == nil {
		t.Fatal("electricity group missing")
	}
	if elec.TotalTopics != 8 {
		t.Errorf("TotalTopics = %d, want 8", elec.TotalTopics)
	}
	if elec.Progress != 25 {
		t.Errorf("Progress = %d, want 25", elec.Progress)
	}
	if math.Abs(elec.AverageConfidence-3.0) > 1e-9 {
		t.Errorf("AverageConfidence = %v, want 3.0", elec.AverageConfidence)
	}
}
