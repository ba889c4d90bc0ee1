package difficulty

import "testing"

func TestAdjusted_SpecScenario(t *testing.T) {
	// clamp(70 - mean(80,40)*0.3, 0, 100) = 70 - 18 = 52
	got := Adjusted(70, []string{"c1", "c2"}, map[string]int{"c1": 80, "c2": 40})
	if got != 52 {
		t.Errorf("got %v, want 52", got)
	}
}

func TestAdjusted_EmptyPrereqsIsIdentity(t *testing.T) {
	for _, base := range []float64{0, 35.5, 100} {
		if got := Adjusted(base, nil, nil); got != base {
			t.Errorf("base %v: got %v, want unchanged", base, got)
		}
	}
}

func TestAdjusted_MissingConceptsCountAsZero(t *testing.T) {
	// mean(0, 100) = 50 -> 80 - 15 = 65
	got := Adjusted(80, []string{"unseen", "known"}, map[string]int{"known": 100})
	if got != 65 {
		t.Errorf("got %v, want 65", got)
	}
}

func TestAdjusted_Clamped(t *testing.T) {
	if got := Adjusted(10, []string{"c"}, map[string]int{"c": 100}); got != 0 {
		t.Errorf("got %v, want clamp to 0", got)
	}
	if got := Adjusted(150, nil, nil); got != 100 {
		t.Errorf("got %v, want clamp to 100", got)
	}
}

func TestAdjusted_MonotoneInMastery(t *testing.T) {
	prev := 101.0
	for level := 0; level <= 100; level += 5 {
		got := Adjusted(60, []string{"c"}, map[string]int{"c": level})
		if got > prev {
			t.Fatalf("difficulty increased with mastery: level %d -> %v > %v", level, got, prev)
		}
		prev = got
	}
}

func TestRank_AscendingStableTies(t *testing.T) {
	levels := map[string]int{"known": 100}
	candidates := []Candidate{
		{ContentID: "a", BaseDifficulty: 50},                                        // 50
		{ContentID: "b", BaseDifficulty: 80, RequiredConcepts: []string{"known"}},   // 50
		{ContentID: "c", BaseDifficulty: 20},                                        // 20
		{ContentID: "d", BaseDifficulty: 50},                                        // 50
		{ContentID: "e", BaseDifficulty: 90, RequiredConcepts: []string{"unknown"}}, // 90
	}
	ranked := Rank(candidates, levels)

	gotOrder := make([]string, len(ranked))
	for i, r := range ranked {
		gotOrder[i] = r.ContentID
	}
	want := []string{"c", "a", "b", "d", "e"}
	for i := range want {
		if gotOrder[i] != want[i] {
			t.Fatalf("got order %v, want %v", gotOrder, want)
		}
	}
}
