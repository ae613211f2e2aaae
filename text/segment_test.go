package text

import "testing"

func TestSplitDirectionalRuns(t *testing.T) {
	runs := splitDirectionalRuns("hello")
	if len(runs) != 1 || runs[0].rtl || runs[0].text != "hello" {
		t.Errorf("latin runs = %+v", runs)
	}

	runs = splitDirectionalRuns("שלום")
	if len(runs) != 1 || !runs[0].rtl {
		t.Errorf("hebrew runs = %+v", runs)
	}

	// Mixed-direction text splits while preserving all content.
	runs = splitDirectionalRuns("abc שלום xyz")
	if len(runs) < 3 {
		t.Fatalf("expected at least 3 runs, got %+v", runs)
	}
	total := 0
	sawRTL := false
	for _, r := range runs {
		total += len(r.text)
		sawRTL = sawRTL || r.rtl
	}
	if total != len("abc שלום xyz") {
		t.Errorf("runs drop content: %+v", runs)
	}
	if !sawRTL {
		t.Error("expected an RTL run")
	}
}
