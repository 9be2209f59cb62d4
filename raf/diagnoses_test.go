package raf

import "testing"

func TestMapDiagnosesToHCCs(t *testing.T) {
	dxToCC := map[string][]string{
		"E1100": {"HCC37"},
		"I5032": {"HCC221", "HCC226"},
	}

	got := mapDiagnosesToHCCs([]string{"E1100", "I5032", "Z0000"}, dxToCC)
	want := []string{"HCC37", "HCC221", "HCC226"}

	if !equalStrings(got, want) {
		t.Errorf("mapDiagnosesToHCCs = %v, want %v", got, want)
	}
}

func TestMapDiagnosesToHCCsPreservesDuplicates(t *testing.T) {
	dxToCC := map[string][]string{"E1100": {"HCC37"}}
	got := mapDiagnosesToHCCs([]string{"E1100", "E1100"}, dxToCC)
	if len(got) != 2 {
		t.Errorf("mapDiagnosesToHCCs = %v, want 2 entries (duplicates preserved)", got)
	}
}

func TestMapDiagnosesToHCCsNoMatches(t *testing.T) {
	got := mapDiagnosesToHCCs([]string{"Z0000"}, map[string][]string{})
	if len(got) != 0 {
		t.Errorf("mapDiagnosesToHCCs = %v, want empty", got)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
