package raf

import "testing"

func TestCoefficientRegistrySumAndMark(t *testing.T) {
	reg := newCoefficientRegistry(map[string]float32{
		"CNA_HCC17":  2.0,
		"CNA_M75_79": 0.5,
	})

	sum := reg.sumAndMark([]string{"CNA_HCC17", "CNA_M75_79", "CNA_UNKNOWN"})
	if sum != 2.5 {
		t.Errorf("sumAndMark = %v, want 2.5", sum)
	}

	used := reg.usedCoefficients()
	if len(used) != 2 {
		t.Fatalf("usedCoefficients = %v, want 2 entries", used)
	}
	if _, ok := used["CNA_UNKNOWN"]; ok {
		t.Error("usedCoefficients should not contain an unknown coefficient")
	}
}

func TestCoefficientRegistryIgnoresUnknownNames(t *testing.T) {
	reg := newCoefficientRegistry(map[string]float32{"CNA_HCC17": 1.0})
	sum := reg.sumAndMark([]string{"CNA_NOT_PRESENT"})
	if sum != 0 {
		t.Errorf("sumAndMark for unknown names = %v, want 0", sum)
	}
	if len(reg.usedCoefficients()) != 0 {
		t.Errorf("usedCoefficients = %v, want empty", reg.usedCoefficients())
	}
}

func TestCoefficientRegistryDoesNotDoubleCountMarkedEntries(t *testing.T) {
	reg := newCoefficientRegistry(map[string]float32{"CNA_HCC17": 1.0})
	reg.sumAndMark([]string{"CNA_HCC17"})
	reg.sumAndMark([]string{"CNA_HCC17"})
	used := reg.usedCoefficients()
	if len(used) != 1 || used["CNA_HCC17"] != 1.0 {
		t.Errorf("usedCoefficients = %v, want exactly one CNA_HCC17=1.0", used)
	}
}
