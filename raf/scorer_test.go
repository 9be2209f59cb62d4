package raf

import "testing"

func newEngine(coeffs map[string]float32, hiers map[string][]string, labels map[string]string, dxToCC map[string][]string, normFactor float32) *Engine {
	return NewEngine(PublicInputs{
		HCCCoefficients: coeffs,
		HCCHierarchies:  hiers,
		HCCLabels:       labels,
		DxToCC:          dxToCC,
		NormFactor:      normFactor,
	}, nil)
}

// S1 — Aged male, no diagnoses.
func TestScoreS1AgedMaleNoDiagnoses(t *testing.T) {
	e := newEngine(map[string]float32{"CNA_M70_74": 0.4}, nil, nil, nil, 1.0)

	journal := e.Score(PrivateInput{Age: 70, Sex: "M", EntitlementReasonCode: "0"})

	if got := journal.RAFScores[ScoreCommunityNA]; got != 0.4 {
		t.Errorf("SCORE_COMMUNITY_NA = %v, want 0.4", got)
	}
}

// S2 — Hierarchy suppression.
func TestScoreS2HierarchySuppression(t *testing.T) {
	hiers := map[string][]string{"HCC17": {"HCC18", "HCC19"}}
	labels := map[string]string{"HCC17": "Cancer", "HCC19": "Diabetes"}
	dxToCC := map[string][]string{"C170": {"HCC17"}, "C190": {"HCC19"}}
	coeffs := map[string]float32{
		"CNA_HCC17":  2.0,
		"CNA_HCC19":  1.0,
		"CNA_M75_79": 0.5,
	}
	e := newEngine(coeffs, hiers, labels, dxToCC, 1.0)

	journal := e.Score(PrivateInput{
		Age: 75, Sex: "M", EntitlementReasonCode: "0",
		DiagnosisCodes: []string{"C170", "C190"},
	})

	if got := journal.RAFScores[ScoreCommunityNA]; got != 2.5 {
		t.Errorf("SCORE_COMMUNITY_NA = %v, want 2.5", got)
	}
}

// S3 — Diabetes + HF interaction.
func TestScoreS3DiabetesHFInteraction(t *testing.T) {
	labels := map[string]string{"HCC37": "Diabetes", "HCC221": "HF"}
	dxToCC := map[string][]string{"E1100": {"HCC37"}, "I5032": {"HCC221"}}
	coeffs := map[string]float32{
		"CNA_HCC37":           0.3,
		"CNA_HCC221":          0.4,
		"CNA_DIABETES_HF_V28": 0.11,
		"CNA_M75_79":          0.5,
	}
	e := newEngine(coeffs, nil, labels, dxToCC, 1.0)

	journal := e.Score(PrivateInput{
		Age: 75, Sex: "M", EntitlementReasonCode: "0",
		DiagnosisCodes: []string{"E1100", "I5032"},
	})

	got := journal.RAFScores[ScoreCommunityNA]
	want := float32(1.31)
	if diff := got - want; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("SCORE_COMMUNITY_NA = %v, want %v", got, want)
	}
}

// S4 — Originally disabled.
func TestScoreS4OriginallyDisabled(t *testing.T) {
	coeffs := map[string]float32{
		"CNA_OriginallyDisabled_Female": 0.2,
		"CNA_F70_74":                    0.35,
	}
	e := newEngine(coeffs, nil, nil, nil, 1.0)

	journal := e.Score(PrivateInput{Age: 70, Sex: "F", EntitlementReasonCode: "1"})

	if got := journal.RAFScores[ScoreCommunityNA]; got != 0.55 {
		t.Errorf("SCORE_COMMUNITY_NA = %v, want 0.55", got)
	}
}

// S5 — Payment-count cap.
func TestScoreS5PaymentCountCap(t *testing.T) {
	labels := make(map[string]string, 12)
	dxToCC := make(map[string][]string, 12)
	var diagnoses []string
	for i := 0; i < 12; i++ {
		hcc := "HCC" + string(rune('A'+i))
		dx := "DX" + string(rune('A'+i))
		labels[hcc] = "label"
		dxToCC[dx] = []string{hcc}
		diagnoses = append(diagnoses, dx)
	}
	coeffs := map[string]float32{"CNA_D10P": 0.7, "CNA_M75_79": 0}

	e := newEngine(coeffs, nil, labels, dxToCC, 1.0)
	journal := e.Score(PrivateInput{
		Age: 75, Sex: "M", EntitlementReasonCode: "0",
		DiagnosisCodes: diagnoses,
	})

	if got := journal.RAFScores[ScoreCommunityNA]; got != 0.7 {
		t.Errorf("SCORE_COMMUNITY_NA = %v, want 0.7", got)
	}
	if _, used := journal.Coefficients["CNA_D11"]; used {
		t.Error("journal should never reference a CNA_D11 coefficient")
	}
}

// S6 — New-enrollee age-64 special case.
func TestScoreS6NewEnrolleeAge64(t *testing.T) {
	coeffs := map[string]float32{"NE_NMCAID_NORIGDS_NEM60_64": 0.9}
	e := newEngine(coeffs, nil, nil, nil, 1.0)

	journal := e.Score(PrivateInput{Age: 64, Sex: "M", EntitlementReasonCode: "1"})

	if got := journal.RAFScores[ScoreNewEnrollee]; got != 0.9 {
		t.Errorf("SCORE_NEW_ENROLLEE = %v, want 0.9", got)
	}
}

func TestScoreZeroDiagnosesNoHCCScore(t *testing.T) {
	coeffs := map[string]float32{"CNA_M70_74": 0.4, "CNA_D1": 5.0}
	e := newEngine(coeffs, nil, nil, nil, 1.0)

	journal := e.Score(PrivateInput{Age: 70, Sex: "M", EntitlementReasonCode: "0"})

	if got := journal.RAFScores[ScoreCommunityNA]; got != 0.4 {
		t.Errorf("SCORE_COMMUNITY_NA = %v, want 0.4 (no D1 contribution)", got)
	}
}

func TestScoreNormalizationLinearity(t *testing.T) {
	coeffs := map[string]float32{"CNA_M70_74": 0.4}

	e1 := newEngine(coeffs, nil, nil, nil, 1.0)
	e2 := newEngine(coeffs, nil, nil, nil, 2.0)

	priv := PrivateInput{Age: 70, Sex: "M", EntitlementReasonCode: "0"}
	s1 := e1.Score(priv).RAFScores[ScoreCommunityNA]
	s2 := e2.Score(priv).RAFScores[ScoreCommunityNA]

	if s2 != s1*2 {
		t.Errorf("doubling norm_factor: s1=%v s2=%v, want s2 == 2*s1", s1, s2)
	}
}

func TestScoreDeterminism(t *testing.T) {
	coeffs := map[string]float32{"CNA_M70_74": 0.4, "CNA_HCC17": 1.0}
	labels := map[string]string{"HCC17": "Cancer"}
	dxToCC := map[string][]string{"C170": {"HCC17"}}
	priv := PrivateInput{Age: 70, Sex: "M", EntitlementReasonCode: "0", DiagnosisCodes: []string{"C170"}}

	e1 := newEngine(coeffs, nil, labels, dxToCC, 1.0)
	e2 := newEngine(coeffs, nil, labels, dxToCC, 1.0)

	j1 := e1.Score(priv)
	j2 := e2.Score(priv)

	if j1.RAFScores[ScoreCommunityNA] != j2.RAFScores[ScoreCommunityNA] {
		t.Errorf("nondeterministic score: %v vs %v", j1.RAFScores[ScoreCommunityNA], j2.RAFScores[ScoreCommunityNA])
	}
	names1, names2 := j1.SortedScoreNames(), j2.SortedScoreNames()
	for i := range names1 {
		if names1[i] != names2[i] {
			t.Fatalf("sorted score names diverge at %d: %q vs %q", i, names1[i], names2[i])
		}
	}
}

func TestScoreMonotonicityOfCoverage(t *testing.T) {
	labels := map[string]string{"HCC17": "Cancer"}
	dxToCC := map[string][]string{"C170": {"HCC17"}}
	coeffs := map[string]float32{"CNA_HCC17": 1.5, "CNA_M70_74": 0.4}

	e := newEngine(coeffs, nil, labels, dxToCC, 1.0)

	base := e.Score(PrivateInput{Age: 70, Sex: "M", EntitlementReasonCode: "0"})
	withDx := e.Score(PrivateInput{Age: 70, Sex: "M", EntitlementReasonCode: "0", DiagnosisCodes: []string{"C170"}})

	if withDx.RAFScores[ScoreCommunityNA] < base.RAFScores[ScoreCommunityNA] {
		t.Errorf("adding a diagnosis decreased score: base=%v withDx=%v",
			base.RAFScores[ScoreCommunityNA], withDx.RAFScores[ScoreCommunityNA])
	}
}

func TestScoreNewEnrolleeAndSNPShareTagsDifferentPrefix(t *testing.T) {
	coeffs := map[string]float32{
		"NE_NMCAID_NORIGDS_NEM60_64":    0.9,
		"SNPNE_NMCAID_NORIGDS_NEM60_64": 1.2,
	}
	e := newEngine(coeffs, nil, nil, nil, 1.0)

	journal := e.Score(PrivateInput{Age: 64, Sex: "M", EntitlementReasonCode: "1"})

	if got := journal.RAFScores[ScoreNewEnrollee]; got != 0.9 {
		t.Errorf("SCORE_NEW_ENROLLEE = %v, want 0.9", got)
	}
	if got := journal.RAFScores[ScoreSNPNewEnrollee]; got != 1.2 {
		t.Errorf("SCORE_SNP_NEW_ENROLLEE = %v, want 1.2", got)
	}
}
