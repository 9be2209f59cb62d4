// Package raf implements the CMS Hierarchical Condition Category (HCC) Risk
// Adjustment Factor scoring pipeline: age/sex bucketing, HCC hierarchy
// suppression, diagnostic-category interactions, and multi-model
// coefficient scoring.
package raf

import "sort"

// PublicInputs is the CMS model payload for a performance year: published
// coefficients, HCC hierarchy suppression rules, HCC labels, the
// diagnosis-to-HCC crosswalk, and the normalization factor. It is the same
// for every beneficiary scored against a given year.
type PublicInputs struct {
	// HCCCoefficients maps a model-prefixed variable name (e.g. "CNA_M75_79",
	// "INS_HCC17") to its regression coefficient.
	HCCCoefficients map[string]float32
	// HCCHierarchies maps a superior HCC label to the inferior HCC labels it
	// suppresses (e.g. "HCC17" -> ["HCC18", "HCC19", ...]).
	HCCHierarchies map[string][]string
	// HCCLabels maps an HCC or CC identifier to its human-readable
	// description. Only its key set is used by the engine, as the set of
	// recognized payment HCCs.
	HCCLabels map[string]string
	// DxToCC maps an ICD-10 diagnosis code to the HCC labels it maps to.
	DxToCC map[string][]string
	// NormFactor multiplies every emitted score.
	NormFactor float32
}

// PrivateInput is one beneficiary's demographic and diagnosis data.
type PrivateInput struct {
	DiagnosisCodes            []string `json:"diagnosis_codes"`
	Age                       int      `json:"age"`
	Sex                       string   `json:"sex"`
	EligibilityCode           string   `json:"eligibility_code"`
	EntitlementReasonCode     string   `json:"entitlement_reason_code"`
	MedicaidStatus            bool     `json:"medicaid_status"`
	LongTermInstitutionalized bool     `json:"long_term_institutionalized"`
}

// AgeSexEditFunc may veto a candidate HCC as invalid for the beneficiary's
// age/sex before hierarchy suppression runs. Reserved for a future
// ICD-10 age/sex edit (V28I0ED1) pass; the engine never supplies a non-nil
// default, so by itself this hook changes no behavior.
type AgeSexEditFunc func(cc string, age int, sex string) bool

// Journal is the committed result of one scoring call: the nine model
// scores, plus the coefficients the registry marked as consumed while
// producing them.
type Journal struct {
	RAFScores    map[string]float32
	Coefficients map[string]float32
}

// SortedScoreNames returns the journal's score keys in lexicographic order,
// for deterministic serialization.
func (j Journal) SortedScoreNames() []string {
	names := make([]string, 0, len(j.RAFScores))
	for k := range j.RAFScores {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SortedCoefficientNames returns the journal's consumed-coefficient keys in
// lexicographic order, for deterministic serialization.
func (j Journal) SortedCoefficientNames() []string {
	names := make([]string, 0, len(j.Coefficients))
	for k := range j.Coefficients {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Score name constants emitted by JournalEmitter.
const (
	ScoreCommunityNA    = "SCORE_COMMUNITY_NA"
	ScoreCommunityND    = "SCORE_COMMUNITY_ND"
	ScoreCommunityFBA   = "SCORE_COMMUNITY_FBA"
	ScoreCommunityFBD   = "SCORE_COMMUNITY_FBD"
	ScoreCommunityPBA   = "SCORE_COMMUNITY_PBA"
	ScoreCommunityPBD   = "SCORE_COMMUNITY_PBD"
	ScoreInstitutional  = "SCORE_INSTITUTIONAL"
	ScoreNewEnrollee    = "SCORE_NEW_ENROLLEE"
	ScoreSNPNewEnrollee = "SCORE_SNP_NEW_ENROLLEE"
)
