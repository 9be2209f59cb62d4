package raf

// Engine holds the coefficient registry and runs the scoring pipeline for
// one beneficiary against one PublicInputs payload. Each Score call clears
// the registry's used flags first, so nothing from one call's scoring
// carries into the next.
type Engine struct {
	registry   *coefficientRegistry
	hierarchy  map[string][]string
	hccLabels  map[string]string
	dxToCC     map[string][]string
	normFactor float32
	ageSexEdit AgeSexEditFunc
}

// NewEngine builds an Engine from a PublicInputs payload. ageSexEdit may be
// nil (the default, and the only value ever supplied by this repository);
// see the AgeSexEditFunc doc for why the hook exists at all.
func NewEngine(pub PublicInputs, ageSexEdit AgeSexEditFunc) *Engine {
	return &Engine{
		registry:   newCoefficientRegistry(pub.HCCCoefficients),
		hierarchy:  pub.HCCHierarchies,
		hccLabels:  pub.HCCLabels,
		dxToCC:     pub.DxToCC,
		normFactor: pub.NormFactor,
		ageSexEdit: ageSexEdit,
	}
}

// Score runs the full pipeline for one beneficiary: diagnosis expansion,
// demographic derivation, hierarchy suppression, interaction derivation,
// attribute consolidation, and all nine model scoring passes. It cannot
// fail on a well-formed PrivateInput — unknown coefficients and unmapped
// diagnoses are silently ignored per §7 of the specification.
func (e *Engine) Score(priv PrivateInput) Journal {
	for _, entry := range e.registry.entries {
		entry.used = false
	}

	candidateHCCs := mapDiagnosesToHCCs(priv.DiagnosisCodes, e.dxToCC)

	if e.ageSexEdit != nil {
		candidateHCCs = filterAgeSexEdits(candidateHCCs, priv.Age, priv.Sex, e.ageSexEdit)
	}

	survivingHCCs := applyHierarchy(e.hierarchy, candidateHCCs)

	demographic := ageSexAttributes(priv)
	if priv.LongTermInstitutionalized {
		demographic = append(demographic, "LTIMCAID")
	}

	isDisabled := disabled(priv.Age, priv.EntitlementReasonCode)
	interactions := deriveInteractions(survivingHCCs, isDisabled)

	attributes := consolidateAttributes(demographic, survivingHCCs, interactions)

	scores := map[string]float32{
		ScoreCommunityNA:    e.scoreCommunityAged("CNA", priv, attributes),
		ScoreCommunityND:    e.scoreCommunityDisabled("CND", attributes),
		ScoreCommunityFBA:   e.scoreCommunityAged("CFA", priv, attributes),
		ScoreCommunityFBD:   e.scoreCommunityDisabled("CFD", attributes),
		ScoreCommunityPBA:   e.scoreCommunityAged("CPA", priv, attributes),
		ScoreCommunityPBD:   e.scoreCommunityDisabled("CPD", attributes),
		ScoreInstitutional:  e.scoreInstitutional("INS", attributes),
		ScoreNewEnrollee:    e.scoreNewEnrollee("NE", attributes),
		ScoreSNPNewEnrollee: e.scoreNewEnrollee("SNPNE", attributes),
	}

	return Journal{
		RAFScores:    scores,
		Coefficients: e.registry.usedCoefficients(),
	}
}

// consolidateAttributes unions the demographic, surviving-HCC, and
// interaction attribute sets into a single list. Order is irrelevant past
// this point — every downstream consumer filters by set membership.
func consolidateAttributes(demographic, survivingHCCs, interactions []string) []string {
	attrs := make([]string, 0, len(demographic)+len(survivingHCCs)+len(interactions))
	attrs = append(attrs, demographic...)
	attrs = append(attrs, survivingHCCs...)
	attrs = append(attrs, interactions...)
	return attrs
}

// filterAgeSexEdits drops any candidate HCC the edit function vetoes.
// Unreachable in this repository since no caller supplies a non-nil
// AgeSexEditFunc; see §4.8 of SPEC_FULL.md.
func filterAgeSexEdits(candidateHCCs []string, age int, sex string, edit AgeSexEditFunc) []string {
	kept := candidateHCCs[:0:0]
	for _, hcc := range candidateHCCs {
		if edit(hcc, age, sex) {
			kept = append(kept, hcc)
		}
	}
	return kept
}

// isPaymentHCC reports whether name is a recognized payment HCC label
// (i.e. a key of hcc_labels), the test filterByModel applies alongside the
// models.go whitelists to admit any HCC the beneficiary carries, regardless
// of its numeric value.
func (e *Engine) isPaymentHCC(name string) bool {
	_, ok := e.hccLabels[name]
	return ok
}

// filterByModel keeps attrs admitted by either the static whitelist or (for
// plain HCC attributes) the payment-HCC label set.
func (e *Engine) filterByModel(attrs []string, whitelist map[string]bool) []string {
	var kept []string
	for _, a := range attrs {
		if whitelist[a] || e.isPaymentHCC(a) {
			kept = append(kept, a)
		}
	}
	return kept
}

func prefixAll(model string, names []string) []string {
	prefixed := make([]string, len(names))
	for i, n := range names {
		prefixed[i] = model + "_" + n
	}
	return prefixed
}

// scoreCommunityAged runs a COMM_REGA scoring pass: the aged age-sex
// buckets, community interactions, payment counters, and payment HCCs,
// plus the sex-resolved OriginallyDisabled_{Female,Male} variable when
// ORIGDS is set.
func (e *Engine) scoreCommunityAged(model string, priv PrivateInput, attrs []string) float32 {
	kept := e.filterByModel(attrs, commRegAWhitelist)
	names := prefixAll(model, kept)

	if originallyDisabled(priv.Age, priv.EntitlementReasonCode) {
		sexVar := "OriginallyDisabled_Female"
		if priv.Sex == "M" {
			sexVar = "OriginallyDisabled_Male"
		}
		names = append(names, model+"_"+sexVar)
	}

	return e.registry.sumAndMark(names) * e.normFactor
}

// scoreCommunityDisabled runs a COMM_REGD scoring pass: the disabled
// age-sex buckets, community interactions (including the psych one),
// payment counters, and payment HCCs.
func (e *Engine) scoreCommunityDisabled(model string, attrs []string) float32 {
	kept := e.filterByModel(attrs, commRegDWhitelist)
	names := prefixAll(model, kept)
	return e.registry.sumAndMark(names) * e.normFactor
}

// scoreInstitutional runs the INST_REG scoring pass.
func (e *Engine) scoreInstitutional(model string, attrs []string) float32 {
	kept := e.filterByModel(attrs, instRegWhitelist)
	names := prefixAll(model, kept)
	return e.registry.sumAndMark(names) * e.normFactor
}

// scoreNewEnrollee runs a new-enrollee scoring pass (shared by the NE and
// SNPNE models — they differ only in coefficient prefix).
func (e *Engine) scoreNewEnrollee(model string, attrs []string) float32 {
	var kept []string
	for _, a := range attrs {
		if newEnrolleeWhitelist[a] {
			kept = append(kept, a)
		}
	}
	names := prefixAll(model, kept)
	return e.registry.sumAndMark(names) * e.normFactor
}
