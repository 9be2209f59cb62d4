package raf

// enrolleeAgeBands are the twelve age bands shared by the enrollee and
// new-enrollee (<65) bucket sets, in ascending order.
var enrolleeAgeBands = []string{
	"0_34", "35_44", "45_54", "55_59", "60_64",
	"65_69", "70_74", "75_79", "80_84", "85_89", "90_94", "95_GT",
}

// newEnrolleeAgeBands are the sixteen bands used by the new-enrollee
// bucket set: the same <65 bands, then single-year bands 65-69 before
// falling back to five-year bands.
var newEnrolleeAgeBands = []string{
	"0_34", "35_44", "45_54", "55_59", "60_64",
	"65", "66", "67", "68", "69",
	"70_74", "75_79", "80_84", "85_89", "90_94", "95_GT",
}

// enrolleeBand returns the index into enrolleeAgeBands for age, per the
// AGESEXV2 half-open bands (0_34 is <=34, 95_GT is >=95).
func enrolleeBand(age int) int {
	switch {
	case age <= 34:
		return 0
	case age < 45:
		return 1
	case age < 55:
		return 2
	case age < 60:
		return 3
	case age < 65:
		return 4
	case age < 70:
		return 5
	case age < 75:
		return 6
	case age < 80:
		return 7
	case age < 85:
		return 8
	case age < 90:
		return 9
	case age < 95:
		return 10
	default:
		return 11
	}
}

// newEnrolleeBand returns the index into newEnrolleeAgeBands for
// (age, orec), applying the special case: age 64 with a non-"0" orec is
// treated as a <65 new enrollee (60_64), not a 65-and-over one.
func newEnrolleeBand(age int, orec string) int {
	switch {
	case age <= 34:
		return 0
	case age < 45:
		return 1
	case age < 55:
		return 2
	case age < 60:
		return 3
	case age == 64 && orec != "0":
		return 4
	case age == 64:
		// age == 64 && orec == "0": treated as a 65-and-over new enrollee.
		return 5
	case age < 65:
		return 4
	case age == 65:
		return 5
	case age == 66:
		return 6
	case age == 67:
		return 7
	case age == 68:
		return 8
	case age == 69:
		return 9
	case age < 75:
		return 10
	case age < 80:
		return 11
	case age < 85:
		return 12
	case age < 90:
		return 13
	case age < 95:
		return 14
	default:
		return 15
	}
}

// sexPrefix returns "M" for the literal string "M" and "F" for anything
// else — including values other than "M"/"F". This reproduces the
// upstream source's fallthrough-to-female behavior for malformed sex
// values; see the Open Questions in SPEC_FULL.md.
func sexPrefix(sex string) string {
	if sex == "M" {
		return "M"
	}
	return "F"
}

// disabled reports the DISABL flag: currently under 65 and enrolled for a
// non-aged reason.
func disabled(age int, orec string) bool {
	return age < 65 && orec != "0"
}

// originallyDisabled reports the ORIGDS flag: aged now, originally
// disabled. Mutually exclusive with DISABL by construction.
func originallyDisabled(age int, orec string) bool {
	return orec == "1" && !disabled(age, orec)
}

// newEnrolleeBandTag returns the "NE{F,M}<band>" tag for a beneficiary,
// e.g. "NEM60_64" or "NEF65".
func newEnrolleeBandTag(age int, sex, orec string) string {
	return "NE" + sexPrefix(sex) + newEnrolleeAgeBands[newEnrolleeBand(age, orec)]
}

// newEnrolleeCombinationTag builds the composite new-enrollee variable a
// beneficiary activates: their Medicaid dual-eligibility status crossed
// with their originally-disabled status crossed with their new-enrollee
// age-sex band, e.g. "MCAID_ORIGDS_NEM75_79". This is the variable the
// 108-member new-enrollee whitelist (models.go) actually selects among —
// the plain band tag alone is not sufficient to score the NE/SNPNE models.
func newEnrolleeCombinationTag(age int, sex, orec string, medicaidStatus bool) string {
	mcaid := "NMCAID"
	if medicaidStatus {
		mcaid = "MCAID"
	}
	origds := "NORIGDS"
	if originallyDisabled(age, orec) {
		origds = "ORIGDS"
	}
	return mcaid + "_" + origds + "_" + newEnrolleeBandTag(age, sex, orec)
}

// ageSexAttributes computes the demographic attribute tags for one
// beneficiary: exactly one enrollee bucket, exactly one new-enrollee
// bucket, the DISABL/ORIGDS flags when true, and the composite
// new-enrollee combination tag.
func ageSexAttributes(p PrivateInput) []string {
	age, sex, orec := p.Age, p.Sex, p.EntitlementReasonCode
	sp := sexPrefix(sex)

	attrs := []string{
		sp + enrolleeAgeBands[enrolleeBand(age)],
		newEnrolleeBandTag(age, sex, orec),
		newEnrolleeCombinationTag(age, sex, orec, p.MedicaidStatus),
	}
	if disabled(age, orec) {
		attrs = append(attrs, "DISABL")
	}
	if originallyDisabled(age, orec) {
		attrs = append(attrs, "ORIGDS")
	}
	return attrs
}
