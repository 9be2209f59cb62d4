package raf

// communityAgedAgeSex are the seven aged age-sex buckets per sex used by
// the community aged (regA) models: F65_69..F95_GT, M65_69..M95_GT.
var communityAgedAgeSex = []string{
	"F65_69", "F70_74", "F75_79", "F80_84", "F85_89", "F90_94", "F95_GT",
	"M65_69", "M70_74", "M75_79", "M80_84", "M85_89", "M90_94", "M95_GT",
}

// communityDisabledAgeSex are the five disabled age-sex buckets per sex
// used by the community disabled (regD) models: F0_34..F60_64,
// M0_34..M60_64.
var communityDisabledAgeSex = []string{
	"F0_34", "F35_44", "F45_54", "F55_59", "F60_64",
	"M0_34", "M35_44", "M45_54", "M55_59", "M60_64",
}

// communityInteractionTags are shared by both regA and regD models.
var communityInteractionTags = []string{
	"DIABETES_HF_V28", "HF_CHR_LUNG_V28", "HF_KIDNEY_V28",
	"CHR_LUNG_CARD_RESP_FAIL_V28", "HF_HCC238_V28",
}

// regDOnlyInteractionTag is the one community interaction that regD
// includes and regA does not.
const regDOnlyInteractionTag = "gSubUseDisorder_gPsych_V28"

// paymentCountAllTags are the full D1..D9, D10P set, used by every model's
// whitelist.
var paymentCountAllTags = []string{"D1", "D2", "D3", "D4", "D5", "D6", "D7", "D8", "D9", "D10P"}

// commRegAWhitelist is the COMM_REGA variable set (age-sex + community
// interactions + payment counters; HCC labels and the ORIGDS split are
// handled separately in scoreCommunityAged).
var commRegAWhitelist = buildSet(communityAgedAgeSex, communityInteractionTags, paymentCountAllTags)

// commRegDWhitelist is the COMM_REGD variable set (age-sex + community
// interactions including the psych one + payment counters).
var commRegDWhitelist = buildSet(communityDisabledAgeSex, communityInteractionTags,
	[]string{regDOnlyInteractionTag}, paymentCountAllTags)

// instRegWhitelist is the INST_REG variable set: every age-sex bucket,
// LTIMCAID, ORIGDS, the community interactions minus the psych one, the
// institutional DISABLED_* interactions, and payment counters.
var instRegWhitelist = buildSet(
	communityAgedAgeSex, communityDisabledAgeSex,
	[]string{"LTIMCAID", "ORIGDS"},
	communityInteractionTags,
	[]string{
		"DISABLED_CANCER_V28", "DISABLED_NEURO_V28", "DISABLED_HF_V28",
		"DISABLED_CHR_LUNG_V28", "DISABLED_ULCER_V28",
	},
	paymentCountAllTags,
)

func buildSet(lists ...[]string) map[string]bool {
	set := make(map[string]bool)
	for _, list := range lists {
		for _, v := range list {
			set[v] = true
		}
	}
	return set
}

// newEnrolleeGE65Bands are the twenty-two new-enrollee age-sex bands (both
// sexes) used by the 65-and-over half of the new-enrollee variable set.
var newEnrolleeGE65Bands = []string{
	"NEF65", "NEF66", "NEF67", "NEF68", "NEF69", "NEF70_74", "NEF75_79", "NEF80_84", "NEF85_89", "NEF90_94", "NEF95_GT",
	"NEM65", "NEM66", "NEM67", "NEM68", "NEM69", "NEM70_74", "NEM75_79", "NEM80_84", "NEM85_89", "NEM90_94", "NEM95_GT",
}

// newEnrolleeLT65Bands are the ten new-enrollee age-sex bands (both sexes)
// used by the under-65 half of the new-enrollee variable set.
var newEnrolleeLT65Bands = []string{
	"NEF0_34", "NEF35_44", "NEF45_54", "NEF55_59", "NEF60_64",
	"NEM0_34", "NEM35_44", "NEM45_54", "NEM55_59", "NEM60_64",
}

// buildNewEnrolleeWhitelist enumerates the 108-member new-enrollee
// variable set programmatically: {NMCAID, MCAID} x {ORIGDS, NORIGDS} x
// (>=65 bands), plus {NMCAID, MCAID} x NORIGDS x (<65 bands).
func buildNewEnrolleeWhitelist() map[string]bool {
	set := make(map[string]bool)
	mcaidPrefixes := []string{"NMCAID", "MCAID"}
	origdsSuffixes := []string{"ORIGDS", "NORIGDS"}

	for _, band := range newEnrolleeGE65Bands {
		for _, mcaid := range mcaidPrefixes {
			for _, origds := range origdsSuffixes {
				set[mcaid+"_"+origds+"_"+band] = true
			}
		}
	}
	for _, band := range newEnrolleeLT65Bands {
		for _, mcaid := range mcaidPrefixes {
			set[mcaid+"_NORIGDS_"+band] = true
		}
	}
	return set
}

var newEnrolleeWhitelist = buildNewEnrolleeWhitelist()
