package raf

// diagnosticCategory is a named group of HCCs whose presence (MAX) flips a
// single 0/1 indicator tag.
type diagnosticCategory struct {
	tag  string
	hccs []string
}

// diagnosticCategories mirrors the V28 macro's diagnostic-category
// definitions: each is 1 iff the beneficiary carries any HCC in its group.
var diagnosticCategories = []diagnosticCategory{
	{"CANCER_V28", []string{"HCC17", "HCC18", "HCC19", "HCC20", "HCC21", "HCC22", "HCC23"}},
	{"DIABETES_V28", []string{"HCC35", "HCC36", "HCC37", "HCC38"}},
	{"CARD_RESP_FAIL", []string{"HCC211", "HCC212", "HCC213"}},
	{"HF_V28", []string{"HCC221", "HCC222", "HCC223", "HCC224", "HCC225", "HCC226"}},
	{"CHR_LUNG_V28", []string{"HCC276", "HCC277", "HCC278", "HCC279", "HCC280"}},
	{"KIDNEY_V28", []string{"HCC326", "HCC327", "HCC328", "HCC329"}},
	{"SEPSIS", []string{"HCC2"}},
	{"gSubUseDisorder_V28", []string{"HCC135", "HCC136", "HCC137", "HCC138", "HCC139"}},
	{"gPsychiatric_V28", []string{"HCC151", "HCC152", "HCC153", "HCC154", "HCC155"}},
	{"NEURO_V28", []string{"HCC180", "HCC181", "HCC182", "HCC190", "HCC191", "HCC192", "HCC195", "HCC196", "HCC198", "HCC199"}},
	{"ULCER_V28", []string{"HCC379", "HCC380", "HCC381", "HCC382"}},
}

// paymentCountTags maps a count of surviving HCCs (index = count, 1..9) to
// its D-bucket tag.
var paymentCountTags = []string{"", "D1", "D2", "D3", "D4", "D5", "D6", "D7", "D8", "D9"}

// deriveInteractions computes the diagnostic categories, community-model
// interactions, institutional interactions, and payment-count bucket for a
// beneficiary's surviving HCC list, returning only the tags whose value is
// 1.
func deriveInteractions(survivingHCCs []string, isDisabled bool) []string {
	present := make(map[string]bool, len(survivingHCCs))
	for _, hcc := range survivingHCCs {
		present[hcc] = true
	}

	category := make(map[string]bool, len(diagnosticCategories))
	for _, dc := range diagnosticCategories {
		for _, hcc := range dc.hccs {
			if present[hcc] {
				category[dc.tag] = true
				break
			}
		}
	}

	var tags []string

	communityInteractions := []struct {
		tag   string
		value bool
	}{
		{"DIABETES_HF_V28", category["DIABETES_V28"] && category["HF_V28"]},
		{"HF_CHR_LUNG_V28", category["HF_V28"] && category["CHR_LUNG_V28"]},
		{"HF_KIDNEY_V28", category["HF_V28"] && category["KIDNEY_V28"]},
		{"CHR_LUNG_CARD_RESP_FAIL_V28", category["CHR_LUNG_V28"] && category["CARD_RESP_FAIL"]},
		{"HF_HCC238_V28", category["HF_V28"] && present["HCC238"]},
		{"gSubUseDisorder_gPsych_V28", category["gSubUseDisorder_V28"] && category["gPsychiatric_V28"]},
	}
	institutionalInteractions := []struct {
		tag   string
		value bool
	}{
		{"DISABLED_CANCER_V28", isDisabled && category["CANCER_V28"]},
		{"DISABLED_NEURO_V28", isDisabled && category["NEURO_V28"]},
		{"DISABLED_HF_V28", isDisabled && category["HF_V28"]},
		{"DISABLED_CHR_LUNG_V28", isDisabled && category["CHR_LUNG_V28"]},
		{"DISABLED_ULCER_V28", isDisabled && category["ULCER_V28"]},
	}

	for _, ci := range communityInteractions {
		if ci.value {
			tags = append(tags, ci.tag)
		}
	}
	for _, ii := range institutionalInteractions {
		if ii.value {
			tags = append(tags, ii.tag)
		}
	}

	if n := len(survivingHCCs); n >= 10 {
		tags = append(tags, "D10P")
	} else if n >= 1 {
		tags = append(tags, paymentCountTags[n])
	}

	return tags
}
