package raf

// mapDiagnosesToHCCs concatenates, in diagnosis order, the HCC labels each
// diagnosis code maps to under dxToCC. Diagnoses absent from dxToCC are
// dropped silently. Duplicate HCCs are preserved here — hierarchy
// suppression downstream cares about presence, not count.
func mapDiagnosesToHCCs(diagnosisCodes []string, dxToCC map[string][]string) []string {
	var hccs []string
	for _, dx := range diagnosisCodes {
		if mapped, ok := dxToCC[dx]; ok {
			hccs = append(hccs, mapped...)
		}
	}
	return hccs
}
