// Command scoreraf scores one Medicare Advantage beneficiary against a
// CMS HCC Risk Adjustment Factor reference-data set and prints the
// resulting Journal. It optionally persists the run to PostgreSQL and
// exports it to a Parquet file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"hccraf/export"
	"hccraf/raf"
	"hccraf/refdata"
	"hccraf/store"
)

func main() {
	dataDir := flag.String("data-dir", "", "Path to a reference-data directory (labels, hierarchy, coefficients, dx-to-cc files)")
	dataRoot := flag.String("data-root", "", "Root directory holding per-year reference-data subdirectories")
	performanceYear := flag.Int("performance-year", 0, "Performance year; used with -data-root to locate the reference-data directory")
	normFactor := flag.Float64("norm-factor", 1.0, "Normalization factor applied to every model score")

	inputPath := flag.String("input", "", "Path to a JSON file describing the beneficiary (see PrivateInput)")
	age := flag.Int("age", 0, "Beneficiary age")
	sex := flag.String("sex", "", "Beneficiary sex (\"M\" or \"F\")")
	diagnoses := flag.String("diagnoses", "", "Comma-separated ICD-10 diagnosis codes")
	eligibilityCode := flag.String("eligibility-code", "", "Beneficiary eligibility segment code")
	entitlementReasonCode := flag.String("orec", "0", "Original reason for entitlement code")
	medicaidStatus := flag.Bool("medicaid", false, "Beneficiary is Medicaid dual-eligible")
	ltInstitutionalized := flag.Bool("institutionalized", false, "Beneficiary is long-term institutionalized")

	pgConnStr := flag.String("pg", "", "PostgreSQL connection string; if set, the run is persisted")
	parquetPath := flag.String("parquet", "", "Path to write a single-row Parquet export of the run; if set, the run is exported")

	flag.Parse()

	ctx := context.Background()

	dir, err := resolveDataDir(*dataDir, *dataRoot, *performanceYear)
	if err != nil {
		log.Fatalf("resolve reference-data directory: %v", err)
	}

	pub, err := refdata.LoadAll(ctx, dir, float32(*normFactor))
	if err != nil {
		log.Fatalf("load reference data: %v", err)
	}

	input, err := resolveInput(*inputPath, *age, *sex, *diagnoses, *eligibilityCode,
		*entitlementReasonCode, *medicaidStatus, *ltInstitutionalized)
	if err != nil {
		log.Fatalf("resolve beneficiary input: %v", err)
	}

	engine := raf.NewEngine(*pub, nil)
	journal := engine.Score(input)

	runID := uuid.New()

	if err := printJournal(runID, journal); err != nil {
		log.Fatalf("print journal: %v", err)
	}

	if *pgConnStr != "" {
		if err := persistRun(ctx, *pgConnStr, runID, input, journal); err != nil {
			log.Fatalf("persist run: %v", err)
		}
		log.Printf("saved run %s to database", runID)
	}

	if *parquetPath != "" {
		if err := export.WriteJournal(*parquetPath, runID, input, journal); err != nil {
			log.Fatalf("export run: %v", err)
		}
		log.Printf("exported run %s to %s", runID, *parquetPath)
	}
}

func resolveDataDir(dataDir, dataRoot string, performanceYear int) (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	if dataRoot != "" && performanceYear != 0 {
		return refdata.LocateDataDir(dataRoot, performanceYear)
	}
	return "", fmt.Errorf("either -data-dir or both -data-root and -performance-year must be set")
}

func resolveInput(inputPath string, age int, sex, diagnosesCSV, eligibilityCode,
	entitlementReasonCode string, medicaidStatus, ltInstitutionalized bool) (raf.PrivateInput, error) {
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return raf.PrivateInput{}, fmt.Errorf("read input file: %w", err)
		}
		var input raf.PrivateInput
		if err := json.Unmarshal(data, &input); err != nil {
			return raf.PrivateInput{}, fmt.Errorf("parse input file: %w", err)
		}
		return input, nil
	}

	var diagnosisCodes []string
	if diagnosesCSV != "" {
		diagnosisCodes = strings.Split(diagnosesCSV, ",")
	}

	return raf.PrivateInput{
		DiagnosisCodes:            diagnosisCodes,
		Age:                       age,
		Sex:                       sex,
		EligibilityCode:           eligibilityCode,
		EntitlementReasonCode:     entitlementReasonCode,
		MedicaidStatus:            medicaidStatus,
		LongTermInstitutionalized: ltInstitutionalized,
	}, nil
}

func persistRun(ctx context.Context, connStr string, runID uuid.UUID, input raf.PrivateInput, journal raf.Journal) error {
	s, err := store.Open(ctx, connStr)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.InitSchema(ctx); err != nil {
		return err
	}
	return s.SaveRun(ctx, runID, input, journal)
}

func printJournal(runID uuid.UUID, journal raf.Journal) error {
	out := struct {
		RunID        string             `json:"run_id"`
		RAFScores    map[string]float32 `json:"raf_scores"`
		Coefficients map[string]float32 `json:"coefficients"`
	}{
		RunID:        runID.String(),
		RAFScores:    journal.RAFScores,
		Coefficients: journal.Coefficients,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
