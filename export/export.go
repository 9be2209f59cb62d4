// Package export writes a single scoring run's Journal to a Parquet file,
// one row per run, for downstream analytical consumption.
package export

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"hccraf/raf"
)

// journalRow is the flattened, Parquet-friendly shape of one scoring run.
// RAFScores and Coefficients are serialized as parallel name/value slices
// (via SortedScoreNames/SortedCoefficientNames) rather than as maps, since
// a Parquet schema is fixed at write time and a beneficiary's coefficient
// set varies run to run.
type journalRow struct {
	RunID             string    `parquet:"run_id"`
	Age               int32     `parquet:"age"`
	Sex               string    `parquet:"sex"`
	EntitlementReason string    `parquet:"entitlement_reason_code"`
	MedicaidStatus    bool      `parquet:"medicaid_status"`
	ScoreNames        []string  `parquet:"score_names"`
	ScoreValues       []float32 `parquet:"score_values"`
	CoefficientNames  []string  `parquet:"coefficient_names"`
	CoefficientValues []float32 `parquet:"coefficient_values"`
}

// WriteJournal writes one beneficiary's PrivateInput and Journal to a
// single-row Parquet file at path.
func WriteJournal(path string, runID uuid.UUID, input raf.PrivateInput, journal raf.Journal) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[journalRow](file,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedDefault}),
		parquet.CreatedBy("scoreraf", "1.0", ""),
	)

	row := toRow(runID, input, journal)
	if _, err := writer.Write([]journalRow{row}); err != nil {
		return fmt.Errorf("write parquet row: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}

func toRow(runID uuid.UUID, input raf.PrivateInput, journal raf.Journal) journalRow {
	scoreNames := journal.SortedScoreNames()
	scoreValues := make([]float32, len(scoreNames))
	for i, name := range scoreNames {
		scoreValues[i] = journal.RAFScores[name]
	}

	coeffNames := journal.SortedCoefficientNames()
	coeffValues := make([]float32, len(coeffNames))
	for i, name := range coeffNames {
		coeffValues[i] = journal.Coefficients[name]
	}

	return journalRow{
		RunID:             runID.String(),
		Age:               int32(input.Age),
		Sex:               input.Sex,
		EntitlementReason: input.EntitlementReasonCode,
		MedicaidStatus:    input.MedicaidStatus,
		ScoreNames:        scoreNames,
		ScoreValues:       scoreValues,
		CoefficientNames:  coeffNames,
		CoefficientValues: coeffValues,
	}
}

// ReadJournal reads back a single-row Parquet file written by WriteJournal
// and reconstructs its Journal. It exists mainly to round-trip in tests;
// production consumers are expected to read the Parquet file with an
// analytical engine instead.
func ReadJournal(path string) (uuid.UUID, raf.Journal, error) {
	file, err := os.Open(path)
	if err != nil {
		return uuid.UUID{}, raf.Journal{}, fmt.Errorf("open parquet file: %w", err)
	}
	defer file.Close()

	reader := parquet.NewGenericReader[journalRow](file)
	defer reader.Close()

	rows := make([]journalRow, 1)
	n, err := reader.Read(rows)
	if n == 0 && err != nil {
		return uuid.UUID{}, raf.Journal{}, fmt.Errorf("read parquet row: %w", err)
	}

	row := rows[0]
	runID, err := uuid.Parse(row.RunID)
	if err != nil {
		return uuid.UUID{}, raf.Journal{}, fmt.Errorf("parse run id: %w", err)
	}

	journal := raf.Journal{
		RAFScores:    make(map[string]float32, len(row.ScoreNames)),
		Coefficients: make(map[string]float32, len(row.CoefficientNames)),
	}
	for i, name := range row.ScoreNames {
		journal.RAFScores[name] = row.ScoreValues[i]
	}
	for i, name := range row.CoefficientNames {
		journal.Coefficients[name] = row.CoefficientValues[i]
	}

	return runID, journal, nil
}
