// Package store persists a single scoring run (one beneficiary, one
// PrivateInput, one Journal) to PostgreSQL and reads it back. It is
// deliberately single-run: nothing here fans out across beneficiaries.
package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"hccraf/raf"
)

//go:embed schema.sql
var schema string

// Store wraps a connection pool scoped to the scoring_runs table.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to connStr and returns a Store. Callers must call Close
// when done.
func Open(ctx context.Context, connStr string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("connect to store database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping store database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// InitSchema creates the scoring_runs table if it does not already exist.
func (s *Store) InitSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

// SaveRun persists one scoring run under runID, replacing any existing row
// with that ID.
func (s *Store) SaveRun(ctx context.Context, runID uuid.UUID, input raf.PrivateInput, journal raf.Journal) error {
	scores, err := json.Marshal(journal.RAFScores)
	if err != nil {
		return fmt.Errorf("marshal raf scores: %w", err)
	}
	coefficients, err := json.Marshal(journal.Coefficients)
	if err != nil {
		return fmt.Errorf("marshal coefficients: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO scoring_runs (
			run_id, diagnosis_codes, age, sex, eligibility_code,
			entitlement_reason_code, medicaid_status, long_term_institutionalized,
			raf_scores, coefficients
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (run_id) DO UPDATE SET
			diagnosis_codes = EXCLUDED.diagnosis_codes,
			age = EXCLUDED.age,
			sex = EXCLUDED.sex,
			eligibility_code = EXCLUDED.eligibility_code,
			entitlement_reason_code = EXCLUDED.entitlement_reason_code,
			medicaid_status = EXCLUDED.medicaid_status,
			long_term_institutionalized = EXCLUDED.long_term_institutionalized,
			raf_scores = EXCLUDED.raf_scores,
			coefficients = EXCLUDED.coefficients`,
		runID.String(), input.DiagnosisCodes, input.Age, input.Sex, input.EligibilityCode,
		input.EntitlementReasonCode, input.MedicaidStatus, input.LongTermInstitutionalized,
		scores, coefficients,
	)
	if err != nil {
		return fmt.Errorf("insert scoring run: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit scoring run: %w", err)
	}
	return nil
}

// LoadRun reads back the PrivateInput and Journal saved under runID.
func (s *Store) LoadRun(ctx context.Context, runID uuid.UUID) (raf.PrivateInput, raf.Journal, error) {
	var (
		input        raf.PrivateInput
		scores       []byte
		coefficients []byte
	)

	row := s.pool.QueryRow(ctx, `
		SELECT diagnosis_codes, age, sex, eligibility_code,
		       entitlement_reason_code, medicaid_status, long_term_institutionalized,
		       raf_scores, coefficients
		FROM scoring_runs WHERE run_id = $1`, runID.String())

	err := row.Scan(
		&input.DiagnosisCodes, &input.Age, &input.Sex, &input.EligibilityCode,
		&input.EntitlementReasonCode, &input.MedicaidStatus, &input.LongTermInstitutionalized,
		&scores, &coefficients,
	)
	if err != nil {
		return raf.PrivateInput{}, raf.Journal{}, fmt.Errorf("load scoring run %s: %w", runID, err)
	}

	var journal raf.Journal
	if err := json.Unmarshal(scores, &journal.RAFScores); err != nil {
		return raf.PrivateInput{}, raf.Journal{}, fmt.Errorf("unmarshal raf scores: %w", err)
	}
	if err := json.Unmarshal(coefficients, &journal.Coefficients); err != nil {
		return raf.PrivateInput{}, raf.Journal{}, fmt.Errorf("unmarshal coefficients: %w", err)
	}

	return input, journal, nil
}
