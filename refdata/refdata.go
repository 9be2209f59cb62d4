// Package refdata parses the CMS reference-file formats that back a
// raf.PublicInputs payload: the HCC label file, the hierarchy file, the
// coefficient file, and the diagnosis-to-HCC crosswalk. These files are
// the "external collaborator" producers the scoring engine itself never
// reads directly.
package refdata

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"hccraf/raf"
)

var labelLinePattern = regexp.MustCompile(`\s*((?:HCC|CC)\d+)\s*=\s*"([^"]+)"`)

// LoadHCCLabels reads a label file (line-oriented, entries matching
// `\s*((?:HCC|CC)\d+)\s*=\s*"([^"]+)"`) and returns HCC/CC identifier to
// description.
func LoadHCCLabels(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open hcc labels file: %w", err)
	}
	defer file.Close()

	labels := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if m := labelLinePattern.FindStringSubmatch(line); m != nil {
			labels[m[1]] = m[2]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan hcc labels file: %w", err)
	}
	return labels, nil
}

var hierarchyLinePattern = regexp.MustCompile(`%SET0\(CC=(\d+).+%STR\((.+)\)\)`)

// LoadHierarchies reads a hierarchy file (line-oriented SAS-macro text,
// entries matching `%SET0\(CC=(\d+).+%STR\((.+)\)\)`) and returns superior
// HCC to its ordered inferior HCC list.
func LoadHierarchies(path string) (map[string][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open hierarchy file: %w", err)
	}
	defer file.Close()

	hiers := make(map[string][]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		m := hierarchyLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key := "HCC" + m[1]
		parts := strings.Split(m[2], ",")
		inferiors := make([]string, len(parts))
		for i, p := range parts {
			inferiors[i] = "HCC" + strings.TrimSpace(p)
		}
		hiers[key] = inferiors
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan hierarchy file: %w", err)
	}
	return hiers, nil
}

// LoadCoefficients reads a coefficient CSV and returns variable name to
// coefficient. Two variants are supported:
//
//   - The CMS variant: a single header row of variable names followed by a
//     single row of values, same length, same column order.
//   - The legacy two-column variant: one "key,value" row per coefficient.
//
// The variant is detected by whether the file has exactly two header
// columns with more than two data rows.
func LoadCoefficients(path string) (map[string]float32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open coefficients file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read coefficients csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("coefficients file is empty")
	}

	if len(records[0]) == 2 && len(records) > 2 {
		return parseTwoColumnCoefficients(records)
	}
	return parseHeaderValueCoefficients(records)
}

func parseHeaderValueCoefficients(records [][]string) (map[string]float32, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("coefficients file needs a header row and a value row, got %d rows", len(records))
	}
	headers, values := records[0], records[1]
	if len(headers) != len(values) {
		return nil, fmt.Errorf("coefficients header/value length mismatch: %d vs %d", len(headers), len(values))
	}

	coeffs := make(map[string]float32, len(headers))
	for i, rawKey := range headers {
		key := strings.Trim(strings.TrimSpace(rawKey), `"`)
		v, err := strconv.ParseFloat(strings.TrimSpace(values[i]), 32)
		if err != nil {
			return nil, fmt.Errorf("parse coefficient %q: %w", key, err)
		}
		coeffs[key] = float32(v)
	}
	return coeffs, nil
}

func parseTwoColumnCoefficients(records [][]string) (map[string]float32, error) {
	coeffs := make(map[string]float32, len(records))
	for _, row := range records {
		if len(row) != 2 {
			return nil, fmt.Errorf("two-column coefficients row has %d fields, want 2", len(row))
		}
		key := strings.Trim(strings.TrimSpace(row[0]), `"`)
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 32)
		if err != nil {
			return nil, fmt.Errorf("parse coefficient %q: %w", key, err)
		}
		coeffs[key] = float32(v)
	}
	return coeffs, nil
}

// LoadDxToCC reads a tab-delimited diagnosis-to-HCC crosswalk (columns
// dx, cc_number) and returns diagnosis code to ordered HCC label list. A
// diagnosis repeated across rows accumulates every mapped HCC.
func LoadDxToCC(path string) (map[string][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dx-to-cc file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	dxToCC := make(map[string][]string)
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read dx-to-cc row: %w", err)
		}
		if len(record) < 2 {
			continue
		}
		dx, cc := record[0], "HCC"+record[1]
		dxToCC[dx] = append(dxToCC[dx], cc)
	}
	return dxToCC, nil
}

// filenames used by LoadAll within a year-keyed reference-data directory.
const (
	labelsFilename       = "V28115L3.txt"
	hierarchiesFilename  = "V28115H1.TXT"
	coefficientsFilename = "C2824T2N.csv"
	dxToCCFilename       = "F2823T2N_FY22FY23.TXT"
)

// buildPublicInputs assembles a raf.PublicInputs from already-loaded
// pieces and the supplied normalization factor.
func buildPublicInputs(labels map[string]string, hiers map[string][]string,
	coeffs map[string]float32, dxToCC map[string][]string, normFactor float32) *raf.PublicInputs {
	return &raf.PublicInputs{
		HCCCoefficients: coeffs,
		HCCHierarchies:  hiers,
		HCCLabels:       labels,
		DxToCC:          dxToCC,
		NormFactor:      normFactor,
	}
}
