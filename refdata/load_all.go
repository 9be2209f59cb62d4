package refdata

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"hccraf/raf"
)

// LoadAll loads the four reference files out of dir concurrently and
// assembles a raf.PublicInputs with the given normalization factor. The
// four files are independent of each other, so each is loaded on its own
// goroutine; this is concurrency over disjoint reference inputs, not
// concurrent scoring of multiple beneficiaries.
func LoadAll(ctx context.Context, dir string, normFactor float32) (*raf.PublicInputs, error) {
	var (
		labels map[string]string
		hiers  map[string][]string
		coeffs map[string]float32
		dxToCC map[string][]string
	)

	group, _ := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		labels, err = LoadHCCLabels(filepath.Join(dir, labelsFilename))
		if err != nil {
			return fmt.Errorf("load hcc labels: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		hiers, err = LoadHierarchies(filepath.Join(dir, hierarchiesFilename))
		if err != nil {
			return fmt.Errorf("load hierarchies: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		coeffs, err = LoadCoefficients(filepath.Join(dir, coefficientsFilename))
		if err != nil {
			return fmt.Errorf("load coefficients: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		dxToCC, err = LoadDxToCC(filepath.Join(dir, dxToCCFilename))
		if err != nil {
			return fmt.Errorf("load dx-to-cc: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return buildPublicInputs(labels, hiers, coeffs, dxToCC, normFactor), nil
}

// LocateDataDir finds the reference-data directory for a performance year
// under root, trying "<root>/<year>" then "<root>/PY<year>". Callers that
// already know the exact directory should skip this and call LoadAll
// directly.
func LocateDataDir(root string, performanceYear int) (string, error) {
	candidates := []string{
		filepath.Join(root, fmt.Sprintf("%d", performanceYear)),
		filepath.Join(root, fmt.Sprintf("PY%d", performanceYear)),
	}
	for _, dir := range candidates {
		if dirExists(dir) {
			return dir, nil
		}
	}
	return "", fmt.Errorf("no reference-data directory found for performance year %d under %s", performanceYear, root)
}
