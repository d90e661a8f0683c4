package repository

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// fileLoadResult holds the result of loading a single dataset file
type fileLoadResult struct {
	index int
	ds    dataset
	err   error
}

// NewMenuRepositoryFromFiles loads dataset fragments from multiple YAML files
// concurrently and merges them in argument order: foods and guidelines
// accumulate across files, and a later food with an already-seen id is
// rejected. Returns an error if any file fails to load or the merged dataset
// is invalid.
func NewMenuRepositoryFromFiles(ctx context.Context, paths []string) (*InMemoryMenuRepository, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no dataset files provided")
	}

	resultChan := make(chan fileLoadResult, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(index int, filePath string) {
			defer wg.Done()

			ds, err := loadFile(ctx, filePath)
			resultChan <- fileLoadResult{
				index: index,
				ds:    ds,
				err:   err,
			}
		}(i, path)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results maintaining order
	results := make([]fileLoadResult, len(paths))
	for result := range resultChan {
		results[result.index] = result
	}

	var merged dataset
	for i, result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("failed to load dataset file %d: %w", i+1, result.err)
		}
		merged.Foods = append(merged.Foods, result.ds.Foods...)
		merged.Guidelines = append(merged.Guidelines, result.ds.Guidelines...)
	}

	return newFromDataset(merged)
}

// loadFile reads and parses one YAML dataset file
func loadFile(ctx context.Context, path string) (dataset, error) {
	if err := ctx.Err(); err != nil {
		return dataset{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return dataset{}, fmt.Errorf("read %s: %w", path, err)
	}

	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return dataset{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return ds, nil
}
