package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"alumni-connect-workers/internal/models"
)

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func readProfile(path string) (models.Profile, error) {
	var p models.Profile
	if err := readJSON(path, &p); err != nil {
		return models.Profile{}, err
	}
	if err := p.Validate(); err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func readPool(path string) ([]models.Profile, error) {
	var pool []models.Profile
	if err := readJSON(path, &pool); err != nil {
		return nil, err
	}
	if err := models.ValidatePool(pool); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pool, nil
}

// writeOutput writes v as indented JSON to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
