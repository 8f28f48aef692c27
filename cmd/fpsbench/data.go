package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
)

// generateUniform fills an n*d row-major buffer with points drawn
// uniformly from [0, 1) in every dimension, seeded for reproducible
// benchmark runs.
func generateUniform(n, d int, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float32, n*d)
	for i := range data {
		data[i] = float32(rng.Float64())
	}
	return data
}

// loadCSV reads a headerless CSV file of n rows by d columns of
// float32 coordinates into a row-major buffer.
func loadCSV(path string, d int) (data []float32, n int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("fpsbench: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = d

	for row := 0; ; row++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("fpsbench: %s: row %d: %w", path, row, err)
		}
		for _, field := range rec {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, 0, fmt.Errorf("fpsbench: %s: row %d: %w", path, row, err)
			}
			data = append(data, float32(v))
		}
		n++
	}
	return data, n, nil
}
