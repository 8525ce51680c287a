package main

import (
	"os"
	"path/filepath"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func f64[N number](n N) float64 {
	return float64(n)
}

func f32[N number](n N) float32 {
	return float32(n)
}

// RelativePath returns path relative to the directory of the executable.
func RelativePath(path string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}

	return filepath.Join(filepath.Dir(exe), path), nil
}
