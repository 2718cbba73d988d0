// Package numeric implements small aggregation routines over slices of numbers.
package numeric

import "github.com/denismitr/wrp/utils"

type (
	averageConfig[R utils.Number] struct {
		seed R
	}

	AverageOption[R utils.Number] func(cfg *averageConfig[R])
)

// WithSeed sets the initial value of the accumulator, 0 by default
func WithSeed[R utils.Number](seed R) AverageOption[R] {
	return func(cfg *averageConfig[R]) {
		cfg.seed = seed
	}
}

// Average returns the arithmetic mean of xs as float64.
// An empty slice yields 0.
func Average[T utils.Number](xs []T, options ...AverageOption[float64]) float64 {
	return AverageAs[float64](xs, options...)
}

// AverageAs returns (seed + xs[0] + ... + xs[n-1]) / n computed in R,
// summing from left to right. An integer R means integer division.
// An empty slice yields 0 regardless of the seed.
func AverageAs[R, T utils.Number](xs []T, options ...AverageOption[R]) R {
	if len(xs) == 0 {
		return 0
	}

	cfg := averageConfig[R]{}
	for _, opt := range options {
		opt(&cfg)
	}

	acc := cfg.seed
	for _, x := range xs {
		acc += R(x)
	}

	return acc / R(len(xs))
}
