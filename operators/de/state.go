package de

import "github.com/mahf-opt/mahf/individual"

// RealEncoding is satisfied by any encoding backed by a []float64 — what
// SHADEMutation and SHADECrossover need to interpret solutions as
// coordinate vectors.
type RealEncoding[E any] interface {
	~[]float64
	individual.Encoding[E]
}

// SHADEHistoryF is the cyclic memory of successful mutation factors, one
// slot per history index, initialised to 0.5.
type SHADEHistoryF struct {
	Values []float64
}

// SHADEHistoryCR is the cyclic memory of successful crossover rates,
// parallel to SHADEHistoryF.
type SHADEHistoryCR struct {
	Values []float64
}

// NewSHADEHistory returns both histories of length h, every slot set to
// 0.5.
func NewSHADEHistory(h int) (*SHADEHistoryF, *SHADEHistoryCR) {
	f := make([]float64, h)
	cr := make([]float64, h)
	for i := range f {
		f[i], cr[i] = 0.5, 0.5
	}
	return &SHADEHistoryF{Values: f}, &SHADEHistoryCR{Values: cr}
}

// SHADEParamF holds the mutation factor sampled this iteration for each
// target individual in the current population, index-aligned.
type SHADEParamF struct {
	Values []float64
}

// SHADEParamCR holds the crossover rate sampled this iteration for each
// target individual in the current population, index-aligned.
type SHADEParamCR struct {
	Values []float64
}
