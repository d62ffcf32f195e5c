// Package de implements SHADE-style self-adaptive differential evolution:
// per-individual mutation factor F and crossover rate CR are resampled
// every iteration from two small cyclic histories, and the histories
// themselves adapt toward whatever (F, CR) pairs produced improvements.
//
// This sits alongside, not on top of, operators/generation's DEMutation
// and operators/recombination's DEBinomialCrossover: those take one fixed
// F/CR for the whole population, while SHADEMutation and SHADECrossover
// read a per-target value out of SHADEParamF/SHADEParamCR. The chunk
// assembly (selection) and donor/base bookkeeping are otherwise
// identical, so a SHADE pipeline swaps in SHADEMutation/SHADECrossover/
// SHADEAdaptationUpdate in place of their fixed-parameter counterparts
// without touching selection.
//
// The history cursor is k = iterations mod H rather than the fixed
// single slot the historical source used — the general form, chosen
// because nothing in the surrounding design motivates always rewriting
// slot 1.
package de
