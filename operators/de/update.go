package de

import (
	"math"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/counter"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// SHADEAdaptationUpdate is replacement.KeepBetterAtIndex plus history
// bookkeeping: at each index, whichever of parent[i] or offspring[i] is
// better survives; for every index where offspring won, |Δf_i| together
// with the (F_i, CR_i) that produced it (read back from
// SHADEParamF/SHADEParamCR) is recorded. If any index improved, the
// weighted Lehmer mean of the recorded F's and the weighted arithmetic
// mean of the recorded CR's (weights |Δf_i| normalized to sum to 1) are
// written into both histories at slot k = iterations mod H; if none
// improved, slot k is overwritten with slot (k-1 mod H) — carrying the
// previous value forward unchanged — and μF/μCR are otherwise
// untouched. Parents and offspring must have equal cardinality.
type SHADEAdaptationUpdate[E individual.Encoding[E]] struct {
	component.Base[E]
	Minimize bool
}

// NewSHADEAdaptationUpdate returns a SHADEAdaptationUpdate.
func NewSHADEAdaptationUpdate[E individual.Encoding[E]](minimize bool) *SHADEAdaptationUpdate[E] {
	return &SHADEAdaptationUpdate[E]{Minimize: minimize}
}

func (*SHADEAdaptationUpdate[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireHistoryInputs[E](r, "de.SHADEAdaptationUpdate")
	component.Require[*SHADEParamF](r, "de.SHADEAdaptationUpdate")
	component.Require[*SHADEParamCR](r, "de.SHADEAdaptationUpdate")
	component.Require[*counter.Iterations](r, "de.SHADEAdaptationUpdate")
}

func (u *SHADEAdaptationUpdate[E]) Execute(_ problem.Interface[E], s *state.State) error {
	offspring, parents, err := popOffspringAndParents[E](s, "de.SHADEAdaptationUpdate")
	if err != nil {
		return err
	}
	if len(offspring) != len(parents) {
		if pushErr := restoreTwo[E](s, offspring, parents); pushErr != nil {
			return pushErr
		}
		return layoutf("de.SHADEAdaptationUpdate", "parents (%d) and offspring (%d) must have equal cardinality", len(parents), len(offspring))
	}

	fg, err := state.Borrow[*SHADEParamF](s)
	if err != nil {
		if pushErr := restoreTwo[E](s, offspring, parents); pushErr != nil {
			return pushErr
		}
		return err
	}
	fValues := (*fg.Get()).Values
	fg.Release()

	crg, err := state.Borrow[*SHADEParamCR](s)
	if err != nil {
		if pushErr := restoreTwo[E](s, offspring, parents); pushErr != nil {
			return pushErr
		}
		return err
	}
	crValues := (*crg.Get()).Values
	crg.Release()

	if len(fValues) != len(parents) || len(crValues) != len(parents) {
		if pushErr := restoreTwo[E](s, offspring, parents); pushErr != nil {
			return pushErr
		}
		return layoutf("de.SHADEAdaptationUpdate", "SHADEParamF/CR must carry one entry per individual")
	}

	survivors := make(population.Population[E], len(parents))
	var improvedF, improvedCR, weights []float64

	for i := range parents {
		if outranks[E](offspring[i], parents[i], u.Minimize) {
			survivors[i] = offspring[i].Clone()
			pObj, _ := parents[i].Objective()
			oObj, _ := offspring[i].Objective()
			pv, err := scalarOf(pObj)
			if err != nil {
				if pushErr := restoreTwo[E](s, offspring, parents); pushErr != nil {
					return pushErr
				}
				return err
			}
			ov, err := scalarOf(oObj)
			if err != nil {
				if pushErr := restoreTwo[E](s, offspring, parents); pushErr != nil {
					return pushErr
				}
				return err
			}
			improvedF = append(improvedF, fValues[i])
			improvedCR = append(improvedCR, crValues[i])
			weights = append(weights, math.Abs(pv-ov))
		} else {
			survivors[i] = parents[i].Clone()
		}
	}
	if pushErr := pushSurvivors[E](s, survivors); pushErr != nil {
		return pushErr
	}

	ig, err := state.Borrow[*counter.Iterations](s)
	if err != nil {
		return err
	}
	iterations := (*ig.Get()).Value()
	ig.Release()

	fhg, err := state.BorrowMut[*SHADEHistoryF](s)
	if err != nil {
		return err
	}
	defer fhg.Release()
	histF := (*fhg.Get())

	crhg, err := state.BorrowMut[*SHADEHistoryCR](s)
	if err != nil {
		return err
	}
	defer crhg.Release()
	histCR := (*crhg.Get())

	h := len(histF.Values)
	k := int(iterations % uint64(h))

	if len(improvedF) == 0 {
		prev := (k - 1 + h) % h
		histF.Values[k] = histF.Values[prev]
		histCR.Values[k] = histCR.Values[prev]
		return nil
	}

	var sumW float64
	for _, w := range weights {
		sumW += w
	}
	var lehmerNum, lehmerDen, crMean float64
	for i := range improvedF {
		w := weights[i]
		if sumW > 0 {
			w /= sumW
		} else {
			w = 1.0 / float64(len(improvedF))
		}
		lehmerNum += w * improvedF[i] * improvedF[i]
		lehmerDen += w * improvedF[i]
		crMean += w * improvedCR[i]
	}
	if lehmerDen != 0 {
		histF.Values[k] = lehmerNum / lehmerDen
	}
	histCR.Values[k] = crMean
	return nil
}
