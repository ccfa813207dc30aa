// Package planner searches the enumerated ADC clock frequencies, combined
// with the configured sampling-time menu, for the configuration whose
// achieved sample rate best matches a target.
package planner

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/b4shful/ClockCalc/pkg/clocktree"
	"github.com/b4shful/ClockCalc/pkg/config"
)

// ErrNoCandidates is returned when there are no (clock, sampling time) pairs
// to rank: either the clock tree yields no legal frequency or the configured
// sampling-time menu is empty.
var ErrNoCandidates = errors.New("no candidate configurations to rank")

// Policy selects the ranking rule applied to the candidate set.
type Policy int

const (
	// PolicyBalanced orders candidates by ascending sample-rate error, then
	// by descending clock frequency, and takes the first. Default.
	PolicyBalanced Policy = iota
	// PolicyMinimizeDelta takes the single candidate with the smallest
	// sample-rate error, first encountered winning ties.
	PolicyMinimizeDelta
	// PolicyPreferHighClock takes the highest clock among candidates whose
	// error is within 1.5x of the best achievable error.
	PolicyPreferHighClock
)

// highClockTolerance widens the acceptable error band for PolicyPreferHighClock.
const highClockTolerance = 1.5

// Setting is one candidate ADC configuration: a kernel-clock frequency and a
// sampling time, with the conversion time and sample rate they yield.
// Immutable once constructed.
type Setting struct {
	ClockHz        float64 // ADC kernel clock (Hz)
	SamplingCycles float64 // Sampling time (ADC clock cycles)
	ConversionTime float64 // Total time per conversion (s)
	SampleRate     float64 // Achieved sample rate (Hz)
}

// newSetting derives the conversion time and sample rate for a
// (clock, sampling time) pair under the given conversion overhead.
func newSetting(clockHz, samplingCycles, overheadCycles float64) Setting {
	conversionTime := (samplingCycles + overheadCycles) / clockHz
	return Setting{
		ClockHz:        clockHz,
		SamplingCycles: samplingCycles,
		ConversionTime: conversionTime,
		SampleRate:     1 / conversionTime,
	}
}

// String renders the setting for humans: clock in MHz, sampling time in
// cycles, conversion time in microseconds, sample rate in Hz.
func (s Setting) String() string {
	return fmt.Sprintf("clock %.3f MHz, sampling %.1f cycles, conversion %.4f us, rate %.1f Hz",
		s.ClockHz/1e6, s.SamplingCycles, s.ConversionTime*1e6, s.SampleRate)
}

// Planner ranks candidate settings against a target sample rate. It reads the
// sampling-time menu and conversion overhead from its configuration at call
// time, so config changes affect subsequent calls only. Mutating the config
// while a call is in flight is not supported; the planner does no internal
// locking because it has no concurrency requirement of its own.
type Planner struct {
	cfg *config.Config

	// frequencies supplies the legal kernel clocks, descending.
	// Overridable in tests.
	frequencies func() []float64
}

// New creates a Planner backed by the chip's clock tree.
func New(cfg *config.Config) *Planner {
	return &Planner{
		cfg:         cfg,
		frequencies: clocktree.Frequencies,
	}
}

// candidates materializes the full cross product of legal clock frequencies
// and the sampling-time menu. No early termination: ranking needs the global
// best error before any candidate can be accepted or rejected.
func (p *Planner) candidates() []Setting {
	freqs := p.frequencies()
	times := p.cfg.Sampling.Times
	overhead := p.cfg.Sampling.ConversionOverhead

	out := make([]Setting, 0, len(freqs)*len(times))
	for _, f := range freqs {
		for _, st := range times {
			out = append(out, newSetting(f, st, overhead))
		}
	}
	return out
}

// FindOptimalSettings returns the single best setting for the target sample
// rate under the given policy. The only failure is an empty candidate set;
// any target value is accepted and simply ranked against.
func (p *Planner) FindOptimalSettings(targetRate float64, policy Policy) (Setting, error) {
	cands := p.candidates()
	if len(cands) == 0 {
		return Setting{}, ErrNoCandidates
	}

	switch policy {
	case PolicyMinimizeDelta:
		best := cands[0]
		for _, c := range cands[1:] {
			if rateError(c, targetRate) < rateError(best, targetRate) {
				best = c
			}
		}
		return best, nil

	case PolicyPreferHighClock:
		bestError := math.Inf(1)
		for _, c := range cands {
			if e := rateError(c, targetRate); e < bestError {
				bestError = e
			}
		}
		best := Setting{ClockHz: -1}
		for _, c := range cands {
			if rateError(c, targetRate) <= bestError*highClockTolerance && c.ClockHz > best.ClockHz {
				best = c
			}
		}
		return best, nil

	default: // PolicyBalanced
		sortByErrorThenClock(cands, targetRate)
		return cands[0], nil
	}
}

// FindMultipleSettings returns up to maxResults settings ordered by ascending
// sample-rate error, ties broken by descending clock frequency. Fewer than
// maxResults candidates is not an error; neither is an empty result.
func (p *Planner) FindMultipleSettings(targetRate float64, maxResults int) []Setting {
	cands := p.candidates()
	sortByErrorThenClock(cands, targetRate)

	if maxResults < 0 {
		maxResults = 0
	}
	if maxResults > len(cands) {
		maxResults = len(cands)
	}
	return cands[:maxResults]
}

// rateError is the absolute distance between a candidate's achieved sample
// rate and the target.
func rateError(s Setting, targetRate float64) float64 {
	return math.Abs(s.SampleRate - targetRate)
}

// sortByErrorThenClock orders candidates by ascending error from the target,
// then by descending clock frequency. Stable, so equal candidates keep their
// enumeration order.
func sortByErrorThenClock(cands []Setting, targetRate float64) {
	sort.SliceStable(cands, func(i, j int) bool {
		ei, ej := rateError(cands[i], targetRate), rateError(cands[j], targetRate)
		if ei != ej {
			return ei < ej
		}
		return cands[i].ClockHz > cands[j].ClockHz
	})
}
