// Package clocktree enumerates the ADC kernel-clock frequencies reachable
// through the chip's fixed PLL and prescaler topology.
//
// The topology is hardcoded for one microcontroller family: a PLL fed by one
// of a few crystal options through an input divider, two alternative output
// divider paths feeding the ADC prescaler, a doubling multiplexer stage and a
// final synchronous halving stage. Values are taken from the data sheet.
package clocktree

import (
	"sort"
	"sync"
)

// PLL feedback multiplier range (DIVN), contiguous.
const (
	multiplierMin = 50
	multiplierMax = 250
)

// maxIntermediateHz is the 160 MHz ceiling the data sheet places on the PLL
// output paths. The same figure limits the prescaled clock and the pre-halving
// clock; whether those are three independent hardware limits or one limit
// quoted three times is not clear from the documentation, so all three checks
// are kept.
const maxIntermediateHz = 160e6

// Final allowed ADC kernel-clock band, inclusive.
const (
	KernelClockMinHz = 2e6
	KernelClockMaxHz = 80e6
)

var (
	// Supported HSE crystal frequencies (Hz).
	oscillators = []float64{8e6, 16e6, 25e6}

	// PLL input dividers (DIVM).
	inputDividers = []float64{1, 2, 4, 8}

	// ADC clock prescalers (PRESC), applied before the multiplexer.
	prescalers = []float64{1, 2, 4, 6, 8, 10, 12, 16, 32, 64, 128, 256}
)

// outputPath describes one of the two PLL output paths: its selectable
// dividers and the maximum frequency the path may carry.
type outputPath struct {
	dividers []float64
	maxHz    float64
}

var outputPaths = []outputPath{
	{dividers: []float64{1, 2, 4, 8, 16, 32, 64, 128}, maxHz: maxIntermediateHz}, // path P
	{dividers: []float64{1, 2, 3, 4, 5, 6, 7, 8}, maxHz: maxIntermediateHz},      // path R
}

// Enumerate computes every ADC kernel-clock frequency reachable through the
// topology. It is a pure function of the constants above: deterministic, never
// fails, and an empty result is valid. The returned slice is sorted descending
// and contains no duplicates; deduplication is by exact float64 equality, as
// two PLL paths landing on the same value must collapse to one clock.
func Enumerate() []float64 {
	// Working set of doubled (post-mux) frequencies.
	working := make(map[float64]struct{})

	for _, osc := range oscillators {
		for mult := multiplierMin; mult <= multiplierMax; mult++ {
			for _, div := range inputDividers {
				internal := osc * float64(mult) / div

				for _, path := range outputPaths {
					for _, outDiv := range path.dividers {
						output := internal / outDiv
						if output > path.maxHz {
							continue
						}

						for _, presc := range prescalers {
							prescaled := output / presc
							if prescaled > path.maxHz {
								continue
							}
							// Multiplexer stage doubles the clock.
							working[prescaled*2] = struct{}{}
						}
					}
				}
			}
		}
	}

	kernel := make([]float64, 0, len(working))
	for doubled := range working {
		if doubled > maxIntermediateHz {
			continue
		}
		// Synchronous clock stage halves the doubled clock.
		f := doubled / 2
		if f >= KernelClockMinHz && f <= KernelClockMaxHz {
			kernel = append(kernel, f)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(kernel)))
	return kernel
}

var (
	once   sync.Once
	cached []float64
)

// Frequencies returns the enumerated kernel-clock set, descending. The
// enumeration runs once per process; the cache is safe for concurrent readers
// since the topology never changes at runtime. Callers receive a copy.
func Frequencies() []float64 {
	once.Do(func() {
		cached = Enumerate()
	})

	result := make([]float64, len(cached))
	copy(result, cached)
	return result
}
