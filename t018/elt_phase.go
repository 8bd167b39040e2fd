package t018

import "math/rand"

/*------------------------------------------------------------------
 *
 * Purpose:	ELT transmission-phase sequencing, the pure phase-
 *		transition table an external burst scheduler consults.
 *
 * Description:	T.018 ELTs step through three intervals: 5 s for the
 *		first 36 transmissions, 10 s for the next 162, then
 *		28.5 s +-1.5 s indefinitely. This is sequencing logic,
 *		not a scheduler: it takes the current phase and the
 *		transmission count already sent in that phase and
 *		returns the next phase and the interval to wait before
 *		the next burst. The caller's own timing loop drives it;
 *		that loop is the "burst scheduler" the core excludes.
 *
 *------------------------------------------------------------------*/

// ELTPhase is one of the three T.018 ELT transmission-interval phases.
type ELTPhase int

const (
	ELTPhase1 ELTPhase = iota
	ELTPhase2
	ELTPhase3
)

const (
	eltPhase1IntervalMillis = 5000
	eltPhase2IntervalMillis = 10000
	eltPhase3IntervalMillis = 28500
	eltPhase3JitterMillis   = 1500

	eltPhase1Count = 36
	eltPhase2Count = 162
)

// NextELTInterval returns the next phase and the interval in
// milliseconds to wait before the next transmission, given the
// current phase and the number of transmissions already sent within
// it. Phase 3's jitter is drawn from rng, never a package-level
// random source, so the sequence is reproducible under test.
func NextELTInterval(phase ELTPhase, transmissionCount uint32, rng *rand.Rand) (nextPhase ELTPhase, intervalMillis int) {
	switch phase {
	case ELTPhase1:
		if transmissionCount >= eltPhase1Count {
			return ELTPhase2, eltPhase2IntervalMillis
		}
		return ELTPhase1, eltPhase1IntervalMillis
	case ELTPhase2:
		if transmissionCount >= eltPhase2Count {
			return ELTPhase3, eltPhase3Interval(rng)
		}
		return ELTPhase2, eltPhase2IntervalMillis
	default: // ELTPhase3
		return ELTPhase3, eltPhase3Interval(rng)
	}
}

func eltPhase3Interval(rng *rand.Rand) int {
	jitter := rng.Intn(eltPhase3JitterMillis*2) - eltPhase3JitterMillis
	return eltPhase3IntervalMillis + jitter
}
