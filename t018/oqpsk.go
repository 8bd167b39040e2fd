package t018

import "math"

/*------------------------------------------------------------------
 *
 * Purpose:	Spreads a frame's data bits with the PRN generator and
 *		OQPSK-modulates the result into complex baseband samples.
 *
 * Description:	300 bits are transmitted per burst: a 50-bit all-zero
 *		preamble (T.018 §2.2.4) followed by 250 data bits. Those
 *		250 bits are the frame's bits [2:252) — the 202
 *		information bits plus the 48 BCH parity bits, with the 2
 *		header bits dropped. This follows the original
 *		build_transmission_frame routine literally: it copies
 *		only 250 of the 252 frame bits ahead of the preamble,
 *		which is what makes the total come out to exactly 300
 *		rather than 302.
 *
 *------------------------------------------------------------------*/

const (
	ChipRateHz      = 38400
	PreambleBits    = 50
	TransmittedDataBits = FrameBits - 2 // 250: frame bits [2:252)
	TotalTransmittedBits = PreambleBits + TransmittedDataBits // 300
	ChipsPerBit     = 256
	bitsPerChannel  = TotalTransmittedBits / 2 // 150
)

// PulseShape is the chip pulse-shaping strategy. Sample returns the
// weight for sample n of sps in a single chip's pulse window.
type PulseShape interface {
	Sample(n, sps int) float64
}

// HalfSinePulse is T.018's default and only mandated pulse: p[n] = sin(pi*n/sps).
type HalfSinePulse struct{}

func (HalfSinePulse) Sample(n, sps int) float64 {
	return math.Sin(math.Pi * float64(n) / float64(sps))
}

// Modulator holds the configuration for one OQPSK modulation run.
// Pulse defaults to HalfSinePulse when left at its zero value.
type Modulator struct {
	SPS   int // samples per chip, integer >= 8
	Pulse PulseShape
}

// NewModulator builds a Modulator for the given samples-per-chip,
// defaulting to the half-sine pulse.
func NewModulator(sps int) *Modulator {
	return &Modulator{SPS: sps, Pulse: HalfSinePulse{}}
}

// SampleCount returns the exact number of complex samples one burst produces.
func (m *Modulator) SampleCount() int {
	return ChipRateHz * m.SPS
}

// Modulate spreads and OQPSK-modulates frame into dst, which must
// have at least SampleCount() elements; only the first SampleCount()
// are written. It returns PRNSelfCheckFailedError if the PRN
// generator fails its Table 2.2 self-check, ConfigOutOfRangeError for
// an invalid sps and BufferTooSmallError if dst is undersized.
func (m *Modulator) Modulate(frame Frame, dst []complex128) error {
	if err := VerifyPRNSelfCheck(); err != nil {
		return err
	}
	if m.SPS < 8 {
		return &ConfigOutOfRangeError{Field: "SPS", Value: m.SPS, Want: ">= 8"}
	}
	need := m.SampleCount()
	if len(dst) < need {
		return &BufferTooSmallError{Need: need, Have: len(dst)}
	}
	dst = dst[:need]

	pulse := m.Pulse
	if pulse == nil {
		pulse = HalfSinePulse{}
	}

	transmitted := make([]Bit, TotalTransmittedBits)
	copy(transmitted[PreambleBits:], frame[2:FrameBits])

	var iBits, qBits [bitsPerChannel]Bit
	iN, qN := 0, 0
	for i, b := range transmitted {
		if i%2 == 0 {
			iBits[iN] = b
			iN++
		} else {
			qBits[qN] = b
			qN++
		}
	}

	iChips := spreadChannel(iBits[:], PRNModeNormal, PRNChannelI)
	qChips := spreadChannel(qBits[:], PRNModeNormal, PRNChannelQ)

	iStream := make([]float64, need)
	renderChipStream(iStream, iChips, m.SPS, pulse, 0)

	qDelay := m.SPS / 2
	qStream := make([]float64, need+qDelay)
	renderChipStream(qStream, qChips, m.SPS, pulse, 0)

	const normFactor = 1 / math.Sqrt2
	rotCos, rotSin := math.Cos(math.Pi/4), math.Sin(math.Pi/4)

	for n := 0; n < need; n++ {
		iv := iStream[n]
		var qv float64
		if n+qDelay < len(qStream) {
			qv = qStream[n+qDelay]
		}
		iv *= normFactor
		qv *= normFactor
		// Rotate (iv, qv) by pi/4.
		dst[n] = complex(iv*rotCos-qv*rotSin, iv*rotSin+qv*rotCos)
	}

	return nil
}

// spreadChannel pulls ChipsPerBit PRN chips per data bit from a fresh
// generator for (mode, channel), inverting the run when the bit is 1,
// and concatenates the result into one continuous chip stream.
func spreadChannel(bits []Bit, mode PRNMode, channel PRNChannel) []int8 {
	gen := NewPRNGenerator(mode, channel)
	chips := make([]int8, len(bits)*ChipsPerBit)
	buf := make([]int8, ChipsPerBit)
	for i, b := range bits {
		gen.Generate(buf)
		out := chips[i*ChipsPerBit : (i+1)*ChipsPerBit]
		if b == 1 {
			for j, c := range buf {
				out[j] = -c
			}
		} else {
			copy(out, buf)
		}
	}
	return chips
}

// renderChipStream expands each +-1 chip into sps pulse-shaped
// samples, chip k occupying the non-overlapping window
// [offset+k*sps, offset+(k+1)*sps) of dst.
func renderChipStream(dst []float64, chips []int8, sps int, pulse PulseShape, offset int) {
	for k, c := range chips {
		base := offset + k*sps
		for n := 0; n < sps; n++ {
			idx := base + n
			if idx < 0 || idx >= len(dst) {
				continue
			}
			dst[idx] = float64(c) * pulse.Sample(n, sps)
		}
	}
}
