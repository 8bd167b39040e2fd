package t018

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRotatingFieldG008Exercise(t *testing.T) {
	dst := make([]Bit, rotatingFieldBits)
	cfg := BeaconConfig{TestMode: ModeExercise, Position: Position{Valid: true, Altitude: 1500}}
	state := CoreState{ElapsedActivationHours: 3, MinutesSinceLastFix: 10, BurstCount: 7}

	buildG008(dst, 0, cfg, state)

	assert.Equal(t, uint64(3), readBits(dst, 0, g008HoursBits))
	assert.Equal(t, uint64(10), readBits(dst, g008HoursBits, g008MinutesBits))
	assert.Equal(t, uint64(119), readBits(dst, g008HoursBits+g008MinutesBits, g008AltitudeBits))
	// Exercise mode: no LFSR scrambling, tail is all zero.
	assert.Equal(t, uint64(0), readBits(dst, g008HoursBits+g008MinutesBits+g008AltitudeBits, g008LFSRBits))
}

func TestBuildRotatingFieldG008TestModeScrambles(t *testing.T) {
	dst := make([]Bit, rotatingFieldBits)
	cfg := BeaconConfig{TestMode: ModeTest}
	state := CoreState{BurstCount: 42}

	buildG008(dst, 0, cfg, state)

	tail := readBits(dst, g008HoursBits+g008MinutesBits+g008AltitudeBits, g008LFSRBits)
	assert.NotEqual(t, uint64(0), tail, "test-mode G008 LFSR tail should not be all zero for a nonzero seed")
}

func TestBuildRotatingFieldG008SaturatesHoursAndMinutes(t *testing.T) {
	dst := make([]Bit, rotatingFieldBits)
	cfg := BeaconConfig{}
	state := CoreState{ElapsedActivationHours: 1000, MinutesSinceLastFix: 99999}

	buildG008(dst, 0, cfg, state)

	assert.Equal(t, uint64(g008HoursMax), readBits(dst, 0, g008HoursBits))
	assert.Equal(t, uint64(g008MinutesMax), readBits(dst, g008HoursBits, g008MinutesBits))
}

func TestBuildRotatingFieldELTDTPackedTime(t *testing.T) {
	// End-to-end scenario 3: day 3, 14:07 UTC, altitude 1500 m.
	dst := make([]Bit, rotatingFieldBits)
	cfg := BeaconConfig{
		Position:    Position{Valid: true, Altitude: 1500},
		ELTDTDay:    3,
		ELTDTHour:   14,
		ELTDTMinute: 7,
	}

	buildELTDT(dst, 0, cfg)

	assert.Equal(t, uint64(7047), readBits(dst, 0, eltdtTimeBits))
	assert.Equal(t, uint64(119), readBits(dst, eltdtTimeBits, eltdtAltitudeBits))
	assert.Equal(t, uint64(0), readBits(dst, eltdtTimeBits+eltdtAltitudeBits, eltdtZeroBits))
}

func TestBuildRotatingFieldCancelAllOnesTail(t *testing.T) {
	// End-to-end scenario 4: method = manual (0), tail bits all 1.
	dst := make([]Bit, rotatingFieldBits)
	cfg := BeaconConfig{DeactivationMethod: 0}

	buildCancel(dst, 0, cfg)

	assert.Equal(t, uint64(0), readBits(dst, 0, cancelMethodBits))
	want := uint64(1)<<cancelOnesBits - 1
	assert.Equal(t, want, readBits(dst, cancelMethodBits, cancelOnesBits))
}

func TestBuildRotatingFieldRLS(t *testing.T) {
	dst := make([]Bit, rotatingFieldBits)
	cfg := BeaconConfig{RLSProviderID: 0xAB, RLSPayload: 0x123456789}

	buildRLS(dst, 0, cfg)

	assert.Equal(t, uint64(0xAB), readBits(dst, 0, rlsProviderBits))
	assert.Equal(t, uint64(0x123456789), readBits(dst, rlsProviderBits, rlsPayloadBits))
}

func TestGenerateG008LFSRZeroSeedDoesNotLock(t *testing.T) {
	zero := generateG008LFSR(0, g008LFSRBits)
	nonzero := generateG008LFSR(1, g008LFSRBits)
	assert.NotEqual(t, uint64(0), zero)
	assert.NotEqual(t, uint64(0), nonzero)
}
