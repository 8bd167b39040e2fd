package t018

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextELTIntervalPhase1Holds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	phase, interval := NextELTInterval(ELTPhase1, 10, rng)
	assert.Equal(t, ELTPhase1, phase)
	assert.Equal(t, 5000, interval)
}

func TestNextELTIntervalPhase1TransitionsAt36(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	phase, interval := NextELTInterval(ELTPhase1, 36, rng)
	assert.Equal(t, ELTPhase2, phase)
	assert.Equal(t, 10000, interval)
}

func TestNextELTIntervalPhase2TransitionsAt162(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	phase, interval := NextELTInterval(ELTPhase2, 162, rng)
	assert.Equal(t, ELTPhase3, phase)
	assert.InDelta(t, 28500, interval, 1500)
}

func TestNextELTIntervalPhase3JitterBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		phase, interval := NextELTInterval(ELTPhase3, uint32(i), rng)
		assert.Equal(t, ELTPhase3, phase)
		assert.GreaterOrEqual(t, interval, 28500-1500)
		assert.LessOrEqual(t, interval, 28500+1500)
	}
}

func TestNextELTIntervalDeterministicWithSameSeed(t *testing.T) {
	rngA := rand.New(rand.NewSource(99))
	rngB := rand.New(rand.NewSource(99))
	_, a := NextELTInterval(ELTPhase3, 0, rngA)
	_, b := NextELTInterval(ELTPhase3, 0, rngB)
	assert.Equal(t, a, b)
}
