package t018

/*------------------------------------------------------------------
 *
 * Purpose:	Core ties FrameBuilder and OqpskModulator together
 *		behind the PRN self-check gate spec.md §7 requires.
 *
 * Description:	No burst in this package is produced without the gate:
 *		NewCore is the only way to obtain a Core, and it runs
 *		VerifyPRNSelfCheck once, up front, returning
 *		PRNSelfCheckFailedError if the generator does not match
 *		T.018 Table 2.2. Modulator.Modulate, which every burst
 *		passes through (including Core.Modulate), runs the same
 *		check again before spreading. BuildFrame produces only a
 *		frame, not a burst, and does not run the check.
 *
 *------------------------------------------------------------------*/

// Core is the gated entry point for building and modulating T.018 bursts.
type Core struct {
	sps int
}

// NewCore verifies the PRN self-check and, on success, returns a Core
// configured to modulate at the given samples-per-chip.
func NewCore(sps int) (*Core, error) {
	if err := VerifyPRNSelfCheck(); err != nil {
		return nil, err
	}
	if sps < 8 {
		return nil, &ConfigOutOfRangeError{Field: "SPS", Value: sps, Want: ">= 8"}
	}
	return &Core{sps: sps}, nil
}

// BuildFrame assembles a frame for cfg/state. See t018.BuildFrame.
func (c *Core) BuildFrame(cfg BeaconConfig, state CoreState) (Frame, error) {
	return BuildFrame(cfg, state)
}

// SampleCount returns the number of complex samples one burst produces.
func (c *Core) SampleCount() int {
	return ChipRateHz * c.sps
}

// Modulate builds a frame from cfg/state and OQPSK-modulates it into dst.
func (c *Core) Modulate(cfg BeaconConfig, state CoreState, dst []complex128) (Frame, error) {
	frame, err := c.BuildFrame(cfg, state)
	if err != nil {
		return frame, err
	}
	mod := NewModulator(c.sps)
	if err := mod.Modulate(frame, dst); err != nil {
		return frame, err
	}
	return frame, nil
}
