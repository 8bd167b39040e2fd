package t018

/*------------------------------------------------------------------
 *
 * Purpose:	Assembles a complete 252-bit T.018 frame from a
 *		BeaconConfig and the caller-owned CoreState.
 *
 * Description:	Field offsets below are array indices into Frame,
 *		derived directly from the T.018 bit-position table:
 *		the two header bits occupy indices 0-1, so T.018's
 *		1-based information-block bit n lives at index n+1.
 *
 *------------------------------------------------------------------*/

const (
	offHeader      = 0
	offPad         = 1
	offTAC         = 2
	widTAC         = 16
	offSerial      = offTAC + widTAC   // 18
	widSerial      = 14
	offCountry     = offSerial + widSerial // 32
	widCountry     = 10
	offHoming      = offCountry + widCountry // 42
	offRLSCap      = offHoming + 1           // 43
	offTestProto   = offRLSCap + 1           // 44
	offPosition    = offTestProto + 1        // 45
	widPosition    = positionFieldBits       // 47
	offVesselType  = offPosition + widPosition // 92
	widVesselType  = 3
	offVesselID    = offVesselType + widVesselType // 95
	widVesselID    = 30
	offAISIdentity = offVesselID + widVesselID // 125
	widAISIdentity = 14
	offBeaconType  = offAISIdentity + widAISIdentity // 139
	widBeaconType  = 3
	offSpare       = offBeaconType + widBeaconType // 142
	widSpare       = 14
	offRFKind      = offSpare + widSpare // 156
	widRFKind      = 4
	offRFPayload   = offRFKind + widRFKind // 160
	widRFPayload   = rotatingFieldBits     // 44

	offParity = offRFPayload + widRFPayload // 204, == BCHInfoBits+2
)

// vesselIDType returns the 3-bit vessel-ID type ordinal for a beacon type.
func vesselIDType(t BeaconType) uint64 {
	switch t {
	case BeaconEPIRB:
		return 1
	case BeaconELT, BeaconELTDT:
		return 2
	default: // BeaconPLB
		return 0
	}
}

// vesselID masks the configured VesselID to the width the beacon type uses:
// 30-bit MMSI for EPIRB, 24-bit aircraft address (low bits) for ELT/ELT-DT,
// zero for PLB.
func vesselID(t BeaconType, id uint32) uint64 {
	switch t {
	case BeaconEPIRB:
		return uint64(id) & ((1 << 30) - 1)
	case BeaconELT, BeaconELTDT:
		return uint64(id) & ((1 << 24) - 1)
	default:
		return 0
	}
}

// validateConfig rejects BeaconConfig fields that fall outside their
// defined range, per spec's "never clamp silently" rule for
// caller-supplied identity fields (as opposed to the rotating field's
// own saturating counters, which clamp per spec by design).
func validateConfig(cfg BeaconConfig) error {
	if cfg.CountryCode > 1023 {
		return &ConfigOutOfRangeError{Field: "CountryCode", Value: cfg.CountryCode, Want: "[0, 1023]"}
	}
	if cfg.SerialNumber > 16383 {
		return &ConfigOutOfRangeError{Field: "SerialNumber", Value: cfg.SerialNumber, Want: "[0, 16383]"}
	}
	if err := validatePosition(cfg.Position); err != nil {
		return err
	}
	if cfg.EffectiveRotatingFieldKind() == RFKindRLS && cfg.RLSPayload >= (1<<rlsPayloadBits) {
		return &ConfigOutOfRangeError{Field: "RLSPayload", Value: cfg.RLSPayload, Want: "36-bit value"}
	}
	return nil
}

// BuildFrame assembles a 252-bit T.018 frame from cfg and state. It
// returns BCHInvariantBrokenError if the freshly computed parity
// fails its own verification, which would indicate an encoder bug
// rather than a bad configuration.
func BuildFrame(cfg BeaconConfig, state CoreState) (Frame, error) {
	var frame Frame

	if err := validateConfig(cfg); err != nil {
		return frame, err
	}

	writeBits(frame[:], offHeader, 1, uint64(cfg.TestMode))
	writeBits(frame[:], offPad, 1, 0)

	tac := uint64(cfg.TACNumber)
	if cfg.TestMode == ModeTest {
		tac = 9999
	}
	writeBits(frame[:], offTAC, widTAC, tac)

	writeBits(frame[:], offSerial, widSerial, uint64(cfg.SerialNumber)&((1<<widSerial)-1))
	writeBits(frame[:], offCountry, widCountry, uint64(cfg.CountryCode))
	writeBits(frame[:], offHoming, 1, 0)
	writeBits(frame[:], offRLSCap, 1, 1)
	writeBits(frame[:], offTestProto, 1, uint64(cfg.TestMode))

	encodePosition(frame[:], offPosition, cfg.Position)

	writeBits(frame[:], offVesselType, widVesselType, vesselIDType(cfg.BeaconType))
	writeBits(frame[:], offVesselID, widVesselID, vesselID(cfg.BeaconType, cfg.VesselID))
	writeBits(frame[:], offAISIdentity, widAISIdentity, uint64(cfg.EPIRBAISIdentity))
	writeBits(frame[:], offBeaconType, widBeaconType, uint64(cfg.BeaconType))
	writeBits(frame[:], offSpare, widSpare, (uint64(1)<<widSpare)-1)

	kind := cfg.EffectiveRotatingFieldKind()
	writeBits(frame[:], offRFKind, widRFKind, uint64(kind))
	buildRotatingField(frame[:], offRFPayload, kind, cfg, state)

	info := frame[2:offParity]
	parity := BCHCompute(info)
	for i, b := range parity {
		frame[offParity+i] = b
	}

	if !BCHVerify(info, frame[offParity:]) {
		return frame, &BCHInvariantBrokenError{}
	}

	return frame, nil
}
