package t018

/*------------------------------------------------------------------
 *
 * Purpose:	Decodes an assembled Frame back into its field values,
 *		for the external pretty-printer tool. Not exercised by
 *		BuildFrame itself — this is read-only introspection.
 *
 *------------------------------------------------------------------*/

// DecodedFrame holds the FrameBuilder fields DecodeFrame reads back out
// of a Frame. The homing, test-protocol and spare bits and the
// rotating-field payload are not decoded.
type DecodedFrame struct {
	TestMode          TestMode
	TAC               uint16
	SerialNumber      uint16
	CountryCode       uint16
	RLSCapable        bool
	LatitudeRaw       uint64
	LongitudeRaw      uint64
	VesselIDType      uint64
	VesselID          uint64
	EPIRBAISIdentity  uint16
	BeaconType        BeaconType
	RotatingFieldKind RotatingFieldKind
	BCHVerifies       bool
}

// DecodeFrame reads the DecodedFrame fields back out of frame.
func DecodeFrame(frame Frame) DecodedFrame {
	var d DecodedFrame

	d.TestMode = TestMode(readBits(frame[:], offHeader, 1))
	d.TAC = uint16(readBits(frame[:], offTAC, widTAC))
	d.SerialNumber = uint16(readBits(frame[:], offSerial, widSerial))
	d.CountryCode = uint16(readBits(frame[:], offCountry, widCountry))
	d.RLSCapable = readBits(frame[:], offRLSCap, 1) == 1
	d.LatitudeRaw = readBits(frame[:], offPosition, positionLatBits)
	d.LongitudeRaw = readBits(frame[:], offPosition+positionLatBits, positionLonBits)
	d.VesselIDType = readBits(frame[:], offVesselType, widVesselType)
	d.VesselID = readBits(frame[:], offVesselID, widVesselID)
	d.EPIRBAISIdentity = uint16(readBits(frame[:], offAISIdentity, widAISIdentity))
	d.BeaconType = BeaconType(readBits(frame[:], offBeaconType, widBeaconType))
	d.RotatingFieldKind = RotatingFieldKind(readBits(frame[:], offRFKind, widRFKind))
	d.BCHVerifies = BCHVerify(frame[2:offParity], frame[offParity:])

	return d
}

// DecodeLatitude recovers degrees from a 23-bit latitude field, or
// (0, false) if the field is all zero (an unset/invalid position).
func DecodeLatitude(raw uint64) (degrees float64, ok bool) {
	if raw == 0 {
		return 0, false
	}
	sign := (raw >> 22) & 1
	whole := (raw >> 15) & 0x7F
	frac := raw & 0x7FFF
	degrees = float64(whole) + float64(frac)/32768
	if sign == 1 {
		degrees = -degrees
	}
	return degrees, true
}

// DecodeLongitude recovers degrees from a 24-bit longitude field, or
// (0, false) if the field is all zero.
func DecodeLongitude(raw uint64) (degrees float64, ok bool) {
	if raw == 0 {
		return 0, false
	}
	sign := (raw >> 23) & 1
	whole := (raw >> 15) & 0xFF
	frac := raw & 0x7FFF
	degrees = float64(whole) + float64(frac)/32768
	if sign == 1 {
		degrees = -degrees
	}
	return degrees, true
}
