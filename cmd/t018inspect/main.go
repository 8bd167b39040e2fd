/*------------------------------------------------------------------
 *
 * Purpose:	Decodes a .sigmf-data-less, already-assembled T.018
 *		frame (hex on the command line) and pretty-prints every
 *		field, plus a UTM projection of the decoded position for
 *		cross-referencing against a paper chart.
 *
 *------------------------------------------------------------------*/
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/spf13/pflag"
	"github.com/tzneal/coordconv"

	"github.com/moricef/ARM-SARSAT-SGB/t018"
)

func main() {
	hexFrame := pflag.StringP("frame", "f", "", "252-bit frame, as a hex string (63 nibbles), required.")
	help := pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "t018inspect - decode and pretty-print a T.018 frame\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s --frame HEXSTRING\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help || *hexFrame == "" {
		pflag.Usage()
		if *hexFrame == "" {
			os.Exit(1)
		}
		os.Exit(0)
	}

	frame, err := parseFrameHex(*hexFrame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "t018inspect: %v\n", err)
		os.Exit(1)
	}

	printFrame(frame)
}

func parseFrameHex(s string) (t018.Frame, error) {
	var frame t018.Frame
	s = strings.TrimSpace(s)
	if len(s) < (t018.FrameBits+3)/4 {
		return frame, fmt.Errorf("hex string too short for a %d-bit frame", t018.FrameBits)
	}

	pos := 0
	for _, r := range s {
		if pos >= t018.FrameBits {
			break
		}
		nibble, err := strconv.ParseUint(string(r), 16, 8)
		if err != nil {
			return frame, fmt.Errorf("invalid hex digit %q", r)
		}
		for i := 3; i >= 0 && pos < t018.FrameBits; i-- {
			frame[pos] = t018.Bit((nibble >> uint(i)) & 1)
			pos++
		}
	}
	return frame, nil
}

func printFrame(frame t018.Frame) {
	d := t018.DecodeFrame(frame)

	fmt.Printf("beacon_type       : %s\n", d.BeaconType)
	fmt.Printf("test_mode         : %v\n", d.TestMode == t018.ModeTest)
	fmt.Printf("tac               : %d\n", d.TAC)
	fmt.Printf("serial_number     : %d\n", d.SerialNumber)
	fmt.Printf("country_code      : %d\n", d.CountryCode)
	fmt.Printf("rls_capable       : %v\n", d.RLSCapable)
	fmt.Printf("vessel_id_type    : %d\n", d.VesselIDType)
	fmt.Printf("vessel_id         : %d\n", d.VesselID)
	fmt.Printf("epirb_ais_id      : %d\n", d.EPIRBAISIdentity)
	fmt.Printf("rotating_field    : %d\n", d.RotatingFieldKind)
	fmt.Printf("bch_verifies      : %v\n", d.BCHVerifies)

	lat, latOK := t018.DecodeLatitude(d.LatitudeRaw)
	lon, lonOK := t018.DecodeLongitude(d.LongitudeRaw)
	if !latOK || !lonOK {
		fmt.Printf("position          : (none)\n")
		return
	}
	fmt.Printf("position          : %.5f, %.5f\n", lat, lon)

	latlng := s2.LatLng{Lat: s1.Angle(lat * math.Pi / 180), Lng: s1.Angle(lon * math.Pi / 180)}
	utm, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(latlng, 0)
	if err != nil {
		fmt.Printf("utm               : conversion failed: %v\n", err)
		return
	}
	fmt.Printf("utm               : zone=%d hemisphere=%c easting=%.0f northing=%.0f\n",
		utm.Zone, t018.HemisphereRune(utm.Hemisphere), utm.Easting, utm.Northing)
}
