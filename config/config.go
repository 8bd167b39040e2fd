// Package config loads a BeaconConfig from a YAML file on disk.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"gopkg.in/yaml.v3"

	"github.com/moricef/ARM-SARSAT-SGB/t018"
)

/*------------------------------------------------------------------
 *
 * Purpose:	Bridges an on-disk YAML file to t018.BeaconConfig.
 *
 * Description:	Mirrors the teacher's own YAML-based config files:
 *		gopkg.in/yaml.v3 unmarshals into a plain file struct,
 *		which is then translated field-by-field into the core's
 *		BeaconConfig. The only field clamped here is sps, raised
 *		to 8 with a charmbracelet/log warning (and defaulted to
 *		16, also with a warning, when unset). Altitude is passed
 *		through unchanged; the core's altitude encoder saturates
 *		it without a warning. Out-of-range identity fields are
 *		left for the core to report as errors.
 *
 *------------------------------------------------------------------*/

// eltdtTimestampPattern renders the ELT-DT day/hour/minute fields
// loaded from YAML as a human-readable timestamp for the operator
// logs, the same compiled-pattern discipline sigmf uses for its
// capture timestamp.
var eltdtTimestampPattern = mustCompilePattern("day %d, %H:%M UTC")

func mustCompilePattern(pattern string) *strftime.Strftime {
	f, err := strftime.New(pattern)
	if err != nil {
		panic(err) // the pattern is a package constant; a failure here is a build-time bug
	}
	return f
}

// file is the on-disk YAML shape. Field names are lower-snake in the
// file, matching the teacher's own config conventions.
type file struct {
	BeaconType   string  `yaml:"beacon_type"`
	CountryCode  uint16  `yaml:"country_code"`
	TACNumber    uint16  `yaml:"tac_number"`
	SerialNumber uint16  `yaml:"serial_number"`
	TestMode     bool    `yaml:"test_mode"`
	Latitude     float64 `yaml:"latitude"`
	Longitude    float64 `yaml:"longitude"`
	Altitude     float64 `yaml:"altitude"`
	PositionSet  bool    `yaml:"position_set"`

	RotatingField string `yaml:"rotating_field"`
	VesselID      uint32 `yaml:"vessel_id"`

	EPIRBAISIdentity uint16 `yaml:"epirb_ais_identity"`

	RLSProviderID uint8  `yaml:"rls_provider_id"`
	RLSPayload    uint64 `yaml:"rls_payload"`

	DeactivationMethod uint8 `yaml:"deactivation_method"`

	ELTDTDay    uint8 `yaml:"eltdt_day"`
	ELTDTHour   uint8 `yaml:"eltdt_hour"`
	ELTDTMinute uint8 `yaml:"eltdt_minute"`

	SPS int `yaml:"sps"`
}

// Loaded bundles the decoded BeaconConfig with the modulator's
// samples-per-chip setting, since both live in the same config file.
type Loaded struct {
	Beacon t018.BeaconConfig
	SPS    int
}

// Load reads and decodes a beacon config file at path.
func Load(path string) (Loaded, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Loaded{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return f.toLoaded(path)
}

func (f file) toLoaded(path string) (Loaded, error) {
	bt, err := parseBeaconType(f.BeaconType)
	if err != nil {
		return Loaded{}, err
	}

	cfg := t018.BeaconConfig{
		BeaconType:         bt,
		CountryCode:        f.CountryCode,
		TACNumber:          f.TACNumber,
		SerialNumber:       f.SerialNumber,
		VesselID:           f.VesselID,
		EPIRBAISIdentity:   f.EPIRBAISIdentity,
		RLSProviderID:      f.RLSProviderID,
		RLSPayload:         f.RLSPayload,
		DeactivationMethod: f.DeactivationMethod,
		ELTDTDay:           f.ELTDTDay,
		ELTDTHour:          f.ELTDTHour,
		ELTDTMinute:        f.ELTDTMinute,
	}

	if f.TestMode {
		cfg.TestMode = t018.ModeTest
	}

	if f.PositionSet {
		cfg.Position = t018.Position{
			Valid:     true,
			Latitude:  f.Latitude,
			Longitude: f.Longitude,
			Altitude:  f.Altitude,
		}
	}

	if f.RotatingField != "" {
		kind, err := parseRotatingFieldKind(f.RotatingField)
		if err != nil {
			return Loaded{}, err
		}
		cfg.RotatingFieldKind = kind
		cfg.RotatingFieldKindSet = true

		if kind == t018.RFKindELTDT {
			stamp := time.Date(2000, time.January, int(f.ELTDTDay), int(f.ELTDTHour), int(f.ELTDTMinute), 0, 0, time.UTC)
			log.Info("config: ELT-DT activation time", "path", path, "time", eltdtTimestampPattern.FormatString(stamp))
		}
	}

	sps := f.SPS
	if sps == 0 {
		sps = 16
		log.Warn("config: sps not set, defaulting", "path", path, "sps", sps)
	} else if sps < 8 {
		log.Warn("config: sps below minimum, clamping", "path", path, "requested", sps, "clamped_to", 8)
		sps = 8
	}

	return Loaded{Beacon: cfg, SPS: sps}, nil
}

func parseBeaconType(s string) (t018.BeaconType, error) {
	switch s {
	case "", "EPIRB":
		return t018.BeaconEPIRB, nil
	case "PLB":
		return t018.BeaconPLB, nil
	case "ELT":
		return t018.BeaconELT, nil
	case "ELT-DT", "ELTDT":
		return t018.BeaconELTDT, nil
	default:
		return 0, &t018.ConfigOutOfRangeError{Field: "beacon_type", Value: s, Want: "EPIRB, PLB, ELT, or ELT-DT"}
	}
}

func parseRotatingFieldKind(s string) (t018.RotatingFieldKind, error) {
	switch s {
	case "G008":
		return t018.RFKindG008, nil
	case "ELT-DT", "ELTDT":
		return t018.RFKindELTDT, nil
	case "RLS":
		return t018.RFKindRLS, nil
	case "CANCEL":
		return t018.RFKindCancel, nil
	default:
		return 0, &t018.ConfigOutOfRangeError{Field: "rotating_field", Value: s, Want: "G008, ELT-DT, RLS, or CANCEL"}
	}
}
