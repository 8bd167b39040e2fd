// Package sigmf persists a modulated burst to the wire format spec.md
// §6 describes: a binary .sigmf-data companion plus a JSON sidecar.
package sigmf

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/lestrrat-go/strftime"
)

/*------------------------------------------------------------------
 *
 * Purpose:	Writes interleaved complex64 samples to a .sigmf-data
 *		file and a JSON metadata sidecar, following the teacher's
 *		open-write-close file discipline from log.go.
 *
 *------------------------------------------------------------------*/

// captureTimestampPattern is compiled once; ISO-8601 UTC with second
// resolution, the format spec.md's sidecar requires.
var captureTimestampPattern = mustCompilePattern("%Y-%m-%dT%H:%M:%SZ")

func mustCompilePattern(pattern string) *strftime.Strftime {
	f, err := strftime.New(pattern)
	if err != nil {
		panic(err) // the pattern is a package constant; a failure here is a build-time bug
	}
	return f
}

// Metadata is the JSON sidecar payload.
type Metadata struct {
	SampleRate       int    `json:"sample_rate"`
	Datatype         string `json:"datatype"`
	CaptureTimestamp string `json:"capture_timestamp"`
}

// Write serializes samples as little-endian float32 I/Q pairs to
// dataPath, and a matching JSON sidecar to metaPath. capturedAt is
// the wall-clock time to stamp the sidecar with; callers pass it in
// rather than this package reading the clock itself.
func Write(dataPath, metaPath string, samples []complex128, sampleRate int, capturedAt fmt.Stringer) error {
	if err := writeData(dataPath, samples); err != nil {
		return fmt.Errorf("sigmf: writing %s: %w", dataPath, err)
	}

	meta := Metadata{
		SampleRate:       sampleRate,
		Datatype:         "cf32_le",
		CaptureTimestamp: capturedAt.String(),
	}

	raw, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("sigmf: encoding metadata: %w", err)
	}
	if err := os.WriteFile(metaPath, raw, 0o644); err != nil {
		return fmt.Errorf("sigmf: writing %s: %w", metaPath, err)
	}
	return nil
}

func writeData(path string, samples []complex128) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, 8)
	for _, s := range samples {
		binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(float32(real(s))))
		binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(float32(imag(s))))
		if _, err := f.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// captureTime formats a Unix timestamp into the ISO-8601 UTC form the
// sidecar expects, via the package's precompiled strftime pattern.
type captureTime struct{ unix int64 }

// NewCaptureTimestamp wraps a Unix timestamp (seconds, UTC) for use
// as the capturedAt argument to Write.
func NewCaptureTimestamp(unixSeconds int64) fmt.Stringer {
	return captureTime{unix: unixSeconds}
}

func (c captureTime) String() string {
	return captureTimestampPattern.FormatString(time.Unix(c.unix, 0).UTC())
}
