/*------------------------------------------------------------------
 *
 * Purpose:	Bring-up aid: plays an audible, downsampled proxy of a
 *		generated burst's I channel through the sound card, so a
 *		developer can listen to the chip rate the way a ham
 *		listens to AFSK on a handheld. Not a demodulator.
 *
 *------------------------------------------------------------------*/
package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gordonklaus/portaudio"
	"github.com/spf13/pflag"

	"github.com/moricef/ARM-SARSAT-SGB/config"
	"github.com/moricef/ARM-SARSAT-SGB/t018"
)

// monitorSampleRate is the audible rate we re-synthesize the I
// channel's envelope at; well below the 614.4 kHz baseband rate, but
// fast enough to render the 38.4 kchip/s chip transitions as texture
// rather than a flat tone.
const monitorSampleRate = 48000

func main() {
	configPath := pflag.StringP("config", "c", "", "Beacon config YAML file (required).")
	volume := pflag.Float64P("volume", "v", 0.2, "Playback volume, 0.0-1.0.")
	help := pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "t018monitor - play an audible proxy of a generated burst\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s --config beacon.yaml\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help || *configPath == "" {
		pflag.Usage()
		if *configPath == "" {
			os.Exit(1)
		}
		os.Exit(0)
	}

	loaded, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("loading config", "err", err)
	}

	core, err := t018.NewCore(loaded.SPS)
	if err != nil {
		log.Fatal("core self-check failed", "err", err)
	}

	samples := make([]complex128, core.SampleCount())
	if _, err := core.Modulate(loaded.Beacon, t018.CoreState{}, samples); err != nil {
		log.Fatal("building burst", "err", err)
	}

	proxy := envelopeProxy(samples, loaded.SPS, *volume)

	if err := play(proxy); err != nil {
		log.Fatal("playback failed", "err", err)
	}
}

// envelopeProxy downsamples the I channel's magnitude to
// monitorSampleRate, one output sample per decimation input samples,
// scaled by volume.
func envelopeProxy(samples []complex128, sps int, volume float64) []float32 {
	basebandRate := t018.ChipRateHz * sps
	decimation := basebandRate / monitorSampleRate
	if decimation < 1 {
		decimation = 1
	}

	out := make([]float32, 0, len(samples)/decimation+1)
	for i := 0; i < len(samples); i += decimation {
		// real+imag undoes the modulator's pi/4 rotation and 1/sqrt2
		// normalization, leaving the I channel value.
		iv := real(samples[i]) + imag(samples[i])
		if iv < 0 {
			iv = -iv
		}
		out = append(out, float32(iv*volume))
	}
	return out
}

// play streams proxy once through the default output device, the
// same OpenDefaultStream/Start/Stop sequence the pack's other
// portaudio client uses for its own playback loop.
func play(proxy []float32) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("initializing portaudio: %w", err)
	}
	defer portaudio.Terminate()

	var pos atomic.Int64
	done := make(chan struct{})
	callback := func(out []float32) {
		for i := range out {
			p := int(pos.Load())
			if p < len(proxy) {
				out[i] = proxy[p]
				pos.Add(1)
			} else {
				out[i] = 0
				select {
				case <-done:
				default:
					close(done)
				}
			}
		}
	}

	stream, err := portaudio.OpenDefaultStream(0, 1, monitorSampleRate, 0, callback)
	if err != nil {
		return fmt.Errorf("opening default stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("starting stream: %w", err)
	}
	defer stream.Stop()

	select {
	case <-done:
	case <-time.After(time.Duration(len(proxy)) * time.Second / monitorSampleRate):
	}

	return nil
}
