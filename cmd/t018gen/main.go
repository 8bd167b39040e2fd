/*------------------------------------------------------------------
 *
 * Purpose:	Command-line beacon-burst generator: loads a
 *		BeaconConfig, builds and modulates one T.018 burst, and
 *		writes it to a .sigmf-data/sidecar pair.
 *
 *------------------------------------------------------------------*/
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brutella/dnssd"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/moricef/ARM-SARSAT-SGB/config"
	"github.com/moricef/ARM-SARSAT-SGB/sigmf"
	"github.com/moricef/ARM-SARSAT-SGB/t018"
)

const dnsSDService = "_t018-bench._udp"

func main() {
	configPath := pflag.StringP("config", "c", "", "Beacon config YAML file (required).")
	outPrefix := pflag.StringP("out", "o", "burst", "Output file prefix; writes PREFIX.sigmf-data and PREFIX.sigmf-meta.json.")
	announce := pflag.Bool("announce", false, "Advertise this run on the LAN via mDNS for bench discovery.")
	announcePort := pflag.Int("announce-port", 4018, "UDP port advertised alongside the mDNS announcement.")
	help := pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "t018gen - generate one T.018 second-generation beacon burst\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s --config beacon.yaml [OPTIONS]\n\n", os.Args[0])
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

	if *announce {
		announceOnLAN(loaded.Beacon, *announcePort)
	}

	core, err := t018.NewCore(loaded.SPS)
	if err != nil {
		log.Fatal("core self-check failed", "err", err)
	}

	samples := make([]complex128, core.SampleCount())
	frame, err := core.Modulate(loaded.Beacon, t018.CoreState{}, samples)
	if err != nil {
		log.Fatal("building burst", "err", err)
	}
	decoded := t018.DecodeFrame(frame)
	log.Info("burst built",
		"beacon_type", loaded.Beacon.BeaconType,
		"sps", loaded.SPS,
		"samples", len(samples),
		"tac", decoded.TAC,
		"serial", decoded.SerialNumber)

	dataPath := *outPrefix + ".sigmf-data"
	metaPath := *outPrefix + ".sigmf-meta.json"
	sampleRate := t018.ChipRateHz * loaded.SPS
	if err := sigmf.Write(dataPath, metaPath, samples, sampleRate, sigmf.NewCaptureTimestamp(time.Now().Unix())); err != nil {
		log.Fatal("writing output", "err", err)
	}

	log.Info("wrote burst", "data", dataPath, "meta", metaPath)
}

// announceOnLAN registers an mDNS service so a bench full of
// beacon-generation hosts can be found without static IPs, the same
// pattern the teacher's dns_sd.go uses for TNC discovery.
func announceOnLAN(cfg t018.BeaconConfig, port int) {
	host, err := os.Hostname()
	if err != nil {
		host = "t018gen"
	}
	name := fmt.Sprintf("%s-%s-%s", strings.ToLower(filepath.Base(host)), cfg.BeaconType.String(), time.Now().UTC().Format("150405"))

	svcCfg := dnssd.Config{ //nolint:exhaustruct
		Name: name,
		Type: dnsSDService,
		Port: port,
	}

	svc, err := dnssd.NewService(svcCfg)
	if err != nil {
		log.Error("dns-sd: failed to create service", "err", err)
		return
	}

	responder, err := dnssd.NewResponder()
	if err != nil {
		log.Error("dns-sd: failed to create responder", "err", err)
		return
	}

	if _, err := responder.Add(svc); err != nil {
		log.Error("dns-sd: failed to add service", "err", err)
		return
	}

	log.Info("dns-sd: announcing bench host", "name", name, "port", port)
	go func() {
		if err := responder.Respond(context.Background()); err != nil {
			log.Error("dns-sd: responder error", "err", err)
		}
	}()
}
