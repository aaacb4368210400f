// Command sim drives the room scene headlessly from a scripted scenario and
// prints a pose trace, one line per sampled tick.
package main

import (
	"flag"
	"os"

	"github.com/milk9111/roomdrive/logging"
	"github.com/milk9111/roomdrive/prefabs"
)

func main() {
	scenario := flag.String("scenario", "demo.yaml", "scenario file, or the name of an embedded scenario")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory whose yaml files override the embedded tuning")
	logLevel := flag.String("log-level", "info", "log level for pipeline events")
	pretty := flag.Bool("pretty", false, "human-readable trace instead of JSON lines")
	flag.Parse()

	log := logging.New(os.Stderr, *logLevel, true)
	prefabs.Dir = *prefabDir

	sc, err := LoadScenario(*scenario)
	if err != nil {
		log.Fatal().Err(err).Msg("load scenario")
	}
	tun, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal().Err(err).Msg("load tuning")
	}

	trace := logging.New(os.Stdout, "info", *pretty)
	sum, err := Run(sc, tun, trace, log)
	if err != nil {
		log.Fatal().Err(err).Msg("run")
	}
	log.Info().
		Int("ticks", sum.Ticks).
		Int("mode_changes", sum.ModeChanges).
		Stringer("final_mode", sum.FinalMode).
		Int("escapes", sum.Escapes).
		Msg("scenario finished")
	if sum.Escapes > 0 {
		os.Exit(1)
	}
}
