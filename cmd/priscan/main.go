// priscan reads a time-of-arrival dump from a file and runs one or more
// of the five PRI estimators against it, logging whatever scalar PRI each
// finds, or the sizes of the extraction partition it finds.
//
// This is the external collaborator the radarpri package itself never
// depends on: it owns file I/O, flag parsing, and logging, none of which
// belong in the core algorithms.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	radarpri "github.com/kewuaa/radar-algorithm"
	"github.com/kewuaa/radar-algorithm/config"
	"github.com/kewuaa/radar-algorithm/internal/toafile"
)

func main() {
	var (
		algorithm  = pflag.StringP("algorithm", "a", "all", "Which estimator to run: cdif, sdif, pritransform, pulsecorrelation, pulsesearch, or all.")
		configPath = pflag.StringP("config", "c", "", "Path to a YAML parameter preset. Defaults to the built-in preset.")
		binWidth   = pflag.Float64P("bin-width", "w", 0.5, "Histogram bin width, shared by every estimator that is run.")
		maxRank    = pflag.IntP("max-rank", "r", 3, "Max rank for CDIF/SDIF.")
		rangeMin   = pflag.Float64P("range-min", "l", 0.1, "Lower bound of the candidate PRI range for PRITransform/PulseCorrelation.")
		rangeMax   = pflag.Float64P("range-max", "u", 10, "Upper bound of the candidate PRI range for PRITransform/PulseCorrelation.")
		mergeNum   = pflag.IntP("merge-num", "m", 2, "Number of adjacent bins PulseCorrelation merges evidence across.")
		knownPRI   = pflag.Float64P("pri", "p", 0, "Known PRI for PulseSearcher. Required when -a pulsesearch or -a all is used.")
		verbose    = pflag.BoolP("verbose", "v", false, "Enable debug-level logging.")
		help       = pflag.Bool("help", false, "Display help text.")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "priscan estimates pulse-repetition intervals from a sorted TOA dump.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTION]... <TOA FILE>\n\n", os.Args[0])
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n  priscan -a cdif -w 0.5 -r 3 toas.txt\n")
	}
	pflag.Parse()

	if *help || pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}

	runID := uuid.New().String()
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Prefix: "priscan",
		Level:  charmlog.InfoLevel,
	})
	if *verbose {
		logger.SetLevel(charmlog.DebugLevel)
	}
	logger = logger.With("run_id", runID)

	preset := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal("loading config", "error", err)
		}
		preset = loaded
		logger.Info("loaded preset", "name", preset.Name, "path", *configPath)
	}

	f, err := os.Open(pflag.Arg(0))
	if err != nil {
		logger.Fatal("opening TOA file", "error", err)
	}
	defer f.Close()

	data, err := toafile.Read(f)
	if err != nil {
		logger.Fatal("parsing TOA file", "error", err)
	}
	logger.Info("loaded TOAs", "count", len(data), "duration", data.Duration())

	ran := false
	runScalar := func(name string, fn func() (float64, bool)) {
		ran = true
		if pri, ok := fn(); ok {
			logger.Info(name, "pri", pri)
		} else {
			logger.Info(name, "result", "empty")
		}
	}
	runPartition := func(name string, fn func() (radarpri.Extraction, bool)) {
		ran = true
		if result, ok := fn(); ok {
			logger.Info(name, "extracted", len(result.Extracted), "remaining", len(result.Remaining))
		} else {
			logger.Info(name, "result", "empty")
		}
	}

	want := func(name string) bool { return *algorithm == "all" || *algorithm == name }

	if want("cdif") {
		c := radarpri.NewCDIF(preset.CDIF.K)
		runScalar("cdif", func() (float64, bool) { return c.Run(data, *maxRank, *binWidth) })
	}
	if want("sdif") {
		s := radarpri.NewSDIF(preset.SDIF.X, preset.SDIF.K)
		runScalar("sdif", func() (float64, bool) { return s.Run(data, *maxRank, *binWidth) })
	}
	if want("pritransform") {
		p := radarpri.NewPRITransform(preset.PRITransform.Alpha, preset.PRITransform.Beta, preset.PRITransform.Gamma)
		runScalar("pritransform", func() (float64, bool) { return p.Run(data, *rangeMin, *rangeMax, *binWidth) })
	}
	if want("pulsecorrelation") {
		pc := radarpri.NewPulseCorrelation(preset.PulseCorrelation.MinChain, preset.PulseCorrelation.Thr)
		runPartition("pulsecorrelation", func() (radarpri.Extraction, bool) {
			return pc.Run(data, *rangeMin, *rangeMax, *binWidth, *mergeNum)
		})
	}
	if want("pulsesearch") {
		if *knownPRI <= 0 {
			logger.Fatal("pulsesearch requires --pri > 0")
		}
		ps := radarpri.NewPulseSearcher(preset.PulseSearch.Thr, preset.PulseSearch.Toler, preset.PulseSearch.AllowMissRate)
		runPartition("pulsesearch", func() (radarpri.Extraction, bool) { return ps.Run(*knownPRI, data) })
	}

	if !ran {
		logger.Fatal("unknown --algorithm", "got", *algorithm)
	}
}
