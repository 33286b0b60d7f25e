package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Autocrat2005/CGPASimulator/pkg/profile"
	"github.com/Autocrat2005/CGPASimulator/pkg/simulate"
)

type opts struct {
	reset    bool
	config   string
	sims     int
	seed     uint64
	jsonPath string
	noColor  bool
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "cgpasim",
		Short: "CGPA predictor and Monte Carlo simulator",
		Long: `cgpasim estimates where your CGPA is heading. From a saved profile
(or an interactive setup on first run) it computes the exact average
SGPA your remaining semesters require for each target CGPA, then runs
Monte Carlo projections over named performance scenarios to estimate
how likely each target actually is.

Examples:
  cgpasim
  cgpasim --reset
  cgpasim -s 20000 --seed 42 --json outcomes.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o)
		},
	}

	root.Flags().BoolVar(&o.reset, "reset", false, "ignore any saved profile and re-run interactive setup")
	root.Flags().StringVar(&o.config, "config", "cgpa_config.json", "profile snapshot path")
	root.Flags().IntVarP(&o.sims, "sims", "s", simulate.DefaultSims, "Monte Carlo samples per scenario")
	root.Flags().Uint64Var(&o.seed, "seed", 0, "fixed RNG seed for reproducible projections (0 = fresh randomness)")
	root.Flags().StringVar(&o.jsonPath, "json", "", "write scenario outcomes to a JSON file")
	root.Flags().BoolVar(&o.noColor, "no-color", false, "disable ANSI colors")

	if err := root.Execute(); err != nil {
		if errors.Is(err, errInputClosed) {
			fmt.Println("\nExiting...")
			return
		}
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(o opts) error {
	// Ctrl-C during interactive collection must not dump a stack.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		fmt.Println("\nExiting...")
		os.Exit(0)
	}()

	colors := !o.noColor &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
	pal := newPalette(colors)

	var prof *profile.StudentProfile
	if _, err := os.Stat(o.config); o.reset || err != nil {
		p, err := collect(os.Stdin, os.Stdout, pal)
		if err != nil {
			return err
		}
		if err := profile.Save(o.config, p); err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(pal.green("Configuration saved to " + o.config))
		prof = p
	} else {
		p, err := profile.Load(o.config)
		if err != nil {
			return err
		}
		fmt.Println(pal.cyan("Loaded configuration from " + o.config))
		prof = p
	}

	sim := simulate.New(prof)

	printStatus(os.Stdout, pal, sim)
	printRequirements(os.Stdout, pal, sim, prof.Targets)

	var rng *rand.Rand
	if o.seed != 0 {
		rng = rand.New(rand.NewPCG(o.seed, o.seed))
	}
	fmt.Println(pal.yellow("\nRunning Monte Carlo simulations (consulting the crystal ball)..."))
	outcomes := sim.Project(rng, o.sims)

	printOutcomes(os.Stdout, pal, outcomes)
	printVerdicts(os.Stdout, pal, outcomes, prof.Targets)

	if o.jsonPath != "" {
		b, err := json.MarshalIndent(outcomes, "", "  ")
		if err != nil {
			return fmt.Errorf("encode outcomes: %w", err)
		}
		if err := os.WriteFile(o.jsonPath, b, 0o644); err != nil {
			return fmt.Errorf("write outcomes: %w", err)
		}
		fmt.Println(pal.green("\nOutcomes written to " + o.jsonPath))
	}
	return nil
}
