package main

import (
	"context"
	"errors"
	"flag"
	"image/png"
	"log"
	"os"
	"os/signal"
	"syscall"

	"life-ca/internal/app"
	"life-ca/internal/monitoring"
	"life-ca/internal/render"
	"life-ca/internal/runner"
	"life-ca/internal/sims/life"
	"life-ca/internal/timeutil"
)

func main() {
	var (
		generations uint64
		logEvery    uint64
		stagnant    bool
		pngPath     string
		quiet       bool
	)
	cfg, err := app.Load(os.Args[0], os.Args[1:], func(fs *flag.FlagSet) {
		fs.Uint64Var(&generations, "generations", 300, "generations to run (0 runs until interrupted)")
		fs.Uint64Var(&logEvery, "log-every", 30, "log population every n generations (0 disables)")
		fs.BoolVar(&stagnant, "stop-when-stagnant", false, "stop once the grid repeats a recent state")
		fs.StringVar(&pngPath, "png", "", "write the final generation to this PNG file")
		fs.BoolVar(&quiet, "quiet", false, "suppress progress logging")
	})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	if quiet {
		monitoring.SetLogger(nil)
	}

	sim, err := life.New(cfg.Life())
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	summary, err := runner.Run(ctx, sim, timeutil.RealClock{}, runner.Options{
		Tick:             cfg.Tick,
		Generations:      generations,
		LogEvery:         logEvery,
		StopWhenStagnant: stagnant,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("final: generation %d, population %d (min %d, max %d, mean %.1f)",
		summary.Generations, summary.Population, summary.MinPopulation, summary.MaxPopulation, summary.MeanPopulation)

	if pngPath != "" {
		if err := writePNG(pngPath, sim, cfg.Scale); err != nil {
			log.Fatal(err)
		}
	}
}

func writePNG(path string, sim *life.Life, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	img := render.Image(sim.Snapshot(), scale, render.AliveColor, render.DeadColor)
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
