//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"life-ca/internal/app"
	"life-ca/internal/core"
	"life-ca/internal/sims/life"
	"life-ca/internal/timeutil"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(os.Args[0], os.Args[1:], nil)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	sim, err := life.New(cfg.Life())
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ticks := core.NewTickCounter()
	go ticks.Run(ctx, timeutil.RealClock{}, cfg.Tick)

	game := app.New(sim, ticks, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("Life - ESC to exit")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
