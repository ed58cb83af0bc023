package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/formiclabs/formic/config"
	"github.com/formiclabs/formic/engine"
	"github.com/formiclabs/formic/model"
	"github.com/formiclabs/formic/protocol"
	"github.com/formiclabs/formic/rules"
)

const banner = `
███████╗ ██████╗ ██████╗ ███╗   ███╗██╗ ██████╗
██╔════╝██╔═══██╗██╔══██╗████╗ ████║██║██╔════╝
█████╗  ██║   ██║██████╔╝██╔████╔██║██║██║
██╔══╝  ██║   ██║██╔══██╗██║╚██╔╝██║██║██║
██║     ╚██████╔╝██║  ██║██║ ╚═╝ ██║██║╚██████╗
╚═╝      ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝╚═╝ ╚═════╝

Beacon-Routed Colony Intelligence`

func main() {
	doctrinePath := flag.String("doctrine", "", "path to an HCL doctrine file (empty = built-in defaults)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	// The referee owns stdout; all logging goes to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	fmt.Fprintln(os.Stderr, banner)
	slog.Info("starting formic")

	doctrine, err := config.Load(*doctrinePath)
	if err != nil {
		slog.Error("failed to load doctrine", "path", *doctrinePath, "error", err)
		os.Exit(1)
	}
	slog.Info("doctrine loaded",
		"name", doctrine.Name,
		"eggPriority", doctrine.EggPriority,
		"crystalPriority", doctrine.CrystalPriority,
		"eggRushRadius", doctrine.EggRushRadius,
		"lineStrength", doctrine.LineStrength,
	)

	rulesEngine, err := rules.NewEngine(rules.CompileDoctrine(doctrine))
	if err != nil {
		slog.Error("failed to compile rules", "error", err)
		os.Exit(1)
	}

	if err := run(os.Stdin, os.Stdout, rulesEngine); err != nil {
		slog.Error("game loop failed", "error", err)
		os.Exit(1)
	}
	slog.Info("game over")
}

// run owns the turn loop: one snapshot, then one update and one action line
// per turn until the referee closes the stream.
func run(in io.Reader, out io.Writer, rulesEngine *rules.Engine) error {
	decoder := protocol.NewDecoder(in)
	g, err := decoder.ReadGraph()
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	slog.Info("snapshot loaded",
		"cells", g.Len(),
		"alliedBases", len(g.Bases[model.Allied]),
		"enemyBases", len(g.Bases[model.Enemy]),
	)

	player := engine.New(rulesEngine, model.Allied)
	for turn := 1; ; turn++ {
		if err := decoder.ReadUpdate(g); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return fmt.Errorf("turn %d: %w", turn, err)
		}

		actions, err := player.PlayTurn(g)
		if err != nil {
			return fmt.Errorf("turn %d: %w", turn, err)
		}
		if _, err := fmt.Fprintln(out, protocol.FormatActions(actions)); err != nil {
			return fmt.Errorf("turn %d: write actions: %w", turn, err)
		}
	}
}
