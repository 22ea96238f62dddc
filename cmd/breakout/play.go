package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagLevel     int
	flagMultiBall bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakout",
	Long: `Pick a level from the menu and play.

Controls:
  Left/A, Right/D  - Move paddle (S stops)
  Space            - Launch ball
  P                - Pause
  Esc              - Back to level menu
  Q/Ctrl+C         - Quit

Logs are discarded while playing unless --log-file is set.

Examples:
  breakout play
  breakout play --level 5
  breakout play --difficulty easy --multi-ball
  breakout play --log-file breakout.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly at this level (skips the menu)")
	playCmd.Flags().BoolVar(&flagMultiBall, "multi-ball", false, "Every launch adds another ball")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("multi-ball") {
		cfg.Gameplay.MultiBall = flagMultiBall
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := breakout.New(cfg,
		breakout.WithLogger(logger),
		breakout.WithCueSink(breakout.LogCueSink{Logger: logger}),
	)
	if err != nil {
		return err
	}

	skipMenu := flagLevel > 0
	if skipMenu {
		if err := game.Start(flagLevel); err != nil {
			return err
		}
	}

	logger.Info("starting", "levels", game.Catalog().Max(), "fps", rt.TickRate, "multi_ball", cfg.Gameplay.MultiBall)
	return tui.RunSession(game, rt, logger, skipMenu)
}
