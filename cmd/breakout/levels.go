package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows every level with its grid size, brick count and the brick
size computed for the configured playing field.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	catalog, err := breakout.NewCatalog(cfg.Levels)
	if err != nil {
		return err
	}
	field, err := breakout.FieldFromConfig(cfg.Arena, cfg.Field)
	if err != nil {
		return err
	}
	params := breakout.LayoutParams{
		AspectRatio: cfg.Layout.AspectRatio,
		MinPadding:  cfg.Layout.MinPadding,
	}

	levels := catalog.Levels()
	maxNameLen := 4 // "Name" header
	for _, def := range levels {
		if len(def.Name) > maxNameLen {
			maxNameLen = len(def.Name)
		}
	}

	fmt.Printf("Playing field: %.0fx%.0f at (%.0f, %.0f)\n\n", field.W, field.H, field.X, field.Y)
	fmt.Printf("  %-3s  %-*s  %-6s  %6s  %s\n", "#", maxNameLen, "Name", "Grid", "Bricks", "Brick size")
	fmt.Printf("  %-3s  %-*s  %-6s  %6s  %s\n", "-", maxNameLen, "----", "----", "------", "----------")

	for _, def := range levels {
		size := "-"
		if l, err := breakout.ComputeLayout(def.Rows, def.Cols, field, params); err == nil {
			size = fmt.Sprintf("%.1fx%.1f pad %.1f", l.BrickW, l.BrickH, l.Padding)
		}
		fmt.Printf("  %-3d  %-*s  %-6s  %6d  %s\n",
			def.Number, maxNameLen, def.Name, fmt.Sprintf("%dx%d", def.Rows, def.Cols), def.BrickCount(), size)
	}

	fmt.Println()
	fmt.Println("Run 'breakout play --level <n>' to start at a level.")
	return nil
}
