package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// RunSession alternates between the level menu and play until the user quits.
// With skipMenu the first round starts straight at the game's current level.
func RunSession(game *breakout.Game, cfg core.RuntimeConfig, logger *log.Logger, skipMenu bool) error {
	for {
		if !skipMenu {
			res, err := RunMenu(game.Catalog(), game.State().Level, cfg)
			if err != nil {
				return err
			}
			cfg = res.Config
			if res.Quit {
				return nil
			}
			if err := game.Start(res.Level); err != nil {
				return err
			}
		}
		skipMenu = false

		goBack, final, err := Run(game, cfg)
		if err != nil {
			return err
		}
		cfg = final

		st := game.State()
		logger.Info("session left", "level", st.Level, "score", st.Score, "completed", st.Completed)
		if !goBack {
			return nil
		}
	}
}
