package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/groundwork-games/tilerunner/kinematics"
	"github.com/groundwork-games/tilerunner/levels"
	"github.com/groundwork-games/tilerunner/profiles"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilerunner",
	})

	var (
		levelName   string
		profileName string
		mute        bool
		baseMonitor bool
	)

	root := &cobra.Command{
		Use:   "tilerunner",
		Short: "tile platformer with data-driven movement profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseMonitor {
				ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
			}

			game, err := NewGame(logger, levelName, profileName, mute)
			if err != nil {
				return err
			}
			defer game.Close()

			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetWindowSize(baseWidth, baseHeight)
			ebiten.SetWindowTitle("tilerunner")

			return ebiten.RunGame(game)
		},
	}
	root.Flags().StringVar(&levelName, "level", "w1-1", "level name in levels/ (basename, .txt optional)")
	root.Flags().StringVar(&profileName, "profile", "nes", "movement profile in profiles/ (basename, .yaml optional)")
	root.Flags().BoolVar(&mute, "mute", false, "disable sound")
	root.Flags().BoolVar(&baseMonitor, "m", false, "use base monitor instead of primary (for multi-monitor setups)")

	root.AddCommand(newCheckCmd(logger))

	if err := root.Execute(); err != nil {
		logger.Fatal("exiting", "err", err)
	}
}

// newCheckCmd validates every embedded level and profile without
// opening a window, so CI can catch a bad map edit.
func newCheckCmd(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "validate embedded levels and profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var bad int
			for _, name := range profiles.Names() {
				p, err := profiles.Load(name)
				if err != nil {
					logger.Error("profile invalid", "name", name, "err", err)
					bad++
					continue
				}
				logger.Info("profile ok", "name", name, "tile_size", p.World.TileSize)
			}
			for _, name := range levels.Names() {
				rows, err := levels.Load(name)
				if err != nil {
					logger.Error("level unreadable", "name", name, "err", err)
					bad++
					continue
				}
				grid, markers := kinematics.Parse(rows, 32)
				w, h := grid.Size()
				if w == 0 || h == 0 {
					logger.Error("level is empty", "name", name)
					bad++
					continue
				}
				if markers.Flag == nil {
					logger.Warn("level has no flag", "name", name)
				}
				logger.Info("level ok", "name", name, "size", fmt.Sprintf("%dx%d", w, h), "coins", len(markers.Coins))
			}
			if bad > 0 {
				return fmt.Errorf("%d file(s) failed validation", bad)
			}
			return nil
		},
	}
}
