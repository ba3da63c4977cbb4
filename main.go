package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/sizeshift/config"
	"github.com/milk9111/sizeshift/procgen"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCommand() *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "sizeshift",
		Short: "A size-shifting platformer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			game, err := NewGame(cfg, configPath)
			if err != nil {
				return err
			}
			ebiten.SetWindowSize(baseWidth, baseHeight)
			ebiten.SetWindowTitle("sizeshift")
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			return ebiten.RunGame(game)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a game config yaml, defaults to the embedded one")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(seedPreviewCommand(&configPath))
	return cmd
}

// seedPreviewCommand renders a background for a theme and seed to a PNG so
// palettes can be eyeballed without launching the game.
func seedPreviewCommand(configPath *string) *cobra.Command {
	var (
		theme string
		seed  int
		out   string
	)

	cmd := &cobra.Command{
		Use:   "seedpreview",
		Short: "Render a generated background to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if !procgen.KnownTheme(procgen.Theme(theme)) {
				return fmt.Errorf("seedpreview: unknown theme %q", theme)
			}
			gen := procgen.NewGenerator(cfg.World.Width, cfg.World.Height)
			img := gen.Paint(procgen.Theme(theme), seed)
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("seedpreview: %w", err)
			}
			defer f.Close()
			if err := png.Encode(f, img); err != nil {
				return fmt.Errorf("seedpreview: encode: %w", err)
			}
			log.Info("wrote preview", "theme", theme, "seed", seed, "file", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&theme, "theme", string(procgen.ThemeSky), "background theme")
	cmd.Flags().IntVar(&seed, "seed", 1, "generation seed")
	cmd.Flags().StringVarP(&out, "out", "o", "preview.png", "output file")
	return cmd
}
