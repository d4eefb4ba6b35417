package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"zoom-anything/script"
	"zoom-anything/viewport"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) *charmlog.Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	return charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "zoom-anything",
		Short:        "Pinch, pan, and double-tap a piece of content inside a viewport",
		Long:         `zoom-anything is a gesture-driven 2D transform engine with an interactive demo: pinch (or wheel) to zoom, drag to pan with inertia, double-click to cycle the zoom around the tapped point.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	runCmd := newRunCmd(&verbose)
	root.AddCommand(runCmd)
	root.AddCommand(newReplayCmd(&verbose))
	root.AddCommand(newScriptCmd(&verbose))

	// Bare invocation runs the interactive demo.
	root.RunE = runCmd.RunE
	root.Flags().AddFlagSet(runCmd.Flags())

	return root
}

func newRunCmd(verbose *bool) *cobra.Command {
	var (
		imagePath  string
		configPath string
		recordPath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)

			cfg, err := resolveConfig(configPath, imagePath, logger)
			if err != nil {
				return err
			}

			content := loadContent(cfg, logger)

			var recorder *Recorder
			if recordPath != "" {
				recorder = NewRecorder()
			}

			game := NewGame(cfg, logger, content, recorder)
			logger.Info("starting", "minZoom", cfg.MinZoom, "maxZoom", cfg.MaxZoom)
			if err := runWindow(cfg, game); err != nil {
				return err
			}

			if recorder != nil && !recorder.Empty() {
				recorder.SetSizes(float64(game.screenWidth), float64(game.screenHeight), game.contentW, game.contentH)
				if err := recorder.Save(recordPath); err != nil {
					return err
				}
				logger.Info("trace saved", "file", recordPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "image file to use as the zoomable content")
	cmd.Flags().StringVar(&configPath, "config", "", "yaml config file")
	cmd.Flags().StringVar(&recordPath, "record", "", "save the session's gesture trace to this file on exit")
	return cmd
}

func newReplayCmd(verbose *bool) *cobra.Command {
	var imagePath string

	cmd := &cobra.Command{
		Use:   "replay <trace.yaml>",
		Short: "Replay a recorded gesture trace in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)

			trace, err := LoadTrace(args[0])
			if err != nil {
				return err
			}
			logger.Info("trace loaded", "session", trace.SessionID, "events", len(trace.Events))

			cfg := DefaultConfig()
			if trace.ContainerW > 0 {
				cfg.WindowWidth = int(trace.ContainerW)
				cfg.WindowHeight = int(trace.ContainerH)
			}

			var content *ebiten.Image
			if imagePath != "" {
				content, err = LoadContentImage(imagePath)
				if err != nil {
					return err
				}
			}

			game := NewGame(cfg, logger, content, nil)
			game.SetReplayer(NewReplayer(trace, game.vp))
			return runWindow(cfg, game)
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "image file to use as the zoomable content")
	return cmd
}

func newScriptCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "script <scenario.star>",
		Short: "Run a Starlark gesture scenario headlessly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)

			vp := viewport.New(DefaultMinZoom, DefaultMaxZoom)
			if err := script.Run(args[0], vp, logger); err != nil {
				logger.Error("scenario failed", "err", err)
				return err
			}

			x, y := vp.Translation()
			logger.Info("scenario passed", "scale", vp.Scale(), "translateX", x, "translateY", y)
			return nil
		},
	}
}

// resolveConfig layers the config file (if any) under the command-line
// image override.
func resolveConfig(configPath, imagePath string, logger *charmlog.Logger) (Config, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		logger.Debug("config loaded", "file", configPath)
	}
	if imagePath != "" {
		cfg.Image = imagePath
	}
	return cfg, nil
}

// loadContent loads the configured image, falling back to generated
// placeholder content so the demo works with no assets. A load failure is
// reported and degrades to the placeholder rather than aborting.
func loadContent(cfg Config, logger *charmlog.Logger) *ebiten.Image {
	if cfg.Image == "" {
		return makePlaceholder()
	}
	img, err := LoadContentImage(cfg.Image)
	if err != nil {
		logger.Warn("content image failed, using placeholder", "err", err)
		return makePlaceholder()
	}
	logger.Debug("content loaded", "file", cfg.Image)
	return img
}

func runWindow(cfg Config, game *Game) error {
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("zoom-anything")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
