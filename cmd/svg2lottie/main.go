package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/motionforge/svg2lottie/internal/anim"
	"github.com/motionforge/svg2lottie/internal/cliconfig"
	"github.com/motionforge/svg2lottie/internal/convert"
	"github.com/motionforge/svg2lottie/internal/server"
)

const longHelp = `
svg2lottie converts static SVG markup into animated Lottie JSON.

It can run as an HTTP service (serve) or convert files directly on the
command line (convert). Animations cover fades, scaling, bouncing,
slide-ins, rotation, shake and composable complex effects.

Configuration precedence: flags > environment (SVG2LOTTIE_*) > config file.
`

var exampleUsage = strings.TrimSpace(`
  svg2lottie serve --port 5001
  svg2lottie convert logo.svg -t bounce -o logo.json
  svg2lottie convert logo.svg --all
  svg2lottie convert logo.svg --preset intro.yaml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// loadConfig resolves the configuration with flag > env > file precedence.
// It returns the config file path used (empty if none) and the set of flags
// explicitly changed on the command line.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) (string, map[string]bool, error) {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return "", nil, fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return "", nil, err
		}
	} else {
		cfgFile = ""
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return "", nil, err
	}

	if err := cfg.Validate(); err != nil {
		return "", nil, err
	}

	return cfgFile, changed, nil
}

func newServeCmd(log zerolog.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the conversion HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, changed, err := loadConfig(cmd, &cfg, cfgPath)
			if err != nil {
				return err
			}

			zerolog.SetGlobalLevel(cliconfig.ParseLevel(cfg.LogLevel))
			log.Info().Interface("config", cfg).Msg("configuration")

			srv := server.New(cfg, log)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				log.Info().Msg("received signal, stopping...")
				cancel()
			}()

			if cfg.WatchConfig && cfgFile != "" {
				w, err := cliconfig.NewWatcher(cfgFile, cfg, changed, srv.UpdateConfig, log)
				if err != nil {
					return fmt.Errorf("watch config: %w", err)
				}
				defer w.Close()
			}

			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.svg2lottie/config.toml)")
	cmd.Flags().StringVar(&cfg.Host, "host", cfg.Host, "listen address")
	cmd.Flags().IntVar(&cfg.Port, "port", cfg.Port, "listen port")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	cmd.Flags().DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "HTTP read timeout")
	cmd.Flags().DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "HTTP write timeout")
	cmd.Flags().DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")
	cmd.Flags().StringVar(&cfg.DefaultType, "default-type", cfg.DefaultType, "animation type applied when requests omit one")
	cmd.Flags().IntVar(&cfg.DefaultFPS, "default-fps", cfg.DefaultFPS, "frame rate applied when requests omit one")
	cmd.Flags().IntVar(&cfg.DefaultDuration, "default-duration", cfg.DefaultDuration, "duration in frames applied when requests omit one")
	cmd.Flags().BoolVar(&cfg.FitToCanvas, "fit-to-canvas", cfg.FitToCanvas, "scale imported content to fill the canvas")
	cmd.Flags().BoolVar(&cfg.WatchConfig, "watch-config", cfg.WatchConfig, "reload conversion defaults when the config file changes")

	return cmd
}

func newConvertCmd(log zerolog.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath    string
		output     string
		presetPath string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "convert <input.svg>",
		Short: "Convert an SVG file to animated Lottie JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := loadConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}
			zerolog.SetGlobalLevel(cliconfig.ParseLevel(cfg.LogLevel))

			input := args[0]
			markup, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			payload := base64.StdEncoding.EncodeToString(markup)

			req := convert.Request{
				SVG:           payload,
				AnimationType: cfg.DefaultType,
				FrameRate:     cfg.DefaultFPS,
				Duration:      cfg.DefaultDuration,
				FitToCanvas:   cfg.FitToCanvas,
			}
			if presetPath != "" {
				preset, err := anim.ReadPreset(presetPath)
				if err != nil {
					return fmt.Errorf("read preset: %w", err)
				}
				req.AnimationType = anim.TypeComplex
				req.Effects = preset.Effects
			}

			conv := convert.New(anim.DefaultRegistry(), log)

			if all {
				base := "output"
				if output != "" {
					base = stem(output)
				}
				return convertAll(cmd.Context(), conv, req, base, log)
			}

			doc, err := conv.Convert(req)
			if err != nil {
				return err
			}
			out := output
			if out == "" {
				out = stem(input) + ".json"
			}
			if err := writeDocument(doc, out); err != nil {
				return err
			}
			log.Info().Str("output", out).Str("animation_type", req.AnimationType).Msg("converted")
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.svg2lottie/config.toml)")
	cmd.Flags().StringVarP(&cfg.DefaultType, "type", "t", cfg.DefaultType, "animation type")
	cmd.Flags().IntVar(&cfg.DefaultFPS, "fps", cfg.DefaultFPS, "frame rate in frames per second")
	cmd.Flags().IntVar(&cfg.DefaultDuration, "duration", cfg.DefaultDuration, "animation length in frames")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&cfg.FitToCanvas, "fit-to-canvas", cfg.FitToCanvas, "scale imported content to fill the canvas")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.json, or output_<type>.json with --all)")
	cmd.Flags().StringVar(&presetPath, "preset", "", "YAML preset of complex sub-effects")
	cmd.Flags().BoolVar(&all, "all", false, "render every animation type, one output file each")

	return cmd
}

// convertAll renders the input once per registered animation type,
// writing <base>_<type>.json for each.
func convertAll(ctx context.Context, conv *convert.Converter, req convert.Request, base string, log zerolog.Logger) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, name := range anim.DefaultRegistry().List() {
		r := req
		r.AnimationType = name
		r.Effects = nil
		out := fmt.Sprintf("%s_%s.json", base, name)
		g.Go(func() error {
			doc, err := conv.Convert(r)
			if err != nil {
				return fmt.Errorf("%s: %w", r.AnimationType, err)
			}
			if err := writeDocument(doc, out); err != nil {
				return fmt.Errorf("%s: %w", r.AnimationType, err)
			}
			log.Info().Str("output", out).Str("animation_type", r.AnimationType).Msg("converted")
			return nil
		})
	}
	return g.Wait()
}

// stem strips the file extension for output name derivation.
func stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func writeDocument(doc map[string]any, path string) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func main() {
	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "svg2lottie",
		Short:   "Convert static SVGs into animated Lottie JSON",
		Long:    strings.TrimSpace(longHelp),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
	}
	root.AddCommand(newServeCmd(log))
	root.AddCommand(newConvertCmd(log))

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("svg2lottie")
		os.Exit(1)
	}
}
