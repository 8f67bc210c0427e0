package main

import (
	"bufio"
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/charlieparkes/wordbench/app"
	"github.com/charlieparkes/wordbench/store"
	"github.com/charlieparkes/wordbench/wordcount"
)

var Cmd = &cobra.Command{
	Use:           "wordbench",
	Short:         "Time counting the space separated words of a file",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	defaults := app.Default()
	Cmd.PersistentFlags().StringP("config", "c", "", "path to a yaml config file")
	Cmd.PersistentFlags().String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	Cmd.Flags().StringP("file", "f", defaults.File, "input file, local path or gs://bucket/object")
	Cmd.Flags().Int("max-token-size", defaults.MaxTokenSize, "largest token in bytes")
	Cmd.Flags().Bool("progress", defaults.Progress, "show a progress bar on stderr while reading")
	Cmd.Flags().String("dump", defaults.Dump, "write the frequency table to this path after timing")
	Cmd.Flags().Int("top", defaults.Top, "only dump the most frequent N words (0 dumps all)")

	Cmd.AddCommand(tourCmd)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := Cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("wordbench failed")
	}
}

// loadConfig layers defaults, the config file and explicitly set flags.
func loadConfig(c *cobra.Command) (app.Config, error) {
	cfg := app.Default()

	path, err := c.Flags().GetString("config")
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if cfg, err = app.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	flags := c.Flags()
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = flags.GetString("log-level"); err != nil {
			return cfg, err
		}
	}
	if flags.Lookup("file") == nil {
		// subcommands only carry the persistent flags
		return cfg, cfg.Validate()
	}
	if flags.Changed("file") {
		if cfg.File, err = flags.GetString("file"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("max-token-size") {
		if cfg.MaxTokenSize, err = flags.GetInt("max-token-size"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("progress") {
		if cfg.Progress, err = flags.GetBool("progress"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("dump") {
		if cfg.Dump, err = flags.GetString("dump"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("top") {
		if cfg.Top, err = flags.GetInt("top"); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func run(c *cobra.Command, args []string) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := app.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer app.Log.Sync()

	ctx := context.Background()

	table, _, err := wordcount.Benchmark(ctx, wordcount.Options{
		Path:         cfg.File,
		MaxTokenSize: cfg.MaxTokenSize,
		Progress:     cfg.Progress,
	}, c.OutOrStdout())
	if err != nil {
		return err
	}

	if cfg.Dump == "" {
		return nil
	}
	return dump(ctx, cfg.Dump, table, cfg.Top)
}

func dump(ctx context.Context, path string, table *wordcount.Table, top int) error {
	file, err := store.Create(ctx, path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)

	if err := wordcount.Dump(w, table, top); err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	app.Log.Info("dumped frequency table", zap.String("path", path), zap.Int("distinct", table.Distinct()))
	return nil
}
