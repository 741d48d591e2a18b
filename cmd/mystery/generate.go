package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwebster45206/mystery-engine/internal/config"
	"github.com/jwebster45206/mystery-engine/internal/logger"
	internalstorage "github.com/jwebster45206/mystery-engine/internal/storage"
	"github.com/jwebster45206/mystery-engine/pkg/game"
	"github.com/jwebster45206/mystery-engine/pkg/setting"
	"github.com/jwebster45206/mystery-engine/pkg/storage"
)

const (
	redisMaxRetries = 5
	redisRetryDelay = time.Second
)

// generateFlags holds the command line overrides for config values.
type generateFlags struct {
	suspects int
	weapons  int
	seed     uint64
	dir      string
	output   string
	setting  string
	reveal   bool
}

func newRootCmd() *cobra.Command {
	flags := &generateFlags{}

	root := &cobra.Command{
		Use:   "mystery",
		Short: "Generate a whodunit you solve from the shell",
		Long: `Generate a murder mystery as a tree of directories.

Every location is a directory holding persons.txt and objects.txt. A trail of
clue.txt files leads from location to location until the last clue names the
scene of the crime. Tick off suspects and weapons in notebook.md as you go.

Running mystery with no subcommand is the same as "mystery generate".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	generateCmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate a new mystery, replacing the previous one",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	bindGenerateFlags(root, flags)
	bindGenerateFlags(generateCmd, flags)

	root.AddCommand(generateCmd, newValidateCmd())
	return root
}

// bindGenerateFlags registers the generation flags on cmd. Both the root
// command and "generate" share one generateFlags value.
func bindGenerateFlags(cmd *cobra.Command, flags *generateFlags) {
	f := cmd.Flags()
	f.IntVarP(&flags.suspects, "suspects", "s", 3, "number of suspects (3 to the number of people)")
	f.IntVarP(&flags.weapons, "weapons", "w", 3, "number of weapons (3 to the number of objects)")
	f.Uint64Var(&flags.seed, "seed", 0, "random seed; the same seed gives the same mystery (0 picks one)")
	f.StringVarP(&flags.dir, "dir", "d", "game", "directory the game is written to")
	f.StringVarP(&flags.output, "output", "o", config.OutputFile, "where to write the game: file or redis")
	f.StringVar(&flags.setting, "setting", "", "YAML setting file to use instead of the built-in town")
	f.BoolVar(&flags.reveal, "reveal", false, "print the solution after generating")
}

// apply copies every flag the user set over the loaded config.
func (f *generateFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("suspects") {
		cfg.Suspects = f.suspects
	}
	if changed("weapons") {
		cfg.Weapons = f.weapons
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("dir") {
		cfg.GameDir = f.dir
	}
	if changed("output") {
		cfg.Output = strings.ToLower(f.output)
	}
	if changed("setting") {
		cfg.SettingFile = f.setting
	}
	return cfg.Validate()
}

func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := flags.apply(cmd, cfg); err != nil {
		return err
	}

	log := logger.Setup(cfg, cmd.ErrOrStderr())
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := loadSetting(cfg.SettingFile)
	if err != nil {
		log.Error("Failed to load setting", "path", cfg.SettingFile, "error", err)
		return err
	}

	g, err := game.NewGenerator(s, log).Generate(game.Options{
		Suspects: cfg.Suspects,
		Weapons:  cfg.Weapons,
		Seed:     cfg.Seed,
	})
	if err != nil {
		log.Error("Failed to generate mystery", "error", err)
		return err
	}
	log = logger.WithGameID(log, g.ID)

	store, err := openStorage(ctx, cfg, g, log)
	if err != nil {
		logger.WithError(log, err).Error("Failed to open output", "output", cfg.Output)
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.WithError(log, err).Warn("Failed to close output")
		}
	}()

	written, writeErr := g.Write(ctx, store, log)
	log.Info("Mystery written", "files", written, "output", cfg.Output, "seed", g.Seed)

	printSummary(cmd.OutOrStdout(), cfg, g, written, flags.reveal)

	if writeErr != nil {
		return fmt.Errorf("%d of %d files could not be written: %w",
			len(g.Artifacts())-written, len(g.Artifacts()), writeErr)
	}
	return nil
}

func loadSetting(path string) (*setting.Setting, error) {
	if path == "" {
		return setting.Default(), nil
	}
	return setting.Load(path)
}

// openStorage returns the sink the game is written to. The file sink starts
// from an empty directory so no clue from an earlier game survives.
func openStorage(ctx context.Context, cfg *config.Config, g *game.Game, log *slog.Logger) (storage.Storage, error) {
	switch cfg.Output {
	case config.OutputRedis:
		rs, err := internalstorage.NewRedisStorage(cfg.RedisURL, g.ID, cfg.RedisTTL, log)
		if err != nil {
			return nil, err
		}
		if err := rs.WaitForConnection(ctx, redisMaxRetries, redisRetryDelay); err != nil {
			_ = rs.Close()
			return nil, fmt.Errorf("redis not reachable: %w", err)
		}
		return rs, nil
	default:
		fs := internalstorage.NewFileStorage(cfg.GameDir, log)
		if err := fs.Reset(); err != nil {
			return nil, err
		}
		return fs, nil
	}
}
