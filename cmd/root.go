package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recipebox/webclient/internal/catalog"
	"recipebox/webclient/internal/config"
	"recipebox/webclient/internal/repository"
	"recipebox/webclient/internal/service"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "recipebox",
		Short:         "Web client for a remote recipe catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "path to the yaml config file")

	cmd.AddCommand(
		newServeCmd(opts),
		newListCmd(opts),
		newAddCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
	)
	return cmd
}

// app is everything a command needs once config is loaded.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	recipes service.RecipeService
}

func newApp(opts *rootOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	store := repository.NewMemoryRecipeStore()
	logger.Debug("recipe store initialized", zap.Int("count", store.Len()))

	client := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	return &app{
		cfg:     cfg,
		logger:  logger,
		recipes: service.NewRecipeService(client, store, logger),
	}, nil
}
