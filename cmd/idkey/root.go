package main

import (
	"fmt"
	"log/slog"

	"github.com/hupe1980/idkey"
	"github.com/hupe1980/idkey/catalog"
	"github.com/hupe1980/idkey/codec"
	"github.com/hupe1980/idkey/internal/config"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *idkey.Logger

	// Flag overrides of the config file.
	logLevel  string
	logFormat string
	backend   string
	path      string
	bucket    string
	prefix    string
	strict    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "idkey",
		Short:         "Interactive identification keys",
		Long:          `idkey narrows a catalog of taxa by the attributes you select and publishes catalogs to local, S3 or MinIO storage.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (text, json)")
	flags.StringVar(&a.backend, "backend", "", "catalog store backend (local, s3, minio)")
	flags.StringVar(&a.path, "path", "", "catalog directory of the local backend")
	flags.StringVar(&a.bucket, "bucket", "", "bucket of the s3 and minio backends")
	flags.StringVar(&a.prefix, "prefix", "", "object prefix of the s3 and minio backends")
	flags.BoolVar(&a.strict, "strict", false, "reject catalogs with any validation problem")

	cmd.AddCommand(
		newFilterCmd(a),
		newFacetsCmd(a),
		newValidateCmd(a),
		newPublishCmd(a),
		newWatchCmd(a),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("backend") {
		cfg.Store.Backend = a.backend
	}
	if flags.Changed("path") {
		cfg.Store.Path = a.path
	}
	if flags.Changed("bucket") {
		cfg.Store.Bucket = a.bucket
	}
	if flags.Changed("prefix") {
		cfg.Store.Prefix = a.prefix
	}
	if flags.Changed("strict") {
		cfg.Catalog.Strict = a.strict
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	level, _ := cfg.Log.SlogLevel()
	if cfg.Log.Format == "json" {
		a.logger = idkey.NewJSONLogger(level)
	} else {
		a.logger = idkey.NewTextLogger(level)
	}
	slog.SetDefault(a.logger.Logger)
	return nil
}

// catalogOptions returns the decode options of the configuration.
func (a *app) catalogOptions(node string) []catalog.Option {
	c, _ := codec.ByName(a.cfg.Catalog.Codec)
	opts := []catalog.Option{catalog.WithCodec(c), catalog.WithStrict(a.cfg.Catalog.Strict)}
	if node != "" {
		opts = append(opts, catalog.WithNode(node))
	}
	return opts
}
