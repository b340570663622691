package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holidayguard/cronbuild/internal/config"
	"github.com/holidayguard/cronbuild/internal/constants"
	"github.com/holidayguard/cronbuild/internal/logger"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Validate cronbuild configuration.`,
}

// configValidateCmd represents the config validate command
var configValidateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate configuration file",
	Long:  `Validate the configuration file and report every error found.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.NewWithWriter(cmd.OutOrStdout(), "text", "info")
		if err != nil {
			return err
		}

		path := constants.DefaultConfigPath
		if configPath != "" {
			path = configPath
		}
		if len(args) > 0 {
			path = args[0]
		}

		log.Info("Validating configuration", logger.Field{Key: "path", Value: path})

		cfg, err := config.Load(path)
		if err != nil {
			log.Error("Failed to load config", err)
			return err
		}

		errs := cfg.Validate()
		if len(errs) > 0 {
			for _, e := range errs {
				log.Error("Validation error", e)
			}
			return fmt.Errorf("config validation failed: %d errors", len(errs))
		}

		log.Info("Configuration is valid")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)
}
