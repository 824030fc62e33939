// Package cmd contains the command line interface.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CorrelAid/compress_uploader/configs"
	"github.com/CorrelAid/compress_uploader/logger"
	"github.com/CorrelAid/compress_uploader/validators"
)

var (
	configPath string
	debug      bool

	rootCmd = &cobra.Command{
		Use:           "compress-uploader",
		Short:         "Send files to a compression service and show the result",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := configs.InitConfig(configPath); err != nil {
				return err
			}

			cfg := configs.GetConfig()
			if debug {
				cfg.Server.Debug = true
			}

			if err := validators.ValidateConfig(cfg); err != nil {
				return err
			}

			logger.Init()

			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./", "config file or directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	registerSubmitCommand()
	registerServeCommand()
	registerConfigsCommands()
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errSubmissionFailed) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}

	return err
}
