package main

import (
	"fmt"
	"os"

	"minigrep/internal/di"
	"minigrep/internal/settings"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

//go:generate swag init -g main.go -d ./,../../internal/web -o ../../docs

// @title minigrepd API
// @version 1.0
// @description Line search over files below the server root.
// @BasePath /

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "minigrepd",
		Short:        "Serve line search over HTTP",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
		rootDir    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.HttpPort = port
			}
			if cmd.Flags().Changed("root") {
				cfg.Root = rootDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			app := fx.New(
				fx.Supply(cfg),
				di.Server,
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML settings file (default $CONFIG_PATH)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port, overrides http_port")
	cmd.Flags().StringVarP(&rootDir, "root", "r", "", "directory served files are read from, overrides root")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "minigrepd", Version)
		},
	}
}
