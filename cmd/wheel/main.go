package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"spin_wheel/internal/app"
	"spin_wheel/internal/model"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	envPath    string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Spin wheel backend",
	Long: `Колесо с секциями по три утверждения.
Выбор секции случайный среди заполненных, секции хранятся в файле, SQLite или PostgreSQL.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return app.NewApp(envPath, configPath).Run(ctx)
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print stored sections and fill progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.NewApp(envPath, configPath)
		sp, err := a.Inspect(cmd.Context())
		defer sp.Close()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}

		serv := sp.WheelService(cmd.Context())
		printSnapshot(cmd.OutOrStdout(), serv.Snapshot(cmd.Context()), serv.Progress(cmd.Context()))
		return nil
	},
}

func printSnapshot(w io.Writer, snap model.Snapshot, progress model.Progress) {
	for i, s := range snap.Sections {
		if !s.Filled() {
			fmt.Fprintf(w, "%2d  -\n", i)
			continue
		}
		fmt.Fprintf(w, "%2d  %s\n", i, strings.Join(s.Statements[:], " | "))
	}
	fmt.Fprintf(w, "filled %d/%d (%.0f%%)\n", progress.Filled, progress.Total, progress.Percent)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envPath, "env", ".env", "path to .env file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to wheel config")

	rootCmd.AddCommand(serveCmd, inspectCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
