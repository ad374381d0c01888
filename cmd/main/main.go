package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// version is stamped at build time and doubles as the stylesheet cache buster.
var version = "dev"

// rootCmd serves the dashboard when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "asclepius",
	Short: "Productivity map of medical staff",
	Long: `asclepius plots doctors and nurses on a map together with the appointments
and clinical evolutions assigned to them.

Configuration is read from the YAML file named by CONFIG_PATH and from
ASCLEPIUS_* environment variables (a .env file is honoured).`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, renderCmd, tuiCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
