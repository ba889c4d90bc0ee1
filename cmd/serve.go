package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides PATHWISE_ADDR env var, default :8080)")
}

func runServe(cmd *cobra.Command) error {
	a, err := openApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = os.Getenv("PATHWISE_ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	a.Log.Info("starting API server", "addr", addr)
	return a.Server().Run(addr)
}
