package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
	"github.com/evgeniy-krivenko/notes-api/pkg/notesclient"
)

var (
	baseURL string
	timeout time.Duration
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "notesctl",
	Short: "Command line client for the notes API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}

		return slogx.InitGlobal(os.Stderr, level, true)
	},
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "addr", "http://127.0.0.1:8000", "base URL of the notes API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func newClient() *notesclient.Client {
	slogx.Debug(rootCmd.Context(), "using notes api", slog.String("addr", baseURL))

	return notesclient.New(baseURL, &http.Client{Timeout: timeout})
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("print result: %v", err)
	}

	return nil
}

// optional returns nil for flags the user did not set.
func optional(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return &value
}
