package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-breaker/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List display backends",
	Long:  `Shows the display backends that can run the game, for use with 'breaker play --backend'.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Fprintln(out, "No backends available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, b := range backends {
		maxIDLen = max(maxIDLen, len(b.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, b := range backends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}
}
