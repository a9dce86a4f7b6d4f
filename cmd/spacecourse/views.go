package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-course/internal/registry"
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "List available views",
	Long:  `Shows the views that can be passed to 'play --view' or cycled with Tab.`,
	Args:  cobra.NoArgs,
	Run:   runViews,
}

func runViews(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	views := registry.List()

	if len(views) == 0 {
		fmt.Fprintln(out, "No views available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, v := range views {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, v := range views {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, v.ID, v.Title)
	}
}
