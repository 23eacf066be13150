package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.v.GetString("output") == "json" {
				return a.writeJSON(map[string]string{
					"version": version,
					"commit":  commit,
					"date":    date,
					"go":      runtime.Version(),
				})
			}
			fmt.Fprintf(a.stdout, "clay %s\n", version)
			fmt.Fprintf(a.stdout, "  commit: %s\n", commit)
			fmt.Fprintf(a.stdout, "  built:  %s\n", date)
			fmt.Fprintf(a.stdout, "  go:     %s\n", runtime.Version())
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	return cmd
}
