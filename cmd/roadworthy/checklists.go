package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checklistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checklists",
		Short: "List the registered checklist versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, _, _, _ := newEnvironment()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-20s %-32s %s\n", "VERSION", "NAME", "POINTS")
			for _, v := range catalog.Versions() {
				reg, err := catalog.Get(v)
				if err != nil {
					continue
				}
				fmt.Fprintf(out, "%-20s %-32s %d\n", reg.Version(), reg.Name(), reg.Len())
			}
			return nil
		},
	}
}
