package main

import "github.com/spf13/cobra"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "funneltree",
		Short: "Single-source geodesic distances over a triangulated surface",
	}
	root.AddCommand(newRunCommand())
	return root
}
