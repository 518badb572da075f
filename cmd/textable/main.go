package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/textable"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	edit := newEditCmd()
	root := &cobra.Command{
		Use:           "textable",
		Short:         "Edit merged-cell tables in the terminal and emit LaTeX",
		Args:          cobra.NoArgs,
		RunE:          edit.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// Running bare textable opens the editor, so it takes the edit flags too.
	root.Flags().AddFlagSet(edit.Flags())

	root.AddCommand(edit, newRenderCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the textable version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), textable.VersionTag())
		},
	}
}
