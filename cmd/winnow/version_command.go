package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winnowlabs/winnow/version"
)

func newVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the winnow version",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the short version")

	return cmd
}
