package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/composita"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of composita",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "composita version %s\n", strings.TrimSpace(composita.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
