package main

import (
	"fmt"
	"strings"

	"github.com/0thm4n3/ioscope"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ioscope",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ioscope version %s\n", strings.TrimSpace(ioscope.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
