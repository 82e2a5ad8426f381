package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sketchcoach/sketchcoach/internal/engine"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the tutorial stages in order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for s := engine.StageDrawRectangle; s <= engine.StageDone; s++ {
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", s, s.Status())
		}
	},
}

func init() {
	rootCmd.AddCommand(stagesCmd)
}
