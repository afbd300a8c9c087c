package main

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "meshy",
		Short:         "Reconcile divergent agent memories into a timeline",
		Long:          `Model divergent memories of shared events, detect where agents contradict each other, and reconcile the contradictions by merging, rejecting, or splitting the timeline.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	rootCmd.AddCommand(
		NewRunCmd(),
		NewDemoCmd(),
		NewExecCmd(),
		NewExportCmd(),
		NewDiffCmd(),
		NewWatchCmd(),
		NewDashCmd(),
	)

	return rootCmd
}
