package main

import (
	"fmt"
	"io"

	"github.com/4thel00z/meshy/internal"
	"github.com/spf13/cobra"
)

func NewDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <scenario.yaml> <tagA> <tagB>",
		Short: "Diff two floor tags of a scenario run",
		Long:  `Run the scenario's observer script, then print a line diff between the manifests of the two named floor tags it created.`,
		Args:  cobra.ExactArgs(3),
		RunE:  makeDiffRunner(),
	}

	return cmd
}

func makeDiffRunner() func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		w, err := loadWorld(args[0])
		if err != nil {
			return err
		}

		if err := w.runScript(io.Discard, w.scenario.Script); err != nil {
			return err
		}

		tagA, ok := w.engine.FindTag(args[1])
		if !ok {
			return fmt.Errorf("tag %q not created by scenario script", args[1])
		}
		tagB, ok := w.engine.FindTag(args[2])
		if !ok {
			return fmt.Errorf("tag %q not created by scenario script", args[2])
		}

		diff := internal.DiffTags(tagA, tagB)
		if diff == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No differences.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n+++ %s\n%s", tagA.Summary(), tagB.Summary(), diff)
		return nil
	}
}
