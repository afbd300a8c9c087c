package main

import (
	"encoding/json"
	"io"

	"github.com/4thel00z/meshy/internal"
	"github.com/spf13/cobra"
)

func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <scenario.yaml>",
		Short: "Export the timeline for visualization",
		Long:  `Run the scenario's observer script, then emit the full timeline as JSON: branch-graph layout, floor tag summaries, and the command log.`,
		Args:  cobra.ExactArgs(1),
		RunE:  makeExportRunner(),
	}

	cmd.Flags().Bool("no-script", false, "Export the raw perceptions without running the scenario script")
	return cmd
}

type exportPayload struct {
	Name   string                 `json:"name,omitempty"`
	Layout *internal.BranchLayout `json:"layout"`
	Tags   []string               `json:"tags,omitempty"`
	Log    []string               `json:"log,omitempty"`
}

func makeExportRunner() func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		noScript, _ := cmd.Flags().GetBool("no-script")

		w, err := loadWorld(args[0])
		if err != nil {
			return err
		}

		if !noScript {
			if err := w.runScript(io.Discard, w.scenario.Script); err != nil {
				return err
			}
		}

		payload := exportPayload{
			Name:   w.scenario.Name,
			Layout: internal.LayoutBranchGraph(w.timeline.Nodes()),
			Log:    w.engine.Log(),
		}
		for _, tag := range w.engine.FloorTags() {
			payload.Tags = append(payload.Tags, tag.Summary())
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}
}
