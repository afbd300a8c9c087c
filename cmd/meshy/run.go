package main

import (
	"encoding/json"
	"fmt"

	"github.com/4thel00z/meshy/internal"
	"github.com/spf13/cobra"
)

func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario and its observer script",
		Long:  `Build the scenario's agents, detect conflicts, execute the embedded observer script, and report the resulting timeline.`,
		Args:  cobra.ExactArgs(1),
		RunE:  makeRunRunner(),
	}

	return cmd
}

func makeRunRunner() func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		w, err := loadWorld(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, w.summary())

		if err := w.runScript(out, w.scenario.Script); err != nil {
			return err
		}

		for _, tag := range w.engine.FloorTags() {
			fmt.Fprintln(out, tag.Summary())
		}

		if asJSON {
			return outputNodesJSON(cmd, w.sess.Nodes)
		}
		return nil
	}
}

func outputNodesJSON(cmd *cobra.Command, nodes []*internal.TimelineNode) error {
	data := make([]map[string]any, 0, len(nodes))
	for _, node := range nodes {
		data = append(data, map[string]any{
			"timestamp":   node.Timestamp,
			"position":    node.Position,
			"event":       node.EventData,
			"intent":      node.IntentMeta,
			"branch_id":   node.BranchID,
			"agent_id":    node.AgentID,
			"description": node.EventData.Description(),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
