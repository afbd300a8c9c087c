package main

import (
	"time"

	"github.com/4thel00z/meshy/internal"
	"github.com/spf13/cobra"
)

func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in conflicting-memories demo",
		Long:  `Two agents remember the same moment differently; the observer merges them, tags the canonical floor, and prints the log.`,
		Args:  cobra.NoArgs,
		RunE:  makeDemoRunner(),
	}

	return cmd
}

func demoScenario() *internal.Scenario {
	moment := time.Date(1983, 7, 12, 12, 0, 0, 0, time.UTC)
	return &internal.Scenario{
		Name: "mandela",
		Agents: []internal.ScenarioAgent{
			{
				ID:   "agent_alpha",
				Name: "Alpha",
				Events: []internal.ScenarioEvent{{
					Time:     moment,
					Position: [3]float64{0, 0, 0},
					Event:    map[string]any{"description": "Mandela funeral"},
					Intent:   map[string]any{"certainty": 0.8, "emotion": "grief"},
				}},
			},
			{
				ID:   "agent_beta",
				Name: "Beta",
				Events: []internal.ScenarioEvent{{
					Time:     moment,
					Position: [3]float64{0, 0, 0},
					Event:    map[string]any{"description": "Mandela speech at UN"},
					Intent:   map[string]any{"certainty": 0.6, "emotion": "awe"},
				}},
			},
		},
		Script: []string{
			"merge",
			"tag floor canonical_v1",
			"log",
		},
	}
}

func makeDemoRunner() func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		w := newWorld(demoScenario())

		out := cmd.OutOrStdout()
		if _, err := out.Write([]byte(w.summary())); err != nil {
			return err
		}
		return w.runScript(out, w.scenario.Script)
	}
}
