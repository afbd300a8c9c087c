package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/4thel00z/meshy/internal"
)

// world is one live model run: the arena, the agents built from a
// scenario, the script engine, and the observer session it operates on.
type world struct {
	scenario *internal.Scenario
	timeline *internal.Timeline
	agents   []*internal.Agent
	engine   *internal.ObserverScriptEngine
	sess     *internal.Session
}

func newWorld(sc *internal.Scenario) *world {
	timeline, agents := sc.Build()
	return &world{
		scenario: sc,
		timeline: timeline,
		agents:   agents,
		engine:   internal.NewObserverScriptEngine(timeline),
		sess: &internal.Session{
			Conflicts: internal.DetectConflicts(agents),
			Nodes:     internal.AllMemories(agents),
		},
	}
}

func loadWorld(path string) (*world, error) {
	sc, err := internal.LoadScenario(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	return newWorld(sc), nil
}

// runCommand executes one observer command and renders its result.
// Merge results are persisted back into the session's node list, so later
// tags capture the canonical timeline; parameter failures come back as
// rendered text, not errors.
func (w *world) runCommand(out io.Writer, raw string) error {
	res, err := w.engine.Execute(raw, w.sess)
	if err != nil {
		return err
	}

	if res.Kind == internal.ResultNodes && isMergeCommand(raw) {
		w.sess.Nodes = res.Nodes
	}

	fmt.Fprint(out, renderResult(res))
	return nil
}

func isMergeCommand(raw string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), "merge")
}

func renderResult(res internal.Result) string {
	var sb strings.Builder
	switch res.Kind {
	case internal.ResultNodes:
		fmt.Fprintf(&sb, "%d node(s)\n", len(res.Nodes))
		for _, node := range res.Nodes {
			agent := node.AgentID
			if agent == "" {
				agent = "unknown"
			}
			fmt.Fprintf(&sb, "  [%s] %s: %s\n", node.BranchID, agent, node.EventData.Description())
		}
	case internal.ResultTag:
		fmt.Fprintln(&sb, res.Tag.Summary())
	case internal.ResultLog:
		for _, line := range res.Log {
			fmt.Fprintln(&sb, line)
		}
	case internal.ResultMessage, internal.ResultError:
		fmt.Fprintln(&sb, res.Message)
	}
	return sb.String()
}

// runScript executes a command sequence, echoing each command. Unknown
// commands stop the run; parameter failures are printed and skipped.
func (w *world) runScript(out io.Writer, commands []string) error {
	for _, raw := range commands {
		fmt.Fprintf(out, "> %s\n", raw)
		if err := w.runCommand(out, raw); err != nil {
			return fmt.Errorf("execute %q: %w", raw, err)
		}
	}
	return nil
}

func (w *world) summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d agent(s), %d node(s), %d conflict(s)\n",
		len(w.agents), w.timeline.Len(), len(w.sess.Conflicts))
	for _, pair := range w.sess.Conflicts {
		fmt.Fprintf(&sb, "  conflict @ %s %s: %q vs %q\n",
			pair.A.Timestamp.Format("2006-01-02 15:04"),
			pair.A.Position,
			pair.A.EventData.Description(),
			pair.B.EventData.Description(),
		)
	}
	return sb.String()
}
