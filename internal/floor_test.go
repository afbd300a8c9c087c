package internal

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestFloorTagSummary(t *testing.T) {
	tl := NewTimeline()
	a := NewAgent("a", "A", tl)
	n1 := a.PerceiveEvent(baseTime, Position{}, EventData{"description": "one"}, nil)
	n2 := a.PerceiveEvent(baseTime.Add(time.Minute), Position{}, EventData{"description": "two"}, nil)

	created := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	tag := NewFloorTag("canonical_v1", []*TimelineNode{n1, n2}, created)

	summary := tag.Summary()
	if !strings.Contains(summary, "canonical_v1") {
		t.Errorf("summary missing name: %s", summary)
	}
	if !strings.Contains(summary, "2 nodes") {
		t.Errorf("summary missing count: %s", summary)
	}
	if !strings.Contains(summary, created.Format(time.RFC3339)) {
		t.Errorf("summary missing timestamp: %s", summary)
	}
	want := fmt.Sprintf("FloorTag[canonical_v1] - 2 nodes @ %s", created.Format(time.RFC3339))
	if summary != want {
		t.Errorf("summary = %q, want %q", summary, want)
	}
}

func TestFloorTagEmptySummary(t *testing.T) {
	tag := NewFloorTag("empty", nil, baseTime)
	if !strings.Contains(tag.Summary(), "0 nodes") {
		t.Errorf("empty tag summary = %q", tag.Summary())
	}
	if len(tag.Agents()) != 0 || len(tag.Branches()) != 0 {
		t.Error("empty tag should have no agents or branches")
	}
}

func TestFloorTagAgentsAndBranches(t *testing.T) {
	tl := NewTimeline()
	a := NewAgent("agent_alpha", "Alpha", tl)
	b := NewAgent("agent_beta", "Beta", tl)

	n1 := a.PerceiveEvent(baseTime, Position{}, EventData{"description": "x"}, nil)
	n2 := b.PerceiveEvent(baseTime, Position{}, EventData{"description": "y"}, nil)
	n3 := b.PerceiveEvent(baseTime, Position{1, 0, 0}, EventData{"description": "z"}, nil)
	n3.BranchID = "side"
	anonymous := tl.NewNode(baseTime, Position{}, nil, nil, "merged", "")

	tag := NewFloorTag("t", []*TimelineNode{n1, n2, n3, anonymous}, baseTime)

	agents := tag.Agents()
	if len(agents) != 2 || agents[0] != "agent_alpha" || agents[1] != "agent_beta" {
		t.Errorf("Agents() = %v", agents)
	}

	branches := tag.Branches()
	if len(branches) != 3 {
		t.Errorf("Branches() = %v", branches)
	}
}

func TestFloorTagCapturesSnapshot(t *testing.T) {
	tl := NewTimeline()
	a := NewAgent("a", "A", tl)
	n := a.PerceiveEvent(baseTime, Position{}, EventData{"description": "x"}, nil)

	nodes := []*TimelineNode{n}
	tag := NewFloorTag("snap", nodes, baseTime)

	// Mutating the caller's slice does not change the tag.
	nodes[0] = nil
	if tag.Len() != 1 || tag.Nodes()[0] != n {
		t.Error("tag did not capture its own copy of the node list")
	}
}
