package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutBranchGraph(t *testing.T) {
	tl := NewTimeline()
	a := NewAgent("a", "A", tl)

	root := a.PerceiveEvent(baseTime, Position{}, EventData{"description": "root"}, nil)
	next := a.PerceiveEvent(baseTime.Add(time.Hour), Position{}, EventData{"description": "next"}, nil)
	side := a.PerceiveEvent(baseTime.Add(2*time.Hour), Position{}, EventData{"description": "side"}, nil)
	side.BranchID = "side"
	require.NoError(t, tl.Link(root.ID, next.ID))
	require.NoError(t, tl.Link(root.ID, side.ID))

	layout := LayoutBranchGraph([]*TimelineNode{root, next, side})

	require.Len(t, layout.Nodes, 3)
	assert.Equal(t, float64(baseTime.Unix()), layout.Nodes[0].X)
	assert.Equal(t, 0, layout.Nodes[0].Y)
	assert.Equal(t, 0, layout.Nodes[1].Y)
	// Second branch lands on the next row, by first appearance.
	assert.Equal(t, 1, layout.Nodes[2].Y)
	assert.Equal(t, map[string]int{"main": 0, "side": 1}, layout.Rows)

	require.Len(t, layout.Edges, 2)
	assert.Equal(t, LayoutEdge{From: root.ID, To: next.ID}, layout.Edges[0])
	assert.Equal(t, LayoutEdge{From: root.ID, To: side.ID}, layout.Edges[1])
}

func TestLayoutBranchGraphDropsOutsideEdges(t *testing.T) {
	tl := NewTimeline()
	a := NewAgent("a", "A", tl)

	outside := a.PerceiveEvent(baseTime, Position{}, EventData{"description": "outside"}, nil)
	inside := a.PerceiveEvent(baseTime.Add(time.Hour), Position{}, EventData{"description": "inside"}, nil)
	require.NoError(t, tl.Link(outside.ID, inside.ID))

	layout := LayoutBranchGraph([]*TimelineNode{inside})
	assert.Len(t, layout.Nodes, 1)
	assert.Empty(t, layout.Edges)
}

func TestLayoutBranchGraphEmpty(t *testing.T) {
	layout := LayoutBranchGraph(nil)
	assert.Empty(t, layout.Nodes)
	assert.Empty(t, layout.Edges)
}
