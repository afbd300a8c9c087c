package internal

import "time"

// LayoutNode is one plotted node: x is the event time in unix seconds, y
// the row of the node's branch.
type LayoutNode struct {
	ID          NodeID    `json:"id"`
	X           float64   `json:"x"`
	Y           int       `json:"y"`
	Agent       string    `json:"agent"`
	Branch      string    `json:"branch"`
	Description string    `json:"description"`
	Time        time.Time `json:"time"`
}

// LayoutEdge is a parent→child link between two plotted nodes.
type LayoutEdge struct {
	From NodeID `json:"from"`
	To   NodeID `json:"to"`
}

// BranchLayout is the render-ready shape of a node set: positions plus the
// parent/child edges that fall inside the set. Front ends draw it; the
// core computes it.
type BranchLayout struct {
	Nodes []LayoutNode   `json:"nodes"`
	Edges []LayoutEdge   `json:"edges"`
	Rows  map[string]int `json:"rows"`
}

// LayoutBranchGraph lays a node set out on a time × branch plane. Branch
// rows are assigned in order of first appearance, so the layout is stable
// for a fixed input order. Edges to parents outside the set are dropped.
func LayoutBranchGraph(nodes []*TimelineNode) *BranchLayout {
	layout := &BranchLayout{Rows: make(map[string]int)}
	inSet := make(map[NodeID]bool, len(nodes))
	for _, node := range nodes {
		inSet[node.ID] = true
	}

	for _, node := range nodes {
		row, ok := layout.Rows[node.BranchID]
		if !ok {
			row = len(layout.Rows)
			layout.Rows[node.BranchID] = row
		}

		layout.Nodes = append(layout.Nodes, LayoutNode{
			ID:          node.ID,
			X:           float64(node.Timestamp.Unix()),
			Y:           row,
			Agent:       node.AgentID,
			Branch:      node.BranchID,
			Description: node.EventData.Description(),
			Time:        node.Timestamp,
		})

		for _, parent := range node.Parents {
			if inSet[parent] {
				layout.Edges = append(layout.Edges, LayoutEdge{From: parent, To: node.ID})
			}
		}
	}
	return layout
}
