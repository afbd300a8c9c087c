package internal

import (
	"fmt"
	"sort"
	"time"
)

// FloorTag is a named, immutable snapshot of a node set, marking a
// canonical checkpoint of the timeline. The tag holds shared references to
// the nodes; it does not own them.
type FloorTag struct {
	TagName   string
	nodes     []*TimelineNode
	CreatedAt time.Time
}

func NewFloorTag(name string, nodes []*TimelineNode, createdAt time.Time) *FloorTag {
	captured := make([]*TimelineNode, len(nodes))
	copy(captured, nodes)
	return &FloorTag{
		TagName:   name,
		nodes:     captured,
		CreatedAt: createdAt,
	}
}

// Nodes returns the captured node set in capture order.
func (t *FloorTag) Nodes() []*TimelineNode {
	out := make([]*TimelineNode, len(t.nodes))
	copy(out, t.nodes)
	return out
}

func (t *FloorTag) Len() int {
	return len(t.nodes)
}

// Summary renders the fixed one-line report for this tag.
func (t *FloorTag) Summary() string {
	return fmt.Sprintf("FloorTag[%s] - %d nodes @ %s",
		t.TagName, len(t.nodes), t.CreatedAt.Format(time.RFC3339))
}

// Agents returns the distinct agent IDs among the tag's nodes, sorted.
// System nodes without an agent are skipped.
func (t *FloorTag) Agents() []string {
	seen := make(map[string]bool)
	for _, node := range t.nodes {
		if node.AgentID != "" {
			seen[node.AgentID] = true
		}
	}
	return sortedKeys(seen)
}

// Branches returns the distinct branch IDs among the tag's nodes, sorted.
// Every node has a branch, so this is never empty for a non-empty tag.
func (t *FloorTag) Branches() []string {
	seen := make(map[string]bool)
	for _, node := range t.nodes {
		seen[node.BranchID] = true
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
