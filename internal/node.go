package internal

import (
	"errors"
	"fmt"
	"reflect"
	"time"
)

var ErrNodeNotFound = errors.New("node not found")

const (
	// MainBranch is the branch every perceived node starts on.
	MainBranch = "main"
	// MergedBranch is the branch assigned to synthesized merge results.
	MergedBranch = "merged"
	// SystemAgent marks nodes produced by the system rather than an agent.
	SystemAgent = "system"

	DefaultEmotion   = "neutral"
	DefaultCertainty = 0.5
)

// NodeID addresses a node within its Timeline arena.
type NodeID int

// Position is a point in space. Positions compare exactly, no tolerance.
type Position [3]float64

func (p Position) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p[0], p[1], p[2])
}

// EventData is the "what happened" payload of a perceived event.
type EventData map[string]any

// Description returns the human-readable summary of the event, or "" when
// the payload carries none.
func (d EventData) Description() string {
	s, _ := d["description"].(string)
	return s
}

// Equal reports structural value equality of two payloads.
func (d EventData) Equal(other EventData) bool {
	return reflect.DeepEqual(map[string]any(d), map[string]any(other))
}

// IntentMeta describes the perceiving agent's internal state at the moment
// of perception: emotion, certainty in [0,1], bias, focus.
type IntentMeta map[string]any

// Certainty returns the agent's certainty, defaulting to 0.5 when absent or
// not a number.
func (m IntentMeta) Certainty() float64 {
	switch v := m["certainty"].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return DefaultCertainty
}

// TimelineNode is one agent's perceived event. All fields except BranchID
// are fixed at construction; BranchID is renamed by the split strategy.
type TimelineNode struct {
	ID         NodeID
	Timestamp  time.Time
	Position   Position
	EventData  EventData
	IntentMeta IntentMeta
	BranchID   string
	AgentID    string // "" for system-synthesized nodes until set
	Parents    []NodeID
	Children   []NodeID
}

// Coincides reports whether two nodes describe the same point in time and
// space. Event content is not considered.
func (n *TimelineNode) Coincides(other *TimelineNode) bool {
	return n.Timestamp.Equal(other.Timestamp) && n.Position == other.Position
}

func (n *TimelineNode) String() string {
	return fmt.Sprintf("TimelineNode(%d, %s, %s)", n.ID, n.Timestamp.Format(time.RFC3339), n.BranchID)
}

// Timeline is an arena owning every node of one model run. Nodes are
// addressed by stable NodeID; parent/child references are ID lists, so the
// graph carries no mutual pointers.
type Timeline struct {
	nodes []*TimelineNode
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

// NewNode allocates a node in the arena. The supplied intent map is copied
// into a fresh map with emotion/certainty defaults filled in; branch
// defaults to MainBranch when empty.
func (t *Timeline) NewNode(ts time.Time, pos Position, event EventData, intent IntentMeta, branch, agent string) *TimelineNode {
	meta := make(IntentMeta, len(intent)+2)
	for k, v := range intent {
		meta[k] = v
	}
	if _, ok := meta["emotion"]; !ok {
		meta["emotion"] = DefaultEmotion
	}
	if _, ok := meta["certainty"]; !ok {
		meta["certainty"] = DefaultCertainty
	}

	if branch == "" {
		branch = MainBranch
	}
	if event == nil {
		event = EventData{}
	}

	node := &TimelineNode{
		ID:         NodeID(len(t.nodes)),
		Timestamp:  ts,
		Position:   pos,
		EventData:  event,
		IntentMeta: meta,
		BranchID:   branch,
		AgentID:    agent,
	}
	t.nodes = append(t.nodes, node)
	return node
}

// Node resolves an ID to its node.
func (t *Timeline) Node(id NodeID) (*TimelineNode, error) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}
	return t.nodes[id], nil
}

// Link records child as a continuation of parent, appending the forward and
// the reverse reference together.
func (t *Timeline) Link(parent, child NodeID) error {
	p, err := t.Node(parent)
	if err != nil {
		return fmt.Errorf("link parent: %w", err)
	}
	c, err := t.Node(child)
	if err != nil {
		return fmt.Errorf("link child: %w", err)
	}

	p.Children = append(p.Children, child)
	c.Parents = append(c.Parents, parent)
	return nil
}

func (t *Timeline) Len() int {
	return len(t.nodes)
}

// Nodes returns the arena contents in allocation order. The slice is a
// copy; the nodes are shared.
func (t *Timeline) Nodes() []*TimelineNode {
	out := make([]*TimelineNode, len(t.nodes))
	copy(out, t.nodes)
	return out
}
