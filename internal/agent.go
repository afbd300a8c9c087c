package internal

import "time"

// Agent is an independent source of perceived events. Its memory is an
// ordered, append-only sequence of nodes, written only through
// PerceiveEvent.
type Agent struct {
	ID       string
	Name     string
	timeline *Timeline
	memory   []*TimelineNode
}

func NewAgent(id, name string, timeline *Timeline) *Agent {
	return &Agent{
		ID:       id,
		Name:     name,
		timeline: timeline,
	}
}

// PerceiveEvent records one perceived event: a node on the main branch,
// tagged with the agent's ID, appended to the agent's memory. The intent
// map may be nil; defaults are applied into a fresh map per call.
func (a *Agent) PerceiveEvent(ts time.Time, pos Position, event EventData, intent IntentMeta) *TimelineNode {
	node := a.timeline.NewNode(ts, pos, event, intent, MainBranch, a.ID)
	a.memory = append(a.memory, node)
	return node
}

// Memory returns the agent's perceived nodes in perception order. The
// slice is a copy; the nodes are shared.
func (a *Agent) Memory() []*TimelineNode {
	out := make([]*TimelineNode, len(a.memory))
	copy(out, a.memory)
	return out
}

func (a *Agent) MemoryLen() int {
	return len(a.memory)
}
