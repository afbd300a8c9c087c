package internal

// ConflictPair is two nodes from different agents that agree on time and
// place but disagree on what happened there.
type ConflictPair struct {
	A *TimelineNode
	B *TimelineNode
}

// DetectConflicts scans the agents' memories pairwise and returns every
// unordered pair of nodes that originate from different agents, share
// timestamp and position, and carry unequal event data.
//
// The scan is O(n²) in the total node count, which is fine for the
// working-set sizes this model targets (hundreds to low thousands of
// nodes). Pure: no inputs are mutated.
func DetectConflicts(agents []*Agent) []ConflictPair {
	type entry struct {
		agentID string
		node    *TimelineNode
	}

	var all []entry
	for _, agent := range agents {
		for _, node := range agent.memory {
			all = append(all, entry{agentID: agent.ID, node: node})
		}
	}

	var pairs []ConflictPair
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i], all[j]
			if a.agentID == b.agentID {
				continue
			}
			if !a.node.Coincides(b.node) {
				continue
			}
			if a.node.EventData.Equal(b.node.EventData) {
				continue
			}
			pairs = append(pairs, ConflictPair{A: a.node, B: b.node})
		}
	}
	return pairs
}
