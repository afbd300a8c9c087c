package internal

import (
	"errors"
	"fmt"
)

var ErrUnknownStrategy = errors.New("unknown resolution strategy")

// Strategy selects how conflicting perceptions are reconciled.
type Strategy string

const (
	// StrategyMerge synthesizes one system node per conflicting pair.
	StrategyMerge Strategy = "merge"
	// StrategyReject drops both sides of every conflicting pair.
	StrategyReject Strategy = "reject"
	// StrategySplit keeps both sides, renaming their branches apart.
	StrategySplit Strategy = "split"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyMerge, StrategyReject, StrategySplit:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// ConflictResolver applies one fixed strategy to conflicting node pairs.
// The strategy is validated at construction and never changes; build a new
// resolver for a different strategy.
type ConflictResolver struct {
	timeline *Timeline
	strategy Strategy
}

func NewConflictResolver(timeline *Timeline, strategy Strategy) (*ConflictResolver, error) {
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return nil, err
	}
	return &ConflictResolver{timeline: timeline, strategy: strategy}, nil
}

func (r *ConflictResolver) Strategy() Strategy {
	return r.strategy
}

// Resolve applies the resolver's strategy to each pair in input order and
// returns the resulting nodes: one synthesized node per pair for merge,
// none for reject, both originals (branches renamed in place) for split.
//
// Split is the only operation that mutates existing nodes; the renamed
// nodes are still referenced from their agents' memories.
func (r *ConflictResolver) Resolve(pairs []ConflictPair) []*TimelineNode {
	var out []*TimelineNode
	for _, pair := range pairs {
		switch r.strategy {
		case StrategyMerge:
			out = append(out, r.merge(pair))
		case StrategyReject:
			// Both perceptions are excluded from the canonical timeline.
		case StrategySplit:
			pair.A.BranchID += "_a"
			pair.B.BranchID += "_b"
			out = append(out, pair.A, pair.B)
		}
	}
	return out
}

// merge synthesizes a new node from a conflicting pair. Timestamp and
// position come from A (equal on both sides by construction of the pair);
// the intent is the union of both sides with B overriding A, plus a
// merged_from record of the source agents. The result carries no links to
// the originals: a merge is a synthesis, not a graph edit.
func (r *ConflictResolver) merge(pair ConflictPair) *TimelineNode {
	intent := make(IntentMeta, len(pair.A.IntentMeta)+len(pair.B.IntentMeta)+1)
	for k, v := range pair.A.IntentMeta {
		intent[k] = v
	}
	for k, v := range pair.B.IntentMeta {
		intent[k] = v
	}
	intent["merged_from"] = []string{pair.A.AgentID, pair.B.AgentID}

	event := EventData{
		"description": fmt.Sprintf("[MERGED] %s / %s",
			pair.A.EventData.Description(), pair.B.EventData.Description()),
	}

	return r.timeline.NewNode(pair.A.Timestamp, pair.A.Position, event, intent, MergedBranch, SystemAgent)
}
