package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnknownCommand = errors.New("unknown observer command")
	ErrBadThreshold   = errors.New("invalid certainty threshold")
)

// CommandKind enumerates the observer command grammar.
type CommandKind int

const (
	CmdMerge CommandKind = iota
	CmdSplit
	CmdReject
	CmdTagFloor
	CmdMaskCertainty
	CmdLog
)

// Command is one parsed observer command.
type Command struct {
	Kind      CommandKind
	Raw       string
	TagName   string  // CmdTagFloor
	Threshold float64 // CmdMaskCertainty
}

// ParseCommand turns a raw command string into a Command. Matching is by
// case-insensitive prefix on the trimmed string, tested in fixed priority
// order: merge, split, reject, tag floor, mask certainty <, log.
//
// A malformed mask threshold returns a CmdMaskCertainty command together
// with an error wrapping ErrBadThreshold; anything unrecognized returns an
// error wrapping ErrUnknownCommand.
func ParseCommand(raw string) (Command, error) {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.HasPrefix(lower, "merge"):
		return Command{Kind: CmdMerge, Raw: raw}, nil
	case strings.HasPrefix(lower, "split"):
		return Command{Kind: CmdSplit, Raw: raw}, nil
	case strings.HasPrefix(lower, "reject"):
		return Command{Kind: CmdReject, Raw: raw}, nil
	case strings.HasPrefix(lower, "tag floor"):
		fields := strings.Fields(trimmed)
		return Command{Kind: CmdTagFloor, Raw: raw, TagName: fields[len(fields)-1]}, nil
	case strings.HasPrefix(lower, "mask certainty <"):
		after := lower[strings.LastIndex(lower, "<")+1:]
		threshold, err := strconv.ParseFloat(strings.TrimSpace(after), 64)
		if err != nil {
			return Command{Kind: CmdMaskCertainty, Raw: raw}, fmt.Errorf("%w: %v", ErrBadThreshold, err)
		}
		return Command{Kind: CmdMaskCertainty, Raw: raw, Threshold: threshold}, nil
	case strings.HasPrefix(lower, "log"):
		return Command{Kind: CmdLog, Raw: raw}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, trimmed)
}

// Session is the caller-owned state a command stream operates on. The
// engine reads Conflicts and Nodes; only mask certainty writes Nodes back.
// Callers persist returned node lists into Nodes between calls as they see
// fit.
type Session struct {
	Conflicts []ConflictPair
	Nodes     []*TimelineNode
}

// ResultKind says which Result field carries the payload.
type ResultKind int

const (
	ResultNodes ResultKind = iota
	ResultTag
	ResultLog
	ResultMessage
	ResultError
)

// Result is the outcome of one executed command.
type Result struct {
	Kind    ResultKind
	Nodes   []*TimelineNode
	Tag     *FloorTag
	Log     []string
	Message string
}

// ObserverScriptEngine executes observer commands against a session,
// keeping an append-only log of every raw command it has seen and every
// floor tag it has created.
//
// The engine is single-session: no two commands against the same session
// may run concurrently.
type ObserverScriptEngine struct {
	timeline  *Timeline
	log       []string
	floorTags []*FloorTag
	now       func() time.Time
}

func NewObserverScriptEngine(timeline *Timeline) *ObserverScriptEngine {
	return &ObserverScriptEngine{
		timeline: timeline,
		now:      time.Now,
	}
}

// Execute runs one command. The raw string is logged unconditionally,
// before parsing. Parameter failures (a malformed mask threshold) come
// back as a ResultError with the session untouched; unrecognized commands
// are returned as errors the caller must handle.
func (e *ObserverScriptEngine) Execute(raw string, sess *Session) (Result, error) {
	e.log = append(e.log, raw)

	cmd, err := ParseCommand(raw)
	if err != nil {
		if errors.Is(err, ErrBadThreshold) {
			return Result{Kind: ResultError, Message: err.Error()}, nil
		}
		return Result{}, err
	}

	switch cmd.Kind {
	case CmdMerge:
		return e.resolve(StrategyMerge, sess)
	case CmdSplit:
		return e.resolve(StrategySplit, sess)
	case CmdReject:
		return e.resolve(StrategyReject, sess)
	case CmdTagFloor:
		tag := NewFloorTag(cmd.TagName, sess.Nodes, e.now().UTC())
		e.floorTags = append(e.floorTags, tag)
		return Result{Kind: ResultTag, Tag: tag}, nil
	case CmdMaskCertainty:
		var kept []*TimelineNode
		for _, node := range sess.Nodes {
			if node.IntentMeta.Certainty() >= cmd.Threshold {
				kept = append(kept, node)
			}
		}
		sess.Nodes = kept
		msg := fmt.Sprintf("Masked nodes with certainty < %g. %d remaining.", cmd.Threshold, len(kept))
		return Result{Kind: ResultMessage, Message: msg}, nil
	case CmdLog:
		return Result{Kind: ResultLog, Log: e.Log()}, nil
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownCommand, raw)
}

func (e *ObserverScriptEngine) resolve(strategy Strategy, sess *Session) (Result, error) {
	resolver, err := NewConflictResolver(e.timeline, strategy)
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: ResultNodes, Nodes: resolver.Resolve(sess.Conflicts)}, nil
}

// Log returns every raw command received so far, in call order.
func (e *ObserverScriptEngine) Log() []string {
	out := make([]string, len(e.log))
	copy(out, e.log)
	return out
}

// FloorTags returns every tag created through this engine, in creation
// order.
func (e *ObserverScriptEngine) FloorTags() []*FloorTag {
	out := make([]*FloorTag, len(e.floorTags))
	copy(out, e.floorTags)
	return out
}

// FindTag returns the most recently created tag with the given name.
func (e *ObserverScriptEngine) FindTag(name string) (*FloorTag, bool) {
	for i := len(e.floorTags) - 1; i >= 0; i-- {
		if e.floorTags[i].TagName == name {
			return e.floorTags[i], true
		}
	}
	return nil, false
}
