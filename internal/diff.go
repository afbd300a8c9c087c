package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// TagManifest renders a floor tag as a deterministic text manifest, one
// line per captured node, in capture order. Two tags over the same nodes
// render identically, which makes manifests the unit of tag diffing.
func TagManifest(tag *FloorTag) string {
	var sb strings.Builder
	for _, node := range tag.Nodes() {
		agent := node.AgentID
		if agent == "" {
			agent = "unknown"
		}
		fmt.Fprintf(&sb, "%s [%s] %s %s %q\n",
			agent,
			node.BranchID,
			node.Timestamp.Format(time.RFC3339),
			node.Position,
			node.EventData.Description(),
		)
	}
	return sb.String()
}

// DiffTags produces a line-based diff between two tag manifests: removed
// lines prefixed "-", added lines "+", unchanged lines "  ". Returns ""
// when the manifests are identical.
func DiffTags(a, b *FloorTag) string {
	left, right := TagManifest(a), TagManifest(b)
	if left == right {
		return ""
	}

	dmp := diffmatchpatch.New()
	la, lb, lines := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(la, lb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
