package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestShouldIgnoreEvent(t *testing.T) {
	tests := []struct {
		name   string
		event  fsnotify.Event
		script string
		want   bool
	}{
		{
			name:   "write to watched script",
			event:  fsnotify.Event{Name: "/work/session.txt", Op: fsnotify.Write},
			script: "/work/session.txt",
			want:   false,
		},
		{
			name:   "create of watched script",
			event:  fsnotify.Event{Name: "/work/session.txt", Op: fsnotify.Create},
			script: "/work/session.txt",
			want:   false,
		},
		{
			name:   "write to sibling file",
			event:  fsnotify.Event{Name: "/work/other.txt", Op: fsnotify.Write},
			script: "/work/session.txt",
			want:   true,
		},
		{
			name:   "chmod ignored",
			event:  fsnotify.Event{Name: "/work/session.txt", Op: fsnotify.Chmod},
			script: "/work/session.txt",
			want:   true,
		},
		{
			name:   "remove ignored",
			event:  fsnotify.Event{Name: "/work/session.txt", Op: fsnotify.Remove},
			script: "/work/session.txt",
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldIgnoreEvent(tt.event, tt.script)
			if got != tt.want {
				t.Errorf("shouldIgnoreEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReplayScript(t *testing.T) {
	scenario := writeTestScenario(t, testScenarioYAML)
	script := filepath.Join(t.TempDir(), "session.txt")
	if err := os.WriteFile(script, []byte("merge\ntag floor replayed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := replayScript(&out, scenario, script); err != nil {
		t.Fatalf("replayScript failed: %v", err)
	}

	if got := out.String(); !strings.Contains(got, "FloorTag[replayed]") {
		t.Errorf("expected tag summary in output:\n%s", got)
	}
}
