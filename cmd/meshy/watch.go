package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <scenario.yaml> <script-file>",
		Short: "Re-run an observer script whenever it changes",
		Long:  `Watch a script file and re-execute it against a fresh build of the scenario every time it is saved.`,
		Args:  cobra.ExactArgs(2),
		RunE:  makeWatchRunner(),
	}

	cmd.Flags().Duration("debounce", 500*time.Millisecond, "Debounce window for batching changes")
	return cmd
}

func makeWatchRunner() func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		scenarioPath, scriptPath := args[0], args[1]
		debounce, _ := cmd.Flags().GetDuration("debounce")

		if _, err := os.Stat(scriptPath); err != nil {
			return fmt.Errorf("script file: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer watcher.Close()

		// Watch the directory: editors often replace the file on save.
		if err := watcher.Add(filepath.Dir(scriptPath)); err != nil {
			return fmt.Errorf("add watch dir: %w", err)
		}

		out := cmd.OutOrStdout()
		if err := replayScript(out, scenarioPath, scriptPath); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "script error: %v\n", err)
		}
		fmt.Fprintf(out, "Watching %s for changes...\n", scriptPath)

		timer := time.NewTimer(0)
		if !timer.Stop() {
			<-timer.C
		}
		pending := false

		for {
			select {
			case <-cmd.Context().Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if shouldIgnoreEvent(event, scriptPath) {
					continue
				}
				if !pending {
					timer.Reset(debounce)
					pending = true
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
			case <-timer.C:
				pending = false
				fmt.Fprintf(out, "--- %s changed, re-running ---\n", filepath.Base(scriptPath))
				if err := replayScript(out, scenarioPath, scriptPath); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "script error: %v\n", err)
				}
			}
		}
	}
}

// replayScript builds the scenario from scratch and runs the script file
// against it, so every save starts from unresolved conflicts again.
func replayScript(out io.Writer, scenarioPath, scriptPath string) error {
	w, err := loadWorld(scenarioPath)
	if err != nil {
		return err
	}

	f, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	commands, err := readCommands(f)
	if err != nil {
		return err
	}
	return w.runScript(out, commands)
}

func shouldIgnoreEvent(event fsnotify.Event, scriptPath string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(scriptPath) {
		return true
	}

	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return true
	}

	return false
}
