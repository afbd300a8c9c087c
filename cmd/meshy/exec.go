package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func NewExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <scenario.yaml> [script-file]",
		Short: "Execute observer commands from a file or stdin",
		Long:  `Build the scenario, then execute observer commands line by line from the given script file, or from stdin when no file is given. Blank lines and #-comments are skipped.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE:  makeExecRunner(),
	}

	return cmd
}

func makeExecRunner() func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		w, err := loadWorld(args[0])
		if err != nil {
			return err
		}

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 2 {
			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			in = f
		}

		commands, err := readCommands(in)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, w.summary())
		return w.runScript(out, commands)
	}
}

func readCommands(in io.Reader) ([]string, error) {
	var commands []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		commands = append(commands, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read commands: %w", err)
	}
	return commands, nil
}
