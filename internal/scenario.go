package internal

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// ScenarioEvent is one perceived event in a scenario file.
type ScenarioEvent struct {
	Time     time.Time      `yaml:"time"`
	Position [3]float64     `yaml:"position"`
	Event    map[string]any `yaml:"event"`
	Intent   map[string]any `yaml:"intent,omitempty"`
}

// ScenarioAgent is one agent and its perceived events.
type ScenarioAgent struct {
	ID     string          `yaml:"id"`
	Name   string          `yaml:"name,omitempty"`
	Events []ScenarioEvent `yaml:"events"`
}

// Scenario is a declarative model run: agents, what each perceived, and an
// optional observer script to execute afterwards. Scenarios are front-end
// input; the core takes no configuration of its own.
type Scenario struct {
	Name   string          `yaml:"name,omitempty"`
	Agents []ScenarioAgent `yaml:"agents"`
	Script []string        `yaml:"script,omitempty"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks agent IDs are present and unique.
func (s *Scenario) Validate() error {
	if len(s.Agents) == 0 {
		return fmt.Errorf("%w: no agents", ErrInvalidScenario)
	}

	seen := make(map[string]bool, len(s.Agents))
	for i, agent := range s.Agents {
		if agent.ID == "" {
			return fmt.Errorf("%w: agent %d has no id", ErrInvalidScenario, i)
		}
		if seen[agent.ID] {
			return fmt.Errorf("%w: duplicate agent id %q", ErrInvalidScenario, agent.ID)
		}
		seen[agent.ID] = true
	}
	return nil
}

// Build constructs a fresh timeline arena and live agents, replaying every
// declared perception in file order.
func (s *Scenario) Build() (*Timeline, []*Agent) {
	timeline := NewTimeline()
	agents := make([]*Agent, 0, len(s.Agents))

	for _, spec := range s.Agents {
		name := spec.Name
		if name == "" {
			name = spec.ID
		}
		agent := NewAgent(spec.ID, name, timeline)
		for _, ev := range spec.Events {
			agent.PerceiveEvent(ev.Time, Position(ev.Position), EventData(ev.Event), IntentMeta(ev.Intent))
		}
		agents = append(agents, agent)
	}
	return timeline, agents
}

// AllMemories flattens the agents' memories in agent order, perception
// order within each agent.
func AllMemories(agents []*Agent) []*TimelineNode {
	var out []*TimelineNode
	for _, agent := range agents {
		out = append(out, agent.memory...)
	}
	return out
}
