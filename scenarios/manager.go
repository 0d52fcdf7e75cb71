// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scenarios

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cybrota/sapling/avl"
)

// ErrUnknownScenario is returned for names no scenario is registered under
var ErrUnknownScenario = errors.New("unknown scenario")

// Config tunes the parameterised scenarios
type Config struct {
	Seed         int64
	RandomCount  int
	RandomModulo int
	DrainSize    int
	ChurnOps     int
}

// DefaultConfig reproduces the classic exercise parameters
func DefaultConfig() Config {
	return Config{
		Seed:         0,
		RandomCount:  100,
		RandomModulo: 100,
		DrainSize:    500,
		ChurnOps:     2000,
	}
}

// Manager keeps the registered scenarios
type Manager struct {
	scenarios []Scenario
}

// NewManager creates a manager with all built-in scenarios
func NewManager(cfg Config) *Manager {
	manager := &Manager{}

	manager.Register(&RoundTrip{})
	manager.Register(&Deletion{Seed: cfg.Seed})
	manager.Register(&Drain{Size: cfg.DrainSize})
	manager.Register(&Random{Seed: cfg.Seed, Count: cfg.RandomCount, Modulo: cfg.RandomModulo})
	manager.Register(&Churn{Seed: cfg.Seed, Ops: cfg.ChurnOps})

	return manager
}

// Register adds a scenario, replacing one already registered under the same name
func (m *Manager) Register(s Scenario) {
	for i, existing := range m.scenarios {
		if existing.Name() == s.Name() {
			m.scenarios[i] = s
			return
		}
	}
	m.scenarios = append(m.scenarios, s)
}

// List returns the scenarios by priority
func (m *Manager) List() []Scenario {
	out := make([]Scenario, len(m.scenarios))
	copy(out, m.scenarios)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority() < out[j].Priority()
	})
	return out
}

// Get looks a scenario up by name
func (m *Manager) Get(name string) (Scenario, error) {
	for _, s := range m.scenarios {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownScenario, name)
}

// Run executes the named scenario on a fresh tree
func (m *Manager) Run(name string, obs Observer) (*Report, error) {
	s, err := m.Get(name)
	if err != nil {
		return nil, err
	}
	report, err := s.Run(avl.New[int](), obs)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}
	return report, nil
}
