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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/sapling/avl"
	"github.com/cybrota/sapling/render"
	"github.com/cybrota/sapling/scenarios"
)

const configFileName = ".sapling.yaml"

type TreeConfig struct {
	Duplicates string `yaml:"duplicates"`
}

type RandomConfig struct {
	Seed   int64 `yaml:"seed"`
	Count  int   `yaml:"count"`
	Modulo int   `yaml:"modulo"`
}

type DrainConfig struct {
	Size         int  `yaml:"size"`
	ShowProgress bool `yaml:"show_progress"`
}

type RenderConfig struct {
	GraphName string `yaml:"graph_name"`
	Plain     bool   `yaml:"plain"`
}

type SessionConfig struct {
	BloomCapacity uint    `yaml:"bloom_capacity"`
	BloomFPRate   float64 `yaml:"bloom_fp_rate"`
}

type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Random  RandomConfig  `yaml:"random"`
	Drain   DrainConfig   `yaml:"drain"`
	Render  RenderConfig  `yaml:"render"`
	Session SessionConfig `yaml:"session"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		Duplicates: avl.DuplicatesRight.String(),
	},
	Random: RandomConfig{
		Seed:   0,
		Count:  100,
		Modulo: 100,
	},
	Drain: DrainConfig{
		Size:         500,
		ShowProgress: true,
	},
	Render: RenderConfig{
		GraphName: render.DefaultGraphName,
		Plain:     false,
	},
	Session: SessionConfig{
		BloomCapacity: 10000,
		BloomFPRate:   0.01,
	},
}

// LoadConfig reads ~/.sapling.yaml on top of the defaults. A missing file is
// not an error; an unreadable or malformed one is reported alongside the
// defaults so callers can carry on.
func LoadConfig() (*Config, error) {
	config := defaultConfig

	configPath, err := getConfigPath()
	if err != nil {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return &config, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	loaded := defaultConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return &config, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	if err := loaded.validate(); err != nil {
		return &config, fmt.Errorf("invalid %s: %w", configPath, err)
	}

	return &loaded, nil
}

func (c *Config) validate() error {
	if _, err := avl.ParseDuplicatePolicy(c.Tree.Duplicates); err != nil {
		return err
	}
	if c.Random.Modulo <= 0 {
		return fmt.Errorf("random.modulo must be positive, got %d", c.Random.Modulo)
	}
	if c.Random.Count < 0 {
		return fmt.Errorf("random.count must not be negative, got %d", c.Random.Count)
	}
	if c.Drain.Size <= 0 {
		return fmt.Errorf("drain.size must be positive, got %d", c.Drain.Size)
	}
	if c.Session.BloomCapacity == 0 {
		return fmt.Errorf("session.bloom_capacity must be positive")
	}
	if c.Session.BloomFPRate <= 0 || c.Session.BloomFPRate >= 1 {
		return fmt.Errorf("session.bloom_fp_rate must be in (0, 1), got %v", c.Session.BloomFPRate)
	}
	return nil
}

// TreeOptions converts the tree section into avl options
func (c *Config) TreeOptions() ([]avl.Option, error) {
	policy, err := avl.ParseDuplicatePolicy(c.Tree.Duplicates)
	if err != nil {
		return nil, err
	}
	return []avl.Option{avl.WithDuplicates(policy)}, nil
}

// ScenarioConfig maps the random and drain sections onto scenario parameters
func (c *Config) ScenarioConfig() scenarios.Config {
	sc := scenarios.DefaultConfig()
	sc.Seed = c.Random.Seed
	sc.RandomCount = c.Random.Count
	sc.RandomModulo = c.Random.Modulo
	sc.DrainSize = c.Drain.Size
	return sc
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("⚠️  %v\n   Showing default settings instead.\n\n", err)
	}

	fmt.Printf("🔧 Sapling Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %sduplicates%s: %s\n", Green, Reset, config.Tree.Duplicates)
	if config.Tree.Duplicates == avl.DuplicatesReject.String() {
		fmt.Printf("    Equal values are refused on insert\n\n")
	} else {
		fmt.Printf("    Equal values are routed right and kept as separate nodes\n\n")
	}

	fmt.Printf("🎲 %sRandom:%s\n", Green, Reset)
	fmt.Printf("  • %sseed%s: %d\n", Green, Reset, config.Random.Seed)
	fmt.Printf("  • %scount%s: %d\n", Green, Reset, config.Random.Count)
	fmt.Printf("  • %smodulo%s: %d\n\n", Green, Reset, config.Random.Modulo)

	fmt.Printf("🚰 %sDrain:%s\n", Green, Reset)
	fmt.Printf("  • %ssize%s: %d\n", Green, Reset, config.Drain.Size)
	fmt.Printf("  • %sshow_progress%s: %t\n\n", Green, Reset, config.Drain.ShowProgress)

	fmt.Printf("🖼  %sRender:%s\n", Green, Reset)
	fmt.Printf("  • %sgraph_name%s: %s\n", Green, Reset, config.Render.GraphName)
	fmt.Printf("  • %splain%s: %t\n\n", Green, Reset, config.Render.Plain)

	fmt.Printf("🧮 %sSession:%s\n", Green, Reset)
	fmt.Printf("  • %sbloom_capacity%s: %d\n", Green, Reset, config.Session.BloomCapacity)
	fmt.Printf("  • %sbloom_fp_rate%s: %v\n\n", Green, Reset, config.Session.BloomFPRate)

	fmt.Printf("💡 Edit %s to change these values.\n", configPath)
}
