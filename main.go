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
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/cybrota/sapling/render"
	"github.com/cybrota/sapling/scenarios"
)

const version = "0.3.0"

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

// addTreeSourceFlags registers the flags that pick the values a tree is built from
func addTreeSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("values", "", "comma or space separated values to insert in order")
	cmd.Flags().Int("random", -1, "insert N random values (default: random.count from settings)")
	cmd.Flags().Int64("seed", 0, "random seed (default: random.seed from settings)")
	cmd.Flags().Int("mod", 0, "random values are drawn from [0, mod) (default: random.modulo from settings)")
}

// buildSession creates a session filled according to the tree source flags
func buildSession(cmd *cobra.Command, config *Config) (*Session, error) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		config.Random.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("mod") {
		config.Random.Modulo, _ = flags.GetInt("mod")
	}

	session, err := NewSession(config)
	if err != nil {
		return nil, err
	}

	if values, _ := flags.GetString("values"); values != "" {
		_, err := session.Exec("insert " + strings.ReplaceAll(values, ",", " "))
		return session, err
	}

	count := config.Random.Count
	if flags.Changed("random") {
		count, _ = flags.GetInt("random")
	}
	if _, err := session.Random(count, config.Random.Modulo); err != nil {
		return nil, err
	}
	return session, nil
}

// isDOTFormat reports whether name selects plain DOT text output
func isDOTFormat(name string) bool {
	return strings.EqualFold(strings.TrimPrefix(name, "."), "dot")
}

// writeOutput writes data to path, or to stdout when path is empty
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "%s✓ wrote %s%s\n", Green, path, Reset)
	return nil
}

func main() {
	InitializeColors()

	asciiLogo := `
███████╗ █████╗ ██████╗ ██╗     ██╗███╗   ██╗ ██████╗
██╔════╝██╔══██╗██╔══██╗██║     ██║████╗  ██║██╔════╝
███████╗███████║██████╔╝██║     ██║██╔██╗ ██║██║  ███╗
╚════██║██╔══██║██╔═══╝ ██║     ██║██║╚██╗██║██║   ██║
███████║██║  ██║██║     ███████╗██║██║ ╚████║╚██████╔╝
╚══════╝╚═╝  ╚═╝╚═╝     ╚══════╝╚═╝╚═╝  ╚═══╝ ╚═════╝
Grow, prune and inspect self-balancing AVL trees [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	explore := func(cmd *cobra.Command, args []string) {
		config := loadConfigOrDefault()
		session, err := NewSession(config)
		if err != nil {
			log.Fatalf("Error creating session: %v", err)
		}
		if err := runExplorer(session, NewOptimizedHelpCache()); err != nil {
			log.Fatalf("Error running explorer: %v", err)
		}
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Launches the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens a prompt to insert and remove values while the tree is redrawn after every command`),
		Args:  cobra.NoArgs,
		Run:   explore,
	}

	var cmdScenario = &cobra.Command{
		Use:   "scenario [name...]",
		Short: "Run the built-in scenarios and audit the tree after every step",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Scenario runs the named scenarios (all when none are given) and exits non-zero if any fails`),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			if cmd.Flags().Changed("seed") {
				config.Random.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			manager := scenarios.NewManager(config.ScenarioConfig())

			if list, _ := cmd.Flags().GetBool("list"); list {
				listScenarios(manager, os.Stdout)
				return
			}

			showProgress := config.Drain.ShowProgress
			if cmd.Flags().Changed("progress") {
				showProgress, _ = cmd.Flags().GetBool("progress")
			}

			failed, err := runScenarios(manager, args, showProgress, os.Stdout)
			if err != nil {
				log.Fatalf("Error running scenarios: %v", err)
			}
			if failed > 0 {
				os.Exit(1)
			}
		},
	}
	cmdScenario.Flags().Bool("list", false, "list scenarios and exit")
	cmdScenario.Flags().Bool("progress", true, "show a progress bar per scenario (default: drain.show_progress from settings)")
	cmdScenario.Flags().Int64("seed", 0, "random seed (default: random.seed from settings)")

	var cmdDot = &cobra.Command{
		Use:   "dot",
		Short: "Write the tree as Graphviz DOT or a rendered image",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Dot builds a tree from --values or random values and writes it as DOT, SVG, PNG, JPG or XDOT`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			session, err := buildSession(cmd, config)
			if err != nil {
				log.Fatalf("Error building tree: %v", err)
			}

			opts := render.DOTOptions{Name: config.Render.GraphName}
			if name, _ := cmd.Flags().GetString("name"); name != "" {
				opts.Name = name
			}
			formatName, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")

			var buf bytes.Buffer
			if isDOTFormat(formatName) {
				err = render.DOT[int](&buf, session.Tree(), opts)
			} else {
				format, ferr := render.ParseFormat(formatName)
				if ferr != nil {
					log.Fatalf("Error: %v", ferr)
				}
				err = render.Image[int](&buf, session.Tree(), format, opts)
			}
			if err != nil {
				log.Fatalf("Error rendering tree: %v", err)
			}

			if copyOut, _ := cmd.Flags().GetBool("copy"); copyOut {
				if !isDOTFormat(formatName) {
					log.Fatalf("Error: --copy only works with --format dot")
				}
				if err := clipboard.WriteAll(buf.String()); err != nil {
					log.Printf("Failed to copy DOT source: %v", err)
				} else {
					fmt.Fprintf(os.Stderr, "📋 Copied %sDOT source%s to clipboard.\n", Green, Reset)
				}
			}
			if err := writeOutput(out, buf.Bytes()); err != nil {
				log.Fatalf("Error: %v", err)
			}
		},
	}
	addTreeSourceFlags(cmdDot)
	cmdDot.Flags().String("name", "", "graph name (default: render.graph_name from settings)")
	cmdDot.Flags().String("format", "dot", "output format: dot, svg, png, jpg or xdot")
	cmdDot.Flags().StringP("out", "o", "", "output file (default: stdout)")
	cmdDot.Flags().Bool("copy", false, "also copy the DOT source to the clipboard")

	var cmdShow = &cobra.Command{
		Use:   "show",
		Short: "Print the tree sideways with heights and balance factors",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Show builds a tree from --values or random values and draws it with the root on the left`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			if cmd.Flags().Changed("plain") {
				config.Render.Plain, _ = cmd.Flags().GetBool("plain")
			}
			session, err := buildSession(cmd, config)
			if err != nil {
				log.Fatalf("Error building tree: %v", err)
			}
			fmt.Print(render.Sideways[int](session.Tree(), render.TextOptions{Plain: config.Render.Plain}))
			fmt.Println(session.Summary())
		},
	}
	addTreeSourceFlags(cmdShow)
	cmdShow.Flags().Bool("plain", false, "disable colors (default: render.plain from settings)")

	var cmdScript = &cobra.Command{
		Use:   "script FILE|-",
		Short: "Replay a file of explorer commands",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Script runs one explorer command per line, '#' starts a comment, and stops at the first failing line.\n\n"+sessionCommands),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			config.Render.Plain = true
			session, err := NewSession(config)
			if err != nil {
				log.Fatalf("Error creating session: %v", err)
			}
			if err := runScriptFile(args[0], session, os.Stdout); err != nil {
				log.Fatalf("Error: %v", err)
			}
		},
	}

	var cmdDashboard = &cobra.Command{
		Use:   "dashboard",
		Short: "Watch height and rotations while a tree fills and drains",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Dashboard keeps filling a tree with drain.size random values and removing them again, plotting its height against the AVL bound`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runDashboard(loadConfigOrDefault()); err != nil {
				log.Fatalf("Error running dashboard: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Sapling usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the sapling CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current settings, creating ~/.sapling.yaml if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Sapling version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "sapling",
		Version: version,
		Long:    asciiLogo,
		Run:     explore,
	}
	rootCmd.AddCommand(cmdExplore, cmdScenario, cmdDot, cmdShow, cmdScript, cmdDashboard, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
