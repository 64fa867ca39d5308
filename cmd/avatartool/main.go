// avatartool is a CLI utility for inspecting and exercising the avatar
// runtime without a renderer: it prints the humanoid bone tables, the
// expression presets, and can simulate a demo avatar for a number of frames
// and dump the resulting pose and weights.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/avatarkit/pkg/expression"
	"github.com/Faultbox/avatarkit/pkg/humanoid"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	os.Args = append(os.Args[:1], os.Args[2:]...)

	switch command {
	case "bones":
		cmdBones()
	case "presets":
		cmdPresets()
	case "simulate", "sim":
		cmdSimulate()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`avatartool - avatar runtime inspection utility

Usage:
  avatartool <command> [options]

Commands:
  bones                Print the humanoid bone hierarchy
  presets              Print the expression preset names and categories
  simulate [options]   Run a demo avatar and dump pose/weights

Options (simulate):
  -config <path>       Config file (default ./avatartool.yaml)
  -frames <n>          Number of frames to run
  -format <fmt>        Output format: yaml or json
  -lookat-mode <mode>  Gaze applier: bone or expression
  -debug               Enable debug logging

Examples:
  avatartool bones
  avatartool simulate -frames 120 -format json`)
}

func cmdBones() {
	fmt.Println("Humanoid bones (parent <- child):")
	for _, name := range humanoid.ListedBones {
		parent, ok := humanoid.ParentBone[name]
		required := ""
		for _, r := range humanoid.RequiredBones {
			if r == name {
				required = " (required)"
				break
			}
		}
		if !ok {
			fmt.Printf("  %-28s root%s\n", name, required)
			continue
		}
		fmt.Printf("  %-28s <- %s%s\n", parent, name, required)
	}
}

func cmdPresets() {
	categories := map[string]string{
		expression.PresetBlink: "blink", expression.PresetBlinkLeft: "blink", expression.PresetBlinkRight: "blink",
		expression.PresetLookUp: "lookAt", expression.PresetLookDown: "lookAt",
		expression.PresetLookLeft: "lookAt", expression.PresetLookRight: "lookAt",
		expression.PresetAa: "mouth", expression.PresetIh: "mouth", expression.PresetOu: "mouth",
		expression.PresetEe: "mouth", expression.PresetOh: "mouth",
	}

	fmt.Println("Expression presets:")
	for _, name := range expression.PresetNames {
		cat := categories[name]
		if cat == "" {
			cat = "-"
		}
		fmt.Printf("  %-12s %s\n", name, cat)
	}
}
