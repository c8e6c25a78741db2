/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func runREPL() {
	fmt.Println("entering interactive mode, type 'exit' to quit")
	p := prompt.New(
		executeLine,
		completeLine,
		prompt.OptionPrefix("❯❯❯ "),
		prompt.OptionTitle("karaokesh"),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			line := strings.TrimSpace(in)
			return breakline && (line == "exit" || line == "quit")
		}),
	)
	p.Run()
}

func executeLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" || line == "exit" || line == "quit" {
		return
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing input:", err)
		return
	}
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

// resetFlags restores every flag to its default so values from one line do
// not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func completeLine(d prompt.Document) []prompt.Suggest {
	before := d.TextBeforeCursor()
	if strings.Contains(before, " ") {
		return nil
	}
	return prompt.FilterHasPrefix(commandSuggestions(rootCmd), d.GetWordBeforeCursor(), true)
}

func commandSuggestions(root *cobra.Command) []prompt.Suggest {
	var s []prompt.Suggest
	for _, c := range root.Commands() {
		if c.Hidden || !c.IsAvailableCommand() {
			continue
		}
		s = append(s, prompt.Suggest{Text: c.Name(), Description: c.Short})
	}
	return append(s, prompt.Suggest{Text: "exit", Description: "Leave interactive mode"})
}
