package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jlibs/phonenumber/internal/cli/ui"
)

// Command group IDs.
const (
	groupNumbers = "numbers"
	groupConfig  = "config"
)

// initHelp wires up styled help rendering and command groups.
func initHelp() {
	rootCmd.AddGroup(
		&cobra.Group{ID: groupNumbers, Title: "NUMBERS"},
		&cobra.Group{ID: groupConfig, Title: "CONFIGURATION"},
	)

	assign := map[string]string{
		"parse": groupNumbers,
		"show":  groupNumbers,
		"dial":  groupNumbers,
		"batch": groupNumbers,
		"check": groupNumbers,

		"config":  groupConfig,
		"version": groupConfig,
	}
	for _, cmd := range rootCmd.Commands() {
		if gid, ok := assign[cmd.Name()]; ok {
			cmd.GroupID = gid
		}
	}

	rootCmd.SetHelpFunc(styledHelp)
	rootCmd.SetUsageFunc(styledUsage)
}

// styledHelp renders colorful help output.
func styledHelp(cmd *cobra.Command, _ []string) {
	c := colorEnabled()
	w := cmd.ErrOrStderr()

	fmt.Fprintln(w)
	if cmd == rootCmd {
		fmt.Fprintf(w, "  %s %s\n\n", ui.BrandSymbol, boldCyan("phonenumber", c))
	}
	desc := cmd.Long
	if desc == "" {
		desc = cmd.Short
	}
	for _, line := range strings.Split(desc, "\n") {
		switch {
		case strings.TrimSpace(line) == "":
			fmt.Fprintln(w)
		case strings.HasPrefix(line, "  "):
			fmt.Fprintf(w, "    %s\n", green(strings.TrimSpace(line), c))
		default:
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", heading("USAGE", c))
	useLine := cmd.UseLine()
	if cmd.HasAvailableSubCommands() {
		useLine = cmd.CommandPath() + " [command]"
	}
	fmt.Fprintf(w, "  %s\n\n", useLine)

	if cmd.Example != "" {
		fmt.Fprintf(w, "%s\n", heading("EXAMPLES", c))
		for _, line := range strings.Split(cmd.Example, "\n") {
			if strings.TrimSpace(line) != "" {
				fmt.Fprintf(w, "  %s\n", green(strings.TrimSpace(line), c))
			}
		}
		fmt.Fprintln(w)
	}

	printCommands(cmd, c)
	printFlags(cmd, c)

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(w, "%s\n\n",
			dim(fmt.Sprintf("Use \"%s [command] --help\" for more information about a command.", cmd.CommandPath()), c))
	}
}

// styledUsage renders the usage section (shown on errors).
func styledUsage(cmd *cobra.Command) error {
	styledHelp(cmd, nil)
	return nil
}

// printCommands renders grouped subcommands, with ungrouped ones last.
func printCommands(cmd *cobra.Command, c bool) {
	if !cmd.HasAvailableSubCommands() {
		return
	}
	w := cmd.ErrOrStderr()

	grouped := make(map[string][]*cobra.Command)
	var ungrouped []*cobra.Command
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		if sub.GroupID != "" {
			grouped[sub.GroupID] = append(grouped[sub.GroupID], sub)
		} else {
			ungrouped = append(ungrouped, sub)
		}
	}
	for _, g := range cmd.Groups() {
		if cmds := grouped[g.ID]; len(cmds) > 0 {
			fmt.Fprintf(w, "%s\n", heading(g.Title, c))
			printCommandList(w, cmds, c)
			fmt.Fprintln(w)
		}
	}
	if len(ungrouped) > 0 {
		title := "COMMANDS"
		if len(cmd.Groups()) > 0 {
			title = "OTHER"
		}
		fmt.Fprintf(w, "%s\n", heading(title, c))
		printCommandList(w, ungrouped, c)
		fmt.Fprintln(w)
	}
}

// printCommandList renders commands with aligned descriptions.
func printCommandList(w io.Writer, cmds []*cobra.Command, c bool) {
	maxLen := 0
	for _, cmd := range cmds {
		if n := len(cmd.Name()); n > maxLen {
			maxLen = n
		}
	}
	for _, cmd := range cmds {
		name := bold(fmt.Sprintf("%-*s", maxLen+4, cmd.Name()), c)
		fmt.Fprintf(w, "  %s%s\n", name, dim(cmd.Short, c))
	}
}

// printFlags renders local flags, then inherited global flags.
func printFlags(cmd *cobra.Command, c bool) {
	w := cmd.ErrOrStderr()

	if cmd == rootCmd {
		if all := cmd.Flags(); hasVisibleFlags(all) {
			fmt.Fprintf(w, "%s\n", heading("FLAGS", c))
			printFlagSet(w, all, c)
			fmt.Fprintln(w)
		}
		return
	}
	if local := cmd.LocalNonPersistentFlags(); hasVisibleFlags(local) {
		fmt.Fprintf(w, "%s\n", heading("FLAGS", c))
		printFlagSet(w, local, c)
		fmt.Fprintln(w)
	}
	if inherited := cmd.InheritedFlags(); hasVisibleFlags(inherited) {
		fmt.Fprintf(w, "%s\n", heading("GLOBAL FLAGS", c))
		printFlagSet(w, inherited, c)
		fmt.Fprintln(w)
	}
}

// printFlagSet renders pflag's aligned usages with colored flag names.
func printFlagSet(w io.Writer, fs *pflag.FlagSet, c bool) {
	for _, line := range strings.Split(strings.TrimRight(fs.FlagUsages(), "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			fmt.Fprintln(w, colorizeFlag(line, c))
		}
	}
}

// colorizeFlag colors the flag part of a usage line cyan and dims the
// description. pflag separates the two with at least three spaces.
func colorizeFlag(line string, c bool) string {
	if !c {
		return line
	}
	trimmed := strings.TrimLeft(line, " ")
	prefix := line[:len(line)-len(trimmed)]
	if i := strings.Index(trimmed, "   "); i > 0 {
		if desc := strings.TrimLeft(trimmed[i:], " "); desc != "" {
			return prefix + cyan(trimmed[:i], c) + "   " + dim(desc, c)
		}
	}
	return prefix + cyan(trimmed, c)
}

// hasVisibleFlags returns true if the flag set has any non-hidden flags.
func hasVisibleFlags(fs *pflag.FlagSet) bool {
	visible := false
	fs.VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			visible = true
		}
	})
	return visible
}

// heading renders a section heading.
func heading(title string, c bool) string {
	return boldCyan(title, c)
}
