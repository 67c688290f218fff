package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	seen := make(map[*Command]bool)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if command == nil || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true

		line := indent + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Func.IsValid() {
			for i, n := 0, command.Func.Type().NumIn(); i < n; i++ {
				line += " <" + command.Func.Type().In(i).String() + ">"
			}
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}
