package interactive

import (
	"sort"
	"strings"
)

// CommandInfo describes one shell command for completion and help.
type CommandInfo struct {
	Name        string
	Aliases     []string
	Description string
}

// Completer resolves shell command names and aliases.
type Completer struct {
	commands map[string]*CommandInfo
}

// NewCompleter creates a completer over the shell's command set.
func NewCompleter() *Completer {
	commands := map[string]*CommandInfo{
		"help":    {Name: "help", Aliases: []string{"h", "?"}, Description: "Show help information"},
		"greet":   {Name: "greet", Aliases: []string{"hi"}, Description: "Greet a user by name"},
		"add":     {Name: "add", Aliases: []string{"sum"}, Description: "Add two numbers"},
		"list":    {Name: "list", Aliases: []string{"ls"}, Description: "List the sample items"},
		"lang":    {Name: "lang", Aliases: nil, Description: "Switch language (ru/en)"},
		"history": {Name: "history", Aliases: []string{"hist"}, Description: "Show recent greetings"},
		"version": {Name: "version", Aliases: []string{"v"}, Description: "Show version"},
		"clear":   {Name: "clear", Aliases: []string{"cls"}, Description: "Clear screen"},
		"exit":    {Name: "exit", Aliases: []string{"quit", "q"}, Description: "Exit the shell"},
	}
	return &Completer{commands: commands}
}

// Resolve maps a typed command or alias to its canonical name. The second
// return is false for unknown commands.
func (c *Completer) Resolve(cmd string) (string, bool) {
	cmd = strings.ToLower(cmd)
	if info, ok := c.commands[cmd]; ok {
		return info.Name, true
	}
	for name, info := range c.commands {
		for _, alias := range info.Aliases {
			if alias == cmd {
				return name, true
			}
		}
	}
	return "", false
}

// Commands returns all commands sorted by name.
func (c *Completer) Commands() []*CommandInfo {
	out := make([]*CommandInfo, 0, len(c.commands))
	for _, info := range c.commands {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Suggest returns command names sharing the given prefix, sorted.
func (c *Completer) Suggest(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var matches []string
	for name := range c.commands {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}
