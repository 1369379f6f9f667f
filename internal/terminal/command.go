package terminal

import (
	"sort"
	"strings"

	"github.com/alexchen/termfolio/internal/portfolio"
)

// CommandName identifies a built-in command.
type CommandName string

const (
	CmdHelp     CommandName = "help"
	CmdAbout    CommandName = "about"
	CmdWhoami   CommandName = "whoami"
	CmdProjects CommandName = "projects"
	CmdSkills   CommandName = "skills"
	CmdContact  CommandName = "contact"
	CmdSocials  CommandName = "socials"
	CmdResume   CommandName = "resume"
	CmdClear    CommandName = "clear"
	CmdExit     CommandName = "exit"
)

// commandOrder is the order used by help and by Names.
var commandOrder = []CommandName{
	CmdHelp, CmdAbout, CmdWhoami, CmdProjects, CmdSkills,
	CmdContact, CmdSocials, CmdResume, CmdClear, CmdExit,
}

// Command is a zero-argument text producer.
type Command struct {
	Name        CommandName
	Description string

	// Clears marks the one command that empties the transcript instead of
	// producing text.
	Clears bool

	Run func() string
}

// Registry maps command names to commands. It is built once and never
// modified afterwards, so it can be shared by any number of sessions.
type Registry struct {
	commands map[CommandName]Command
	order    []CommandName
}

// NewRegistry builds the command table over the given portfolio.
func NewRegistry(p *portfolio.Portfolio) *Registry {
	if p == nil {
		p = portfolio.Default()
	}
	c := content{p: p}

	defs := []Command{
		{Name: CmdHelp, Description: "Show this help message"},
		{Name: CmdAbout, Description: "Learn about me", Run: c.about},
		{Name: CmdWhoami, Description: "Display user information", Run: c.whoami},
		{Name: CmdProjects, Description: "View my projects", Run: c.projects},
		{Name: CmdSkills, Description: "List my technical skills", Run: c.skills},
		{Name: CmdContact, Description: "Get my contact information", Run: c.contact},
		{Name: CmdSocials, Description: "View my social media links", Run: c.socials},
		{Name: CmdResume, Description: "Download my resume", Run: c.resume},
		{Name: CmdClear, Description: "Clear terminal screen", Clears: true, Run: func() string { return "" }},
		{Name: CmdExit, Description: "Close terminal", Run: c.exit},
	}

	r := &Registry{
		commands: make(map[CommandName]Command, len(defs)),
		order:    append([]CommandName(nil), commandOrder...),
	}
	for _, d := range defs {
		r.commands[d.Name] = d
	}

	// help lists the registry itself, so it is bound last.
	helpText := renderHelp(r)
	help := r.commands[CmdHelp]
	help.Run = func() string { return helpText }
	r.commands[CmdHelp] = help

	return r
}

// Lookup resolves a normalized key (trimmed, lower-case) to a command.
func (r *Registry) Lookup(key string) (Command, bool) {
	cmd, ok := r.commands[CommandName(key)]
	return cmd, ok
}

// Names returns the command names in display order.
func (r *Registry) Names() []CommandName {
	return append([]CommandName(nil), r.order...)
}

// Commands returns the commands in display order.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

// Matches returns the command names starting with prefix, sorted.
func (r *Registry) Matches(prefix string) []string {
	var out []string
	for name := range r.commands {
		if strings.HasPrefix(string(name), prefix) {
			out = append(out, string(name))
		}
	}
	sort.Strings(out)
	return out
}

// Complete returns the single command name that starts with the partial
// input. Matching ignores case only; surrounding spaces are kept, so " he"
// does not complete. Zero or several matches report false. An empty input
// never completes.
func (r *Registry) Complete(partial string) (string, bool) {
	prefix := strings.ToLower(partial)
	if prefix == "" {
		return "", false
	}
	matches := r.Matches(prefix)
	if len(matches) != 1 {
		return "", false
	}
	return matches[0], true
}

// normalize turns raw input into a lookup key.
func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
