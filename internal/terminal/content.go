package terminal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexchen/termfolio/internal/portfolio"
)

// content renders the portfolio into command output.
type content struct {
	p *portfolio.Portfolio
}

const (
	helpNameWidth = 11
	helpDescWidth = 35
)

func renderHelp(r *Registry) string {
	nameBar := strings.Repeat("─", helpNameWidth+2)
	descBar := strings.Repeat("─", helpDescWidth+2)
	row := func(name, desc string) string {
		return fmt.Sprintf("│ %s │ %s │\n", pad(name, helpNameWidth), pad(desc, helpDescWidth))
	}

	var b strings.Builder
	b.WriteString("Available commands:\n")
	b.WriteString("┌" + nameBar + "┬" + descBar + "┐\n")
	b.WriteString(row("Command", "Description"))
	b.WriteString("├" + nameBar + "┼" + descBar + "┤\n")
	for _, cmd := range r.Commands() {
		b.WriteString(row(string(cmd.Name), cmd.Description))
	}
	b.WriteString("└" + nameBar + "┴" + descBar + "┘")
	return b.String()
}

func (c content) about() string {
	return c.p.About
}

func (c content) whoami() string {
	lines := []string{c.p.Name, "Role: " + c.p.Role}
	if c.p.University != "" {
		lines = append(lines, "University: "+c.p.University)
	}
	if c.p.Specialization != "" {
		lines = append(lines, "Specialization: "+c.p.Specialization)
	}
	if c.p.Location != "" {
		lines = append(lines, "Location: "+c.p.Location)
	}
	return strings.Join(lines, "\n")
}

func (c content) projects() string {
	var b strings.Builder
	b.WriteString("🔐 CYBERSECURITY PROJECTS:\n\n")
	if len(c.p.Projects) == 0 {
		b.WriteString("No projects listed yet.\n")
		return b.String()
	}
	for i, proj := range c.p.Projects {
		fmt.Fprintf(&b, "%d. %s\n", i+1, proj.Name)
		fmt.Fprintf(&b, "   %s\n", proj.Description)
		if len(proj.Tech) > 0 {
			fmt.Fprintf(&b, "   Tech: %s\n", strings.Join(proj.Tech, ", "))
		}
		if proj.Status != "" {
			fmt.Fprintf(&b, "   Status: %s\n", proj.Status)
		}
		if proj.HasLinks() {
			if proj.GitHub != "" {
				fmt.Fprintf(&b, "   GitHub: %s\n", proj.GitHub)
			}
			if proj.Demo != "" {
				fmt.Fprintf(&b, "   Demo: %s\n", proj.Demo)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (c content) skills() string {
	var b strings.Builder
	b.WriteString("🛡️ TECHNICAL SKILLS:\n\n")
	for _, g := range c.p.Skills {
		b.WriteString(strings.ToUpper(g.Category) + ":\n")
		for _, s := range g.Skills {
			b.WriteString("  • " + s + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (c content) contact() string {
	var b strings.Builder
	b.WriteString("📫 CONTACT INFORMATION:\n")
	if c.p.Contact.Email != "" {
		b.WriteString("Email: " + c.p.Contact.Email + "\n")
	}
	if c.p.Contact.Phone != "" {
		b.WriteString("Phone: " + c.p.Contact.Phone + "\n")
	}
	if c.p.Contact.Location != "" {
		b.WriteString("Location: " + c.p.Contact.Location + "\n")
	}
	b.WriteString("\nFeel free to reach out for collaborations or opportunities!")
	return b.String()
}

func (c content) socials() string {
	var b strings.Builder
	b.WriteString("🌐 SOCIAL LINKS:\n\n")
	for _, s := range c.p.Socials {
		if s.URL == "" {
			continue
		}
		b.WriteString(capitalize(s.Platform) + ": " + s.URL + "\n")
	}
	return b.String()
}

func (c content) resume() string {
	return "📄 Resume download will be available soon!\n" +
		"Meanwhile, check out my projects and contact me directly."
}

// exit only says goodbye; the terminal keeps accepting input.
func (c content) exit() string {
	return "Thanks for visiting! 👋\n" +
		"To restart the terminal, refresh the page."
}

const welcomeBanner = `
╔══════════════════════════════════════════════════════════════╗
║                    WELCOME TO MY PORTFOLIO                   ║
║                                                              ║
║  ██████╗██╗   ██╗██████╗ ███████╗██████╗ ███████╗███████╗    ║
║ ██╔════╝╚██╗ ██╔╝██╔══██╗██╔════╝██╔══██╗██╔════╝██╔════╝    ║
║ ██║      ╚████╔╝ ██████╔╝█████╗  ██████╔╝███████╗█████╗      ║
║ ██║       ╚██╔╝  ██╔══██╗██╔══╝  ██╔══██╗╚════██║██╔══╝      ║
║ ╚██████╗   ██║   ██████╔╝███████╗██║  ██║███████║███████╗    ║
║  ╚═════╝   ╚═╝   ╚═════╝ ╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝    ║
║                                                              ║
║%s║
║%s║
║                                                              ║
╚══════════════════════════════════════════════════════════════╝

Type 'help' to see available commands or 'about' to learn more about me.
`

const bannerInnerWidth = 62

// Welcome returns the banner shown once the terminal has booted.
func Welcome(p *portfolio.Portfolio) string {
	role, tagline := "Computer Science Student", "Cybersecurity Enthusiast"
	if p != nil && p.Role != "" {
		role = p.Role
	}
	return fmt.Sprintf(welcomeBanner, center(role, bannerInnerWidth), center(tagline, bannerInnerWidth))
}

// Title is the window title shown above the transcript.
func Title(p *portfolio.Portfolio) string {
	return p.Name + " - Cybersecurity Portfolio Terminal"
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return string([]rune(s)[:width])
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
