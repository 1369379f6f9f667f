package portfolio

// Portfolio is the read-only content behind every terminal command.
// Lists are ordered so that command output is stable across runs.
type Portfolio struct {
	Name           string       `yaml:"name"`
	Role           string       `yaml:"role"`
	University     string       `yaml:"university,omitempty"`
	Specialization string       `yaml:"specialization,omitempty"`
	Location       string       `yaml:"location,omitempty"`
	About          string       `yaml:"about,omitempty"`
	Projects       []Project    `yaml:"projects,omitempty"`
	Skills         []SkillGroup `yaml:"skills,omitempty"`
	Contact        Contact      `yaml:"contact,omitempty"`
	Socials        []Social     `yaml:"socials,omitempty"`
}

// Project is one entry of the project list. GitHub and Demo are optional.
type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech,omitempty"`
	Status      string   `yaml:"status,omitempty"`
	GitHub      string   `yaml:"github,omitempty"`
	Demo        string   `yaml:"demo,omitempty"`
}

// SkillGroup is a named category of skills, e.g. "Security Tools".
type SkillGroup struct {
	Category string   `yaml:"category"`
	Skills   []string `yaml:"skills"`
}

// Contact holds the optional contact fields; empty fields are not shown.
type Contact struct {
	Email    string `yaml:"email,omitempty"`
	Phone    string `yaml:"phone,omitempty"`
	Location string `yaml:"location,omitempty"`
}

// Social maps a platform name to a URL or handle.
type Social struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url,omitempty"`
}

// HasLinks reports whether the project carries any link.
func (p Project) HasLinks() bool {
	return p.GitHub != "" || p.Demo != ""
}
