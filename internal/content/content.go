// Package content maps explorer file ids to the structured blocks shown in
// the editor pane. Resolve is total: ids without bespoke content resolve to
// the placeholder block.
package content

// Kind identifies which bespoke block a file resolves to
type Kind int

const (
	KindPlaceholder Kind = iota
	KindAbout
	KindExperience
	KindProjects
	KindContact
)

func (k Kind) String() string {
	switch k {
	case KindAbout:
		return "about"
	case KindExperience:
		return "experience"
	case KindProjects:
		return "projects"
	case KindContact:
		return "contact"
	default:
		return "placeholder"
	}
}

// MarshalText encodes the kind by name in json and yaml output
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Link is an outbound link with its hover text
type Link struct {
	Label   string `json:"label" yaml:"label"`
	URL     string `json:"url" yaml:"url"`
	Tooltip string `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
}

// Job is one employment record
type Job struct {
	Title       string `json:"title" yaml:"title"`
	Company     string `json:"company" yaml:"company"`
	Period      string `json:"period" yaml:"period"`
	Description string `json:"description" yaml:"description"`
}

// Project is one project record
type Project struct {
	Title       string   `json:"title" yaml:"title"`
	Tech        []string `json:"tech" yaml:"tech"`
	Description string   `json:"description" yaml:"description"`
}

// Skill is a skill name with a 0-100 level
type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
}

// Block is the resolved content of one file
type Block struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	FileID  string `json:"file" yaml:"file"`
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`

	// About
	Name  string   `json:"name,omitempty" yaml:"name,omitempty"`
	Roles []string `json:"roles,omitempty" yaml:"roles,omitempty"`
	Bio   string   `json:"bio,omitempty" yaml:"bio,omitempty"`

	// About and contact
	Links []Link `json:"links,omitempty" yaml:"links,omitempty"`

	Jobs     []Job     `json:"jobs,omitempty" yaml:"jobs,omitempty"`
	Projects []Project `json:"projects,omitempty" yaml:"projects,omitempty"`
	Skills   []Skill   `json:"skills,omitempty" yaml:"skills,omitempty"`

	// Placeholder
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// PlaceholderMessage is shown for files without bespoke content
const PlaceholderMessage = "Select a file to view its contents."

// Resolve returns the block for id
func Resolve(id string) Block {
	switch id {
	case "about_me.ts":
		return aboutBlock(id)
	case "experience.ts":
		return experienceBlock(id)
	case "projects.ts":
		return projectsBlock(id)
	case "contact.ts":
		return contactBlock(id)
	default:
		return Block{
			Kind:    KindPlaceholder,
			FileID:  id,
			Message: PlaceholderMessage,
		}
	}
}

// HasContent reports whether id resolves to a bespoke block
func HasContent(id string) bool {
	return Resolve(id).Kind != KindPlaceholder
}
