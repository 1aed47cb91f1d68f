package content

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mdkaif10/codefolio/internal/types"
)

// Chroma styles per theme
const (
	darkSourceStyle  = "monokai"
	lightSourceStyle = "github"
)

// Source renders block as the TypeScript module the file name promises
func Source(block Block) string {
	var b strings.Builder

	switch block.Kind {
	case KindAbout:
		b.WriteString("export const aboutMe = {\n")
		fmt.Fprintf(&b, "  name: %s,\n", strconv.Quote(block.Name))
		fmt.Fprintf(&b, "  roles: [%s],\n", quoteList(block.Roles))
		fmt.Fprintf(&b, "  bio: %s,\n", strconv.Quote(block.Bio))
		writeLinks(&b, block.Links)
		b.WriteString("};\n")

	case KindExperience:
		b.WriteString("export const experience: Experience[] = [\n")
		for _, job := range block.Jobs {
			b.WriteString("  {\n")
			fmt.Fprintf(&b, "    title: %s,\n", strconv.Quote(job.Title))
			fmt.Fprintf(&b, "    company: %s,\n", strconv.Quote(job.Company))
			fmt.Fprintf(&b, "    period: %s,\n", strconv.Quote(job.Period))
			fmt.Fprintf(&b, "    description: %s,\n", strconv.Quote(job.Description))
			b.WriteString("  },\n")
		}
		b.WriteString("];\n")

	case KindProjects:
		b.WriteString("export const projects: Project[] = [\n")
		for _, project := range block.Projects {
			b.WriteString("  {\n")
			fmt.Fprintf(&b, "    title: %s,\n", strconv.Quote(project.Title))
			fmt.Fprintf(&b, "    tech: [%s],\n", quoteList(project.Tech))
			fmt.Fprintf(&b, "    description: %s,\n", strconv.Quote(project.Description))
			b.WriteString("  },\n")
		}
		b.WriteString("];\n")

	case KindContact:
		b.WriteString("export const contact = {\n")
		writeLinks(&b, block.Links)
		b.WriteString("  skills: {\n")
		for _, skill := range block.Skills {
			fmt.Fprintf(&b, "    %s: %d,\n", strconv.Quote(skill.Name), skill.Level)
		}
		b.WriteString("  },\n")
		b.WriteString("};\n")

	default:
		fmt.Fprintf(&b, "// %s\n", block.Message)
	}

	return b.String()
}

// Highlight colors TypeScript source for a 256-color terminal. On failure
// the source is returned unchanged along with the error.
func Highlight(source string, theme types.Theme) (string, error) {
	style := darkSourceStyle
	if !theme.IsDark() {
		style = lightSourceStyle
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, source, "typescript", "terminal256", style); err != nil {
		return source, fmt.Errorf("failed to highlight source: %w", err)
	}
	return buf.String(), nil
}

func writeLinks(b *strings.Builder, links []Link) {
	b.WriteString("  links: {\n")
	for _, link := range links {
		fmt.Fprintf(b, "    %s: %s,\n", strconv.Quote(link.Label), strconv.Quote(link.URL))
	}
	b.WriteString("  },\n")
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = strconv.Quote(item)
	}
	return strings.Join(quoted, ", ")
}
