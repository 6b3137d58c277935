package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-cli/internal/types"
)

// RenderMarkdown renders a resume as GitHub-flavoured Markdown
func RenderMarkdown(resume *types.Resume) string {
	var sb strings.Builder
	p := resume.Personal

	fmt.Fprintf(&sb, "# %s\n\n", p.Name)
	if p.Role != "" {
		fmt.Fprintf(&sb, "**%s**\n\n", p.Role)
	}

	contact := nonEmpty(p.Location, p.Email, p.Phone)
	for _, link := range []struct{ label, url string }{
		{"GitHub", p.Social.GitHub},
		{"LinkedIn", p.Social.LinkedIn},
		{"Twitter", p.Social.Twitter},
		{"Website", p.Social.Website},
	} {
		if link.url != "" {
			contact = append(contact, fmt.Sprintf("[%s](%s)", link.label, link.url))
		}
	}
	if len(contact) > 0 {
		sb.WriteString(strings.Join(contact, " · "))
		sb.WriteString("\n\n")
	}

	if resume.Profile != "" {
		fmt.Fprintf(&sb, "## Profile\n\n%s\n\n", resume.Profile)
	}

	if len(resume.TechStack) > 0 {
		ticked := make([]string, len(resume.TechStack))
		for i, t := range resume.TechStack {
			ticked[i] = "`" + t + "`"
		}
		fmt.Fprintf(&sb, "## Tech Stack\n\n%s\n\n", strings.Join(ticked, " "))
	}

	if len(resume.Experience) > 0 {
		sb.WriteString("## Experience\n\n")
		for _, exp := range resume.Experience {
			fmt.Fprintf(&sb, "### %s · %s\n\n", exp.Title, exp.Company)
			if exp.Date != "" {
				fmt.Fprintf(&sb, "*%s*\n\n", exp.Date)
			}
			writeMarkdownList(&sb, exp.Bullets)
		}
	}

	if len(resume.Projects) > 0 {
		sb.WriteString("## Projects\n\n")
		for _, proj := range resume.Projects {
			line := fmt.Sprintf("- **%s**: %s", proj.Name, proj.Desc)
			if proj.Tech != "" {
				line += fmt.Sprintf(" _(%s)_", proj.Tech)
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		sb.WriteString("## Education\n\n")
		for _, edu := range resume.Education {
			fmt.Fprintf(&sb, "### %s · %s\n\n", edu.Degree, edu.School)
			if edu.Date != "" {
				fmt.Fprintf(&sb, "*%s*\n\n", edu.Date)
			}
			writeMarkdownList(&sb, edu.Details)
		}
	}

	if len(resume.Leadership) > 0 {
		sb.WriteString("## Leadership\n\n")
		writeMarkdownList(&sb, resume.Leadership)
	}
	if len(resume.OpenSource) > 0 {
		sb.WriteString("## Open Source\n\n")
		writeMarkdownList(&sb, resume.OpenSource)
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeMarkdownList(sb *strings.Builder, items []string) {
	if len(items) == 0 {
		return
	}
	for _, item := range items {
		sb.WriteString("- " + item + "\n")
	}
	sb.WriteString("\n")
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
