package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-cli/internal/types"
)

// ANSI escape sequences for the color format
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiCyan   = "\033[36m"
	ansiYellow = "\033[33m"
	ansiGreen  = "\033[32m"
)

const ruleWidth = 60

// textStyle wraps a string in styling codes; plainStyle leaves it unchanged
type textStyle func(codes, s string) string

func plainStyle(_, s string) string { return s }

func ansiStyle(codes, s string) string { return codes + s + ansiReset }

// RenderText renders a resume for the terminal. With color set, headings and accents use
// ANSI escape codes.
func RenderText(resume *types.Resume, color bool) string {
	style := textStyle(plainStyle)
	if color {
		style = ansiStyle
	}

	var sb strings.Builder
	p := resume.Personal

	sb.WriteString(style(ansiBold+ansiCyan, strings.ToUpper(p.Name)) + "\n")
	if p.Role != "" {
		sb.WriteString(style(ansiYellow, p.Role) + "\n")
	}
	if contact := nonEmpty(p.Location, p.Email, p.Phone); len(contact) > 0 {
		sb.WriteString(strings.Join(contact, " | ") + "\n")
	}
	if links := nonEmpty(p.Social.GitHub, p.Social.LinkedIn, p.Social.Twitter, p.Social.Website); len(links) > 0 {
		sb.WriteString(style(ansiDim, strings.Join(links, " | ")) + "\n")
	}

	section := func(title string) {
		sb.WriteString("\n" + style(ansiBold+ansiCyan, title) + "\n")
		sb.WriteString(strings.Repeat("─", ruleWidth) + "\n")
	}

	if resume.Profile != "" {
		section("PROFILE")
		sb.WriteString(resume.Profile + "\n")
	}

	if len(resume.TechStack) > 0 {
		section("TECH STACK")
		sb.WriteString(style(ansiGreen, strings.Join(resume.TechStack, " • ")) + "\n")
	}

	if len(resume.Experience) > 0 {
		section("EXPERIENCE")
		for i, exp := range resume.Experience {
			if i > 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "%s @ %s", style(ansiBold, exp.Title), exp.Company)
			if exp.Date != "" {
				sb.WriteString("  " + style(ansiDim, exp.Date))
			}
			sb.WriteString("\n")
			for _, bullet := range exp.Bullets {
				sb.WriteString("  • " + bullet + "\n")
			}
		}
	}

	if len(resume.Projects) > 0 {
		section("PROJECTS")
		for _, proj := range resume.Projects {
			fmt.Fprintf(&sb, "  • %s: %s", style(ansiBold, proj.Name), proj.Desc)
			if proj.Tech != "" {
				sb.WriteString(" " + style(ansiDim, "["+proj.Tech+"]"))
			}
			sb.WriteString("\n")
		}
	}

	if len(resume.Education) > 0 {
		section("EDUCATION")
		for _, edu := range resume.Education {
			fmt.Fprintf(&sb, "%s, %s", style(ansiBold, edu.Degree), edu.School)
			if edu.Date != "" {
				sb.WriteString("  " + style(ansiDim, edu.Date))
			}
			sb.WriteString("\n")
			for _, d := range edu.Details {
				sb.WriteString("  • " + d + "\n")
			}
		}
	}

	if len(resume.Leadership) > 0 {
		section("LEADERSHIP")
		for _, item := range resume.Leadership {
			sb.WriteString("  • " + item + "\n")
		}
	}

	if len(resume.OpenSource) > 0 {
		section("OPEN SOURCE")
		for _, item := range resume.OpenSource {
			sb.WriteString("  • " + item + "\n")
		}
	}

	return sb.String()
}
