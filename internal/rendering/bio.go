package rendering

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-cli/internal/types"
)

// Social bio platforms and their character limits
const (
	PlatformTwitter  = "twitter"
	PlatformLinkedIn = "linkedin"
	PlatformGitHub   = "github"
)

var bioLimits = map[string]int{
	PlatformTwitter:  160,
	PlatformLinkedIn: 220,
	PlatformGitHub:   160,
}

// BioPlatforms lists the supported platforms in display order
var BioPlatforms = []string{PlatformTwitter, PlatformLinkedIn, PlatformGitHub}

// RenderBio builds a short bio for a platform, truncated to that platform's limit
func RenderBio(resume *types.Resume, platform string) (string, error) {
	limit, ok := bioLimits[platform]
	if !ok {
		return "", &RenderError{Message: fmt.Sprintf("unknown bio platform %q", platform)}
	}

	p := resume.Personal
	topTech := resume.TechStack
	if len(topTech) > 4 {
		topTech = topTech[:4]
	}

	var bio string
	switch platform {
	case PlatformTwitter:
		bio = p.Role
		if len(topTech) > 0 {
			bio += " | " + strings.Join(topTech, ", ")
		}
		if p.Location != "" {
			bio += " | " + p.Location
		}
	case PlatformLinkedIn:
		bio = p.Role
		if len(resume.Experience) > 0 {
			bio += " at " + resume.Experience[0].Company
		}
		if len(topTech) > 0 {
			bio += " | " + strings.Join(topTech, " · ")
		}
		if resume.Profile != "" {
			bio += " | " + firstSentence(resume.Profile)
		}
	case PlatformGitHub:
		bio = p.Role
		if len(topTech) > 0 {
			bio += ". Building with " + strings.Join(topTech, ", ")
		}
		if len(resume.OpenSource) > 0 {
			bio += ". Open source contributor"
		}
	}

	return truncateRunes(strings.TrimSpace(bio), limit), nil
}

// RenderBios renders a labelled block with a bio for every platform
func RenderBios(resume *types.Resume) string {
	var sb strings.Builder
	for _, platform := range BioPlatforms {
		bio, _ := RenderBio(resume, platform)
		fmt.Fprintf(&sb, "%s (%d/%d):\n%s\n\n", platform, utf8.RuneCountInString(bio), bioLimits[platform], bio)
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func firstSentence(s string) string {
	if i := strings.IndexAny(s, ".!?"); i >= 0 {
		return s[:i+1]
	}
	return s
}

// truncateRunes cuts s to at most limit runes, ending in an ellipsis when cut
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
