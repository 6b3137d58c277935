package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	PlatformGreenhouse      Platform = "greenhouse"
	PlatformLever           Platform = "lever"
	PlatformWorkday         Platform = "workday"
	PlatformAshby           Platform = "ashby"
	PlatformSmartRecruiters Platform = "smartrecruiters"
	PlatformUnknown         Platform = "unknown"
)

// platformHosts maps host suffixes to the board that serves them.
var platformHosts = []struct {
	suffix   string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
	{"ashbyhq.com", PlatformAshby},
	{"smartrecruiters.com", PlatformSmartRecruiters},
}

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Hostname())
	for _, p := range platformHosts {
		if host == p.suffix || strings.HasSuffix(host, "."+p.suffix) {
			return p.platform
		}
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors tuned for a platform,
// falling back to JobPostingSelectors.
func PlatformContentSelectors(platform Platform) []string {
	var specific []string
	switch platform {
	case PlatformGreenhouse:
		specific = []string{".job__description.body", ".job__description", ".job-post-container"}
	case PlatformLever:
		specific = []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description"}
	case PlatformWorkday:
		specific = []string{"[data-automation-id='jobPostingDescription']", "[data-automation-id='jobDescription']"}
	case PlatformAshby:
		specific = []string{".ashby-job-posting-right-pane", "[class*='descriptionText']"}
	case PlatformSmartRecruiters:
		specific = []string{".job-sections", "[itemprop='description']"}
	}
	return append(specific, JobPostingSelectors()...)
}

// PlatformNoiseSelectors returns elements to strip before extraction.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		".eeo-statement",
		".eeo-section",
		".voluntary-disclosure",
		".self-identification",
		".social-share",
		".share-buttons",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformGreenhouse:
		return append(common, ".application--wrapper", ".voluntary-self-id", "#usa_self_id_section")
	case PlatformLever:
		return append(common, ".apply-section", ".posting-apply")
	case PlatformWorkday:
		return append(common, "[data-automation-id='applyButton']")
	case PlatformAshby:
		return append(common, ".ashby-application-form-container")
	default:
		return common
	}
}
