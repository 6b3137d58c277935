package resume

import "github.com/jonathan/resume-cli/internal/types"

// Default returns the built-in resume. Each call returns a fresh copy.
func Default() *types.Resume {
	return &types.Resume{
		Personal: types.PersonalInfo{
			Name:     "Alex Morgan",
			Role:     "Senior Software Engineer",
			Location: "San Francisco, CA",
			Email:    "alex@example.com",
			Phone:    "+1 (555) 010-0199",
			Social: types.SocialLinks{
				GitHub:   "https://github.com/alexmorgan",
				LinkedIn: "https://www.linkedin.com/in/alexmorgan",
				Website:  "https://alexmorgan.dev",
			},
		},
		Profile: "Backend engineer with a decade of experience designing distributed systems, " +
			"developer tooling and data pipelines. Comfortable leading small teams from design " +
			"through production and mentoring engineers along the way.",
		TechStack: []string{
			"Go", "TypeScript", "Python", "PostgreSQL", "Redis", "Kubernetes",
			"Docker", "AWS", "Terraform", "gRPC", "React", "CI/CD",
		},
		Experience: []types.Experience{
			{
				Company: "Northwind Labs",
				Title:   "Senior Software Engineer",
				Date:    "2021 — Present",
				Bullets: []string{
					"Led development of an event-driven billing platform processing 4M transactions per day",
					"Reduced p99 API latency by 45% through query optimization and caching with Redis",
					"Mentored 5 engineers and drove adoption of design reviews across the team",
				},
			},
			{
				Company: "Contoso Cloud",
				Title:   "Software Engineer",
				Date:    "2018 — 2021",
				Bullets: []string{
					"Built Kubernetes operators that automated provisioning for 300+ customer clusters",
					"Designed a Terraform module library adopted by 12 product teams",
					"Implemented CI/CD pipelines cutting release time from 2 days to 40 minutes",
				},
			},
			{
				Company: "Fabrikam",
				Title:   "Backend Developer",
				Date:    "2015 — 2018",
				Bullets: []string{
					"Developed REST APIs in Python and PostgreSQL serving 1M monthly users",
					"Improved test coverage from 35% to 85% with a team-wide testing initiative",
				},
			},
		},
		Projects: []types.Project{
			{Name: "pgqueue", Desc: "Durable job queue on top of PostgreSQL advisory locks", Tech: "Go, PostgreSQL"},
			{Name: "resume-cli", Desc: "Terminal resume with ATS scoring and multi-format export", Tech: "Go, Cobra"},
		},
		Education: []types.Education{
			{
				Degree:  "B.S. Computer Science",
				School:  "University of California, Davis",
				Date:    "2011 — 2015",
				Details: []string{"Teaching assistant for Data Structures"},
			},
		},
		Leadership: []string{
			"Organizer of the local Go meetup (600 members)",
			"Engineering interview panel lead",
		},
		OpenSource: []string{
			"Contributor to chromedp",
			"Maintainer of pgqueue",
		},
	}
}
