package ats

import "github.com/jonathan/resume-cli/internal/types"

func sampleResume() *types.Resume {
	return &types.Resume{
		Personal: types.PersonalInfo{
			Name:  "Ada Byron",
			Role:  "Senior Software Engineer",
			Email: "ada@example.com",
		},
		Profile:   "Backend engineer focused on distributed systems and team leadership.",
		TechStack: []string{"Go", "Kubernetes", "PostgreSQL", "JavaScript"},
		Experience: []types.Experience{
			{
				Company: "Acme",
				Title:   "Staff Engineer",
				Date:    "2020 — Present",
				Bullets: []string{
					"Led development of a payments platform in Go",
					"Improved API latency by 40% through query optimization",
				},
			},
			{
				Company: "Globex",
				Title:   "Software Engineer",
				Date:    "2016 — 2020",
				Bullets: []string{"Built Kubernetes operators for internal tooling"},
			},
		},
		Projects: []types.Project{
			{Name: "queuekit", Desc: "A durable job queue", Tech: "Go, Redis"},
		},
		Education: []types.Education{
			{Degree: "BSc Computer Science", School: "State University", Date: "2012 — 2016"},
		},
	}
}

func sampleJob() *types.JobDescription {
	return &types.JobDescription{
		Title:           "Backend Engineer",
		Company:         "Initech",
		Description:     "Build distributed systems in Go on Kubernetes.",
		Requirements:    []string{"Go", "Kubernetes"},
		PreferredSkills: []string{"Terraform"},
		Keywords:        []string{"go", "kubernetes", "terraform", "payments"},
	}
}
