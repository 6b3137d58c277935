// Package optimizer suggests keywords that would strengthen a resume for an industry or job.
package optimizer

import (
	"sort"

	"github.com/jonathan/resume-cli/internal/types"
)

// DefaultIndustry is used when no industry is configured
const DefaultIndustry = "technology"

// Industries is the static keyword table keyed by industry name
var Industries = map[string]types.IndustryKeywords{
	"technology": {
		Technical: []string{
			"javascript", "typescript", "python", "go", "java", "react", "node.js", "sql",
			"docker", "kubernetes", "aws", "gcp", "azure", "terraform", "ci/cd", "git",
			"rest api", "graphql", "microservices", "distributed systems",
		},
		Soft: []string{
			"leadership", "communication", "collaboration", "problem solving", "mentoring",
			"ownership", "cross functional",
		},
		Industry: []string{
			"agile", "scrum", "devops", "scalability", "observability", "security",
			"performance", "architecture", "open source",
		},
		Roles: []string{
			"software engineer", "backend", "frontend", "full stack", "tech lead",
			"architect", "sre",
		},
		Certifications: []string{
			"aws certified", "cka", "ckad", "google cloud certified", "azure certified",
		},
	},
	"data-science": {
		Technical: []string{
			"python", "sql", "pandas", "numpy", "scikit-learn", "tensorflow", "pytorch",
			"spark", "machine learning", "deep learning", "statistics", "r", "jupyter",
			"airflow", "dbt",
		},
		Soft: []string{
			"communication", "storytelling", "collaboration", "curiosity", "problem solving",
		},
		Industry: []string{
			"a/b testing", "experimentation", "data pipeline", "etl", "data visualization",
			"feature engineering", "model deployment",
		},
		Roles: []string{
			"data scientist", "data analyst", "machine learning engineer", "data engineer",
		},
		Certifications: []string{
			"tensorflow developer", "aws machine learning", "databricks certified",
		},
	},
	"marketing": {
		Technical: []string{
			"seo", "sem", "google analytics", "hubspot", "salesforce", "content management",
			"email marketing", "social media", "crm",
		},
		Soft: []string{
			"creativity", "communication", "storytelling", "collaboration", "analytical",
		},
		Industry: []string{
			"brand", "campaign", "conversion", "roi", "engagement", "lead generation",
			"market research",
		},
		Roles: []string{
			"marketing manager", "growth", "content strategist", "product marketing",
		},
		Certifications: []string{
			"google ads certified", "hubspot certified", "facebook blueprint",
		},
	},
	"finance": {
		Technical: []string{
			"excel", "financial modeling", "sql", "python", "bloomberg", "sap", "tableau",
			"forecasting",
		},
		Soft: []string{
			"attention to detail", "communication", "analytical", "integrity", "negotiation",
		},
		Industry: []string{
			"risk management", "compliance", "audit", "valuation", "budgeting", "gaap",
			"portfolio",
		},
		Roles: []string{
			"financial analyst", "accountant", "controller", "investment banker", "cfo",
		},
		Certifications: []string{"cfa", "cpa", "frm", "series 7"},
	},
	"healthcare": {
		Technical: []string{
			"ehr", "epic", "hl7", "fhir", "medical coding", "clinical data", "telehealth",
		},
		Soft: []string{
			"empathy", "communication", "teamwork", "attention to detail", "adaptability",
		},
		Industry: []string{
			"hipaa", "patient care", "clinical trials", "quality improvement",
			"regulatory compliance",
		},
		Roles: []string{
			"nurse", "physician", "clinical analyst", "health informatics", "care coordinator",
		},
		Certifications: []string{"rn", "bls", "acls", "rhia", "cphims"},
	},
}

// IndustryNames returns the known industry names in sorted order
func IndustryNames() []string {
	names := make([]string, 0, len(Industries))
	for name := range Industries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
