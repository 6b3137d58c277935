package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-cli/internal/config"
)

// resetFlags restores every flag to its default so commands can run repeatedly in one process
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// executeCommand runs the root command in-process and returns what it wrote
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	resetFlags(rootCmd)
	settings = config.Config{}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const backendJob = `{
	"title": "Backend Engineer",
	"company": "Initech",
	"description": "Build distributed systems in Go with PostgreSQL, Redis and Kubernetes.",
	"requirements": ["Go", "PostgreSQL", "Kubernetes"],
	"preferred_skills": ["Terraform"],
	"keywords": ["go", "postgresql", "kubernetes", "redis", "terraform"]
}`

const mainframeJob = `{
	"title": "Mainframe Developer",
	"description": "Maintain COBOL batch jobs on z/OS with JCL and CICS.",
	"requirements": ["COBOL", "JCL", "CICS"],
	"keywords": ["cobol", "jcl", "cics", "db2"]
}`
