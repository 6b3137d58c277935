package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-cli/internal/config"
	"github.com/jonathan/resume-cli/internal/document"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file populated with the defaults",
	Long: `Write a config file populated with the defaults. The format follows the file extension
(.json, .yaml, .yml, .toml).`,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

var (
	configInitOut   string
	configInitForce bool
	configShowAs    string
)

func init() {
	configInitCmd.Flags().StringVarP(&configInitOut, "out", "o", config.DefaultFileName, "Config file to create")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file")
	configShowCmd.Flags().StringVar(&configShowAs, "as", document.FormatJSON, "Output format (json|yaml|toml)")

	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(configInitOut); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configInitOut)
	}
	if err := config.Save(configInitOut, config.Defaults()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configInitOut)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	data, err := document.Encode(settings, configShowAs)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
