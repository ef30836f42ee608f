package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/interview-prep/internal/config"
	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the job roles in the catalog",
	Long:  "Lists every job role in the configured role catalog together with its required skills.",
	RunE:  runRoles,
}

var (
	rolesCatalog string
	rolesConfig  string
)

func init() {
	rolesCmd.Flags().StringVar(&rolesCatalog, "roles", "", "Path to role catalog (CSV or JSON)")
	rolesCmd.Flags().StringVar(&rolesConfig, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(rolesCmd)
}

func runRoles(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(rolesConfig, config.Config{Roles: rolesCatalog})
	if err != nil {
		return err
	}

	if cfg.Roles == "" {
		return fmt.Errorf("no role catalog configured (use --roles or a config file)")
	}

	// The question catalog is not needed to list roles; reuse the role loader
	// directly instead of building a full catalog.
	roles, err := loadRolesOnly(cfg)
	if err != nil {
		return err
	}

	for _, role := range roles {
		fmt.Fprintf(os.Stdout, "%s\n", role.Name)
		fmt.Fprintf(os.Stdout, "  required: %s\n", strings.Join(role.RequiredSkills, ", "))
	}
	fmt.Fprintf(os.Stdout, "\n%d roles\n", len(roles))

	return nil
}
