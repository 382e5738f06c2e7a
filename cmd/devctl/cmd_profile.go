package main

import (
	"fmt"
	"strings"

	"devconnector/internal/models"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile",
	Args:  cobra.NoArgs,
	RunE:  runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	p, err := sess.API.MyProfile(ctx)
	if err != nil {
		return err
	}
	printProfile(cmd, p)
	return nil
}

func printProfile(cmd *cobra.Command, p *models.Profile) {
	out := cmd.OutOrStdout()
	if p.User != nil {
		fmt.Fprintln(out, p.User.Name)
	}
	fmt.Fprintf(out, "Status: %s\n", p.Status)
	if p.Company != "" {
		fmt.Fprintf(out, "Company: %s\n", p.Company)
	}
	fmt.Fprintf(out, "Skills: %s\n", strings.Join(p.Skills, ", "))
	for _, e := range p.Experience {
		fmt.Fprintf(out, "  %s at %s (%s)\n", e.Title, e.Company, e.From.Format("2006-01"))
	}
	for _, e := range p.Education {
		fmt.Fprintf(out, "  %s, %s\n", e.Degree, e.School)
	}
}
