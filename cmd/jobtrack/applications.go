package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobtrack/internal/gate"
)

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "List tracked applications",
	RunE:  runApplications,
}

func init() {
	rootCmd.AddCommand(applicationsCmd)
}

func runApplications(cmd *cobra.Command, _ []string) error {
	e, err := buildEnv()
	if err != nil {
		return err
	}

	if decision := gate.Guard(e.session); !decision.Allow() {
		return fmt.Errorf("not logged in: run 'jobtrack login' (%s)", decision.RedirectTo)
	}

	apps, err := e.client.Applications(cmd.Context())
	if err != nil {
		return err
	}

	e.printer.PrintApplications(apps)
	return nil
}
