package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobtrack/internal/dashboard"
	"github.com/jonathan/jobtrack/internal/gate"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the pipeline dashboard",
	Long:  `Fetch tracked applications and resumes, aggregate them, and render the dashboard metrics.`,
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	e, err := buildEnv()
	if err != nil {
		return err
	}

	if decision := gate.Guard(e.session); !decision.Allow() {
		return fmt.Errorf("not logged in: run 'jobtrack login' (%s)", decision.RedirectTo)
	}

	loader := dashboard.NewLoader(e.client)
	defer loader.Close()

	metrics, err := loader.Load(cmd.Context())
	if err != nil {
		return err
	}

	e.printer.PrintDashboard(metrics)
	return nil
}
