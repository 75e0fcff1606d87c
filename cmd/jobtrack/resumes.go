package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobtrack/internal/gate"
)

var resumesCmd = &cobra.Command{
	Use:   "resumes",
	Short: "List resumes and their latest scores",
	RunE:  runResumes,
}

func init() {
	rootCmd.AddCommand(resumesCmd)
}

func runResumes(cmd *cobra.Command, _ []string) error {
	e, err := buildEnv()
	if err != nil {
		return err
	}

	if decision := gate.Guard(e.session); !decision.Allow() {
		return fmt.Errorf("not logged in: run 'jobtrack login' (%s)", decision.RedirectTo)
	}

	resumes, err := e.client.Resumes(cmd.Context())
	if err != nil {
		return err
	}

	e.printer.PrintResumes(resumes)
	return nil
}
