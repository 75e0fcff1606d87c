package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobtrack/internal/gate"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(_ *cobra.Command, _ []string) error {
	e, err := buildEnv()
	if err != nil {
		return err
	}

	if decision := gate.Guard(e.session); !decision.Allow() {
		return fmt.Errorf("not logged in: run 'jobtrack login' (%s)", decision.RedirectTo)
	}

	identity, _ := e.session.Identity()
	expiry := ""
	if at, ok := e.session.TokenExpiresAt(); ok {
		expiry = at.Format(time.RFC3339)
		if at.Before(time.Now()) {
			expiry += " (expired — the next request will log you out)"
		}
	}
	e.printer.PrintSession(identity, expiry)
	return nil
}
