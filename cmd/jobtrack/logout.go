package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the persisted session",
	Long:  `Clear the persisted session token and identity. Logging out while already logged out is a no-op.`,
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(_ *cobra.Command, _ []string) error {
	e, err := buildEnv()
	if err != nil {
		return err
	}

	if !e.session.IsAuthenticated() {
		fmt.Println("Not logged in.")
		return nil
	}
	if err := e.session.Logout(); err != nil {
		return err
	}

	fmt.Println("Logged out.")
	return nil
}
