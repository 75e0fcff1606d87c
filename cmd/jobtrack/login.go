package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobtrack/internal/types"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the tracker backend",
	Long:  `Exchange credentials for a session token. The session is persisted and survives until logout.`,
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "Account username")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	e, err := buildEnv()
	if err != nil {
		return err
	}

	identity, err := e.client.Login(cmd.Context(), types.LoginRequest{
		Username: loginUsername,
		Password: loginPassword,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", identity.Username)
	return nil
}
