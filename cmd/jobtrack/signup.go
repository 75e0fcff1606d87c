package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobtrack/internal/types"
)

var (
	signupUsername  string
	signupEmail     string
	signupPassword  string
	signupFirstName string
	signupLastName  string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account",
	Long:  `Register a new account on the tracker backend and log straight in with the issued token.`,
	RunE:  runSignup,
}

func init() {
	signupCmd.Flags().StringVar(&signupUsername, "username", "", "Account username")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Account email")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Account password (min 8 characters)")
	signupCmd.Flags().StringVar(&signupFirstName, "first-name", "", "First name")
	signupCmd.Flags().StringVar(&signupLastName, "last-name", "", "Last name")
	_ = signupCmd.MarkFlagRequired("username")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(signupCmd)
}

func runSignup(cmd *cobra.Command, _ []string) error {
	e, err := buildEnv()
	if err != nil {
		return err
	}

	identity, err := e.client.Signup(cmd.Context(), types.SignupRequest{
		Username:  signupUsername,
		Email:     signupEmail,
		Password:  signupPassword,
		FirstName: signupFirstName,
		LastName:  signupLastName,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Account created. Logged in as %s\n", identity.Username)
	return nil
}
