// Package main provides the entry point for the jobtrack CLI, the
// terminal client for the job-application tracker backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobtrack",
	Short: "Job application tracker client",
	Long:  "jobtrack tracks job applications and resume scores against the tracker backend: sign up, log in, and review your pipeline dashboard from the terminal.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
