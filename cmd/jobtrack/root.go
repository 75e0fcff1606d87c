package main

import (
	"fmt"
	"os"

	"github.com/jonathan/jobtrack/internal/api"
	"github.com/jonathan/jobtrack/internal/config"
	"github.com/jonathan/jobtrack/internal/credentials"
	"github.com/jonathan/jobtrack/internal/observability"
	"github.com/jonathan/jobtrack/internal/session"
)

var (
	configPath string
	apiURL     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Tracker backend address")
}

// env is the wired-up client core shared by every command.
type env struct {
	cfg     config.Config
	session *session.Manager
	client  *api.Client
	printer *observability.Printer
}

// buildEnv layers flags over environment over config file, then wires
// the credential store, session manager, and data client together. The
// session initializes itself from the store, so a prior login survives
// into this process.
func buildEnv() (*env, error) {
	cfg := config.FromEnv()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	} else {
		cfg = cfg.MergeWithDefaults(config.Config{})
	}
	if apiURL != "" {
		cfg.BaseURL = apiURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dir := cfg.CredentialsDir
	if dir == "" {
		var err error
		dir, err = config.DefaultCredentialsDir()
		if err != nil {
			return nil, err
		}
	}
	store, err := credentials.NewStore(dir)
	if err != nil {
		return nil, err
	}

	sess := session.NewManager(store)
	client, err := api.NewClient(api.Config{BaseURL: cfg.BaseURL, Timeout: cfg.Timeout()}, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return &env{
		cfg:     cfg,
		session: sess,
		client:  client,
		printer: observability.NewPrinter(os.Stdout),
	}, nil
}
