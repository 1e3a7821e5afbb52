package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Duong37/dvre-dal-jupyter/internal/config"
	"github.com/Duong37/dvre-dal-jupyter/pkg/client"
	"github.com/Duong37/dvre-dal-jupyter/pkg/probe"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Single-probe commands for targeted checks against a running engine.
// Unlike 'run', these print the raw engine answer as colored JSON.

var iterationNumber int

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(iterationCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(labelsCmd)

	iterationCmd.Flags().IntVarP(&iterationNumber, "iteration", "i", 0, "iteration number (defaults to the configured one)")
	labelsCmd.Flags().IntVarP(&iterationNumber, "iteration", "i", 0, "iteration number (defaults to the configured one)")
}

func setup() (*client.Client, *config.Smoke, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to load configuration from %s", configDir)
	}

	c, err := buildClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	return c, cfg, nil
}

func chosenIteration(cfg *config.Smoke) int {
	if iterationNumber > 0 {
		return iterationNumber
	}
	return cfg.Iteration
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the engine health endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := setup()
		if err != nil {
			return err
		}

		fmt.Println(colorCmd("GET"), colorHighlight(c.Endpoint()+"/health"))

		resp := c.Health(cmd.Context())
		if resp.Err() != nil {
			return errors.Wrap(resp.Err(), "health request failed")
		}
		return resp.Print()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe the engine status endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := setup()
		if err != nil {
			return err
		}

		fmt.Println(colorCmd("GET"), colorHighlight(c.Endpoint()+"/status"))

		resp := c.Status(cmd.Context())
		if resp.Err() != nil {
			return errors.Wrap(resp.Err(), "status request failed")
		}
		return resp.Print()
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Fetch the engine configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := setup()
		if err != nil {
			return err
		}

		fmt.Println(colorCmd("GET"), colorHighlight(c.Endpoint()+"/config"))

		resp := c.Config(cmd.Context())
		if resp.Err() != nil {
			return errors.Wrap(resp.Err(), "config request failed")
		}
		return resp.Print()
	},
}

var iterationCmd = &cobra.Command{
	Use:   "iteration",
	Short: "Start an active-learning iteration on the engine",
	Long:  "This command sends a start_iteration request with the configured override (query count, query strategy, label space) and prints the engine's answer. The engine computes the iteration synchronously, so this may take a while.",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := setup()
		if err != nil {
			return err
		}

		request := &client.IterationRequest{
			Iteration: chosenIteration(cfg),
			ProjectID: cfg.ProjectID,
			ConfigOverride: client.ConfigOverride{
				NQueries:      cfg.Override.NQueries,
				QueryStrategy: cfg.Override.QueryStrategy,
				LabelSpace:    cfg.Override.LabelSpace,
			},
		}

		fmt.Println(colorCmd("POST"), colorHighlight(c.Endpoint()+"/start_iteration"))

		resp := c.StartIteration(cmd.Context(), request)
		if resp.Err() != nil {
			return errors.Wrap(resp.Err(), "start_iteration request failed")
		}
		return resp.Print()
	},
}

var resultsCmd = &cobra.Command{
	Use:        "results [iteration]",
	Args:       cobra.MaximumNArgs(1),
	ArgAliases: []string{"iteration"},
	Short:      "Fetch result files for an iteration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := setup()
		if err != nil {
			return err
		}

		iteration := cfg.Iteration
		if len(args) != 0 {
			iteration, err = strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "iteration must be numeric, got %q", args[0])
			}
		}

		fmt.Println(colorCmd("GET"), colorHighlight(fmt.Sprintf("%s/results/%d", c.Endpoint(), iteration)))

		resp := c.Results(cmd.Context(), iteration)
		if resp.Err() != nil {
			return errors.Wrap(resp.Err(), "results request failed")
		}
		return resp.Print()
	},
}

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Submit the synthetic labeled samples to the engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := setup()
		if err != nil {
			return err
		}

		iteration := chosenIteration(cfg)
		submission := &client.LabelSubmission{
			Iteration:      iteration,
			ProjectID:      cfg.ProjectID,
			LabeledSamples: probe.DefaultSamples(iteration, cfg.Override.LabelSpace, time.Now().Unix()),
		}

		fmt.Println(colorCmd("POST"), colorHighlight(c.Endpoint()+"/submit_labels"))

		resp := c.SubmitLabels(cmd.Context(), submission)
		if resp.Err() != nil {
			return errors.Wrap(resp.Err(), "submit_labels request failed")
		}
		return resp.Print()
	},
}
