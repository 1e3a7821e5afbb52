package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Duong37/dvre-dal-jupyter/internal/helper"
	"github.com/hashicorp/hcl"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultEndpoint  = "http://localhost:5050"
	DefaultProjectID = "test-project"
	DefaultIteration = 1
)

// GenerateFromConfigDir merges every .hcl file found below configDir into
// the receiver. A missing directory is not an error; the harness then runs
// on defaults alone.
func (smoke *Smoke) GenerateFromConfigDir(configDir string) error {
	configDir = strings.TrimRight(configDir, "/")

	matches, err := findInPath(configDir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("config dir %s does not exist, using defaults", configDir)
			smoke.ApplyDefaults()
			return nil
		}
		return err
	}

	if len(matches) == 0 {
		log.Debugf("no configuration files in %s, using defaults", configDir)
	}

	for _, m := range matches {
		log.Infof("found config file: %s", m)

		contents, err := os.ReadFile(m)
		if err != nil {
			return err
		}

		if err := hcl.Unmarshal(contents, smoke); err != nil {
			return fmt.Errorf("could not parse configuration file %s: %s", m, err.Error())
		}
	}

	smoke.ApplyDefaults()
	return nil
}

// ApplyDefaults fills every unset field with the values the original
// engine ships with.
func (smoke *Smoke) ApplyDefaults() {
	smoke.Endpoint = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(smoke.Endpoint), DefaultEndpoint, "endpoint", "smoke")
	smoke.ProjectID = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(smoke.ProjectID), DefaultProjectID, "projectId", "smoke")

	if smoke.Iteration == 0 {
		smoke.Iteration = DefaultIteration
	}

	if smoke.Timeouts == nil {
		smoke.Timeouts = &Timeouts{}
	}
	smoke.Timeouts.Default = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(smoke.Timeouts.Default), "5s", "default timeout", "smoke")
	smoke.Timeouts.StartIteration = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(smoke.Timeouts.StartIteration), "30s", "startIteration timeout", "smoke")
	smoke.Timeouts.SubmitLabels = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(smoke.Timeouts.SubmitLabels), "10s", "submitLabels timeout", "smoke")

	if smoke.Override == nil {
		smoke.Override = &Override{}
	}
	if smoke.Override.NQueries == 0 {
		smoke.Override.NQueries = 2
	}
	smoke.Override.QueryStrategy = helper.SetDefaultStringIfEmpty(smoke.Override.QueryStrategy, "uncertainty_sampling", "queryStrategy", "smoke")
	if len(smoke.Override.LabelSpace) == 0 {
		smoke.Override.LabelSpace = []string{"positive", "negative"}
	}
}
