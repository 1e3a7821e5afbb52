package cmd

import (
	"fmt"
	"os"

	"github.com/Duong37/dvre-dal-jupyter/internal/config"
	"github.com/Duong37/dvre-dal-jupyter/pkg/probe"
	"github.com/Duong37/dvre-dal-jupyter/pkg/report"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	strictMode   bool
	reportTarget string
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&strictMode, "strict", false, "fail the run when any probe fails, not only the health probe")
	runCmd.Flags().StringVar(&reportTarget, "report", "", "write a run report to this file")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full probe sequence against the engine",
	Long:  "This sub-command executes all six probes in fixed order (health, status, config, start_iteration, results, submit_labels) and exits with status 0 on success, 1 otherwise",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("failed to load configuration from dir '%+v', err: '%+v'", configDir, err)
		}

		c, err := buildClient(cfg)
		if err != nil {
			log.Fatalf("failed to build engine client, err: '%+v'", err)
		}

		runner := probe.NewRunner(c, cfg, probe.WithStrict(strictMode))
		ok := runner.Run(cmd.Context())

		fmt.Println()
		for _, res := range runner.Results() {
			fmt.Println(probeStatusLine(res))
		}

		writeReport(cfg, runner.Results(), ok)

		if !ok {
			fmt.Println(renderError(errors.New("smoke test failed")))
			fmt.Println("Tests failed")
			os.Exit(1)
		}

		fmt.Println(styleSuccessBox.Render("✔ smoke test passed"))
		fmt.Println("Tests completed successfully")
	},
}

func writeReport(cfg *config.Smoke, results []probe.Result, passed bool) {
	target := reportTarget
	templateFile := ""
	if cfg.Report != nil {
		if target == "" {
			target = cfg.Report.Target
		}
		templateFile = cfg.Report.Template
	}
	if target == "" {
		return
	}

	rep := report.New(cfg.Endpoint, results, passed)
	if err := rep.WriteFile(target, templateFile); err != nil {
		log.Errorf("failed to write report to %q: %s", target, err)
	}
}
