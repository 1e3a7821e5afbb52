package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Duong37/dvre-dal-jupyter/pkg/mock"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mockListenPort int

func init() {
	rootCmd.AddCommand(mockCmd)
	mockCmd.PersistentFlags().IntVarP(&mockListenPort, "listen-port", "p", 5050, "set the port the stub engine listens on")
}

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Serve a local stub AL-Engine",
	Long:  "This sub-command starts an in-process stand-in for the AL-Engine server that answers the full smoke-test contract, so the harness can be exercised without the real engine",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("failed to load configuration from dir '%+v', err: '%+v'", configDir, err)
		}

		signals := make(chan os.Signal, 1)
		signal.Notify(signals,
			syscall.SIGTERM,
			syscall.SIGINT,
		)

		engine := mock.NewEngine(cfg.ProjectID)

		log.Infof("stub engine listens on port %d", mockListenPort)
		if err := mock.Run(engine, signals, mockListenPort); err != nil {
			log.Fatalf("stub engine stopped with error: %s", err)
		} else {
			log.Info("stub engine stopped without error")
		}
	},
}
