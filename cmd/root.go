package cmd

import (
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/Duong37/dvre-dal-jupyter/internal/config"
	"github.com/Duong37/dvre-dal-jupyter/pkg/client"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configDir string
var endpoint string
var enableProfile bool

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", "/etc/alsmoke.d", "set directory to where your .hcl-configs are located")
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", "", "override the AL-Engine endpoint from configuration")
	rootCmd.PersistentFlags().BoolVar(&enableProfile, "profile", false, "enable pprof http server")
}

var rootCmd = &cobra.Command{
	Use:     "alsmoke",
	Short:   "Alsmoke - smoke-test harness for the AL-Engine HTTP API",
	Long:    "Alsmoke drives a fixed sequence of HTTP probes against a running AL-Engine server and reports a single pass/fail verdict",
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if enableProfile {
			go func() {
				mux := http.NewServeMux()
				mux.HandleFunc("/debug/pprof/", pprof.Index)
				mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
				mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
				mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
				mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

				listener, err := net.Listen("tcp", ":0")
				if err != nil {
					log.Errorf("pprof server failed to listen: %v", err)
					return
				}
				log.Infof("Starting pprof server on http://localhost%s/debug/pprof/", listener.Addr().String())
				err = http.Serve(listener, mux)
				if err != nil {
					log.Errorf("pprof server error: %v", err)
				}
			}()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Warn("Running 'alsmoke' without any arguments - defaulting to 'run'. This behaviour may change in future releases!")
		runCmd.Run(cmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func loadConfig() (*config.Smoke, error) {
	cfg := &config.Smoke{}
	if err := cfg.GenerateFromConfigDir(configDir); err != nil {
		return nil, err
	}

	if endpoint != "" {
		cfg.Endpoint = endpoint
	}

	return cfg, nil
}

func buildClient(cfg *config.Smoke) (*client.Client, error) {
	c := client.New(cfg.Endpoint)

	var err error
	if c.Timeout, err = time.ParseDuration(cfg.Timeouts.Default); err != nil {
		return nil, errors.Wrap(err, "invalid default timeout")
	}
	if c.IterationTimeout, err = time.ParseDuration(cfg.Timeouts.StartIteration); err != nil {
		return nil, errors.Wrap(err, "invalid startIteration timeout")
	}
	if c.SubmitTimeout, err = time.ParseDuration(cfg.Timeouts.SubmitLabels); err != nil {
		return nil, errors.Wrap(err, "invalid submitLabels timeout")
	}

	return c, nil
}
