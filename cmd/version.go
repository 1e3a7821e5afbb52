package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Version string
	Commit  string
	BuiltAt string
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of alsmoke",
	Long:  `All software has versions. This is alsmoke's`,
	Run: func(cmd *cobra.Command, args []string) {
		log.Infof("Alsmoke AL-Engine smoke harness, version %s (commit %s), built at %s", Version, Commit, BuiltAt)
	},
}
