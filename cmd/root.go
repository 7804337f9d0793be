package cmd

import (
	"github.com/jsphweid/pianolab/constants"
	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/midi"
	"github.com/jsphweid/pianolab/report"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pianolab",
	Short: "Piano practice tools",
	Long: `Piano practice tools: a metronome, a chord explorer, a scale ladder,
a 2-5-1 trainer, a beginner song player and a note-reading trainer.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		report.Flush()
		midi.Close()
	},
}

func setup() {
	constants.Load()
	log := logging.GetGlobalLogger()
	log.SetLevel(logging.ParseLevel(constants.GetLogLevel()))
	if err := report.Init(constants.GetSentryDSN(), Version); err != nil {
		log.Error(err, "Error reporting disabled")
	}
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
