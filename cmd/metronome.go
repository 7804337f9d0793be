package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/pianolab/report"
	"github.com/jsphweid/pianolab/widget"
	"github.com/spf13/cobra"
)

// tempoDebounce coalesces typed tempo changes.
const tempoDebounce = 300 * time.Millisecond

var (
	metronomeBPM   float64
	metronomeBeats int
)

func init() {
	metronomeCmd.Flags().Float64Var(&metronomeBPM, "bpm", widget.DefaultBPM, "tempo")
	metronomeCmd.Flags().IntVar(&metronomeBeats, "beats", widget.DefaultBeatsPerMeasure, "beats per measure (2, 3, 4 or 6)")
	rootCmd.AddCommand(metronomeCmd)
}

var metronomeCmd = &cobra.Command{
	Use:   "metronome",
	Short: "Interactive metronome with tap tempo",
	Long: `Interactive metronome. Commands:
  s          start/stop
  t          tap tempo
  + / -      nudge tempo by 1 BPM
  bpm N      set tempo
  beats N    set beats per measure
  q          quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMetronome(widgetOptions(), os.Stdin, os.Stdout, metronomeBPM, metronomeBeats)
	},
}

func runMetronome(opts widget.Options, in io.Reader, stdout io.Writer, bpm float64, beats int) error {
	out := &lockedWriter{w: stdout}
	m := widget.NewMetronome(opts, func(beat int) {
		if beat == 0 {
			fmt.Fprintln(out, "TOCK")
		} else {
			fmt.Fprintln(out, "tick")
		}
	})
	defer m.Stop()

	if err := m.SetTempo(bpm); err != nil {
		return err
	}
	if err := m.SetBeatsPerMeasure(beats); err != nil {
		return err
	}
	setTempo := debounce.New(tempoDebounce)

	show := func() {
		v := m.View()
		fmt.Fprintf(out, "%.0f BPM, %d/4, playing: %v\n", v.BPM, v.BeatsPerMeasure, v.IsPlaying)
	}
	show()

	return repl(in, out, "> ", func(cmd string, args []string) error {
		switch cmd {
		case "s", "start", "stop":
			if err := m.Toggle(); err != nil {
				return err
			}
		case "t", "tap":
			bpm, err := m.Tap()
			if err != nil {
				return nil
			}
			fmt.Fprintf(out, "%.0f BPM\n", bpm)
			return nil
		case "show":
		case "+", "-":
			delta := 1.0
			if cmd == "-" {
				delta = -1
			}
			if _, err := m.Nudge(delta); err != nil {
				return err
			}
		case "bpm":
			if err := needArgs(args, 1, "bpm N"); err != nil {
				return err
			}
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			setTempo(func() {
				if err := m.SetTempo(v); err != nil {
					report.Notice(err, "Tempo ignored")
				}
			})
			return nil
		case "beats":
			if err := needArgs(args, 1, "beats N"); err != nil {
				return err
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			if err := m.SetBeatsPerMeasure(n); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown command %q", cmd)
		}
		show()
		return nil
	})
}
