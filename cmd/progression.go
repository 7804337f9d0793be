package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bep/debounce"
	"github.com/jsphweid/pianolab/chord"
	"github.com/jsphweid/pianolab/report"
	"github.com/jsphweid/pianolab/voicing"
	"github.com/jsphweid/pianolab/widget"
	"github.com/spf13/cobra"
)

type progressionFlags struct {
	key     string
	mode    string
	voicing string
	bpm     float64
}

var progressionArgs progressionFlags

func init() {
	progressionCmd.Flags().StringVar(&progressionArgs.key, "key", "C", "key: "+strings.Join(chord.ProgressionKeys, ", "))
	progressionCmd.Flags().StringVar(&progressionArgs.mode, "mode", string(chord.Major), "major or minor")
	progressionCmd.Flags().StringVar(&progressionArgs.voicing, "voicing", string(voicing.CloseMid), "low, mid, high, drop2, drop3 or rootless")
	progressionCmd.Flags().Float64Var(&progressionArgs.bpm, "bpm", widget.DefaultProgressionBPM, "tempo")
	rootCmd.AddCommand(progressionCmd)
}

var progressionCmd = &cobra.Command{
	Use:   "progression",
	Short: "Loops a ii-V-I in any key",
	Long: `Loops a ii-V-I in any key. Commands:
  p          play/stop
  n / b      next / previous chord
  key K      change key
  mode M     major or minor
  voicing V  change voicing
  bpm N      set tempo
  q          quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProgression(widgetOptions(), os.Stdin, os.Stdout, progressionArgs)
	},
}

func formatProgression(v widget.ProgressionView) string {
	return fmt.Sprintf("%s %s [%s] %d/%d  %-4s %-7s LH %s  RH %s  (%.0f BPM, playing: %v)",
		v.Key, v.Mode, v.Voicing, v.Step+1, v.Steps, v.Roman, v.Symbol,
		v.LeftHand, strings.Join(v.RightHand, " "), v.BPM, v.IsPlaying)
}

func runProgression(opts widget.Options, in io.Reader, stdout io.Writer, f progressionFlags) error {
	out := &lockedWriter{w: stdout}
	p := widget.NewProgressionTrainer(opts)
	defer p.Stop()

	if err := p.SetKey(f.key); err != nil {
		return err
	}
	if err := p.SetMode(chord.Mode(f.mode)); err != nil {
		return err
	}
	if err := p.SetVoicing(f.voicing); err != nil {
		return err
	}
	if err := p.SetTempo(f.bpm); err != nil {
		return err
	}
	setTempo := debounce.New(tempoDebounce)

	show := func() error {
		v, err := p.View()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, formatProgression(v))
		return nil
	}
	if err := show(); err != nil {
		return err
	}

	return repl(in, out, "> ", func(cmd string, args []string) error {
		var err error
		switch cmd {
		case "show":
		case "p", "play", "stop":
			err = p.Toggle()
		case "n", "next":
			p.Next()
		case "b", "prev", "previous":
			p.Previous()
		case "key":
			if err = needArgs(args, 1, "key K"); err == nil {
				err = p.SetKey(args[0])
			}
		case "mode":
			if err = needArgs(args, 1, "mode major|minor"); err == nil {
				err = p.SetMode(chord.Mode(strings.ToLower(args[0])))
			}
		case "voicing":
			if err = needArgs(args, 1, "voicing V"); err == nil {
				err = p.SetVoicing(strings.ToLower(args[0]))
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
				if err := p.SetTempo(v); err != nil {
					report.Notice(err, "Tempo ignored")
				}
			})
			return nil
		default:
			return fmt.Errorf("unknown command %q", cmd)
		}
		if err != nil {
			return err
		}
		return show()
	})
}
