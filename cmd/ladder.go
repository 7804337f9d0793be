package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsphweid/pianolab/chord"
	"github.com/jsphweid/pianolab/scale"
	"github.com/jsphweid/pianolab/widget"
	"github.com/spf13/cobra"
)

var (
	ladderDegree int
	ladderPNG    string
	ladderJSON   bool
)

func init() {
	ladderCmd.Flags().IntVarP(&ladderDegree, "degree", "d", 0, "show the triad on this degree (1 to 7)")
	ladderCmd.Flags().StringVar(&ladderPNG, "png", "", "write the keyboard to this PNG file")
	ladderCmd.Flags().BoolVar(&ladderJSON, "json", false, "print JSON")
	rootCmd.AddCommand(ladderCmd)
}

var ladderCmd = &cobra.Command{
	Use:   "ladder TONIC [major|minor]",
	Short: "Shows a scale with its degree chords and fingering",
	Long:  `Shows a scale with its degree chords and fingering. Tonics: C, G, D, A, E, B, F.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := chord.Major
		if len(args) == 2 {
			mode = chord.Mode(strings.ToLower(args[1]))
		}
		return runLadder(widget.Options{}, os.Stdout, args[0], mode, ladderDegree, ladderPNG, ladderJSON)
	},
}

// runLadder shows the scale, and the triad on degree when degree is 1 to 7.
func runLadder(opts widget.Options, out io.Writer, tonic string, mode chord.Mode, degree int, pngPath string, asJSON bool) error {
	l := widget.NewToneLadder(opts)
	if err := l.SetKey(tonic, mode); err != nil {
		return err
	}
	if degree != 0 {
		if degree < 1 || degree > 7 {
			return fmt.Errorf("%w: degree %d", scale.ErrUnknownScale, degree)
		}
		if _, err := l.SelectDegree(degree - 1); err != nil {
			return err
		}
	}
	v := l.View()

	if pngPath != "" {
		keys := v.ScaleKeys
		if v.Selected != nil {
			keys = v.Selected.Keys
		}
		if err := savePNG(pngPath, widget.LadderKeyboard.Render(keys)); err != nil {
			return err
		}
	}
	if asJSON {
		return printJSON(out, v)
	}

	fmt.Fprintln(out, v.Name)
	for i := range v.Notes {
		fmt.Fprintf(out, "  %-4s %-3s %s\n", v.Degrees[i], v.Notes[i], v.Qualities[i])
	}
	fmt.Fprintf(out, "  RH %s\n  LH %s\n", v.RightHand, v.LeftHand)
	if s := v.Selected; s != nil {
		fmt.Fprintf(out, "%s: %s (%s)\n", s.Roman, strings.Join(s.Notes, " "), s.Quality)
	}
	return nil
}
