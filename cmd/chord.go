package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsphweid/pianolab/chord"
	"github.com/jsphweid/pianolab/widget"
	"github.com/spf13/cobra"
)

var (
	chordInversion int
	chordPNG       string
	chordJSON      bool
)

func init() {
	chordCmd.Flags().IntVarP(&chordInversion, "inversion", "i", 0, "inversion (0 is root position)")
	chordCmd.Flags().StringVar(&chordPNG, "png", "", "write the keyboard to this PNG file")
	chordCmd.Flags().BoolVar(&chordJSON, "json", false, "print JSON")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord ROOT [QUALITY]",
	Short: "Shows a chord and its inversions",
	Long:  `Shows the notes, degrees and keys of a chord. Qualities: ` + strings.Join(chord.QualityKeys, ", "),
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quality := "maj"
		if len(args) == 2 {
			quality = args[1]
		}
		return runChord(os.Stdout, args[0], quality, chordInversion, chordPNG, chordJSON)
	},
}

func runChord(out io.Writer, root, quality string, inversion int, pngPath string, asJSON bool) error {
	req, err := chord.NewRequest(root, quality, inversion)
	if err != nil {
		return err
	}
	v := widget.NewChordView(req)
	if pngPath != "" {
		if err := savePNG(pngPath, widget.ExplorerKeyboard.Render(v.Keys)); err != nil {
			return err
		}
	}
	if asJSON {
		return printJSON(out, v)
	}
	fmt.Fprintf(out, "%s (%s %s, %s)\n", v.Symbol, v.Root, v.QualityName, v.InversionName)
	fmt.Fprintf(out, "  notes:   %s\n", strings.Join(v.Notes, " "))
	fmt.Fprintf(out, "  degrees: %s\n", strings.Join(v.Degrees, " "))
	fmt.Fprintf(out, "  formula: %s\n", v.Formula)
	return nil
}
