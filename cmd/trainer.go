package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/jsphweid/pianolab/staff"
	"github.com/jsphweid/pianolab/widget"
	"github.com/spf13/cobra"
)

type trainerFlags struct {
	clef        string
	accidentals bool
	ledger      bool
	cPositions  bool
	png         string
	seed        int64
}

var trainerArgs trainerFlags

func init() {
	f := trainerCmd.Flags()
	f.StringVar(&trainerArgs.clef, "clef", string(staff.Treble), "treble or bass")
	f.BoolVar(&trainerArgs.accidentals, "accidentals", false, "include sharps")
	f.BoolVar(&trainerArgs.ledger, "ledger", false, "include ledger lines")
	f.BoolVar(&trainerArgs.cPositions, "c-positions", false, "only notes of the beginner C positions")
	f.StringVar(&trainerArgs.png, "png", "", "draw each note on a staff in this PNG file")
	f.Int64Var(&trainerArgs.seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.AddCommand(trainerCmd)
}

var trainerCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Note-reading practice",
	Long: `Shows a note on the staff; answer with its name (c, f#, bb ...).
  n      skip to a new note
  q      quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrainer(widget.Options{}, os.Stdin, os.Stdout, trainerArgs)
	},
}

// describe says where the note head sits. Lines and spaces count from the
// bottom of the staff.
func describe(pos staff.Position) string {
	var where string
	switch {
	case pos.Offset > 4 || pos.Offset < -4:
		side := "above"
		if pos.Offset < 0 {
			side = "below"
		}
		where = "space " + side + " the staff"
		if pos.OnLine() {
			where = "line " + side + " the staff"
		}
		if n := len(pos.Ledger); n > 0 {
			where += fmt.Sprintf(", %d ledger", n)
		}
	case pos.OnLine():
		where = fmt.Sprintf("line %d", pos.Offset/2+3)
	default:
		where = fmt.Sprintf("space %d", (pos.Offset+5)/2)
	}
	if pos.Sharp {
		where += ", sharp"
	}
	return fmt.Sprintf("%s clef, %s", pos.Clef, where)
}

func runTrainer(opts widget.Options, in io.Reader, out io.Writer, f trainerFlags) error {
	clef, err := staff.ParseClef(strings.ToLower(f.clef))
	if err != nil {
		return err
	}
	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	t := widget.NewNoteTrainer(opts, rand.New(rand.NewSource(seed)))
	if err := t.Configure(widget.TrainerSettings{
		Clef:        clef,
		Accidentals: f.accidentals,
		Ledger:      f.ledger,
		CPositions:  f.cPositions,
	}); err != nil {
		return err
	}

	show := func() error {
		pos := t.Position()
		if f.png != "" {
			if err := staff.SavePNG(f.png, pos); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "%s\n", describe(pos))
		return nil
	}
	if err := show(); err != nil {
		return err
	}

	err = repl(in, out, "? ", func(cmd string, args []string) error {
		if cmd == "n" || cmd == "next" {
			t.Next()
			return show()
		}
		p, err := parseAnswer(cmd)
		if err != nil {
			return err
		}
		fb, ok := t.Answer(p)
		if !ok {
			fmt.Fprintln(out, "wait for the next note")
			return nil
		}
		if fb == widget.Correct {
			fmt.Fprintf(out, "correct (score %d)\n", t.View().Score)
			t.Next()
			return show()
		}
		fmt.Fprintf(out, "wrong, it was not %s (score %d)\n", strings.ToUpper(cmd[:1])+cmd[1:], t.View().Score)
		return nil
	})
	fmt.Fprintf(out, "final score %d\n", t.View().Score)
	return err
}
