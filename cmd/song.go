package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/jsphweid/pianolab/util"
	"github.com/jsphweid/pianolab/widget"
	"github.com/spf13/cobra"
)

var (
	songSpeed string
	songHand  string
	songLevel int
	songList  bool
)

func init() {
	songCmd.Flags().StringVar(&songSpeed, "speed", "medium", "slow, medium or fast")
	songCmd.Flags().StringVar(&songHand, "hand", "central", "hand position for fingering: central or normal")
	songCmd.Flags().IntVar(&songLevel, "level", 0, "with --list, only songs at this level (0 is all)")
	songCmd.Flags().BoolVar(&songList, "list", false, "list songs")
	rootCmd.AddCommand(songCmd)
}

var songCmd = &cobra.Command{
	Use:   "song [ID]",
	Short: "Plays a beginner song note by note with fingering",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if songList || len(args) == 0 {
			return listSongs(os.Stdout, songLevel)
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runSong(ctx, widgetOptions(), os.Stdout, args[0], songSpeed, songHand)
	},
}

func listSongs(out io.Writer, level int) error {
	if level < 0 || level > 3 {
		return fmt.Errorf("level must be 0 to 3, got %d", level)
	}
	for _, s := range widget.SongsAtLevel(level) {
		fmt.Fprintf(out, "%-12s L%d %-4s %s\n", s.ID, s.Level, s.Hands, s.Title)
	}
	return nil
}

func parseSpeed(s string) (widget.Speed, error) {
	for _, speed := range util.GetKeys(widget.Speeds) {
		if strings.EqualFold(string(speed), s) {
			return speed, nil
		}
	}
	return "", fmt.Errorf("unknown speed %q", s)
}

func parseHand(s string) (widget.HandPosition, error) {
	switch strings.ToLower(s) {
	case "central", "central c":
		return widget.CentralC, nil
	case "normal", "normal c":
		return widget.NormalC, nil
	}
	return "", fmt.Errorf("unknown hand position %q", s)
}

// runSong plays the song once, printing each note as it sounds, and returns
// when it ends or ctx is done.
func runSong(ctx context.Context, opts widget.Options, stdout io.Writer, id, speed, hand string) error {
	out := &lockedWriter{w: stdout}
	sp, err := parseSpeed(speed)
	if err != nil {
		return err
	}
	hp, err := parseHand(hand)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	var once sync.Once
	var player *widget.SongPlayer
	player = widget.NewSongPlayer(opts, func(index int) {
		if index < 0 {
			once.Do(func() { close(done) })
			return
		}
		v, err := player.View()
		if err != nil {
			return
		}
		if v.Finger != "" {
			fmt.Fprintf(out, "%3d  %-4s finger %s\n", index+1, v.ActiveNote, v.Finger)
		} else {
			fmt.Fprintf(out, "%3d  %s\n", index+1, v.ActiveNote)
		}
	})

	if err := player.SelectSong(id); err != nil {
		return err
	}
	if err := player.SetSpeed(sp); err != nil {
		return err
	}
	if err := player.SetHandPosition(hp); err != nil {
		return err
	}
	v, err := player.View()
	if err != nil {
		return err
	}
	song, _ := widget.LookupSong(id)
	fmt.Fprintf(out, "%s (%s clef, %.0f BPM, %g beats)\n", v.Song.Title, v.Clef, v.BPM, song.Beats())
	if err := player.Play(); err != nil {
		return err
	}

	select {
	case <-done:
	case <-ctx.Done():
		player.Stop()
	}
	return nil
}
