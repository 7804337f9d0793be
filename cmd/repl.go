package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/jsphweid/pianolab/pitch"
)

// lockedWriter lets playback callbacks print between prompts.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// repl reads one command per line until EOF or "q". Command errors are
// printed and the loop goes on.
func repl(in io.Reader, out io.Writer, prompt string, handle func(cmd string, args []string) error) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(out, prompt)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) > 0 {
			if fields[0] == "q" || fields[0] == "quit" {
				return nil
			}
			if err := handle(strings.ToLower(fields[0]), fields[1:]); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		}
		fmt.Fprint(out, prompt)
	}
	return sc.Err()
}

func needArgs(args []string, n int, usage string) error {
	if len(args) < n {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func savePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// parseAnswer reads a bare note name such as "c", "F#" or "Bb".
func parseAnswer(s string) (pitch.Pitch, error) {
	return pitch.Parse(s + "4")
}
