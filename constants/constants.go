package constants

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Load reads a .env file from the working directory if there is one. Variables
// already set in the environment win.
func Load() {
	_ = godotenv.Load()
}

// GetMidiPort names the MIDI output port to play through. Empty means the
// first available port.
func GetMidiPort() string {
	return os.Getenv("PIANOLAB_MIDI_PORT")
}

// GetAudioBackend picks how tones are played: "synth" renders sine tones on
// the system audio output, "midi" sends notes to a MIDI port. Defaults to
// synth.
func GetAudioBackend() string {
	if os.Getenv("PIANOLAB_AUDIO") == "midi" {
		return "midi"
	}
	return "synth"
}

func GetServeAddr() string {
	addr := os.Getenv("PIANOLAB_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// GetAllowedOrigins lists the browser origins the serve command accepts,
// comma separated in PIANOLAB_CORS_ORIGINS. Defaults to any origin.
func GetAllowedOrigins() []string {
	raw := os.Getenv("PIANOLAB_CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func GetLogLevel() string {
	return os.Getenv("PIANOLAB_LOG_LEVEL")
}

func GetSentryDSN() string {
	return os.Getenv("PIANOLAB_SENTRY_DSN")
}

// Scheduler timing. The poll interval is wall-clock and independent of tempo.
const (
	LookaheadPoll = 25 * time.Millisecond
	ScheduleAhead = 0.1  // seconds
	StartDelay    = 0.05 // seconds
)

// Tap tempo.
const (
	TapHistory = 4
	TapReset   = 2000.0 // ms
	MinBPM     = 30.0
	MaxBPM     = 250.0
)
