package cmd

import (
	"github.com/jsphweid/pianolab/audio"
	"github.com/jsphweid/pianolab/clock"
	"github.com/jsphweid/pianolab/constants"
	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/midi"
	"github.com/jsphweid/pianolab/report"
	"github.com/jsphweid/pianolab/scheduler"
	"github.com/jsphweid/pianolab/widget"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func openPort() (audio.Port, error) {
	return midi.OutPort(constants.GetMidiPort())
}

// outputFor builds the emitter named by backend on c.
func outputFor(backend string, c clock.Clock, log logging.Logger) scheduler.ToneEmitter {
	if backend == "midi" {
		return audio.NewMIDIEmitter(audio.NewEngine(openPort, log), c, 0, log)
	}
	return audio.NewSynth(audio.OpenOto, c, log)
}

// widgetOptions plays through the configured audio backend. Without one the
// widgets still run and show what they would play.
func widgetOptions() widget.Options {
	log := logging.GetGlobalLogger()
	c := clock.NewWall()
	backend := constants.GetAudioBackend()
	out := outputFor(backend, c, log)
	if err := out.EnsureReady(); err != nil {
		report.Notice(err, "No audio output, running silently", logging.Fields{"backend": backend, "ports": midi.OutPortNames()})
		return widget.Options{Clock: c, Emitter: audio.NewRecorder(log), Logger: log}
	}
	return widget.Options{Clock: c, Emitter: out, Logger: log}
}
