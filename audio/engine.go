package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jsphweid/pianolab/logging"
)

var ErrBackendUnavailable = errors.New("audio backend unavailable")

// Port is an output device. gomidi's drivers.Out satisfies it.
type Port interface {
	Open() error
	IsOpen() bool
	Send(data []byte) error
}

// Opener creates the backend on first use.
type Opener func() (Port, error)

// Engine owns one output backend. It is created lazily on the first
// EnsureReady and reopened whenever it has been closed underneath us.
type Engine struct {
	mu   sync.Mutex
	open Opener
	port Port
	log  logging.Logger
}

func NewEngine(open Opener, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Engine{open: open, log: logger}
}

// EnsureReady creates or resumes the backend. Calling it on a running backend
// does nothing.
func (e *Engine) EnsureReady() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.port == nil {
		if e.open == nil {
			return ErrBackendUnavailable
		}
		p, err := e.open()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		e.port = p
		e.log.Info("Audio backend created")
	}
	if !e.port.IsOpen() {
		if err := e.port.Open(); err != nil {
			return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		e.log.Info("Audio backend resumed")
	}
	return nil
}

func (e *Engine) Send(msg []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.port == nil || !e.port.IsOpen() {
		return ErrBackendUnavailable
	}
	return e.port.Send(msg)
}
