package widget

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/model"
	"github.com/jsphweid/pianolab/pitch"
	"github.com/jsphweid/pianolab/report"
	"github.com/jsphweid/pianolab/scheduler"
	"github.com/jsphweid/pianolab/staff"
	"github.com/jsphweid/pianolab/util"
)

var ErrUnknownSong = errors.New("unknown song")

type HandPosition string

const (
	CentralC HandPosition = "Central C"
	NormalC  HandPosition = "Normal C"
)

// FingerMaps gives the finger number for each note a hand position covers.
var FingerMaps = map[HandPosition]map[string]string{
	NormalC: {
		"C3": "5", "D3": "4", "E3": "3", "F3": "2", "G3": "1",
		"C4": "1", "D4": "2", "E4": "3", "F4": "4", "G4": "5",
	},
	CentralC: {
		"F3": "5", "G3": "4", "A3": "3", "B3": "2", "C4": "1",
		"D4": "2", "E4": "3", "F4": "4", "G4": "5",
	},
}

type Speed string

const (
	Slow   Speed = "Slow"
	Medium Speed = "Medium"
	Fast   Speed = "Fast"
)

var Speeds = map[Speed]float64{Slow: 60, Medium: 90, Fast: 120}

// SongKeyboard runs from C3 to E5.
var SongKeyboard = Keyboard{Start: 48, Keys: 29}

var songTone = scheduler.Envelope{Attack: 0.05, Sustain: 0.5, Release: scheduler.ReleaseTail}

func LookupSong(id string) (Song, error) {
	for _, s := range Songs {
		if s.ID == id {
			return s, nil
		}
	}
	return Song{}, fmt.Errorf("%w: %q", ErrUnknownSong, id)
}

// SongsAtLevel filters the library. Level 0 keeps every song.
func SongsAtLevel(level int) []Song {
	var res []Song
	for _, s := range Songs {
		if level == 0 || s.Level == level {
			res = append(res, s)
		}
	}
	return res
}

func (s Song) Pitches() ([]pitch.Pitch, error) {
	res := make([]pitch.Pitch, len(s.Notes))
	for i, n := range s.Notes {
		p, err := pitch.Parse(n.Pitch)
		if err != nil {
			return nil, fmt.Errorf("song %s note %d: %w", s.ID, i, err)
		}
		res[i] = p
	}
	return res, nil
}

// Clef is bass for left-hand songs.
func (s Song) Clef() staff.Clef {
	if s.Hands == LeftHand {
		return staff.Bass
	}
	return staff.Treble
}

func (s Song) Sequence() (scheduler.Sequence, error) {
	pitches, err := s.Pitches()
	if err != nil {
		return nil, err
	}
	var seq scheduler.Sequence
	for i, n := range s.Notes {
		seq = seq.Append(n.Duration.Beats(), i, tone(pitches[i], songTone))
	}
	return seq, nil
}

// Beats is the length of the song in quarter-note beats.
func (s Song) Beats() float64 {
	beats := make([]float64, len(s.Notes))
	for i, n := range s.Notes {
		beats[i] = n.Duration.Beats()
	}
	return util.Sum(beats)
}

func (s Song) Summary() model.SongSummary {
	return model.SongSummary{ID: s.ID, Title: s.Title, Level: s.Level, Hands: string(s.Hands)}
}

type SongView struct {
	ID           string              `json:"id"`
	Song         model.SongSummary   `json:"song"`
	Songs        []model.SongSummary `json:"songs"`
	Level        int                 `json:"level"`
	Speed        string              `json:"speed"`
	BPM          float64             `json:"bpm"`
	HandPosition string              `json:"hand_position"`
	Clef         string              `json:"clef"`
	IsPlaying    bool                `json:"is_playing"`
	CurrentIndex int                 `json:"current_index"`
	ActiveNote   string              `json:"active_note,omitempty"`
	Finger       string              `json:"finger,omitempty"`
	ActiveKeys   []int               `json:"active_keys"`
	SongKeys     []int               `json:"song_keys"`
}

// SongPlayer plays one song through once, following along note by note.
type SongPlayer struct {
	mu    sync.Mutex
	id    string
	log   logging.Logger
	sched *scheduler.Scheduler

	song    Song
	speed   Speed
	hand    HandPosition
	level   int
	current int
	// playing lasts until the last note has finished sounding, which is
	// after the scheduler has handed out its final event.
	playing bool
	onNote  func(index int)
}

// NewSongPlayer starts on the first song. onNote, when set, is called as each
// note sounds and with -1 when the song ends.
func NewSongPlayer(opts Options, onNote func(index int)) *SongPlayer {
	s := &SongPlayer{song: Songs[0], speed: Medium, hand: CentralC, current: -1, onNote: onNote}
	s.id, s.log = opts.logger("song")
	s.sched = opts.scheduler(s.log, s.handleNote, s.handleEnd)
	return s
}

func (s *SongPlayer) handleNote(_ int, ev scheduler.Event) {
	s.setCurrent(ev.Payload.(int))
}

func (s *SongPlayer) handleEnd() {
	s.mu.Lock()
	s.playing = false
	s.mu.Unlock()
	s.setCurrent(-1)
}

func (s *SongPlayer) setCurrent(i int) {
	s.mu.Lock()
	s.current = i
	cb := s.onNote
	s.mu.Unlock()
	if cb != nil {
		cb(i)
	}
}

func (s *SongPlayer) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq, err := s.song.Sequence()
	if err != nil {
		return err
	}
	req, err := scheduler.NewRequest(seq, Speeds[s.speed], false)
	if err != nil {
		return err
	}
	if err := s.sched.Start(req); err != nil {
		report.Notice(err, "Could not play the song", logging.Fields{"song": s.song.ID})
		return err
	}
	s.playing = true
	s.log.Info("Playing song", logging.Fields{"song": s.song.ID, "speed": s.speed})
	return nil
}

func (s *SongPlayer) Stop() {
	s.sched.Stop()
	s.mu.Lock()
	s.current = -1
	s.playing = false
	s.mu.Unlock()
}

func (s *SongPlayer) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

func (s *SongPlayer) Toggle() error {
	if s.IsPlaying() {
		s.Stop()
		return nil
	}
	return s.Play()
}

func (s *SongPlayer) SelectSong(id string) error {
	song, err := LookupSong(id)
	if err != nil {
		return err
	}
	s.Stop()
	s.mu.Lock()
	s.song = song
	s.mu.Unlock()
	return nil
}

// SetSpeed takes effect from the next note.
func (s *SongPlayer) SetSpeed(speed Speed) error {
	bpm, ok := Speeds[speed]
	if !ok {
		return fmt.Errorf("unknown speed %q", speed)
	}
	s.mu.Lock()
	s.speed = speed
	s.mu.Unlock()
	return s.sched.SetTempo(bpm)
}

func (s *SongPlayer) SetHandPosition(hand HandPosition) error {
	if _, ok := FingerMaps[hand]; !ok {
		return fmt.Errorf("unknown hand position %q", hand)
	}
	s.mu.Lock()
	s.hand = hand
	s.mu.Unlock()
	return nil
}

// SetLevel filters the song list. It does not change the selected song.
func (s *SongPlayer) SetLevel(level int) error {
	if level < 0 || level > 3 {
		return fmt.Errorf("level must be 0 to 3, got %d", level)
	}
	s.mu.Lock()
	s.level = level
	s.mu.Unlock()
	return nil
}

func (s *SongPlayer) View() (SongView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pitches, err := s.song.Pitches()
	if err != nil {
		return SongView{}, err
	}
	var songs []model.SongSummary
	for _, song := range SongsAtLevel(s.level) {
		songs = append(songs, song.Summary())
	}
	v := SongView{
		ID:           s.id,
		Song:         s.song.Summary(),
		Songs:        songs,
		Level:        s.level,
		Speed:        string(s.speed),
		BPM:          Speeds[s.speed],
		HandPosition: string(s.hand),
		Clef:         string(s.song.Clef()),
		IsPlaying:    s.playing,
		CurrentIndex: s.current,
		ActiveKeys:   []int{},
		SongKeys:     SongKeyboard.Indices(util.Unique(pitches)),
	}
	if s.current >= 0 && s.current < len(s.song.Notes) {
		note := s.song.Notes[s.current]
		v.ActiveNote = note.Pitch
		v.Finger = FingerMaps[s.hand][note.Pitch]
		v.ActiveKeys = SongKeyboard.Indices(pitches[s.current : s.current+1])
	}
	return v, nil
}
