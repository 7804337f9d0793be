package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/pianolab/chord"
	"github.com/jsphweid/pianolab/constants"
	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/model"
	"github.com/jsphweid/pianolab/pitch"
	"github.com/jsphweid/pianolab/report"
	"github.com/jsphweid/pianolab/scale"
	"github.com/jsphweid/pianolab/voicing"
	"github.com/jsphweid/pianolab/widget"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var errUnknownMode = errors.New("unknown mode")

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default PIANOLAB_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord, scale and voicing calculators as JSON",
	Long:  `Serves the chord, scale and voicing calculators as JSON for a browser keyboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = constants.GetServeAddr()
		}
		return serve(addr)
	},
}

func serve(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(constants.GetAllowedOrigins()),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logging.GetGlobalLogger().Info("Listening", logging.Fields{"addr": addr})
	return srv.ListenAndServe()
}

// Handler is the full bridge: routes behind CORS and request tracing.
func Handler(origins []string) http.Handler {
	router := NewRouter()
	router.Use(traceRequests)
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet},
	}).Handler(router)
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chords/{root}/{quality}", handleChord).Methods(http.MethodGet)
	router.HandleFunc("/voicings/{root}/{quality}/{policy}", handleVoicing).Methods(http.MethodGet)
	router.HandleFunc("/scales/{key}/{mode}", handleScale).Methods(http.MethodGet)
	router.HandleFunc("/scales/{key}/{mode}/degrees/{degree}", handleDegree).Methods(http.MethodGet)
	router.HandleFunc("/progressions/{key}/{mode}", handleProgression).Methods(http.MethodGet)
	router.HandleFunc("/songs", handleSongs).Methods(http.MethodGet)
	return router
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func traceRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tmpl, err := cur.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}

		start := time.Now()
		ctx, finish := report.StartRequest(r.Context(), route)
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(ctx))
		finish(sw.status)

		took := time.Since(start)
		logging.GetGlobalLogger().Debug("Served request", logging.Fields{
			"route":  route,
			"status": sw.status,
			"took":   took,
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.GetGlobalLogger().Error(err, "Could not encode response")
	}
}

// writeError maps lookup misses to 404 and everything else to 400.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	for _, target := range []error{
		pitch.ErrInvalidNoteName,
		chord.ErrUnknownQuality,
		voicing.ErrUnknownPolicy,
		scale.ErrUnknownScale,
		widget.ErrUnknownSong,
		errUnknownMode,
	} {
		if errors.Is(err, target) {
			status = http.StatusNotFound
			break
		}
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func parseMode(s string) (chord.Mode, error) {
	switch m := chord.Mode(s); m {
	case chord.Major, chord.Minor:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownMode, s)
}

func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return n, nil
}

func handleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	inversion, err := intQuery(r, "inversion", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := chord.NewRequest(vars["root"], vars["quality"], inversion)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, widget.NewChordView(req))
}

func handleVoicing(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	root, err := pitch.LookupRoot(vars["root"])
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := voicing.NewRequest(vars["quality"], root.Class, vars["policy"])
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := req.Place()
	if err != nil {
		writeError(w, err)
		return
	}
	all := v.All()
	res := model.VoicingResponse{
		Root:     root.Name,
		Quality:  req.Quality.Key,
		Policy:   string(req.Policy),
		Bass:     int(v.Bass),
		Pitches:  make([]int, len(all)),
		Notes:    make([]string, len(all)),
		Sonority: chord.Key(all),
	}
	for i, p := range all {
		res.Pitches[i] = int(p)
		res.Notes[i] = root.Spell(p)
	}
	writeJSON(w, http.StatusOK, res)
}

func lookupScale(vars map[string]string) (scale.Definition, error) {
	mode, err := parseMode(vars["mode"])
	if err != nil {
		return scale.Definition{}, err
	}
	return scale.Lookup(vars["key"], mode)
}

func handleScale(w http.ResponseWriter, r *http.Request) {
	def, err := lookupScale(mux.Vars(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, widget.NewLadderView(def, nil))
}

func handleDegree(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	def, err := lookupScale(vars)
	if err != nil {
		writeError(w, err)
		return
	}
	degree, err := strconv.Atoi(vars["degree"])
	if err != nil {
		writeError(w, fmt.Errorf("degree must be an integer, got %q", vars["degree"]))
		return
	}
	if degree < 0 || degree > 6 {
		writeError(w, fmt.Errorf("degree must be 0 to 6, got %d", degree))
		return
	}
	view, err := widget.NewDegreeView(def, degree)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func handleProgression(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if !slices.Contains(chord.ProgressionKeys, vars["key"]) {
		writeError(w, fmt.Errorf("%w: no progression in %q", pitch.ErrInvalidNoteName, vars["key"]))
		return
	}
	key, err := pitch.LookupRoot(vars["key"])
	if err != nil {
		writeError(w, err)
		return
	}
	mode, err := parseMode(vars["mode"])
	if err != nil {
		writeError(w, err)
		return
	}
	policy := voicing.CloseMid
	if raw := r.URL.Query().Get("voicing"); raw != "" {
		if policy, err = voicing.ParsePolicy(raw); err != nil {
			writeError(w, err)
			return
		}
	}

	res := model.ProgressionResponse{Key: key.Name, Mode: string(mode), Voicing: string(policy)}
	for _, step := range chord.TwoFiveOne(mode) {
		tones, err := widget.PlaceStep(key, step, policy)
		if err != nil {
			writeError(w, err)
			return
		}
		s := model.ProgressionStep{
			Roman:  step.Roman,
			Symbol: step.Symbol(key),
			Bars:   step.Beats / 4,
			Keys:   widget.ProgressionKeyboard.Indices(tones),
		}
		for _, t := range tones {
			s.Pitches = append(s.Pitches, int(t))
			s.Notes = append(s.Notes, key.Spell(t))
		}
		res.Steps = append(res.Steps, s)
	}
	writeJSON(w, http.StatusOK, res)
}

func handleSongs(w http.ResponseWriter, r *http.Request) {
	level, err := intQuery(r, "level", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	if level < 0 || level > 3 {
		writeError(w, fmt.Errorf("level must be 0 to 3, got %d", level))
		return
	}
	res := model.SongsResponse{Level: level, Songs: []model.SongSummary{}}
	for _, s := range widget.SongsAtLevel(level) {
		res.Songs = append(res.Songs, s.Summary())
	}
	writeJSON(w, http.StatusOK, res)
}
