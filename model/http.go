package model

type ErrorResponse struct {
	Error string `json:"detail"`
}

// VoicingResponse is one placed voicing. Pitches include the bass. Sonority
// is the same for any two voicings sounding the same keys.
type VoicingResponse struct {
	Root     string   `json:"root"`
	Quality  string   `json:"quality"`
	Policy   string   `json:"policy"`
	Bass     int      `json:"bass"`
	Pitches  []int    `json:"pitches"`
	Notes    []string `json:"notes"`
	Sonority string   `json:"sonority"`
}

type ProgressionStep struct {
	Roman   string   `json:"roman"`
	Symbol  string   `json:"symbol"`
	Bars    float64  `json:"bars"`
	Pitches []int    `json:"pitches"`
	Notes   []string `json:"notes"`
	Keys    []int    `json:"keys"`
}

type ProgressionResponse struct {
	Key     string            `json:"key"`
	Mode    string            `json:"mode"`
	Voicing string            `json:"voicing"`
	Steps   []ProgressionStep `json:"steps"`
}

type SongSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
	Hands string `json:"hands"`
}

type SongsResponse struct {
	Level int           `json:"level"`
	Songs []SongSummary `json:"songs"`
}
