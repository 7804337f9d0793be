package widget

// Duration is a written note value.
type Duration string

const (
	Quarter Duration = "quarter"
	Half    Duration = "half"
	Whole   Duration = "whole"
)

func (d Duration) Beats() float64 {
	switch d {
	case Half:
		return 2
	case Whole:
		return 4
	}
	return 1
}

type Hands string

const (
	RightHand Hands = "RH"
	LeftHand  Hands = "LH"
	BothHands Hands = "Both"
)

type NoteStep struct {
	Pitch    string
	Duration Duration
}

type Song struct {
	ID    string
	Title string
	Level int
	Hands Hands
	Notes []NoteStep
}

var Songs = []Song{
	{
		ID: "mary", Title: "Mary Had a Little Lamb", Level: 1, Hands: RightHand,
		Notes: []NoteStep{
			{"E4", Quarter}, {"D4", Quarter}, {"C4", Quarter}, {"D4", Quarter},
			{"E4", Quarter}, {"E4", Quarter}, {"E4", Half}, {"D4", Quarter},
			{"D4", Quarter}, {"D4", Half}, {"E4", Quarter}, {"G4", Quarter},
			{"G4", Half}, {"E4", Quarter}, {"D4", Quarter}, {"C4", Quarter},
			{"D4", Quarter}, {"E4", Quarter}, {"E4", Quarter}, {"E4", Quarter},
			{"E4", Quarter}, {"D4", Quarter}, {"D4", Quarter}, {"E4", Quarter},
			{"D4", Quarter}, {"C4", Whole},
		},
	},
	{
		ID: "jingle", Title: "Jingle Bells", Level: 1, Hands: RightHand,
		Notes: []NoteStep{
			{"E4", Quarter}, {"E4", Quarter}, {"E4", Half}, {"E4", Quarter},
			{"E4", Quarter}, {"E4", Half}, {"E4", Quarter}, {"G4", Quarter},
			{"C4", Quarter}, {"D4", Quarter}, {"E4", Whole},
		},
	},
	{
		ID: "lightly", Title: "Lightly Row (Kortjakje)", Level: 1, Hands: RightHand,
		Notes: []NoteStep{
			{"G4", Quarter}, {"E4", Quarter}, {"E4", Half}, {"F4", Quarter},
			{"D4", Quarter}, {"D4", Half}, {"C4", Quarter}, {"D4", Quarter},
			{"E4", Quarter}, {"F4", Quarter}, {"G4", Quarter}, {"G4", Quarter},
			{"G4", Half},
		},
	},
	{
		ID: "jacob", Title: "Vader Jacob", Level: 1, Hands: RightHand,
		Notes: []NoteStep{
			{"C4", Quarter}, {"D4", Quarter}, {"E4", Quarter}, {"C4", Quarter},
			{"C4", Quarter}, {"D4", Quarter}, {"E4", Quarter}, {"C4", Quarter},
			{"E4", Quarter}, {"F4", Quarter}, {"G4", Half}, {"E4", Quarter},
			{"F4", Quarter}, {"G4", Half},
		},
	},
	{
		ID: "scale_c", Title: "C Major Scale (Up)", Level: 1, Hands: RightHand,
		Notes: []NoteStep{
			{"C4", Quarter}, {"D4", Quarter}, {"E4", Quarter}, {"F4", Quarter},
			{"G4", Whole},
		},
	},
	{
		ID: "clair", Title: "Au Clair de la Lune", Level: 1, Hands: RightHand,
		Notes: []NoteStep{
			{"C4", Quarter}, {"C4", Quarter}, {"C4", Quarter}, {"D4", Quarter},
			{"E4", Half}, {"D4", Half}, {"C4", Quarter}, {"E4", Quarter},
			{"D4", Quarter}, {"D4", Quarter}, {"C4", Whole},
		},
	},
	{
		ID: "twinkle", Title: "Twinkle Twinkle Little Star", Level: 2, Hands: RightHand,
		Notes: []NoteStep{
			{"C4", Quarter}, {"C4", Quarter}, {"G4", Quarter}, {"G4", Quarter},
			{"A4", Quarter}, {"A4", Quarter}, {"G4", Half}, {"F4", Quarter},
			{"F4", Quarter}, {"E4", Quarter}, {"E4", Quarter}, {"D4", Quarter},
			{"D4", Quarter}, {"C4", Half}, {"G4", Quarter}, {"G4", Quarter},
			{"F4", Quarter}, {"F4", Quarter}, {"E4", Quarter}, {"E4", Quarter},
			{"D4", Half}, {"G4", Quarter}, {"G4", Quarter}, {"F4", Quarter},
			{"F4", Quarter}, {"E4", Quarter}, {"E4", Quarter}, {"D4", Half},
			{"C4", Quarter}, {"C4", Quarter}, {"G4", Quarter}, {"G4", Quarter},
			{"A4", Quarter}, {"A4", Quarter}, {"G4", Half}, {"F4", Quarter},
			{"F4", Quarter}, {"E4", Quarter}, {"E4", Quarter}, {"D4", Quarter},
			{"D4", Quarter}, {"C4", Whole},
		},
	},
	{
		ID: "london", Title: "London Bridge", Level: 2, Hands: RightHand,
		Notes: []NoteStep{
			{"G4", Quarter}, {"A4", Quarter}, {"G4", Quarter}, {"F4", Quarter},
			{"E4", Quarter}, {"F4", Quarter}, {"G4", Half}, {"D4", Quarter},
			{"E4", Quarter}, {"F4", Half}, {"E4", Quarter}, {"F4", Quarter},
			{"G4", Half},
		},
	},
	{
		ID: "saints", Title: "Oh When The Saints", Level: 2, Hands: RightHand,
		Notes: []NoteStep{
			{"C4", Quarter}, {"E4", Quarter}, {"F4", Quarter}, {"G4", Whole},
			{"C4", Quarter}, {"E4", Quarter}, {"F4", Quarter}, {"G4", Whole},
			{"C4", Quarter}, {"E4", Quarter}, {"F4", Quarter}, {"G4", Half},
			{"E4", Half}, {"C4", Half}, {"E4", Half}, {"D4", Whole},
		},
	},
	{
		ID: "long", Title: "Long, Long Ago", Level: 2, Hands: RightHand,
		Notes: []NoteStep{
			{"C4", Quarter}, {"C4", Quarter}, {"D4", Quarter}, {"E4", Quarter},
			{"F4", Quarter}, {"E4", Quarter}, {"D4", Quarter}, {"C4", Quarter},
			{"D4", Quarter}, {"E4", Quarter}, {"F4", Quarter}, {"E4", Quarter},
			{"D4", Quarter}, {"D4", Quarter}, {"D4", Half},
		},
	},
	{
		ID: "ode", Title: "Ode to Joy", Level: 3, Hands: RightHand,
		Notes: []NoteStep{
			{"E4", Quarter}, {"E4", Quarter}, {"F4", Quarter}, {"G4", Quarter},
			{"G4", Quarter}, {"F4", Quarter}, {"E4", Quarter}, {"D4", Quarter},
			{"C4", Quarter}, {"C4", Quarter}, {"D4", Quarter}, {"E4", Quarter},
			{"E4", Quarter}, {"D4", Quarter}, {"D4", Half},
		},
	},
	{
		ID: "surprise", Title: "Surprise Symphony (Haydn)", Level: 3, Hands: BothHands,
		Notes: []NoteStep{
			{"C4", Quarter}, {"C4", Quarter}, {"E4", Quarter}, {"E4", Quarter},
			{"G4", Quarter}, {"G4", Quarter}, {"E4", Half}, {"F4", Quarter},
			{"F4", Quarter}, {"D4", Quarter}, {"D4", Quarter}, {"B3", Quarter},
			{"B3", Quarter}, {"C4", Half},
		},
	},
	{
		ID: "row", Title: "Row Row Row Your Boat", Level: 3, Hands: RightHand,
		Notes: []NoteStep{
			{"C4", Quarter}, {"C4", Quarter}, {"C4", Quarter}, {"D4", Quarter},
			{"E4", Quarter}, {"E4", Quarter}, {"D4", Quarter}, {"E4", Quarter},
			{"F4", Quarter}, {"G4", Whole},
		},
	},
	{
		ID: "musette", Title: "Musette (Bach)", Level: 3, Hands: RightHand,
		Notes: []NoteStep{
			{"G4", Quarter}, {"D4", Quarter}, {"G4", Quarter}, {"D4", Quarter},
			{"G4", Quarter}, {"D4", Quarter}, {"G4", Half}, {"F4", Quarter},
			{"E4", Quarter}, {"D4", Quarter}, {"C4", Quarter}, {"D4", Whole},
		},
	},
}
