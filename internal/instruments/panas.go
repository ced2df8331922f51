package instruments

const (
	PANASCName = "PANAS-C"

	PositiveAffect = "positive_affect"
	NegativeAffect = "negative_affect"
)

var (
	panasPositiveWords = []string{
		"Interested", "Excited", "Happy", "Strong", "Energetic", "Cheerful",
		"Active", "Proud", "Joyful", "Delighted", "Lively",
	}
	panasNegativeWords = []string{
		"Sad", "Frightened", "Ashamed", "Upset", "Nervous", "Guilty", "Scared",
		"Miserable", "Jittery", "Afraid", "Lonely", "Mad", "Disgusted", "Blue",
		"Gloomy", "Hostile",
	}
)

// NewPANASC builds the Positive and Negative Affect Schedule for Children.
// Statistics are emitted for both affect blocks and for all items together.
func NewPANASC() *Instrument {
	questions := items(PositiveAffect, FivePointAffect, true, panasPositiveWords...)
	questions = append(questions, items(NegativeAffect, FivePointAffect, true, panasNegativeWords...)...)
	for i := range questions {
		questions[i].Preprompt = "Feeling or emotion:"
	}

	return NewInstrument(Definition{
		Name:                 PANASCName,
		Description:          "Positive and Negative Affect Schedule for Children: how often feelings were experienced during the past few weeks.",
		ObservationPreprompt: "{player_name} reported how they have been feeling.",
		Preprompt:            "Indicate to what extent you have felt this way during the past few weeks.",
		Dimensions:           []string{PositiveAffect, NegativeAffect},
		Questions:            questions,
		Subscales: []Subscale{
			{Prefix: "PANAS_C_Total", Sum: true, Mean: true},
			{Prefix: "PANAS_C_PA", Dimensions: []string{PositiveAffect}, Sum: true, Mean: true},
			{Prefix: "PANAS_C_NA", Dimensions: []string{NegativeAffect}, Sum: true, Mean: true},
		},
	})
}
