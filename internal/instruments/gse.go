package instruments

const GSEName = "GSE"

// NewGSE builds the General Self-Efficacy Scale, scored 1..4 per item
func NewGSE() *Instrument {
	const dim = "self_efficacy"
	return NewInstrument(Definition{
		Name:                 GSEName,
		Description:          "General Self-Efficacy Scale: perceived ability to cope with a variety of difficult demands.",
		ObservationPreprompt: "{player_name} described how they cope with difficulties.",
		Preprompt:            "Indicate how true the following statement is for you.",
		Dimensions:           []string{dim},
		Questions: items(dim, FourPointTruth, true,
			"I can always manage to solve difficult problems if I try hard enough.",
			"If someone opposes me, I can find the means and ways to get what I want.",
			"It is easy for me to stick to my aims and accomplish my goals.",
			"I am confident that I could deal efficiently with unexpected events.",
			"Thanks to my resourcefulness, I know how to handle unforeseen situations.",
			"I can solve most problems if I invest the necessary effort.",
			"I can remain calm when facing difficulties because I can rely on my coping abilities.",
			"When I am confronted with a problem, I can usually find several solutions.",
			"If I am in trouble, I can usually think of a solution.",
			"I can usually handle whatever comes my way.",
		),
		Shift:     1,
		Subscales: totalScale("GSE_Total"),
	})
}
