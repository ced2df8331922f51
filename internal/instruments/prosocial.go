package instruments

const ProsocialName = "Prosocial"

// NewProsocial builds the prosocial subscale of the Strengths and
// Difficulties Questionnaire, scored 0..2 per item.
func NewProsocial() *Instrument {
	const dim = "prosocial"
	return NewInstrument(Definition{
		Name:                 ProsocialName,
		Description:          "Strengths and Difficulties Questionnaire, prosocial behaviour subscale.",
		ObservationPreprompt: "{player_name} described how they behave towards others.",
		Preprompt:            "Thinking about the last six months, indicate how true the following statement is for you.",
		Dimensions:           []string{dim},
		Questions: items(dim, ThreePointTruth, true,
			"I try to be nice to other people. I care about their feelings.",
			"I usually share with others, for example food, games, pens.",
			"I am helpful if someone is hurt, upset or feeling ill.",
			"I am kind to younger children.",
			"I often offer to help others (parents, teachers, children).",
		),
		Subscales: totalScale("Prosocial_Total"),
	})
}
