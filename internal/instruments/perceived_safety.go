package instruments

const PerceivedSafetyName = "PerceivedSafety"

func NewPerceivedSafety() *Instrument {
	const dim = "perceived_safety"
	return NewInstrument(Definition{
		Name:                 PerceivedSafetyName,
		Description:          "Perceived Safety: how physically and emotionally safe a student feels at school.",
		ObservationPreprompt: "{player_name} described how safe they feel at school.",
		Preprompt:            "Indicate how much you agree with the following statement about your school.",
		Dimensions:           []string{dim},
		Questions: items(dim, FivePointAgreement, true,
			"I feel safe in my classroom.",
			"I feel safe in the hallways and common areas of my school.",
			"I feel safe on the way to and from school.",
			"Adults at my school keep students safe.",
			"I know whom to go to if I feel unsafe at school.",
			"I feel safe expressing my opinions in class.",
		),
		Subscales: []Subscale{{Prefix: "PerceivedSafety", Sum: true, Mean: true}},
	})
}
