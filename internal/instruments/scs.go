package instruments

const SCSName = "SCS"

// NewSCS builds the School Connectedness Scale
func NewSCS() *Instrument {
	const dim = "school_connectedness"
	return NewInstrument(Definition{
		Name:                 SCSName,
		Description:          "School Connectedness Scale: the sense of belonging and closeness to people at school.",
		ObservationPreprompt: "{player_name} described their connection to their school.",
		Preprompt:            "Indicate how much you agree with the following statement about your school.",
		Dimensions:           []string{dim},
		Questions: items(dim, FivePointAgreement, true,
			"I feel close to people at this school.",
			"I feel like I am part of this school.",
			"I am happy to be at this school.",
			"The teachers at this school treat students fairly.",
			"I feel safe in my school.",
		),
		Subscales: []Subscale{{Prefix: "SCS", Sum: true, Mean: true}},
	})
}
