package instruments

const SPINName = "SPIN"

// NewSPIN builds the Social Phobia Inventory
func NewSPIN() *Instrument {
	const dim = "social_anxiety"
	return NewInstrument(Definition{
		Name:                 SPINName,
		Description:          "Social Phobia Inventory: fear, avoidance and physiological discomfort in social situations.",
		ObservationPreprompt: "{player_name} described how social situations affect them.",
		Preprompt:            "Indicate how much the following problem has bothered you during the past week.",
		Dimensions:           []string{dim},
		Questions: items(dim, FivePointDistress, true,
			"I am afraid of people in authority.",
			"I am bothered by blushing in front of people.",
			"Parties and social events scare me.",
			"I avoid talking to people I don't know.",
			"Being criticized scares me a lot.",
			"Fear of embarrassment causes me to avoid doing things or speaking to people.",
			"Sweating in front of people causes me distress.",
			"I avoid going to parties.",
			"I avoid activities in which I am the center of attention.",
			"Talking to strangers scares me.",
			"I avoid having to give speeches.",
			"I would do anything to avoid being criticized.",
			"Heart palpitations bother me when I am around people.",
			"I am afraid of doing things when people might be watching.",
			"Being embarrassed or looking stupid are among my worst fears.",
			"I avoid speaking to anyone in authority.",
			"Trembling or shaking in front of others is distressing to me.",
		),
		Subscales: totalScale("SPIN_Total"),
	})
}
