package instruments

import "github.com/SAP-F-2025/surveyor-service/internal/models"

const GMSName = "GMS"

// NewGMS builds the Growth Mindset Scale. Fixed-mindset statements are
// reverse-coded so higher scores mean a stronger growth mindset.
func NewGMS() *Instrument {
	const dim = "growth_mindset"
	statement := func(text string, growth bool) models.Question {
		return models.Question{Statement: text, Dimension: dim, Choices: FourPointAgreement, Ascending: growth}
	}

	return NewInstrument(Definition{
		Name:                 GMSName,
		Description:          "Growth Mindset Scale: beliefs about whether intelligence can be developed.",
		ObservationPreprompt: "{player_name} shared beliefs about intelligence.",
		Preprompt:            "Indicate how much you agree with the following statement about intelligence.",
		Dimensions:           []string{dim},
		Questions: []models.Question{
			statement("You have a certain amount of intelligence, and you really can't do much to change it.", false),
			statement("Your intelligence is something about you that you can't change very much.", false),
			statement("No matter who you are, you can significantly change your intelligence level.", true),
			statement("To be honest, you can't really change how intelligent you are.", false),
			statement("You can always substantially change how intelligent you are.", true),
			statement("You can learn new things, but you can't really change your basic intelligence.", false),
			statement("No matter how much intelligence you have, you can always change it quite a bit.", true),
			statement("You can change even your basic intelligence level considerably.", true),
		},
		Shift:     1,
		Subscales: totalScale("GMS_Total"),
	})
}
