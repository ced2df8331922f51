package instruments

import "github.com/SAP-F-2025/surveyor-service/internal/models"

const CSESPublicName = "CSES-Public"

// NewCSESPublic builds the public subscale of the Collective Self-Esteem Scale.
// Items 2 and 4 are reverse-coded.
func NewCSESPublic() *Instrument {
	const dim = "public_collective_self_esteem"
	return NewInstrument(Definition{
		Name:                 CSESPublicName,
		Description:          "Collective Self-Esteem Scale, public subscale: how a person believes others evaluate their social groups.",
		ObservationPreprompt: "{player_name} rated how others view their social groups.",
		Preprompt:            "Consider your memberships in social groups such as your class, your school and your family. Indicate how much you agree with the following statement.",
		Dimensions:           []string{dim},
		Questions: []models.Question{
			{Statement: "Overall, my social groups are considered good by others.", Dimension: dim, Choices: SevenPointAgreement, Ascending: true},
			{Statement: "Most people consider my social groups, on the average, to be more ineffective than other social groups.", Dimension: dim, Choices: SevenPointAgreement, Ascending: false},
			{Statement: "In general, others respect the social groups that I am a member of.", Dimension: dim, Choices: SevenPointAgreement, Ascending: true},
			{Statement: "In general, others think that the social groups I am a member of are unworthy.", Dimension: dim, Choices: SevenPointAgreement, Ascending: false},
		},
		Subscales: []Subscale{{Prefix: "CSES_Public", Mean: true}},
	})
}
