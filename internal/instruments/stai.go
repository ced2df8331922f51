package instruments

import (
	"strings"

	"github.com/SAP-F-2025/surveyor-service/internal/models"
)

const STAIY1Name = "STAI-Y1"

// DefaultSTAIPositiveStates are the feelings whose items are reverse-coded
var DefaultSTAIPositiveStates = []string{
	"calm", "secure", "at ease", "comfortable", "self-confident",
	"relaxed", "content", "steady", "pleasant",
}

var staiStatements = []string{
	"I feel calm.",
	"I feel secure.",
	"I am tense.",
	"I feel strained.",
	"I feel at ease.",
	"I feel upset.",
	"I am presently worrying over possible misfortunes.",
	"I feel satisfied.",
	"I feel frightened.",
	"I feel comfortable.",
	"I feel self-confident.",
	"I feel nervous.",
	"I am jittery.",
	"I feel indecisive.",
	"I am relaxed.",
	"I feel content.",
	"I am worried.",
	"I feel confused.",
	"I feel steady.",
	"I feel pleasant.",
}

// NewSTAIY1 builds the State-Trait Anxiety Inventory, state form Y1, scored
// 1..4 per item. Statements describing one of positiveStates are
// reverse-coded; with no argument DefaultSTAIPositiveStates is used.
func NewSTAIY1(positiveStates ...string) *Instrument {
	const dim = "state_anxiety"
	if len(positiveStates) == 0 {
		positiveStates = DefaultSTAIPositiveStates
	}

	questions := make([]models.Question, 0, len(staiStatements))
	for _, statement := range staiStatements {
		questions = append(questions, models.Question{
			Statement: statement,
			Dimension: dim,
			Choices:   FourPointIntensity,
			Ascending: !describesState(statement, positiveStates),
		})
	}

	return NewInstrument(Definition{
		Name:                 STAIY1Name,
		Description:          "State-Trait Anxiety Inventory, form Y1: how a person feels right now.",
		ObservationPreprompt: "{player_name} described how they feel right now.",
		Preprompt:            "Indicate how you feel right now, that is, at this moment.",
		Dimensions:           []string{dim},
		Questions:            questions,
		Shift:                1,
		Subscales:            totalScale("STAI_Y1_Total"),
	})
}

func describesState(statement string, states []string) bool {
	s := strings.ToLower(strings.TrimSuffix(statement, "."))
	for _, state := range states {
		state = strings.ToLower(state)
		if s == "i feel "+state || s == "i am "+state {
			return true
		}
	}
	return false
}
