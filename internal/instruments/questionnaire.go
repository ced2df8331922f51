package instruments

import (
	"github.com/SAP-F-2025/surveyor-service/internal/models"
)

// Questionnaire is the capability set shared by all instruments
type Questionnaire interface {
	Name() string
	Info() models.InstrumentInfo
	Questions() []models.Question
	Statistics() []string
	ProcessAnswer(respondent, answer string, question models.Question) (string, *float64)
	AggregateResults(answers []models.RespondentAnswer) map[string]float64
}

// Subscale declares one Sum/Mean pair emitted by an instrument. An empty
// Dimensions list covers every item.
type Subscale struct {
	Prefix     string
	Dimensions []string
	Sum        bool
	Mean       bool
}

func (s Subscale) SumName() string  { return s.Prefix + "_Sum" }
func (s Subscale) MeanName() string { return s.Prefix + "_Mean" }

func (s Subscale) covers(dimension string) bool {
	if len(s.Dimensions) == 0 {
		return true
	}
	for _, d := range s.Dimensions {
		if d == dimension {
			return true
		}
	}
	return false
}

// Definition is the static configuration of a multiple-choice instrument
type Definition struct {
	Name                 string
	Description          string
	ObservationPreprompt string
	Preprompt            string
	Dimensions           []string
	Questions            []models.Question
	// Shift is added to every reverse-coded item value, e.g. 1 for 1..N scoring.
	Shift     float64
	Subscales []Subscale
}

// Instrument is a multiple-choice questionnaire built from a Definition
type Instrument struct {
	def Definition
}

func NewInstrument(def Definition) *Instrument {
	questions := make([]models.Question, len(def.Questions))
	for i, q := range def.Questions {
		q.Choices = models.NewChoiceScale(q.Choices...)
		questions[i] = q
	}
	def.Questions = questions
	def.Dimensions = append([]string(nil), def.Dimensions...)
	def.Subscales = append([]Subscale(nil), def.Subscales...)
	return &Instrument{def: def}
}

func (in *Instrument) Name() string {
	return in.def.Name
}

func (in *Instrument) Info() models.InstrumentInfo {
	return models.InstrumentInfo{
		Name:                 in.def.Name,
		Description:          in.def.Description,
		Kind:                 models.KindMultipleChoice,
		ObservationPreprompt: in.def.ObservationPreprompt,
		Preprompt:            in.def.Preprompt,
		Questions:            in.Questions(),
		Dimensions:           append([]string(nil), in.def.Dimensions...),
		Statistics:           in.Statistics(),
	}
}

func (in *Instrument) Questions() []models.Question {
	questions := make([]models.Question, len(in.def.Questions))
	for i, q := range in.def.Questions {
		q.Choices = models.NewChoiceScale(q.Choices...)
		questions[i] = q
	}
	return questions
}

// Statistics lists the emitted statistic names in column order
func (in *Instrument) Statistics() []string {
	var names []string
	for _, s := range in.def.Subscales {
		if s.Sum {
			names = append(names, s.SumName())
		}
		if s.Mean {
			names = append(names, s.MeanName())
		}
	}
	return names
}

// ProcessAnswer maps answer onto the question's scale, applies reverse
// coding and the instrument shift. A nil value means the answer matched no
// choice.
func (in *Instrument) ProcessAnswer(respondent, answer string, question models.Question) (string, *float64) {
	raw, ok := MatchChoice(question.Choices, answer)
	if !ok {
		return question.Dimension, nil
	}
	value := float64(OrdinalValue(raw, question.Choices.Len(), question.Ascending)) + in.def.Shift
	return question.Dimension, &value
}

// AggregateResults computes every subscale over the answers that carry a
// value. Subscales with no values are reported as NaN.
func (in *Instrument) AggregateResults(answers []models.RespondentAnswer) map[string]float64 {
	results := make(map[string]float64, len(in.def.Subscales)*2)
	for _, s := range in.def.Subscales {
		sum, count := 0.0, 0
		for _, a := range answers {
			if !a.HasValue() || !s.covers(a.Dimension) {
				continue
			}
			sum += *a.Value
			count++
		}

		total, mean := models.NaN(), models.NaN()
		if count > 0 {
			total = sum
			mean = sum / float64(count)
		}
		if s.Sum {
			results[s.SumName()] = total
		}
		if s.Mean {
			results[s.MeanName()] = mean
		}
	}
	return results
}

// totalScale is the Sum/Mean pair over all items used by most instruments
func totalScale(prefix string) []Subscale {
	return []Subscale{{Prefix: prefix, Sum: true, Mean: true}}
}

func items(dimension string, choices models.ChoiceScale, ascending bool, statements ...string) []models.Question {
	questions := make([]models.Question, 0, len(statements))
	for _, statement := range statements {
		questions = append(questions, models.Question{
			Statement: statement,
			Dimension: dimension,
			Choices:   choices,
			Ascending: ascending,
		})
	}
	return questions
}
