package instruments

import "github.com/SAP-F-2025/surveyor-service/internal/models"

var (
	// SevenPointAgreement is used by CSES-Public
	SevenPointAgreement = models.NewChoiceScale(
		"Strongly disagree",
		"Disagree",
		"Disagree somewhat",
		"Neutral",
		"Agree somewhat",
		"Agree",
		"Strongly agree",
	)

	// FivePointAgreement is used by Perceived Safety and SCS
	FivePointAgreement = models.NewChoiceScale(
		"Strongly disagree",
		"Disagree",
		"Neither agree nor disagree",
		"Agree",
		"Strongly agree",
	)

	FourPointAgreement = models.NewChoiceScale(
		"Strongly disagree",
		"Disagree",
		"Agree",
		"Strongly agree",
	)

	FourPointTruth = models.NewChoiceScale(
		"Not at all true",
		"Hardly true",
		"Moderately true",
		"Exactly true",
	)

	ThreePointTruth = models.NewChoiceScale(
		"Not true",
		"Somewhat true",
		"Certainly true",
	)

	FivePointAffect = models.NewChoiceScale(
		"Very slightly or not at all",
		"A little",
		"Moderately",
		"Quite a bit",
		"Extremely",
	)

	FivePointDistress = models.NewChoiceScale(
		"Not at all",
		"A little bit",
		"Somewhat",
		"Very much",
		"Extremely",
	)

	FourPointIntensity = models.NewChoiceScale(
		"Not at all",
		"Somewhat",
		"Moderately so",
		"Very much so",
	)
)
