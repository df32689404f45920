package intake

import (
	"strings"
	"time"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

// Risk flag values attached to an extraction result
const (
	FlagStatuteOfLimitations = "statute_of_limitations_risk"
	FlagUninsuredMotorist    = "uninsured_motorist"
	FlagMultipleDefendants   = "multiple_defendants"
	FlagPreExistingCondition = "pre_existing_condition"
	FlagLiabilityDisputed    = "liability_disputed"
)

// statuteRiskDays is roughly 20 months against a typical two year limitations
// period for personal injury claims.
const statuteRiskDays = 600

var preExistingKeywords = []string{
	"pre-existing", "prior injury", "previous condition", "prior condition",
}

var liabilityDisputedKeywords = []string{
	"disputed", "dispute", "denied liability", "deny liability", "not at fault",
}

// FlagRisks evaluates a classified result against the full finding set and
// returns risk flags in a fixed order. The evaluation date is injected so
// statute checks are reproducible.
func FlagRisks(result *entities.IntakeExtractionResult, fs entities.FindingSet, today time.Time) []string {
	var flags []string

	if result.IncidentDate != nil {
		daysSince := int(today.Sub(*result.IncidentDate).Hours() / 24)
		if daysSince > statuteRiskDays {
			flags = append(flags, FlagStatuteOfLimitations)
		}
	}

	if result.IncidentType != nil && *result.IncidentType == entities.IncidentTypeAuto &&
		len(result.InsuranceCarriers) == 0 {
		flags = append(flags, FlagUninsuredMotorist)
	}

	if len(result.OtherParties) > 1 {
		flags = append(flags, FlagMultipleDefendants)
	}

	// Keyword scan over every finding value for nuanced signals
	var sb strings.Builder
	for _, f := range fs {
		sb.WriteString(f.Value)
		sb.WriteString(" ")
	}
	allText := strings.ToLower(sb.String())

	if containsAny(allText, preExistingKeywords) {
		flags = append(flags, FlagPreExistingCondition)
	}
	if containsAny(allText, liabilityDisputedKeywords) {
		flags = append(flags, FlagLiabilityDisputed)
	}

	return flags
}
