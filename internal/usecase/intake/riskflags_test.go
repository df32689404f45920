package intake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

func TestFlagRisks(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	auto := entities.IncidentTypeAuto
	slipFall := entities.IncidentTypeSlipFall

	t.Run("statute risk past six hundred days", func(t *testing.T) {
		old := today.AddDate(0, 0, -601)
		result := &entities.IntakeExtractionResult{
			IncidentDate: &old,
			IncidentType: &slipFall,
		}
		flags := FlagRisks(result, nil, today)
		assert.Equal(t, []string{FlagStatuteOfLimitations}, flags)
	})

	t.Run("no statute risk at exactly six hundred days", func(t *testing.T) {
		edge := today.AddDate(0, 0, -600)
		result := &entities.IntakeExtractionResult{
			IncidentDate: &edge,
			IncidentType: &slipFall,
		}
		assert.Empty(t, FlagRisks(result, nil, today))
	})

	t.Run("auto incident without carriers", func(t *testing.T) {
		result := &entities.IntakeExtractionResult{IncidentType: &auto}
		flags := FlagRisks(result, nil, today)
		assert.Equal(t, []string{FlagUninsuredMotorist}, flags)
	})

	t.Run("auto incident with a carrier", func(t *testing.T) {
		result := &entities.IntakeExtractionResult{
			IncidentType:      &auto,
			InsuranceCarriers: []entities.CarrierRecord{{CompanyName: "State Farm"}},
		}
		assert.Empty(t, FlagRisks(result, nil, today))
	})

	t.Run("non-auto incident without carriers is not flagged", func(t *testing.T) {
		result := &entities.IntakeExtractionResult{IncidentType: &slipFall}
		assert.Empty(t, FlagRisks(result, nil, today))
	})

	t.Run("multiple defendants", func(t *testing.T) {
		result := &entities.IntakeExtractionResult{
			OtherParties: []entities.PartyRecord{
				{LastName: "Doe"},
				{CompanyName: "Acme Trucking LLC"},
			},
		}
		flags := FlagRisks(result, nil, today)
		assert.Equal(t, []string{FlagMultipleDefendants}, flags)
	})

	t.Run("keyword flags from finding values", func(t *testing.T) {
		fs := entities.FindingSet{
			individualFinding(entities.FieldInjuries, "aggravated a Prior Injury in her back"),
			individualFinding(entities.FieldOtherParty, "the other driver denied liability"),
		}
		flags := FlagRisks(&entities.IntakeExtractionResult{}, fs, today)
		assert.Equal(t, []string{FlagPreExistingCondition, FlagLiabilityDisputed}, flags)
	})

	t.Run("flags come out in a fixed order", func(t *testing.T) {
		old := today.AddDate(0, 0, -700)
		result := &entities.IntakeExtractionResult{
			IncidentDate: &old,
			IncidentType: &auto,
			OtherParties: []entities.PartyRecord{{LastName: "Doe"}, {LastName: "Roe"}},
		}
		fs := entities.FindingSet{
			metaFinding(entities.FieldInjuries, "pre-existing condition, liability disputed"),
		}
		flags := FlagRisks(result, fs, today)
		assert.Equal(t, []string{
			FlagStatuteOfLimitations,
			FlagUninsuredMotorist,
			FlagMultipleDefendants,
			FlagPreExistingCondition,
			FlagLiabilityDisputed,
		}, flags)
	})
}
