package intake

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

const atFaultRole = "at-fault party"

// incidentTypeMap normalizes the extractor's case_type vocabulary to the
// incident types cases are filed under.
var incidentTypeMap = map[string]entities.IncidentType{
	"auto_accident":        entities.IncidentTypeAuto,
	"auto accident":        entities.IncidentTypeAuto,
	"slip_fall":            entities.IncidentTypeSlipFall,
	"slip and fall":        entities.IncidentTypeSlipFall,
	"medical_malpractice":  entities.IncidentTypeMedicalMalpractice,
	"medical malpractice":  entities.IncidentTypeMedicalMalpractice,
	"workers_comp":         entities.IncidentTypeWorkplace,
	"workers compensation": entities.IncidentTypeWorkplace,
	"workplace":            entities.IncidentTypeWorkplace,
	"product_liability":    entities.IncidentTypeProductLiability,
	"product liability":    entities.IncidentTypeProductLiability,
	"wrongful_death":       entities.IncidentTypeOther,
	"wrongful death":       entities.IncidentTypeOther,
	"other":                entities.IncidentTypeOther,
}

// facilityKeywords mark a medical_provider value as a facility rather than an
// individual provider.
var facilityKeywords = []string{
	"hospital", "clinic", "center", "centre", "medical", "health", "urgent care",
	"orthopedic", "chiropractic", "chiropractor", "rehab", "rehabilitation",
	"imaging", "radiology", "pharmacy", "er ", "emergency room",
}

// companyKeywords mark an other_party value as a company rather than a person
var companyKeywords = []string{
	"inc", "llc", "corp", "co.", "company", "ltd", "group", "trucking",
	"transport", "logistics", "construction", "properties", "management",
}

var (
	honorificPattern = regexp.MustCompile(`(?i)^(Dr\.?\s+|Doctor\s+)`)
	amountPattern    = regexp.MustCompile(`\$?([\d,]+(?:\.\d+)?)`)
)

// IncidentInfo is the classified metadata slice of an extraction
type IncidentInfo struct {
	Date             *time.Time
	Type             *entities.IncidentType
	Location         *string
	Injuries         []string
	ConfidenceScores map[string]float64
}

// ClassifyIncident maps metadata findings to incident info. An unparseable
// accident date is logged and dropped rather than failing the pipeline.
func ClassifyIncident(fs entities.FindingSet, logger *zap.Logger) IncidentInfo {
	meta := fs.Metadata()
	info := IncidentInfo{ConfidenceScores: map[string]float64{}}

	if f, ok := meta[entities.FieldAccidentDate]; ok && f.Value != "" {
		parsed, err := time.Parse("2006-01-02", f.Value)
		if err != nil {
			logger.Warn("could not parse accident date", zap.String("raw_date", f.Value))
		} else {
			info.Date = &parsed
		}
	}

	if f, ok := meta[entities.FieldCaseType]; ok && f.Value != "" {
		mapped, ok := incidentTypeMap[strings.ToLower(strings.TrimSpace(f.Value))]
		if !ok {
			mapped = entities.IncidentTypeOther
		}
		info.Type = &mapped
	}

	if f, ok := meta[entities.FieldIncidentLocation]; ok && f.Value != "" {
		location := f.Value
		info.Location = &location
	}

	if f, ok := meta[entities.FieldInjuries]; ok && f.Value != "" {
		for _, part := range strings.Split(f.Value, ",") {
			if injury := strings.TrimSpace(part); injury != "" {
				info.Injuries = append(info.Injuries, injury)
			}
		}
	}

	for field, f := range meta {
		if f.Confidence != "" {
			info.ConfidenceScores[field] = f.Confidence.Score()
		}
	}

	return info
}

// ClassifyParties maps other_party findings to party records, splitting
// company entities from individuals by keyword.
func ClassifyParties(fs entities.FindingSet) []entities.PartyRecord {
	var parties []entities.PartyRecord
	for _, f := range fs.Individuals(entities.FieldOtherParty) {
		value := strings.TrimSpace(f.Value)
		if value == "" {
			continue
		}

		record := entities.PartyRecord{
			Role:       atFaultRole,
			Provenance: provenanceFor(f, value),
		}
		if containsAny(strings.ToLower(value), companyKeywords) {
			record.CompanyName = value
		} else {
			record.FirstName, record.LastName = splitName(value)
		}
		parties = append(parties, record)
	}
	return parties
}

// ClassifyMedical maps medical_provider findings to provider records. Values
// matching a facility keyword become facility records; the rest are treated
// as individual providers with any honorific stripped.
func ClassifyMedical(fs entities.FindingSet) []entities.ProviderRecord {
	var providers []entities.ProviderRecord
	for _, f := range fs.Individuals(entities.FieldMedicalProvider) {
		value := strings.TrimSpace(f.Value)
		if value == "" {
			continue
		}

		record := entities.ProviderRecord{Provenance: provenanceFor(f, value)}
		if containsAny(strings.ToLower(value), facilityKeywords) {
			record.FacilityName = value
		} else {
			name := strings.TrimSpace(honorificPattern.ReplaceAllString(value, ""))
			record.FirstName, record.LastName = splitName(name)
		}
		providers = append(providers, record)
	}
	return providers
}

// ClassifyInsurance maps insurance_provider findings to carrier records
func ClassifyInsurance(fs entities.FindingSet) []entities.CarrierRecord {
	var carriers []entities.CarrierRecord
	for _, f := range fs.Individuals(entities.FieldInsuranceProvider) {
		value := strings.TrimSpace(f.Value)
		if value == "" {
			continue
		}
		carriers = append(carriers, entities.CarrierRecord{
			CompanyName:  value,
			CoverageType: entities.CoverageTypeLiability,
		})
	}
	return carriers
}

// ClassifyDamages maps financial_expense findings to damage records. The
// category comes from a keyword scan of the value; an embedded currency-like
// number becomes the estimated amount.
func ClassifyDamages(fs entities.FindingSet) []entities.DamageRecord {
	var damages []entities.DamageRecord
	for _, f := range fs.Individuals(entities.FieldFinancialExpense) {
		value := strings.TrimSpace(f.Value)
		if value == "" {
			continue
		}
		damages = append(damages, entities.DamageRecord{
			Category:        classifyDamageCategory(strings.ToLower(value)),
			Description:     value,
			EstimatedAmount: parseAmount(value),
			Provenance:      provenanceFor(f, value),
		})
	}
	return damages
}

func classifyDamageCategory(lower string) entities.DamageCategory {
	switch {
	case containsAny(lower, []string{"wage", "lost income", "lost earnings"}):
		return entities.DamageCategoryLostWages
	case strings.Contains(lower, "future") && strings.Contains(lower, "medical"):
		return entities.DamageCategoryFutureMedical
	case containsAny(lower, []string{"medical", "hospital", "doctor", "bill", "treatment"}):
		return entities.DamageCategoryMedical
	case containsAny(lower, []string{"property", "vehicle", "car", "truck", "repair"}):
		return entities.DamageCategoryProperty
	default:
		return entities.DamageCategoryOther
	}
}

// parseAmount returns the first currency-like number in the value, or nil
func parseAmount(value string) *float64 {
	match := amountPattern.FindStringSubmatch(value)
	if match == nil {
		return nil
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
	if err != nil {
		return nil
	}
	return &amount
}

// splitName splits a full name on the first space. A single token is treated
// as a last name.
func splitName(full string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(full), " ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return "", parts[0]
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

func provenanceFor(f entities.Finding, fallback string) entities.Provenance {
	cited := f.Quote
	if cited == "" {
		cited = fallback
	}
	confidence := f.Confidence
	if confidence == "" {
		confidence = entities.ConfidenceHigh
	}
	return entities.Provenance{
		CitedText:  cited,
		TurnIndex:  f.FirstTurnIndex,
		Confidence: confidence,
	}
}
