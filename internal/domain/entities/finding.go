package entities

// FindingKind distinguishes one-per-field metadata findings from repeatable
// individual findings
type FindingKind string

const (
	FindingKindMetadata   FindingKind = "metadata"
	FindingKindIndividual FindingKind = "individual"
)

// Finding field vocabulary. Metadata fields appear at most once per
// extraction; individual fields repeat per discovered entity.
const (
	FieldCallerName        = "caller_name"
	FieldLawFirmName       = "law_firm_name"
	FieldCaseType          = "case_type"
	FieldAccidentDate      = "accident_date"
	FieldIncidentLocation  = "incident_location"
	FieldInjuries          = "injuries"
	FieldOtherParty        = "other_party"
	FieldInsuranceProvider = "insurance_provider"
	FieldMedicalProvider   = "medical_provider"
	FieldFinancialExpense  = "financial_expense"
	FieldTreatment         = "treatment"
)

// Confidence is the categorical confidence the extractor assigns to a finding
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Score maps the categorical confidence to a numeric citation score.
// Unknown values collapse to 1.0, matching the persisted default.
func (c Confidence) Score() float64 {
	switch c {
	case ConfidenceHigh:
		return 1.0
	case ConfidenceMedium:
		return 0.7
	case ConfidenceLow:
		return 0.4
	default:
		return 1.0
	}
}

// Finding is one atomic fact extracted from a transcript. Every finding has a
// non-empty Value; null-valued findings are dropped at extraction time.
type Finding struct {
	Kind           FindingKind       `json:"finding_type"`
	Field          string            `json:"field"`
	Value          string            `json:"value"`
	FirstTurnIndex *int              `json:"transcript_index,omitempty"`
	TurnIndices    []int             `json:"transcript_indices,omitempty"`
	Quote          string            `json:"quote,omitempty"`
	Confidence     Confidence        `json:"confidence,omitempty"`
	RelatedTo      map[string]string `json:"related_to,omitempty"`
}

// FindingSet is the immutable result of one extraction call. Consumers must
// not mutate it; classification reads it and produces new values.
type FindingSet []Finding

// Metadata indexes metadata findings by field. Source transcripts are not
// expected to duplicate metadata fields; if one does, the last finding wins.
func (fs FindingSet) Metadata() map[string]Finding {
	meta := make(map[string]Finding)
	for _, f := range fs {
		if f.Kind == FindingKindMetadata {
			meta[f.Field] = f
		}
	}
	return meta
}

// Individuals returns the individual findings for one field, in order.
func (fs FindingSet) Individuals(field string) []Finding {
	var out []Finding
	for _, f := range fs {
		if f.Kind == FindingKindIndividual && f.Field == field {
			out = append(out, f)
		}
	}
	return out
}
