package report

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lexintake/intake-service/errors"
	"github.com/lexintake/intake-service/internal/domain/entities"
	"github.com/lexintake/intake-service/pkg/ai"
)

const validReport = `{
	"incident_summary": "Jane Smith was rear-ended at an intersection.",
	"damages_summary": [{"damage_type": "medical", "description": "hospital bills", "amount": 12500, "provider": null}],
	"liability_summary": {"liable_party": "John Doe", "basis": "rear-end collision", "confidence": "high", "caveats": null},
	"insurance_summary": [{"provider_name": "State Farm", "policy_type": "auto", "related_to": "other_party", "claim_number": null, "notes": ""}],
	"case_viability": {"recommendation": "yes", "viability_score": 72, "reasoning": [], "missing_info": [], "red_flags": []}
}`

// seedFullCase loads a store with one complete auto case and returns its ID
func seedFullCase(store *caseStore) uuid.UUID {
	firm := entities.NewLawFirm("Henderson & Associates")
	store.firms = append(store.firms, firm)

	client := entities.NewClient(firm.ID, "Jane", "Smith")
	client.Phone = "555-0100"
	store.clients = append(store.clients, client)

	kase := entities.NewCase(client.ID, entities.IncidentTypeAuto)
	incidentDate := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	kase.IncidentDate = &incidentDate
	kase.IncidentLocation = "Main St and 5th Ave, Springfield"
	kase.Description = "Client rear-ended while stopped at a light."
	store.cases = append(store.cases, kase)

	party := &entities.OtherParty{
		ID: uuid.New(), CaseID: kase.ID,
		FirstName: "John", LastName: "Doe", Role: "at-fault party",
	}
	store.parties = append(store.parties, party)

	clientCarrier := &entities.InsuranceProvider{
		ID: uuid.New(), InsuredClientID: &client.ID,
		CompanyName: "GEICO", CoverageType: entities.CoverageTypeHealth,
	}
	partyCarrier := &entities.InsuranceProvider{
		ID: uuid.New(), InsuredOtherPartyID: &party.ID,
		CompanyName: "State Farm", CoverageType: entities.CoverageTypeLiability,
	}
	store.carriers = append(store.carriers, clientCarrier, partyCarrier)

	facility := &entities.MedicalFacility{ID: uuid.New(), Name: "St. Mary's Hospital"}
	store.facilities = append(store.facilities, facility)

	provider := &entities.MedicalProvider{
		ID: uuid.New(), FacilityID: &facility.ID,
		FirstName: "Robert", LastName: "Chen", Specialty: "Orthopedics",
	}
	store.providers = append(store.providers, provider)

	billed := 12500.0
	treatment := &entities.Treatment{
		ID: uuid.New(), CaseID: kase.ID, ProviderID: &provider.ID,
		TreatmentType: "Physical therapy", Diagnosis: "Whiplash", BilledAmount: &billed,
	}
	store.treatments = append(store.treatments, treatment)

	amount := 12500.0
	damage := &entities.Damage{
		ID: uuid.New(), CaseID: kase.ID,
		Category:        entities.DamageCategoryMedical,
		Description:     "Hospital bills",
		EstimatedAmount: &amount,
	}
	store.damages = append(store.damages, damage)

	var turns []entities.TranscriptTurn
	for i := 0; i < 12; i++ {
		turns = append(turns, entities.TranscriptTurn{
			Speaker: "Caller",
			Text:    fmt.Sprintf("turn number %d", i),
		})
	}
	comm := entities.NewCommunication(client.ID, &kase.ID, entities.ChannelTypePhone, turns)
	store.comms = append(store.comms, comm)

	turnIdx := 2
	store.citations = append(store.citations, &entities.Citation{
		ID: uuid.New(), CommunicationID: comm.ID,
		CitationKey: "accident_date", CitedText: "It happened on March 3rd.",
		TurnIndex: &turnIdx, ConfidenceScore: 1.0,
	})

	return kase.ID
}

func TestAnalyzeCaseBuildsDossier(t *testing.T) {
	store := &caseStore{}
	caseID := seedFullCase(store)
	llm := &fakeLLM{response: validReport}
	analyzer := NewAnalyzer(store.repos(), llm, zap.NewNop())

	report, err := analyzer.AnalyzeCase(context.Background(), caseID)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 1, llm.calls)

	dossier := llm.lastUser
	assert.Contains(t, dossier, "CASE ANALYSIS REQUEST")
	assert.Contains(t, dossier, "Case Type: Auto Accident")
	assert.Contains(t, dossier, "Status: Open")
	assert.Contains(t, dossier, "Incident Date: 2025-03-03")
	assert.Contains(t, dossier, "Name: Jane Smith")
	assert.Contains(t, dossier, "Law Firm: Henderson & Associates")
	assert.Contains(t, dossier, "Client rear-ended while stopped at a light.")
	assert.Contains(t, dossier, "- Name: John Doe")
	assert.Contains(t, dossier, "Coverage Type: Health")
	assert.Contains(t, dossier, "Coverage Type: Liability")
	assert.Contains(t, dossier, "- Provider: Dr. Robert Chen (St. Mary's Hospital)")
	assert.Contains(t, dossier, "Specialty: Orthopedics")
	assert.Contains(t, dossier, "- Category: Medical Expenses")
	assert.Contains(t, dossier, "Channel: Phone Call")
	assert.Contains(t, dossier, "Cited Text: It happened on March 3rd.")

	// Client's own carrier is listed before the other party's.
	assert.Less(t, strings.Index(dossier, "GEICO"), strings.Index(dossier, "State Farm"))

	// Transcripts are capped at ten turns.
	assert.Contains(t, dossier, "turn number 9")
	assert.NotContains(t, dossier, "turn number 10")
}

func TestAnalyzeCaseEmptySections(t *testing.T) {
	store := &caseStore{}
	firm := entities.NewLawFirm("Henderson & Associates")
	store.firms = append(store.firms, firm)
	client := entities.NewClient(firm.ID, "Jane", "Smith")
	store.clients = append(store.clients, client)
	kase := entities.NewCase(client.ID, entities.IncidentTypeOther)
	store.cases = append(store.cases, kase)

	llm := &fakeLLM{response: validReport}
	analyzer := NewAnalyzer(store.repos(), llm, zap.NewNop())

	_, err := analyzer.AnalyzeCase(context.Background(), kase.ID)
	require.NoError(t, err)
	assert.Contains(t, llm.lastUser, "No data available.")
	assert.Contains(t, llm.lastUser, "Incident Date: N/A")
}

func TestAnalyzeCaseUnknownCase(t *testing.T) {
	analyzer := NewAnalyzer((&caseStore{}).repos(), &fakeLLM{}, zap.NewNop())

	_, err := analyzer.AnalyzeCase(context.Background(), uuid.New())
	var appErr errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorCode_NOT_FOUND, appErr.Code)
}

func TestAnalyzeCaseMissingSections(t *testing.T) {
	store := &caseStore{}
	caseID := seedFullCase(store)
	llm := &fakeLLM{response: `{"incident_summary": "something happened"}`}
	analyzer := NewAnalyzer(store.repos(), llm, zap.NewNop())

	_, err := analyzer.AnalyzeCase(context.Background(), caseID)
	var appErr errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorCode_ANALYSIS_FAILED, appErr.Code)
}

func TestAnalyzeCaseNonJSONResponse(t *testing.T) {
	store := &caseStore{}
	caseID := seedFullCase(store)
	llm := &fakeLLM{response: "Here is my analysis of the case."}
	analyzer := NewAnalyzer(store.repos(), llm, zap.NewNop())

	_, err := analyzer.AnalyzeCase(context.Background(), caseID)
	var appErr errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorCode_ANALYSIS_FAILED, appErr.Code)
}

func TestAnalyzeCaseNotConfigured(t *testing.T) {
	store := &caseStore{}
	caseID := seedFullCase(store)
	llm := &fakeLLM{err: ai.ErrNotConfigured}
	analyzer := NewAnalyzer(store.repos(), llm, zap.NewNop())

	_, err := analyzer.AnalyzeCase(context.Background(), caseID)
	var appErr errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorCode_LLM_NOT_CONFIGURED, appErr.Code)
}

func TestClampViabilityScore(t *testing.T) {
	tests := []struct {
		name  string
		score string
		want  int
	}{
		{"above range", "250", 100},
		{"below range", "-10", 0},
		{"string score", `"85"`, 85},
		{"missing score", "null", 0},
		{"in range", "72", 72},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &caseStore{}
			caseID := seedFullCase(store)
			response := fmt.Sprintf(`{
				"incident_summary": "s", "damages_summary": [], "liability_summary": {},
				"insurance_summary": [],
				"case_viability": {"recommendation": "neutral", "viability_score": %s}
			}`, tc.score)
			analyzer := NewAnalyzer(store.repos(), &fakeLLM{response: response}, zap.NewNop())

			report, err := analyzer.AnalyzeCase(context.Background(), caseID)
			require.NoError(t, err)
			viability := report["case_viability"].(map[string]interface{})
			assert.Equal(t, tc.want, viability["viability_score"])
		})
	}
}
