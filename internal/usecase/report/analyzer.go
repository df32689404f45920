package report

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexintake/intake-service/errors"
	"github.com/lexintake/intake-service/internal/domain/entities"
	"github.com/lexintake/intake-service/internal/domain/repositories"
	"github.com/lexintake/intake-service/pkg/ai"
)

// ChatClient is the slice of the LLM client the analyzer needs
type ChatClient interface {
	CompleteJSON(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

const analysisSystemPrompt = `You are a senior legal case analyst AI assistant at a personal injury law firm. You are
given structured data about a legal case pulled from the firm's case management system.
Your job is to analyze this data and produce a structured case evaluation report.

Be precise and conservative. Do NOT invent, assume, or extrapolate facts not present in
the data. If a section lacks sufficient data to make a confident assessment, say so
explicitly and set confidence to "low". Never fabricate dollar amounts, dates, or names.

Produce a JSON report with exactly these five sections:

1. incident_summary
   A concise narrative (3-5 sentences) describing what happened based solely on the
   data provided. Include: who was involved, what occurred, when and where it happened,
   and any immediately relevant context. Do not editorialize.

2. damages_summary
   A structured account of all damages. For each item include:
   - damage_type      : category of damage (medical, property, lost_wages, pain, other)
   - description      : what the damage is
   - amount           : dollar amount as a number, or null if unknown/not provided
   - provider         : associated medical provider name if applicable, or null
   Cover all Treatment and Damages model data. If a treatment has no dollar amount,
   still include it with amount: null.

3. liability_summary
   An assessment of who the most likely liable party is based on the available data.
   Include:
   - liable_party     : name of the individual or entity most likely at fault
   - basis            : the specific facts from the data that support this assessment
   - confidence       : "high", "medium", or "low"
   - caveats          : any missing information that could change this assessment, or null

4. insurance_summary
   An account of all insurance involvement. For each insurer include:
   - provider_name    : name of the insurance company
   - policy_type      : type of coverage (auto, health, liability, umbrella, unknown)
   - related_to       : "client", "other_party", or "unknown"
   - claim_number     : claim number if available, or null
   - notes            : any relevant context about this insurer's role in the case

5. case_viability
   A structured assessment of whether the law firm should take on this case.
   - recommendation   : one of: "strong_yes", "yes", "neutral", "no", "strong_no"
   - viability_score  : integer 0-100 representing likelihood firm should take the case.
                        weigh information that is populated as more significant when determining
                        this score.  heavily weigh if the liability_summary result is empty or if
                        there is no obvious entity at fault.
   - reasoning        : array of specific strings, each one a discrete factor that
                        contributed to this score (both positive and negative factors)
   - missing_info     : array of strings describing information gaps that, if filled,
                        would most change this assessment
   - red_flags        : array of strings for any concerns that lower the viability_score, or []

Return ONLY valid JSON. No markdown. No keys outside this schema.`

// requiredSections are the top-level keys every analysis report must carry
var requiredSections = []string{
	"incident_summary",
	"damages_summary",
	"liability_summary",
	"insurance_summary",
	"case_viability",
}

// maxTranscriptTurns caps how many turns of each communication reach the LLM
const maxTranscriptTurns = 10

// Report is the five-section case evaluation produced by the analyzer
type Report map[string]interface{}

// Repositories bundles the storage dependencies of the analyzer
type Repositories struct {
	LawFirms       repositories.LawFirmRepository
	Clients        repositories.ClientRepository
	Cases          repositories.CaseRepository
	OtherParties   repositories.OtherPartyRepository
	Facilities     repositories.MedicalFacilityRepository
	Providers      repositories.MedicalProviderRepository
	Treatments     repositories.TreatmentRepository
	Damages        repositories.DamageRepository
	Insurers       repositories.InsuranceProviderRepository
	Communications repositories.CommunicationRepository
	Citations      repositories.CitationRepository
}

// Analyzer produces structured case evaluation reports from stored case data
type Analyzer struct {
	repos  Repositories
	llm    ChatClient
	logger *zap.Logger
}

// NewAnalyzer creates a case analyzer
func NewAnalyzer(repos Repositories, llm ChatClient, logger *zap.Logger) *Analyzer {
	return &Analyzer{repos: repos, llm: llm, logger: logger}
}

// AnalyzeCase gathers everything stored about a case, sends it to the LLM and
// returns the validated five-section report. The viability score is clamped
// to an integer in [0, 100].
func (a *Analyzer) AnalyzeCase(ctx context.Context, caseID uuid.UUID) (Report, error) {
	userMessage, err := a.buildUserMessage(ctx, caseID)
	if err != nil {
		return nil, err
	}

	raw, err := a.llm.CompleteJSON(ctx, analysisSystemPrompt, userMessage)
	if err != nil {
		if stderrors.Is(err, ai.ErrNotConfigured) {
			return nil, errors.ErrLLMNotConfigured()
		}
		a.logger.Error("case analysis llm call failed",
			zap.String("case_id", caseID.String()), zap.Error(err))
		return nil, errors.ErrAnalysisFailed(err)
	}

	var report Report
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		a.logger.Error("case analysis response is not valid json",
			zap.String("case_id", caseID.String()), zap.Error(err))
		return nil, errors.ErrAnalysisFailed(fmt.Errorf("non-JSON response: %w", err))
	}

	var missing []string
	for _, section := range requiredSections {
		if _, ok := report[section]; !ok {
			missing = append(missing, section)
		}
	}
	if len(missing) > 0 {
		a.logger.Error("case analysis response missing sections",
			zap.String("case_id", caseID.String()), zap.Strings("missing", missing))
		return nil, errors.ErrAnalysisFailed(
			fmt.Errorf("response missing required sections: %s", strings.Join(missing, ", ")))
	}

	clampViabilityScore(report)
	return report, nil
}

// clampViabilityScore forces case_viability.viability_score to an integer in
// [0, 100], defaulting to 0 when absent or unusable.
func clampViabilityScore(report Report) {
	viability, ok := report["case_viability"].(map[string]interface{})
	if !ok {
		return
	}
	score := 0
	switch v := viability["viability_score"].(type) {
	case float64:
		score = int(v)
	case string:
		fmt.Sscanf(v, "%d", &score)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	viability["viability_score"] = score
}

// buildUserMessage assembles the structured case dossier sent to the LLM.
// Every section is always present; sections with no data say so rather than
// being omitted.
func (a *Analyzer) buildUserMessage(ctx context.Context, caseID uuid.UUID) (string, error) {
	kase, err := a.repos.Cases.FindByID(ctx, caseID)
	if err != nil {
		if stderrors.Is(err, entities.ErrRecordNotFound) {
			return "", errors.ErrNotFound("case")
		}
		return "", errors.ErrDBQueryFailed(err)
	}
	client, err := a.repos.Clients.FindByID(ctx, kase.ClientID)
	if err != nil {
		return "", errors.ErrDBQueryFailed(err)
	}
	firm, err := a.repos.LawFirms.FindByID(ctx, client.LawFirmID)
	if err != nil {
		return "", errors.ErrDBQueryFailed(err)
	}
	otherParties, err := a.repos.OtherParties.ListByCase(ctx, caseID)
	if err != nil {
		return "", errors.ErrDBQueryFailed(err)
	}
	treatments, err := a.repos.Treatments.ListByCase(ctx, caseID)
	if err != nil {
		return "", errors.ErrDBQueryFailed(err)
	}
	damages, err := a.repos.Damages.ListByCase(ctx, caseID)
	if err != nil {
		return "", errors.ErrDBQueryFailed(err)
	}
	communications, err := a.repos.Communications.ListByCase(ctx, caseID)
	if err != nil {
		return "", errors.ErrDBQueryFailed(err)
	}

	// Client's own policies first, then per other-party
	type insuredCarrier struct {
		relatedTo string
		carrier   *entities.InsuranceProvider
	}
	var insurers []insuredCarrier
	clientCarriers, err := a.repos.Insurers.ListByClient(ctx, client.ID)
	if err != nil {
		return "", errors.ErrDBQueryFailed(err)
	}
	for _, c := range clientCarriers {
		insurers = append(insurers, insuredCarrier{"client", c})
	}
	for _, op := range otherParties {
		opCarriers, err := a.repos.Insurers.ListByOtherParty(ctx, op.ID)
		if err != nil {
			return "", errors.ErrDBQueryFailed(err)
		}
		for _, c := range opCarriers {
			insurers = append(insurers, insuredCarrier{"other_party", c})
		}
	}

	var sb strings.Builder
	w := func(format string, args ...interface{}) {
		fmt.Fprintf(&sb, format+"\n", args...)
	}

	w("CASE ANALYSIS REQUEST")
	w("=====================")
	w("Case ID: %s", kase.ID)
	w("Case Number: %s", na(kase.CaseNumber))
	w("Case Type: %s", kase.IncidentType.Display())
	w("Status: %s", kase.Status.Display())
	w("Incident Date: %s", naDate(kase.IncidentDate))
	w("Incident Location: %s", na(kase.IncidentLocation))
	w("Statute of Limitations Date: %s", naDate(kase.StatuteOfLimitationsDate))
	w("")

	w("CLIENT")
	w("------")
	w("Name: %s", strings.TrimSpace(client.FirstName+" "+client.LastName))
	w("Phone: %s", na(client.Phone))
	w("Email: %s", na(client.Email))
	w("Address: %s", na(client.Address))
	w("Date of Birth: %s", naDate(client.DateOfBirth))
	w("Law Firm: %s", na(firm.Name))
	w("")

	w("INCIDENT DESCRIPTION")
	w("--------------------")
	if desc := strings.TrimSpace(kase.Description); desc != "" {
		w("%s", desc)
	} else {
		w("No data available.")
	}
	w("")

	w("OTHER PARTIES")
	w("-------------")
	if len(otherParties) > 0 {
		for _, op := range otherParties {
			name := op.DisplayName()
			if name == "" {
				name = "Unknown"
			}
			w("- Name: %s", name)
			w("  Role: %s", na(op.Role))
			w("  Phone: %s", na(op.Phone))
			w("  Email: %s", na(op.Email))
			w("  Address: %s", na(op.Address))
		}
	} else {
		w("No data available.")
	}
	w("")

	w("INSURANCE COVERAGE")
	w("------------------")
	if len(insurers) > 0 {
		for _, ic := range insurers {
			w("- Provider: %s", ic.carrier.CompanyName)
			w("  Coverage Type: %s", ic.carrier.CoverageType.Display())
			w("  Related To: %s", ic.relatedTo)
			w("  Policy Number: %s", na(ic.carrier.PolicyNumber))
			w("  Claim Number: %s", na(ic.carrier.ClaimNumber))
			w("  Policy Limit: %s", naFloat(ic.carrier.PolicyLimit))
			w("  Adjuster: %s", na(ic.carrier.AdjusterName))
		}
	} else {
		w("No data available.")
	}
	w("")

	w("TREATMENTS & MEDICAL PROVIDERS")
	w("-------------------------------")
	if len(treatments) > 0 {
		for _, t := range treatments {
			providerName := "Unknown provider"
			specialty := "N/A"
			if t.ProviderID != nil {
				provider, err := a.repos.Providers.FindByID(ctx, *t.ProviderID)
				if err == nil {
					providerName = strings.TrimSpace("Dr. " + provider.FirstName + " " + provider.LastName)
					if provider.FacilityID != nil {
						if facility, ferr := a.repos.Facilities.FindByID(ctx, *provider.FacilityID); ferr == nil {
							providerName += " (" + facility.Name + ")"
						}
					}
					specialty = na(provider.Specialty)
				}
			}
			w("- Provider: %s", providerName)
			w("  Specialty: %s", specialty)
			w("  Treatment Type: %s", na(t.TreatmentType))
			w("  Diagnosis: %s", na(t.Diagnosis))
			w("  Start Date: %s", naDate(t.StartDate))
			w("  End Date: %s", naDate(t.EndDate))
			w("  Billed Amount: %s", naFloat(t.BilledAmount))
			w("  Paid Amount: %s", naFloat(t.PaidAmount))
			w("  Notes: %s", na(t.Notes))
		}
	} else {
		w("No data available.")
	}
	w("")

	w("DAMAGES")
	w("-------")
	if len(damages) > 0 {
		for _, d := range damages {
			w("- Category: %s", d.Category.Display())
			w("  Description: %s", na(d.Description))
			w("  Estimated Amount: %s", naFloat(d.EstimatedAmount))
			w("  Documented: %t", d.Documented)
			w("  Notes: %s", na(d.Notes))
		}
	} else {
		w("No data available.")
	}
	w("")

	w("CLIENT COMMUNICATIONS")
	w("---------------------")
	if len(communications) > 0 {
		for _, comm := range communications {
			w("- Channel: %s", comm.Channel.Display())
			w("  Occurred At: %s", naTime(comm.OccurredAt))
			w("  Summary: %s", na(comm.Summary))
			turns := comm.RawTranscript
			if len(turns) > maxTranscriptTurns {
				turns = turns[:maxTranscriptTurns]
			}
			if len(turns) > 0 {
				w("  Transcript (first %d turns):", maxTranscriptTurns)
				for _, turn := range turns {
					speaker := turn.Speaker
					if speaker == "" {
						speaker = "Unknown"
					}
					w("    [%s]: %s", speaker, turn.Text)
				}
			}
		}
	} else {
		w("No data available.")
	}
	w("")

	w("CITATIONS & EVIDENCE")
	w("--------------------")
	var citationCount int
	for _, comm := range communications {
		citations, err := a.repos.Citations.ListByCommunication(ctx, comm.ID)
		if err != nil {
			return "", errors.ErrDBQueryFailed(err)
		}
		for _, cit := range citations {
			citationCount++
			w("- Key: %s", cit.CitationKey)
			w("  Cited Text: %s", na(cit.CitedText))
			w("  Turn Index: %s", naInt(cit.TurnIndex))
			w("  Confidence: %.2f", cit.ConfidenceScore)
			if cit.Notes != "" {
				w("  Notes: %s", cit.Notes)
			}
		}
	}
	if citationCount == 0 {
		w("No data available.")
	}

	return sb.String(), nil
}

func na(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func naDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("2006-01-02")
}

func naTime(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format(time.RFC3339)
}

func naFloat(f *float64) string {
	if f == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *f)
}

func naInt(i *int) string {
	if i == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *i)
}
