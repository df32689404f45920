package intake

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lexintake/intake-service/errors"
	"github.com/lexintake/intake-service/internal/domain/entities"
	"github.com/lexintake/intake-service/pkg/ai"
)

// ChatClient is the slice of the LLM client the extractor needs
type ChatClient interface {
	CompleteJSON(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

const extractionSystemPrompt = `You are a legal intake AI assistant specializing in personal injury law. You analyze transcripts from intake calls at personal injury law firms. Approximately 90% of calls involve assessing claim viability for potential clients who may have been injured due to someone else's negligence.

Your job is to extract structured information from the transcript and return it as a JSON object. Be precise and conservative - do NOT guess or invent information. If you are not confident about a value, return null for that field.

Extract the following categories:

METADATA (one finding per field):
  - caller_name       : Full name of the person calling
  - law_firm_name     : Name of the law firm the Intake Specialist represents
  - case_type         : One of: auto_accident, slip_fall, medical_malpractice,
                        workers_comp, wrongful_death, product_liability, other
  - accident_date     : Date of the accident/incident in ISO format (YYYY-MM-DD), or null.
                        Dates may be spoken in any format - "March 3rd", "3/3", "the third
                        of March", "last Tuesday", or relative references like "two weeks
                        ago". Convert all formats to ISO (YYYY-MM-DD). For relative dates,
                        use the transcript context clues to anchor the date if possible;
                        if the year is ambiguous, prefer the most recent plausible year.
                        Do NOT return null simply because the date was not in ISO format -
                        only return null if no date reference exists at all.
  - incident_location : Where the incident occurred (city, address, or description)
  - injuries          : Comma-separated list of injuries the caller describes, or null

INDIVIDUAL FINDINGS (one finding per discovered entity, no duplicates):
  - other_party       : Individuals or entities named as at-fault or adverse parties
  - insurance_provider: Insurance companies mentioned (either party's insurer)
  - medical_provider  : Any doctor, hospital, clinic, therapist, chiropractor, urgent care,
                        emergency room, specialist, or other medical/rehabilitation service
                        mentioned - regardless of whether a cost was discussed. Capture the
                        provider even if the caller only says they "went to", "saw",
                        "visited", or "have an appointment with" them.
  - financial_expense : Specific costs, bills, lost wages, property damage estimates, or
                        other financial damages the caller has discussed. A dollar amount
                        is NOT required - capture any expense the caller references even
                        if the amount is unknown or not yet determined (e.g. "my medical
                        bills are piling up", "I missed two weeks of work"). Use a
                        descriptive label for the value if no amount is given.
  - treatment         : Any medical treatment, procedure, therapy session, prescription,
                        or rehabilitation activity the caller has received or is receiving,
                        even if no provider name or cost is associated with it (e.g.
                        "I've been doing physical therapy", "they gave me pain medication",
                        "I'm in a boot"). One finding per distinct treatment type.

For every individual finding include ALL of the following citation fields:
  - transcript_index      : The 0-based index of the transcript turn where this entity is
                            FIRST mentioned. Search carefully - dates, names, and providers
                            are often introduced early and referenced again later. Always
                            cite the FIRST occurrence.
  - transcript_indices    : An array of ALL 0-based turn indices where this entity is
                            mentioned or referenced, including indirect references and
                            pronouns that clearly refer back to this entity.
  - quote                 : The verbatim excerpt (2 sentences or fewer) from the cited turn
                            that most directly establishes this finding. Pull from the turn
                            at transcript_index.
  - confidence            : One of: "high", "medium", "low". Use "high" when explicitly
                            stated, "medium" when strongly implied, "low" when inferred
                            from limited context.
  - related_to            : An object with keys caller, other_party, insurance_provider,
                            medical_provider - set each to the relevant name string if this
                            entity is connected to them. If the connection is POSSIBLE but
                            not confirmed, prefix the value with "possible: " (e.g.
                            "possible: State Farm"). Only set to null if there is truly no
                            plausible connection.

Return ONLY valid JSON in this exact envelope - no markdown, no extra keys:
{
  "findings": [
    {
      "finding_type": "metadata",
      "field": "caller_name",
      "value": "Jane Smith",
      "transcript_index": 2,
      "transcript_indices": [2, 5, 11],
      "quote": "My name is Jane Smith, I was calling about an accident.",
      "confidence": "high"
    },
    {
      "finding_type": "individual",
      "field": "medical_provider",
      "value": "St. Mary's Hospital",
      "transcript_index": 7,
      "transcript_indices": [7, 9, 14],
      "quote": "I went to St. Mary's Hospital the night of the accident.",
      "confidence": "high",
      "related_to": {
        "caller": "Jane Smith",
        "other_party": null,
        "insurance_provider": "possible: State Farm",
        "medical_provider": null
      }
    },
    {
      "finding_type": "individual",
      "field": "financial_expense",
      "value": "Ongoing medical bills (amount unknown)",
      "transcript_index": 12,
      "transcript_indices": [12],
      "quote": "My medical bills are just piling up and I don't know what to do.",
      "confidence": "medium",
      "related_to": {
        "caller": "Jane Smith",
        "other_party": null,
        "insurance_provider": null,
        "medical_provider": "possible: St. Mary's Hospital"
      }
    },
    {
      "finding_type": "individual",
      "field": "treatment",
      "value": "Physical therapy",
      "transcript_index": 15,
      "transcript_indices": [15, 18],
      "quote": "I've been doing physical therapy twice a week since the accident.",
      "confidence": "high",
      "related_to": {
        "caller": "Jane Smith",
        "other_party": null,
        "insurance_provider": null,
        "medical_provider": null
      }
    }
  ]
}`

// Extractor turns a transcript into a FindingSet with a single LLM call. The
// result is memoized per turns slice, so every downstream consumer within one
// pipeline invocation shares the same call. Create a fresh Extractor per
// invocation; it is not safe for concurrent use.
type Extractor struct {
	llm    ChatClient
	logger *zap.Logger

	memoTurns []entities.TranscriptTurn
	memoSet   entities.FindingSet
	memoValid bool
}

// NewExtractor creates an extractor bound to one pipeline invocation
func NewExtractor(llm ChatClient, logger *zap.Logger) *Extractor {
	return &Extractor{llm: llm, logger: logger}
}

// wireFinding is the raw JSON shape emitted by the model. Value is kept raw so
// null-valued findings can be dropped and non-string values coerced.
type wireFinding struct {
	FindingType    string             `json:"finding_type"`
	Field          string             `json:"field"`
	Value          json.RawMessage    `json:"value"`
	TranscriptIdx  *int               `json:"transcript_index"`
	TranscriptIdxs []int              `json:"transcript_indices"`
	Quote          string             `json:"quote"`
	Confidence     string             `json:"confidence"`
	RelatedTo      map[string]*string `json:"related_to"`
}

type findingsEnvelope struct {
	Findings []wireFinding `json:"findings"`
}

// Extract returns the findings for the given turns, calling the LLM at most
// once per distinct turns slice. An empty transcript short-circuits to an
// empty set without touching the LLM.
func (e *Extractor) Extract(ctx context.Context, turns []entities.TranscriptTurn) (entities.FindingSet, error) {
	if e.memoValid && sameTurns(e.memoTurns, turns) {
		return e.memoSet, nil
	}

	if len(turns) == 0 {
		e.memoize(turns, entities.FindingSet{})
		return e.memoSet, nil
	}

	raw, err := e.llm.CompleteJSON(ctx, extractionSystemPrompt, renderTranscript(turns))
	if err != nil {
		if stderrors.Is(err, ai.ErrNotConfigured) {
			return nil, errors.ErrLLMNotConfigured()
		}
		e.logger.Error("llm extraction call failed", zap.Error(err))
		return nil, errors.ErrExtractionFailed(err)
	}

	var envelope findingsEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		e.logger.Error("llm response is not valid json", zap.Error(err))
		return nil, errors.ErrMalformedExtraction(err, raw)
	}
	if envelope.Findings == nil {
		err := stderrors.New("response missing findings list")
		e.logger.Error("llm response missing findings list")
		return nil, errors.ErrMalformedExtraction(err, raw)
	}

	set := make(entities.FindingSet, 0, len(envelope.Findings))
	for _, wf := range envelope.Findings {
		value, ok := coerceValue(wf.Value)
		if !ok {
			// Null value signals model uncertainty, drop the finding.
			continue
		}
		related := make(map[string]string)
		for k, v := range wf.RelatedTo {
			if v != nil && *v != "" {
				related[k] = *v
			}
		}
		if len(related) == 0 {
			related = nil
		}
		set = append(set, entities.Finding{
			Kind:           entities.FindingKind(wf.FindingType),
			Field:          wf.Field,
			Value:          value,
			FirstTurnIndex: wf.TranscriptIdx,
			TurnIndices:    wf.TranscriptIdxs,
			Quote:          wf.Quote,
			Confidence:     entities.Confidence(wf.Confidence),
			RelatedTo:      related,
		})
	}

	e.memoize(turns, set)
	return set, nil
}

func (e *Extractor) memoize(turns []entities.TranscriptTurn, set entities.FindingSet) {
	e.memoTurns = turns
	e.memoSet = set
	e.memoValid = true
}

// sameTurns reports whether two slices are views of the same backing array.
// Identity, not deep equality, mirrors the one-call-per-invocation contract.
func sameTurns(a, b []entities.TranscriptTurn) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// renderTranscript formats turns as indexed lines for the extraction prompt
func renderTranscript(turns []entities.TranscriptTurn) string {
	var sb strings.Builder
	sb.WriteString("Extract all findings from this personal injury intake call transcript:\n\n")
	for i, turn := range turns {
		speaker := turn.Speaker
		if speaker == "" {
			speaker = "Unknown"
		}
		fmt.Fprintf(&sb, "[%d] %s: %s\n", i, speaker, turn.Text)
	}
	return sb.String()
}

// coerceValue extracts a finding value as a string. JSON null (or absent)
// reports ok=false; non-string scalars are rendered verbatim.
func coerceValue(raw json.RawMessage) (string, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", false
		}
		return s, true
	}
	return trimmed, true
}
