package intake

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexintake/intake-service/errors"
	"github.com/lexintake/intake-service/internal/domain/entities"
	"github.com/lexintake/intake-service/internal/domain/repositories"
)

const defaultLawFirmName = "Unknown Law Firm"

// Repositories bundles the storage dependencies of the intake service
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

// Service orchestrates transcript extraction, classification, matching,
// persistence and provenance for intake calls.
type Service struct {
	repos     Repositories
	citations *CitationWriter
	matcher   *Matcher
	llm       ChatClient
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates the intake service
func NewService(repos Repositories, llm ChatClient, logger *zap.Logger) *Service {
	return &Service{
		repos:     repos,
		citations: NewCitationWriter(repos.Citations, logger),
		matcher:   NewMatcher(repos.Clients, repos.Cases, logger),
		llm:       llm,
		logger:    logger,
		now:       time.Now,
	}
}

// IngestOutcome reports what an ingest resolved or created
type IngestOutcome struct {
	Matched         bool
	LawFirmID       uuid.UUID
	ClientID        uuid.UUID
	CaseID          uuid.UUID
	CommunicationID uuid.UUID
	Result          *entities.IntakeExtractionResult
}

// Parse runs extraction, classification and risk flagging over a stored
// communication's transcript, persists the downstream records when the
// communication is attached to a case, and returns the classified result.
// The communication's parse status transitions to done, or to failed on an
// unrecoverable extraction error.
func (s *Service) Parse(ctx context.Context, communicationID uuid.UUID) (*entities.IntakeExtractionResult, error) {
	comm, err := s.repos.Communications.FindByID(ctx, communicationID)
	if err != nil {
		if stderrors.Is(err, entities.ErrRecordNotFound) {
			return nil, errors.ErrNotFound("communication")
		}
		return nil, errors.ErrDBQueryFailed(err)
	}

	if err := s.repos.Communications.UpdateParseStatus(ctx, comm.ID, entities.ParseStatusProcessing); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}

	extractor := NewExtractor(s.llm, s.logger)
	findings, err := extractor.Extract(ctx, comm.RawTranscript)
	if err != nil {
		s.markFailed(ctx, comm.ID)
		return nil, err
	}

	result := s.buildResult(findings)

	if comm.CaseID != nil {
		kase, err := s.repos.Cases.FindByID(ctx, *comm.CaseID)
		if err != nil {
			s.markFailed(ctx, comm.ID)
			if stderrors.Is(err, entities.ErrRecordNotFound) {
				return nil, errors.ErrNotFound("case")
			}
			return nil, errors.ErrDBQueryFailed(err)
		}
		if err := s.persist(ctx, kase, result, comm); err != nil {
			s.markFailed(ctx, comm.ID)
			return nil, err
		}
	}

	if err := s.repos.Communications.UpdateParseStatus(ctx, comm.ID, entities.ParseStatusDone); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}

	s.logger.Info("transcript parsed",
		zap.String("communication_id", comm.ID.String()),
		zap.Int("turns", len(comm.RawTranscript)),
		zap.Strings("raw_flags", result.RawFlags),
	)
	return result, nil
}

// Ingest bootstraps a new intake from raw transcript turns: resolve or create
// LawFirm, Client and Case, store the communication, persist every extracted
// record and return the outcome.
//
// Matched is true when an existing client and case were found and reused,
// false when new records were created. A provided law firm ID that resolves
// to nothing is an invalid-argument error; extraction failures surface as-is.
func (s *Service) Ingest(ctx context.Context, turns []entities.TranscriptTurn, lawFirmID *uuid.UUID) (*IngestOutcome, error) {
	if len(turns) == 0 {
		return nil, entities.ErrEmptyTranscript
	}

	extractor := NewExtractor(s.llm, s.logger)
	findings, err := extractor.Extract(ctx, turns)
	if err != nil {
		return nil, err
	}
	meta := findings.Metadata()

	var firm *entities.LawFirm
	if lawFirmID != nil {
		firm, err = s.repos.LawFirms.FindByID(ctx, *lawFirmID)
		if err != nil {
			if stderrors.Is(err, entities.ErrRecordNotFound) {
				return nil, errors.ErrInvalidArgument("law firm " + lawFirmID.String() + " not found")
			}
			return nil, errors.ErrDBQueryFailed(err)
		}
	} else {
		firmName := meta[entities.FieldLawFirmName].Value
		if firmName == "" {
			firmName = defaultLawFirmName
		}
		firm, err = s.repos.LawFirms.GetOrCreateByName(ctx, firmName)
		if err != nil {
			return nil, errors.ErrDBQueryFailed(err)
		}
	}

	firstName, lastName := splitName(meta[entities.FieldCallerName].Value)
	info := ClassifyIncident(findings, s.logger)

	client, kase, err := s.matcher.FindExistingCase(ctx, firm.ID, firstName, lastName, info)
	if err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	matched := client != nil && kase != nil

	if !matched {
		client, _, err = s.repos.Clients.GetOrCreate(ctx, firm.ID, firstName, lastName)
		if err != nil {
			return nil, errors.ErrDBQueryFailed(err)
		}

		var incidentType entities.IncidentType
		if info.Type != nil {
			incidentType = *info.Type
		}
		kase = entities.NewCase(client.ID, incidentType)
		kase.IncidentDate = info.Date
		if info.Location != nil {
			kase.IncidentLocation = *info.Location
		}
		if err := s.repos.Cases.Create(ctx, kase); err != nil {
			return nil, errors.ErrDBQueryFailed(err)
		}
	}

	comm := entities.NewCommunication(client.ID, &kase.ID, entities.ChannelTypePhone, turns)
	comm.ParseStatus = entities.ParseStatusProcessing
	if err := s.repos.Communications.Create(ctx, comm); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}

	// Metadata citations are only written for records this ingest created
	if !matched {
		s.writeMetadataCitations(ctx, comm.ID, meta, client.ID)
	}

	result := s.buildResult(findings)

	if err := s.persist(ctx, kase, result, comm); err != nil {
		s.markFailed(ctx, comm.ID)
		return nil, err
	}

	if err := s.repos.Communications.UpdateParseStatus(ctx, comm.ID, entities.ParseStatusDone); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}

	s.logger.Info("transcript ingested",
		zap.Bool("matched", matched),
		zap.String("law_firm_id", firm.ID.String()),
		zap.String("client_id", client.ID.String()),
		zap.String("case_id", kase.ID.String()),
		zap.String("communication_id", comm.ID.String()),
	)

	return &IngestOutcome{
		Matched:         matched,
		LawFirmID:       firm.ID,
		ClientID:        client.ID,
		CaseID:          kase.ID,
		CommunicationID: comm.ID,
		Result:          result,
	}, nil
}

// buildResult runs every classifier over the findings and flags risks
func (s *Service) buildResult(findings entities.FindingSet) *entities.IntakeExtractionResult {
	info := ClassifyIncident(findings, s.logger)
	result := &entities.IntakeExtractionResult{
		IncidentDate:      info.Date,
		IncidentType:      info.Type,
		IncidentLocation:  info.Location,
		Injuries:          info.Injuries,
		MedicalProviders:  ClassifyMedical(findings),
		InsuranceCarriers: ClassifyInsurance(findings),
		OtherParties:      ClassifyParties(findings),
		Damages:           ClassifyDamages(findings),
		ConfidenceScores:  info.ConfidenceScores,
	}
	result.RawFlags = FlagRisks(result, findings, s.now())
	return result
}

// persist writes the classified records under a case, upserting on natural
// keys so repeated parses of the same transcript do not duplicate rows.
// Citations are written for newly created rows when a communication is given.
func (s *Service) persist(ctx context.Context, kase *entities.Case, result *entities.IntakeExtractionResult, comm *entities.Communication) error {
	// Fill in case fields that are still blank
	changed := false
	if result.IncidentDate != nil && kase.IncidentDate == nil {
		kase.IncidentDate = result.IncidentDate
		changed = true
	}
	if result.IncidentType != nil && kase.IncidentType == "" {
		kase.IncidentType = *result.IncidentType
		changed = true
	}
	if changed {
		if err := s.repos.Cases.Update(ctx, kase); err != nil {
			return errors.ErrDBQueryFailed(err)
		}
	}

	for _, rec := range result.OtherParties {
		party := &entities.OtherParty{
			ID:          uuid.New(),
			CaseID:      kase.ID,
			FirstName:   rec.FirstName,
			LastName:    rec.LastName,
			CompanyName: rec.CompanyName,
			Role:        rec.Role,
		}
		created, err := s.repos.OtherParties.GetOrCreate(ctx, party)
		if err != nil {
			return errors.ErrDBQueryFailed(err)
		}
		if created && comm != nil {
			s.citations.Write(ctx, comm.ID, CitationKeyOtherParty, rec.Provenance,
				OtherPartyTarget(party.ID, atFaultRole))
		}
	}

	for _, rec := range result.MedicalProviders {
		var facilityID *uuid.UUID
		if rec.FacilityName != "" {
			facility, err := s.repos.Facilities.GetOrCreateByName(ctx, rec.FacilityName)
			if err != nil {
				return errors.ErrDBQueryFailed(err)
			}
			facilityID = &facility.ID
		}

		provider := &entities.MedicalProvider{
			ID:         uuid.New(),
			FacilityID: facilityID,
			FirstName:  rec.FirstName,
			LastName:   rec.LastName,
			Specialty:  rec.Specialty,
		}
		created, err := s.repos.Providers.GetOrCreate(ctx, provider)
		if err != nil {
			return errors.ErrDBQueryFailed(err)
		}
		if created && comm != nil {
			s.citations.Write(ctx, comm.ID, CitationKeyMedicalProvider, rec.Provenance,
				MedicalProviderTarget(provider.ID, "treating provider"))
		}

		treatment := &entities.Treatment{
			ID:            uuid.New(),
			CaseID:        kase.ID,
			ProviderID:    &provider.ID,
			TreatmentType: rec.TreatmentType,
			Diagnosis:     rec.Diagnosis,
		}
		if _, err := s.repos.Treatments.GetOrCreate(ctx, treatment); err != nil {
			return errors.ErrDBQueryFailed(err)
		}
	}

	for _, rec := range result.Damages {
		damage := &entities.Damage{
			ID:              uuid.New(),
			CaseID:          kase.ID,
			Category:        rec.Category,
			Description:     rec.Description,
			EstimatedAmount: rec.EstimatedAmount,
		}
		created, err := s.repos.Damages.GetOrCreate(ctx, damage)
		if err != nil {
			return errors.ErrDBQueryFailed(err)
		}
		if created && comm != nil {
			s.citations.Write(ctx, comm.ID, CitationKeyFinancialExpense, rec.Provenance, nil)
		}
	}

	if comm != nil {
		for _, rec := range result.InsuranceCarriers {
			insurer := &entities.InsuranceProvider{
				ID:              uuid.New(),
				InsuredClientID: &comm.ClientID,
				CompanyName:     rec.CompanyName,
				PolicyNumber:    rec.PolicyNumber,
				ClaimNumber:     rec.ClaimNumber,
				CoverageType:    rec.CoverageType,
				AdjusterName:    rec.AdjusterName,
			}
			if _, err := s.repos.Insurers.GetOrCreate(ctx, insurer); err != nil {
				return errors.ErrDBQueryFailed(err)
			}
		}
	}

	return nil
}

// writeMetadataCitations records provenance for the metadata findings that
// drove client and case creation. The caller_name citation is back-linked to
// the client; incident fields cite the transcript without a reference since
// cases are not a referenceable kind.
func (s *Service) writeMetadataCitations(ctx context.Context, communicationID uuid.UUID, meta map[string]entities.Finding, clientID uuid.UUID) {
	if f, ok := meta[entities.FieldCallerName]; ok {
		s.citations.WriteFinding(ctx, communicationID, CitationKeyCallerName, f,
			ClientTarget(clientID, "identified caller"))
	}
	if f, ok := meta[entities.FieldAccidentDate]; ok {
		s.citations.WriteFinding(ctx, communicationID, CitationKeyAccidentDate, f, nil)
	}
	if f, ok := meta[entities.FieldCaseType]; ok {
		s.citations.WriteFinding(ctx, communicationID, CitationKeyCaseType, f, nil)
	}
	if f, ok := meta[entities.FieldIncidentLocation]; ok {
		s.citations.WriteFinding(ctx, communicationID, CitationKeyIncidentLocation, f, nil)
	}
}

func (s *Service) markFailed(ctx context.Context, communicationID uuid.UUID) {
	if err := s.repos.Communications.UpdateParseStatus(ctx, communicationID, entities.ParseStatusFailed); err != nil {
		s.logger.Warn("could not mark communication as failed",
			zap.String("communication_id", communicationID.String()),
			zap.Error(err),
		)
	}
}
