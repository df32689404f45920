package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

type fakeLLM struct {
	response string
	err      error
	calls    int
	lastUser string
}

func (f *fakeLLM) CompleteJSON(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	f.calls++
	f.lastUser = userMessage
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// caseStore is a flat in-memory backing set for the analyzer's read paths
type caseStore struct {
	firms      []*entities.LawFirm
	clients    []*entities.Client
	cases      []*entities.Case
	parties    []*entities.OtherParty
	facilities []*entities.MedicalFacility
	providers  []*entities.MedicalProvider
	treatments []*entities.Treatment
	damages    []*entities.Damage
	carriers   []*entities.InsuranceProvider
	comms      []*entities.Communication
	citations  []*entities.Citation
}

func (s *caseStore) repos() Repositories {
	return Repositories{
		LawFirms:       (*storeLawFirms)(s),
		Clients:        (*storeClients)(s),
		Cases:          (*storeCases)(s),
		OtherParties:   (*storeParties)(s),
		Facilities:     (*storeFacilities)(s),
		Providers:      (*storeProviders)(s),
		Treatments:     (*storeTreatments)(s),
		Damages:        (*storeDamages)(s),
		Insurers:       (*storeInsurers)(s),
		Communications: (*storeComms)(s),
		Citations:      (*storeCitations)(s),
	}
}

type storeLawFirms caseStore

func (s *storeLawFirms) Create(_ context.Context, firm *entities.LawFirm) error {
	s.firms = append(s.firms, firm)
	return nil
}

func (s *storeLawFirms) FindByID(_ context.Context, id uuid.UUID) (*entities.LawFirm, error) {
	for _, f := range s.firms {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, entities.ErrRecordNotFound
}

func (s *storeLawFirms) GetOrCreateByName(ctx context.Context, name string) (*entities.LawFirm, error) {
	for _, f := range s.firms {
		if f.Name == name {
			return f, nil
		}
	}
	firm := entities.NewLawFirm(name)
	s.firms = append(s.firms, firm)
	return firm, nil
}

type storeClients caseStore

func (s *storeClients) Create(_ context.Context, client *entities.Client) error {
	s.clients = append(s.clients, client)
	return nil
}

func (s *storeClients) FindByID(_ context.Context, id uuid.UUID) (*entities.Client, error) {
	for _, c := range s.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, entities.ErrRecordNotFound
}

func (s *storeClients) FindByName(_ context.Context, lawFirmID uuid.UUID, firstName, lastName string) ([]*entities.Client, error) {
	return nil, nil
}

func (s *storeClients) GetOrCreate(_ context.Context, lawFirmID uuid.UUID, firstName, lastName string) (*entities.Client, bool, error) {
	client := entities.NewClient(lawFirmID, firstName, lastName)
	s.clients = append(s.clients, client)
	return client, true, nil
}

type storeCases caseStore

func (s *storeCases) Create(_ context.Context, c *entities.Case) error {
	s.cases = append(s.cases, c)
	return nil
}

func (s *storeCases) FindByID(_ context.Context, id uuid.UUID) (*entities.Case, error) {
	for _, c := range s.cases {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, entities.ErrRecordNotFound
}

func (s *storeCases) ListByClient(_ context.Context, clientID uuid.UUID) ([]*entities.Case, error) {
	var out []*entities.Case
	for _, c := range s.cases {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *storeCases) Update(_ context.Context, c *entities.Case) error {
	return nil
}

type storeParties caseStore

func (s *storeParties) GetOrCreate(_ context.Context, party *entities.OtherParty) (bool, error) {
	s.parties = append(s.parties, party)
	return true, nil
}

func (s *storeParties) ListByCase(_ context.Context, caseID uuid.UUID) ([]*entities.OtherParty, error) {
	var out []*entities.OtherParty
	for _, p := range s.parties {
		if p.CaseID == caseID {
			out = append(out, p)
		}
	}
	return out, nil
}

type storeFacilities caseStore

func (s *storeFacilities) GetOrCreateByName(_ context.Context, name string) (*entities.MedicalFacility, error) {
	facility := &entities.MedicalFacility{ID: uuid.New(), Name: name}
	s.facilities = append(s.facilities, facility)
	return facility, nil
}

func (s *storeFacilities) FindByID(_ context.Context, id uuid.UUID) (*entities.MedicalFacility, error) {
	for _, f := range s.facilities {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, entities.ErrRecordNotFound
}

type storeProviders caseStore

func (s *storeProviders) GetOrCreate(_ context.Context, provider *entities.MedicalProvider) (bool, error) {
	s.providers = append(s.providers, provider)
	return true, nil
}

func (s *storeProviders) FindByID(_ context.Context, id uuid.UUID) (*entities.MedicalProvider, error) {
	for _, p := range s.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, entities.ErrRecordNotFound
}

type storeTreatments caseStore

func (s *storeTreatments) GetOrCreate(_ context.Context, treatment *entities.Treatment) (bool, error) {
	s.treatments = append(s.treatments, treatment)
	return true, nil
}

func (s *storeTreatments) ListByCase(_ context.Context, caseID uuid.UUID) ([]*entities.Treatment, error) {
	var out []*entities.Treatment
	for _, t := range s.treatments {
		if t.CaseID == caseID {
			out = append(out, t)
		}
	}
	return out, nil
}

type storeDamages caseStore

func (s *storeDamages) GetOrCreate(_ context.Context, damage *entities.Damage) (bool, error) {
	s.damages = append(s.damages, damage)
	return true, nil
}

func (s *storeDamages) ListByCase(_ context.Context, caseID uuid.UUID) ([]*entities.Damage, error) {
	var out []*entities.Damage
	for _, d := range s.damages {
		if d.CaseID == caseID {
			out = append(out, d)
		}
	}
	return out, nil
}

type storeInsurers caseStore

func (s *storeInsurers) GetOrCreate(_ context.Context, carrier *entities.InsuranceProvider) (bool, error) {
	s.carriers = append(s.carriers, carrier)
	return true, nil
}

func (s *storeInsurers) ListByClient(_ context.Context, clientID uuid.UUID) ([]*entities.InsuranceProvider, error) {
	var out []*entities.InsuranceProvider
	for _, c := range s.carriers {
		if c.InsuredClientID != nil && *c.InsuredClientID == clientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *storeInsurers) ListByOtherParty(_ context.Context, otherPartyID uuid.UUID) ([]*entities.InsuranceProvider, error) {
	var out []*entities.InsuranceProvider
	for _, c := range s.carriers {
		if c.InsuredOtherPartyID != nil && *c.InsuredOtherPartyID == otherPartyID {
			out = append(out, c)
		}
	}
	return out, nil
}

type storeComms caseStore

func (s *storeComms) Create(_ context.Context, comm *entities.Communication) error {
	s.comms = append(s.comms, comm)
	return nil
}

func (s *storeComms) FindByID(_ context.Context, id uuid.UUID) (*entities.Communication, error) {
	for _, c := range s.comms {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, entities.ErrRecordNotFound
}

func (s *storeComms) ListByCase(_ context.Context, caseID uuid.UUID) ([]*entities.Communication, error) {
	var out []*entities.Communication
	for _, c := range s.comms {
		if c.CaseID != nil && *c.CaseID == caseID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *storeComms) UpdateParseStatus(_ context.Context, id uuid.UUID, status entities.ParseStatus) error {
	return nil
}

type storeCitations caseStore

func (s *storeCitations) CreateCitation(_ context.Context, citation *entities.Citation) error {
	s.citations = append(s.citations, citation)
	return nil
}

func (s *storeCitations) CreateReference(_ context.Context, ref *entities.CitationReference) error {
	return nil
}

func (s *storeCitations) ListByCommunication(_ context.Context, communicationID uuid.UUID) ([]*entities.Citation, error) {
	var out []*entities.Citation
	for _, c := range s.citations {
		if c.CommunicationID == communicationID {
			out = append(out, c)
		}
	}
	return out, nil
}
