package intake

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

// fakeLLM returns a canned response and counts calls
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

// clock hands out strictly increasing timestamps so newest-first ordering is
// deterministic in the fakes.
type clock struct {
	t time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *clock) next() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type fakeLawFirmRepo struct {
	clock *clock
	firms []*entities.LawFirm
}

func (r *fakeLawFirmRepo) Create(_ context.Context, firm *entities.LawFirm) error {
	firm.CreatedAt = r.clock.next()
	r.firms = append(r.firms, firm)
	return nil
}

func (r *fakeLawFirmRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.LawFirm, error) {
	for _, f := range r.firms {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, entities.ErrRecordNotFound
}

func (r *fakeLawFirmRepo) GetOrCreateByName(ctx context.Context, name string) (*entities.LawFirm, error) {
	for _, f := range r.firms {
		if f.Name == name {
			return f, nil
		}
	}
	firm := entities.NewLawFirm(name)
	if err := r.Create(ctx, firm); err != nil {
		return nil, err
	}
	return firm, nil
}

type fakeClientRepo struct {
	clock   *clock
	clients []*entities.Client
}

func (r *fakeClientRepo) Create(_ context.Context, client *entities.Client) error {
	client.CreatedAt = r.clock.next()
	r.clients = append(r.clients, client)
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, entities.ErrRecordNotFound
}

func (r *fakeClientRepo) FindByName(_ context.Context, lawFirmID uuid.UUID, firstName, lastName string) ([]*entities.Client, error) {
	var out []*entities.Client
	for _, c := range r.clients {
		if c.LawFirmID == lawFirmID &&
			strings.EqualFold(c.FirstName, firstName) &&
			strings.EqualFold(c.LastName, lastName) {
			out = append(out, c)
		}
	}
	// newest first
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *fakeClientRepo) GetOrCreate(ctx context.Context, lawFirmID uuid.UUID, firstName, lastName string) (*entities.Client, bool, error) {
	for _, c := range r.clients {
		if c.LawFirmID == lawFirmID && c.FirstName == firstName && c.LastName == lastName {
			return c, false, nil
		}
	}
	client := entities.NewClient(lawFirmID, firstName, lastName)
	if err := r.Create(ctx, client); err != nil {
		return nil, false, err
	}
	return client, true, nil
}

type fakeCaseRepo struct {
	clock *clock
	cases []*entities.Case
}

func (r *fakeCaseRepo) Create(_ context.Context, c *entities.Case) error {
	c.CreatedAt = r.clock.next()
	r.cases = append(r.cases, c)
	return nil
}

func (r *fakeCaseRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Case, error) {
	for _, c := range r.cases {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, entities.ErrRecordNotFound
}

func (r *fakeCaseRepo) ListByClient(_ context.Context, clientID uuid.UUID) ([]*entities.Case, error) {
	var out []*entities.Case
	for _, c := range r.cases {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *fakeCaseRepo) Update(_ context.Context, c *entities.Case) error {
	for i, existing := range r.cases {
		if existing.ID == c.ID {
			r.cases[i] = c
			return nil
		}
	}
	return entities.ErrRecordNotFound
}

type fakeOtherPartyRepo struct {
	parties []*entities.OtherParty
}

func (r *fakeOtherPartyRepo) GetOrCreate(_ context.Context, party *entities.OtherParty) (bool, error) {
	for _, p := range r.parties {
		if p.CaseID == party.CaseID && p.FirstName == party.FirstName &&
			p.LastName == party.LastName && p.CompanyName == party.CompanyName {
			*party = *p
			return false, nil
		}
	}
	r.parties = append(r.parties, party)
	return true, nil
}

func (r *fakeOtherPartyRepo) ListByCase(_ context.Context, caseID uuid.UUID) ([]*entities.OtherParty, error) {
	var out []*entities.OtherParty
	for _, p := range r.parties {
		if p.CaseID == caseID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeFacilityRepo struct {
	facilities []*entities.MedicalFacility
}

func (r *fakeFacilityRepo) GetOrCreateByName(_ context.Context, name string) (*entities.MedicalFacility, error) {
	for _, f := range r.facilities {
		if f.Name == name {
			return f, nil
		}
	}
	facility := &entities.MedicalFacility{ID: uuid.New(), Name: name}
	r.facilities = append(r.facilities, facility)
	return facility, nil
}

func (r *fakeFacilityRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.MedicalFacility, error) {
	for _, f := range r.facilities {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, entities.ErrRecordNotFound
}

type fakeProviderRepo struct {
	providers []*entities.MedicalProvider
}

func (r *fakeProviderRepo) GetOrCreate(_ context.Context, provider *entities.MedicalProvider) (bool, error) {
	for _, p := range r.providers {
		if p.FirstName == provider.FirstName && p.LastName == provider.LastName {
			*provider = *p
			return false, nil
		}
	}
	r.providers = append(r.providers, provider)
	return true, nil
}

func (r *fakeProviderRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.MedicalProvider, error) {
	for _, p := range r.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, entities.ErrRecordNotFound
}

type fakeTreatmentRepo struct {
	treatments []*entities.Treatment
}

func (r *fakeTreatmentRepo) GetOrCreate(_ context.Context, treatment *entities.Treatment) (bool, error) {
	for _, t := range r.treatments {
		if t.CaseID == treatment.CaseID && uuidPtrEqual(t.ProviderID, treatment.ProviderID) {
			*treatment = *t
			return false, nil
		}
	}
	r.treatments = append(r.treatments, treatment)
	return true, nil
}

func (r *fakeTreatmentRepo) ListByCase(_ context.Context, caseID uuid.UUID) ([]*entities.Treatment, error) {
	var out []*entities.Treatment
	for _, t := range r.treatments {
		if t.CaseID == caseID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeDamageRepo struct {
	damages []*entities.Damage
}

func (r *fakeDamageRepo) GetOrCreate(_ context.Context, damage *entities.Damage) (bool, error) {
	for _, d := range r.damages {
		if d.CaseID == damage.CaseID && d.Category == damage.Category {
			*damage = *d
			return false, nil
		}
	}
	r.damages = append(r.damages, damage)
	return true, nil
}

func (r *fakeDamageRepo) ListByCase(_ context.Context, caseID uuid.UUID) ([]*entities.Damage, error) {
	var out []*entities.Damage
	for _, d := range r.damages {
		if d.CaseID == caseID {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeInsurerRepo struct {
	carriers []*entities.InsuranceProvider
}

func (r *fakeInsurerRepo) GetOrCreate(_ context.Context, carrier *entities.InsuranceProvider) (bool, error) {
	for _, c := range r.carriers {
		if c.CompanyName == carrier.CompanyName &&
			uuidPtrEqual(c.InsuredClientID, carrier.InsuredClientID) &&
			uuidPtrEqual(c.InsuredOtherPartyID, carrier.InsuredOtherPartyID) {
			*carrier = *c
			return false, nil
		}
	}
	r.carriers = append(r.carriers, carrier)
	return true, nil
}

func (r *fakeInsurerRepo) ListByClient(_ context.Context, clientID uuid.UUID) ([]*entities.InsuranceProvider, error) {
	var out []*entities.InsuranceProvider
	for _, c := range r.carriers {
		if c.InsuredClientID != nil && *c.InsuredClientID == clientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeInsurerRepo) ListByOtherParty(_ context.Context, otherPartyID uuid.UUID) ([]*entities.InsuranceProvider, error) {
	var out []*entities.InsuranceProvider
	for _, c := range r.carriers {
		if c.InsuredOtherPartyID != nil && *c.InsuredOtherPartyID == otherPartyID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeCommunicationRepo struct {
	clock *clock
	comms []*entities.Communication
}

func (r *fakeCommunicationRepo) Create(_ context.Context, comm *entities.Communication) error {
	comm.CreatedAt = r.clock.next()
	r.comms = append(r.comms, comm)
	return nil
}

func (r *fakeCommunicationRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Communication, error) {
	for _, c := range r.comms {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, entities.ErrRecordNotFound
}

func (r *fakeCommunicationRepo) ListByCase(_ context.Context, caseID uuid.UUID) ([]*entities.Communication, error) {
	var out []*entities.Communication
	for _, c := range r.comms {
		if c.CaseID != nil && *c.CaseID == caseID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommunicationRepo) UpdateParseStatus(_ context.Context, id uuid.UUID, status entities.ParseStatus) error {
	for _, c := range r.comms {
		if c.ID == id {
			c.ParseStatus = status
			return nil
		}
	}
	return entities.ErrRecordNotFound
}

type fakeCitationRepo struct {
	citations  []*entities.Citation
	references []*entities.CitationReference
	failWrites bool
}

func (r *fakeCitationRepo) CreateCitation(_ context.Context, citation *entities.Citation) error {
	if r.failWrites {
		return entities.ErrRecordNotFound
	}
	r.citations = append(r.citations, citation)
	return nil
}

func (r *fakeCitationRepo) CreateReference(_ context.Context, ref *entities.CitationReference) error {
	if r.failWrites {
		return entities.ErrRecordNotFound
	}
	r.references = append(r.references, ref)
	return nil
}

func (r *fakeCitationRepo) ListByCommunication(_ context.Context, communicationID uuid.UUID) ([]*entities.Citation, error) {
	var out []*entities.Citation
	for _, c := range r.citations {
		if c.CommunicationID == communicationID {
			out = append(out, c)
		}
	}
	return out, nil
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// testRepos builds a full in-memory repository set sharing one clock
func testRepos() Repositories {
	ck := newClock()
	return Repositories{
		LawFirms:       &fakeLawFirmRepo{clock: ck},
		Clients:        &fakeClientRepo{clock: ck},
		Cases:          &fakeCaseRepo{clock: ck},
		OtherParties:   &fakeOtherPartyRepo{},
		Facilities:     &fakeFacilityRepo{},
		Providers:      &fakeProviderRepo{},
		Treatments:     &fakeTreatmentRepo{},
		Damages:        &fakeDamageRepo{},
		Insurers:       &fakeInsurerRepo{},
		Communications: &fakeCommunicationRepo{clock: ck},
		Citations:      &fakeCitationRepo{},
	}
}
