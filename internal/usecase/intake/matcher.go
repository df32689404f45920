package intake

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexintake/intake-service/internal/domain/entities"
	"github.com/lexintake/intake-service/internal/domain/repositories"
)

// locationAnchorLen caps the location substring used for fallback matching.
// Anchoring on a prefix avoids over-matching very short or generic locations.
const locationAnchorLen = 40

// Matcher resolves a caller and incident against existing clients and cases
type Matcher struct {
	clients repositories.ClientRepository
	cases   repositories.CaseRepository
	logger  *zap.Logger
}

// NewMatcher creates a matcher over the given repositories
func NewMatcher(clients repositories.ClientRepository, cases repositories.CaseRepository, logger *zap.Logger) *Matcher {
	return &Matcher{clients: clients, cases: cases, logger: logger}
}

// FindExistingCase looks for a client and case matching the caller and
// incident within a law firm.
//
// Matching strategy, in priority order:
//  1. Client by case-insensitive first + last name within the firm, newest
//     first when duplicated.
//  2. Case by exact incident date. Same person, same date is almost certainly
//     the same incident.
//  3. Case by incident type plus location prefix substring, a fallback when
//     the date is unavailable or ambiguous.
//
// Returns nil, nil, nil when nothing matches.
func (m *Matcher) FindExistingCase(ctx context.Context, lawFirmID uuid.UUID, firstName, lastName string, info IncidentInfo) (*entities.Client, *entities.Case, error) {
	clients, err := m.clients.FindByName(ctx, lawFirmID, firstName, lastName)
	if err != nil {
		return nil, nil, err
	}
	if len(clients) == 0 {
		return nil, nil, nil
	}
	client := clients[0]

	cases, err := m.cases.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, nil, err
	}
	if len(cases) == 0 {
		return nil, nil, nil
	}

	if info.Date != nil {
		for _, c := range cases {
			if c.IncidentDate != nil && sameDay(*c.IncidentDate, *info.Date) {
				m.logger.Info("matched existing case via client+date",
					zap.String("case_id", c.ID.String()),
					zap.String("client_name", firstName+" "+lastName),
					zap.Time("incident_date", *info.Date),
				)
				return client, c, nil
			}
		}
	}

	if info.Type != nil && info.Location != nil {
		anchor := locationAnchor(*info.Location)
		for _, c := range cases {
			if c.IncidentType == *info.Type &&
				strings.Contains(strings.ToLower(c.IncidentLocation), anchor) {
				m.logger.Info("matched existing case via client+type+location",
					zap.String("case_id", c.ID.String()),
					zap.String("client_name", firstName+" "+lastName),
					zap.String("incident_type", string(*info.Type)),
					zap.String("location_anchor", anchor),
				)
				return client, c, nil
			}
		}
	}

	return nil, nil, nil
}

// locationAnchor takes the first locationAnchorLen characters of a location,
// counting runes so a multi-byte character never gets split mid-sequence.
func locationAnchor(location string) string {
	if runes := []rune(location); len(runes) > locationAnchorLen {
		location = string(runes[:locationAnchorLen])
	}
	return strings.ToLower(strings.TrimSpace(location))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
