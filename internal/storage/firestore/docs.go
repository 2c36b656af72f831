package firestore

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"cityDesk/internal/domain"
)

type issueDoc struct {
	ID          string     `firestore:"id"`
	Title       string     `firestore:"title"`
	Description string     `firestore:"description"`
	Latitude    float64    `firestore:"latitude"`
	Longitude   float64    `firestore:"longitude"`
	Address     string     `firestore:"address"`
	Landmark    string     `firestore:"landmark"`
	Category    string     `firestore:"category"`
	Priority    string     `firestore:"priority"`
	Status      string     `firestore:"status"`
	Area        string     `firestore:"area"`
	ReportedBy  string     `firestore:"reported_by"`
	AssignedTo  string     `firestore:"assigned_to"`
	CreatedAt   time.Time  `firestore:"created_at"`
	UpdatedAt   time.Time  `firestore:"updated_at"`
	ResolvedAt  *time.Time `firestore:"resolved_at"`
	SLADeadline *time.Time `firestore:"sla_deadline"`
	IsEscalated bool       `firestore:"is_escalated"`
	EscalatedAt *time.Time `firestore:"escalated_at"`
}

type userDoc struct {
	ID              string                  `firestore:"id"`
	Name            string                  `firestore:"name"`
	Email           string                  `firestore:"email"`
	Role            string                  `firestore:"role"`
	Department      string                  `firestore:"department"`
	GeographicAreas []domain.GeographicArea `firestore:"geographic_areas"`
	Location        *domain.LocationPoint   `firestore:"location"`
}

type areaDoc struct {
	ID                    string                 `firestore:"id"`
	Name                  string                 `firestore:"name"`
	Type                  string                 `firestore:"type"`
	Boundaries            []domain.LocationPoint `firestore:"boundaries"`
	Center                domain.LocationPoint   `firestore:"center"`
	RadiusKM              float64                `firestore:"radius_km"`
	Population            int64                  `firestore:"population"`
	Priority              string                 `firestore:"priority"`
	SupervisorID          string                 `firestore:"supervisor_id"`
	SLATargets            map[string]int64       `firestore:"sla_targets"`
	ActiveIssues          int64                  `firestore:"active_issues"`
	TotalIssues           int64                  `firestore:"total_issues"`
	AverageResolutionTime float64                `firestore:"average_resolution_time"`
}

func toIssueDoc(i domain.Issue) issueDoc {
	return issueDoc{
		ID:          i.ID.String(),
		Title:       i.Title,
		Description: i.Description,
		Latitude:    i.Location.Latitude,
		Longitude:   i.Location.Longitude,
		Address:     i.Location.Address,
		Landmark:    i.Location.Landmark,
		Category:    string(i.Category),
		Priority:    string(i.Priority),
		Status:      string(i.Status),
		Area:        i.Area,
		ReportedBy:  i.ReportedBy,
		AssignedTo:  uuidString(i.AssignedTo),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
		ResolvedAt:  i.ResolvedAt,
		SLADeadline: i.SLADeadline,
		IsEscalated: i.IsEscalated,
		EscalatedAt: i.EscalatedAt,
	}
}

func (d issueDoc) toDomain() (domain.Issue, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Issue{}, fmt.Errorf("issue id %q: %w", d.ID, err)
	}
	assignee, err := parseOptionalUUID(d.AssignedTo)
	if err != nil {
		return domain.Issue{}, fmt.Errorf("issue %s assigned_to: %w", d.ID, err)
	}
	return domain.Issue{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Location: domain.IssueLocation{
			LocationPoint: domain.LocationPoint{Latitude: d.Latitude, Longitude: d.Longitude},
			Address:       d.Address,
			Landmark:      d.Landmark,
		},
		Category:    domain.Category(d.Category),
		Priority:    domain.Priority(d.Priority),
		Status:      domain.IssueStatus(d.Status),
		Area:        d.Area,
		ReportedBy:  d.ReportedBy,
		AssignedTo:  assignee,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		ResolvedAt:  d.ResolvedAt,
		SLADeadline: d.SLADeadline,
		IsEscalated: d.IsEscalated,
		EscalatedAt: d.EscalatedAt,
	}, nil
}

func toUserDoc(u domain.User) userDoc {
	areas := u.GeographicAreas
	if areas == nil {
		areas = []domain.GeographicArea{}
	}
	return userDoc{
		ID:              u.ID.String(),
		Name:            u.Name,
		Email:           u.Email,
		Role:            string(u.Role),
		Department:      u.Department,
		GeographicAreas: areas,
		Location:        u.Location,
	}
}

func (d userDoc) toDomain() (domain.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user id %q: %w", d.ID, err)
	}
	return domain.User{
		ID:              id,
		Name:            d.Name,
		Email:           d.Email,
		Role:            domain.Role(d.Role),
		Department:      d.Department,
		GeographicAreas: d.GeographicAreas,
		Location:        d.Location,
	}, nil
}

func toAreaDoc(a domain.Area) areaDoc {
	targets := make(map[string]int64, len(a.SLATargets))
	for c, h := range a.SLATargets {
		targets[string(c)] = int64(h)
	}
	return areaDoc{
		ID:                    a.ID.String(),
		Name:                  a.Name,
		Type:                  string(a.Type),
		Boundaries:            a.Boundaries,
		Center:                a.Center,
		RadiusKM:              a.Radius,
		Population:            int64(a.Population),
		Priority:              string(a.Priority),
		SupervisorID:          uuidString(a.SupervisorID),
		SLATargets:            targets,
		ActiveIssues:          int64(a.ActiveIssues),
		TotalIssues:           int64(a.TotalIssues),
		AverageResolutionTime: a.AverageResolutionTime,
	}
}

func (d areaDoc) toDomain() (domain.Area, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Area{}, fmt.Errorf("area id %q: %w", d.ID, err)
	}
	supervisor, err := parseOptionalUUID(d.SupervisorID)
	if err != nil {
		return domain.Area{}, fmt.Errorf("area %s supervisor_id: %w", d.ID, err)
	}

	var targets map[domain.Category]int
	if len(d.SLATargets) > 0 {
		targets = make(map[domain.Category]int, len(d.SLATargets))
		for c, h := range d.SLATargets {
			targets[domain.Category(c)] = int(h)
		}
	}

	return domain.Area{
		ID:                    id,
		Name:                  d.Name,
		Type:                  domain.AreaType(d.Type),
		Boundaries:            d.Boundaries,
		Center:                d.Center,
		Radius:                d.RadiusKM,
		Population:            int(d.Population),
		Priority:              domain.Priority(d.Priority),
		SupervisorID:          supervisor,
		SLATargets:            targets,
		ActiveIssues:          int(d.ActiveIssues),
		TotalIssues:           int(d.TotalIssues),
		AverageResolutionTime: d.AverageResolutionTime,
	}, nil
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
