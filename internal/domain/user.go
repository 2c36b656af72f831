package domain

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleSuperAdmin     Role = "SuperAdmin"
	RoleDepartmentHead Role = "Department Head"
	RoleSupervisor     Role = "Supervisor"
	RoleAuditor        Role = "Auditor"
	RolePending        Role = "pending"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleDepartmentHead, RoleSupervisor, RoleAuditor, RolePending:
		return true
	}
	return false
}

type User struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Role            Role             `json:"role"`
	Department      string           `json:"department,omitempty"`
	GeographicAreas []GeographicArea `json:"geographicAreas,omitempty"`
	Location        *LocationPoint   `json:"location,omitempty"`
}
