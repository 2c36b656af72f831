package domain

import (
	"github.com/google/uuid"
)

type CreateIssueRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=4000"`
	Latitude    float64    `json:"latitude" validate:"lat"`
	Longitude   float64    `json:"longitude" validate:"lng"`
	Address     string     `json:"address" validate:"max=500"`
	Landmark    string     `json:"landmark" validate:"max=200"`
	Category    Category   `json:"category" validate:"required,oneof=pothole street_light water_leak traffic_signal sidewalk drainage debris other"`
	Priority    Priority   `json:"priority" validate:"required,oneof=low medium high critical"`
	Area        string     `json:"area" validate:"max=200"`
	ReportedBy  string     `json:"reportedBy" validate:"max=200"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
}

type UpdateIssueStatusRequest struct {
	Status IssueStatus `json:"status" validate:"required,oneof=open assigned in_progress resolved closed"`
}

type NearbyRequest struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
	RadiusKM  float64 `json:"radiusKm" validate:"radius_km"`
}

type AssignAreasRequest struct {
	Areas []GeographicArea `json:"areas"`
}

type IssueListResponse struct {
	Issues []Issue `json:"issues"`
	Total  int     `json:"total"`
}
