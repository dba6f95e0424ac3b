package model

import (
	"time"

	"weather-dashboard/internal/domain/entity"
)

// DashboardStatus is the lifecycle of the dashboard view: Idle -> Loading -> {Loaded, Failed}.
type DashboardStatus string

const (
	DashboardIdle    DashboardStatus = "IDLE"
	DashboardLoading DashboardStatus = "LOADING"
	DashboardLoaded  DashboardStatus = "LOADED"
	DashboardFailed  DashboardStatus = "FAILED"
)

// DashboardError is the displayable form of a failed fetch.
type DashboardError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// DashboardState is the single slot the view renders from.
type DashboardState struct {
	Status    DashboardStatus        `json:"status"`
	Query     string                 `json:"query"`
	RequestID string                 `json:"requestId,omitempty"`
	Bundle    *entity.ForecastBundle `json:"bundle,omitempty"`
	Error     *DashboardError        `json:"error,omitempty"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// NewIdleState returns the state before the first fetch.
func NewIdleState() DashboardState {
	return DashboardState{Status: DashboardIdle}
}

// StartLoading clears the previous error and keeps the previous bundle on screen.
func (s DashboardState) StartLoading(query, requestID string, now time.Time) DashboardState {
	return DashboardState{
		Status:    DashboardLoading,
		Query:     query,
		RequestID: requestID,
		Bundle:    s.Bundle,
		UpdatedAt: now,
	}
}

// Succeed replaces any held bundle with bundle.
func (s DashboardState) Succeed(bundle *entity.ForecastBundle, now time.Time) DashboardState {
	return DashboardState{
		Status:    DashboardLoaded,
		Query:     s.Query,
		RequestID: s.RequestID,
		Bundle:    bundle,
		UpdatedAt: now,
	}
}

// Fail records err and drops the stale bundle.
func (s DashboardState) Fail(err error, now time.Time) DashboardState {
	return DashboardState{
		Status:    DashboardFailed,
		Query:     s.Query,
		RequestID: s.RequestID,
		Error:     &DashboardError{Kind: ErrorKindOf(err), Message: ErrorMessageOf(err)},
		UpdatedAt: now,
	}
}

func (s DashboardState) IsIdle() bool {
	return s.Status == "" || s.Status == DashboardIdle
}

func (s DashboardState) IsLoading() bool {
	return s.Status == DashboardLoading
}
