package entity

import (
	"time"
)

// Gadget statuses. There is no enforced transition graph: any status may be
// written over any other via create or update. Decommission is the only
// structured transition because it also stamps DecommissionedAt.
const (
	StatusAvailable      = "Available"
	StatusDeployed       = "Deployed"
	StatusDestroyed      = "Destroyed"
	StatusDecommissioned = "Decommissioned"
)

// ValidStatuses is the closed set accepted by the list filter.
// Matching is case-sensitive.
var ValidStatuses = []string{
	StatusAvailable,
	StatusDeployed,
	StatusDestroyed,
	StatusDecommissioned,
}

// IsValidStatus reports whether s is one of the four known statuses.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Gadget is a status-tracked field resource. Gadgets are never physically
// deleted; DecommissionedAt is set only by the decommission operation.
type Gadget struct {
	ID               string
	Name             string
	Status           string
	DecommissionedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
