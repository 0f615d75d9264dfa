package entitlement

import (
	"errors"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/plan"
)

// Domain errors for entitlement operations.
var (
	// ErrPlanNotFound aliases the plan package sentinel so a dangling plan
	// reference detected here matches errors.Is checks in either package.
	ErrPlanNotFound = plan.ErrPlanNotFound

	ErrStoreNotFound    = errors.New("store entitlement record not found")
	ErrStoreExists      = errors.New("store entitlement record already exists")
	ErrOverrideDisabled = errors.New("bundle settings are plan-derived while override is disabled")
	ErrInvalidSettings  = errors.New("invalid bundle settings")
	ErrConflict         = errors.New("store record was modified concurrently")
)
