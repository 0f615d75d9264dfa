package plan

import "errors"

// Domain errors for plan catalog operations.
var (
	ErrPlanNotFound  = errors.New("plan not found")
	ErrDuplicateKey  = errors.New("plan key already exists")
	ErrProtectedPlan = errors.New("default plan cannot be deleted")
	ErrPlanInUse     = errors.New("plan is referenced by existing stores")
	ErrInvalidPlan   = errors.New("invalid plan configuration")
	ErrNoBaseline    = errors.New("no factory baseline for plan")
	ErrConflict      = errors.New("plan was modified concurrently")

	ErrFailedToLoadPlans     = errors.New("failed to load plan catalog")
	ErrFailedToCheckPlanUse  = errors.New("failed to check plan references")
	ErrFailedToEncodeCatalog = errors.New("failed to encode plan catalog for cache")
)
