package api

import (
	"github.com/terraincognita07/pacer/internal/db"
	"github.com/terraincognita07/pacer/internal/identity"
	"github.com/terraincognita07/pacer/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db              *gorm.DB
	repositories    *db.Repositories
	identityService *services.IdentityService
	planService     *services.PlanService
	sessionService  *services.SessionService
	progressService *services.ProgressService
}

// NewHandler wires the repositories and services over the database and the
// injected identity-provider client.
func NewHandler(database *gorm.DB, verifier identity.TokenVerifier) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		db:              database,
		repositories:    repositories,
		identityService: services.NewIdentityService(verifier, repositories.Users),
		planService:     services.NewPlanService(repositories.Plans),
		sessionService:  services.NewSessionService(repositories.Sessions, repositories.Plans),
		progressService: services.NewProgressService(repositories.Progress),
	}
}
