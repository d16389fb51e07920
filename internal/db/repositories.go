package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Plans    *PlanRepository
	Sessions *SessionRepository
	Progress *ProgressRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Plans:    NewPlanRepository(database),
		Sessions: NewSessionRepository(database),
		Progress: NewProgressRepository(database),
	}
}
