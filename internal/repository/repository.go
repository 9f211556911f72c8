package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User        UserRepository
	News        NewsRepository
	Publication PublicationRepository
	Project     ProjectRepository
	Member      MemberRepository
	Maintenance MaintenanceRepository
}

// NewRepository builds the Repository aggregate over one gorm connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		News:        NewNewsRepo(db),
		Publication: NewPublicationRepo(db),
		Project:     NewProjectRepo(db),
		Member:      NewMemberRepo(db),
		Maintenance: NewMaintenanceRepo(db),
	}
}
