package ports

import "github.com/scratchie/onboarding-flow/internal/core/domain"

// SectorCatalog is the read-only reference data the state machine consults.
type SectorCatalog interface {
	Lookup(name string) (domain.Sector, bool)
	SectorsIn(category string) []domain.Sector
	Search(term string) []domain.Sector
	Category(id string) (domain.Category, bool)
	Categories() []domain.CategorySummary
	Sectors() []domain.Sector
}
