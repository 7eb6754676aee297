package domain

// Environment is where a sector's work mostly happens.
type Environment string

const (
	EnvironmentField  Environment = "field"
	EnvironmentOffice Environment = "office"
	EnvironmentMixed  Environment = "mixed"
)

// Sector is an immutable industry entry of the static catalog.
type Sector struct {
	Name          string      `json:"name"`
	Category      string      `json:"category"`
	Description   string      `json:"description"`
	KeyUseCases   string      `json:"keyUseCases"`
	EmployeeModel string      `json:"employeeModel"`
	Tags          []string    `json:"tags"`
	Environment   Environment `json:"environment"`
}

// Category groups sectors for two-step browsing.
type Category struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// CategorySummary is a category with its computed membership count.
type CategorySummary struct {
	Category
	SectorCount int `json:"sectorCount"`
}
