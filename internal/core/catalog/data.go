package catalog

import "github.com/scratchie/onboarding-flow/internal/core/domain"

var defaultCategories = []domain.Category{
	{ID: "Core Industry", Label: "Core Industry", Icon: "🏗️", Description: "Construction, mining, manufacturing & heavy industries"},
	{ID: "Hospitality", Label: "Hospitality", Icon: "🍔", Description: "Restaurants, hotels, retail & service industries"},
	{ID: "Healthcare", Label: "Healthcare", Icon: "🏥", Description: "Hospitals, clinics, aged care & medical services"},
	{ID: "Transportation", Label: "Transportation", Icon: "🚚", Description: "Trucking, logistics, public transport & aviation"},
	{ID: "Professional Services", Label: "Professional Services", Icon: "💼", Description: "Corporate offices, finance, tech & consulting"},
	{ID: "Infrastructure", Label: "Infrastructure", Icon: "⚡", Description: "Utilities, telecommunications & essential services"},
}

var defaultSectors = []domain.Sector{
	// Core Industry
	{
		Name: "Construction", Category: "Core Industry",
		Description:   "Building and infrastructure projects",
		KeyUseCases:   "Safety compliance; Quality workmanship; Site cleanliness",
		EmployeeModel: "Vendor-based (subcontractors)",
		Tags:          []string{"building", "contractor", "builder", "trades", "site", "scaffold", "concrete", "crane"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Mining", Category: "Core Industry",
		Description:   "Resource extraction and processing",
		KeyUseCases:   "Equipment safety; Environmental compliance; Hazard reporting",
		EmployeeModel: "Mixed (employees + contractors)",
		Tags:          []string{"quarry", "extraction", "minerals", "resources", "underground", "drill", "excavation"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Manufacturing", Category: "Core Industry",
		Description:   "Production facilities and factories",
		KeyUseCases:   "Machine safety; Quality control; Process improvement",
		EmployeeModel: "Employee-based",
		Tags:          []string{"factory", "production", "assembly", "industrial", "plant", "warehouse", "facility"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Oil & Gas", Category: "Core Industry",
		Description:   "Energy extraction and refining",
		KeyUseCases:   "Process safety; Environmental protection; Equipment maintenance",
		EmployeeModel: "Mixed (employees + contractors)",
		Tags:          []string{"petroleum", "refinery", "drilling", "energy", "offshore", "pipeline", "fuel"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Heavy Industry", Category: "Core Industry",
		Description:   "Steel, chemicals, and heavy machinery",
		KeyUseCases:   "Chemical safety; Equipment operation; Environmental compliance",
		EmployeeModel: "Employee-based",
		Tags:          []string{"steel", "chemical", "machinery", "foundry", "metal", "smelting", "industrial"},
		Environment:   domain.EnvironmentField,
	},

	// Hospitality
	{
		Name: "Quick Service Restaurants", Category: "Hospitality",
		Description:   "Fast food and quick dining establishments",
		KeyUseCases:   "Food safety; Slip prevention; Burns prevention",
		EmployeeModel: "Employee-based",
		Tags:          []string{"QSR", "fast food", "restaurant", "food service", "kitchen", "dining", "cafe", "takeaway"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Hotels & Accommodation", Category: "Hospitality",
		Description:   "Hotels, motels, and lodging services",
		KeyUseCases:   "Guest safety; Staff wellbeing; Housekeeping safety",
		EmployeeModel: "Employee-based",
		Tags:          []string{"hotel", "motel", "lodging", "accommodation", "resort", "hospitality", "guest services"},
		Environment:   domain.EnvironmentMixed,
	},
	{
		Name: "Restaurants & Bars", Category: "Hospitality",
		Description:   "Full-service dining and entertainment venues",
		KeyUseCases:   "Kitchen safety; Customer incidents; Staff training",
		EmployeeModel: "Employee-based",
		Tags:          []string{"dining", "bar", "pub", "restaurant", "bistro", "tavern", "nightclub", "entertainment"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Catering & Events", Category: "Hospitality",
		Description:   "Event services and catering operations",
		KeyUseCases:   "Food handling; Equipment transport; Venue safety",
		EmployeeModel: "Mixed (employees + contractors)",
		Tags:          []string{"catering", "events", "functions", "banquet", "wedding", "corporate events", "food service"},
		Environment:   domain.EnvironmentField,
	},

	// Healthcare
	{
		Name: "Hospitals", Category: "Healthcare",
		Description:   "Medical centers and hospital facilities",
		KeyUseCases:   "Patient safety; Infection control; Staff wellbeing",
		EmployeeModel: "Employee-based",
		Tags:          []string{"hospital", "medical center", "emergency", "ward", "clinic", "medical", "health"},
		Environment:   domain.EnvironmentMixed,
	},
	{
		Name: "Aged Care", Category: "Healthcare",
		Description:   "Nursing homes and elderly care facilities",
		KeyUseCases:   "Resident safety; Manual handling; Medication safety",
		EmployeeModel: "Employee-based",
		Tags:          []string{"nursing home", "elderly care", "senior care", "retirement", "assisted living", "care home"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Medical Practices", Category: "Healthcare",
		Description:   "Clinics and private medical practices",
		KeyUseCases:   "Patient privacy; Equipment hygiene; Staff safety",
		EmployeeModel: "Employee-based",
		Tags:          []string{"clinic", "doctor", "GP", "medical practice", "surgery", "physician", "practitioner"},
		Environment:   domain.EnvironmentOffice,
	},
	{
		Name: "Allied Health", Category: "Healthcare",
		Description:   "Physiotherapy, dental, and specialist services",
		KeyUseCases:   "Patient handling; Equipment safety; Hygiene protocols",
		EmployeeModel: "Mixed (employees + contractors)",
		Tags:          []string{"physio", "physiotherapy", "dental", "dentist", "specialist", "therapy", "rehabilitation"},
		Environment:   domain.EnvironmentOffice,
	},
	{
		Name: "Pathology & Diagnostics", Category: "Healthcare",
		Description:   "Testing laboratories and diagnostic centers",
		KeyUseCases:   "Specimen handling; Chemical safety; Equipment maintenance",
		EmployeeModel: "Employee-based",
		Tags:          []string{"lab", "laboratory", "pathology", "testing", "diagnostics", "blood", "radiology", "x-ray"},
		Environment:   domain.EnvironmentOffice,
	},

	// Transportation
	{
		Name: "Trucking & Logistics", Category: "Transportation",
		Description:   "Freight, delivery, and logistics operations",
		KeyUseCases:   "Driver safety; Load securing; Route planning",
		EmployeeModel: "Mixed (employees + owner-operators)",
		Tags:          []string{"trucking", "freight", "logistics", "delivery", "transport", "haulage", "shipping", "courier"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Warehousing", Category: "Transportation",
		Description:   "Storage and distribution centers",
		KeyUseCases:   "Forklift safety; Manual handling; Storage systems",
		EmployeeModel: "Employee-based",
		Tags:          []string{"warehouse", "distribution", "storage", "fulfillment", "logistics", "inventory", "supply chain"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Public Transport", Category: "Transportation",
		Description:   "Bus, train, and public transit services",
		KeyUseCases:   "Passenger safety; Driver wellbeing; Vehicle maintenance",
		EmployeeModel: "Employee-based",
		Tags:          []string{"bus", "train", "transit", "public transport", "metro", "subway", "tram", "railway"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Aviation", Category: "Transportation",
		Description:   "Airlines and airport operations",
		KeyUseCases:   "Ground safety; Security compliance; Equipment handling",
		EmployeeModel: "Employee-based",
		Tags:          []string{"aviation", "airline", "airport", "aircraft", "flight", "ground crew", "baggage", "terminal"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Maritime", Category: "Transportation",
		Description:   "Shipping and port operations",
		KeyUseCases:   "Vessel safety; Cargo handling; Port operations",
		EmployeeModel: "Mixed (employees + contractors)",
		Tags:          []string{"shipping", "port", "maritime", "vessel", "cargo", "dock", "harbor", "marine"},
		Environment:   domain.EnvironmentField,
	},

	// Professional Services
	{
		Name: "Corporate Offices", Category: "Professional Services",
		Description:   "General office and administrative environments",
		KeyUseCases:   "Ergonomics; Mental wellbeing; Team collaboration",
		EmployeeModel: "Employee-based",
		Tags:          []string{"office", "corporate", "business", "administration", "desk", "white collar", "professional"},
		Environment:   domain.EnvironmentOffice,
	},
	{
		Name: "Financial Services", Category: "Professional Services",
		Description:   "Banking, insurance, and financial institutions",
		KeyUseCases:   "Stress management; Security protocols; Ergonomic setup",
		EmployeeModel: "Employee-based",
		Tags:          []string{"banking", "finance", "insurance", "accounting", "investment", "financial", "bank"},
		Environment:   domain.EnvironmentOffice,
	},
	{
		Name: "Technology", Category: "Professional Services",
		Description:   "IT companies and tech startups",
		KeyUseCases:   "Workstation setup; Mental health; Team collaboration",
		EmployeeModel: "Employee-based",
		Tags:          []string{"IT", "tech", "software", "technology", "startup", "digital", "computer", "developer"},
		Environment:   domain.EnvironmentOffice,
	},
	{
		Name: "Consulting", Category: "Professional Services",
		Description:   "Management and professional consulting",
		KeyUseCases:   "Travel safety; Client site safety; Work-life balance",
		EmployeeModel: "Employee-based",
		Tags:          []string{"consulting", "consultant", "advisory", "management", "strategy", "professional services"},
		Environment:   domain.EnvironmentOffice,
	},
	{
		Name: "Legal Services", Category: "Professional Services",
		Description:   "Law firms and legal practices",
		KeyUseCases:   "Workplace stress; Document handling; Client safety",
		EmployeeModel: "Employee-based",
		Tags:          []string{"legal", "law", "lawyer", "attorney", "solicitor", "barrister", "law firm", "legal practice"},
		Environment:   domain.EnvironmentOffice,
	},

	// Infrastructure
	{
		Name: "Utilities", Category: "Infrastructure",
		Description:   "Power, water, and gas utilities",
		KeyUseCases:   "Electrical safety; Field work safety; Emergency response",
		EmployeeModel: "Employee-based",
		Tags:          []string{"utilities", "power", "electricity", "water", "gas", "energy", "grid", "supply"},
		Environment:   domain.EnvironmentMixed,
	},
	{
		Name: "Telecommunications", Category: "Infrastructure",
		Description:   "Telecom networks and services",
		KeyUseCases:   "Tower safety; Cable installation; Equipment handling",
		EmployeeModel: "Mixed (employees + contractors)",
		Tags:          []string{"telecom", "telecommunications", "network", "internet", "mobile", "tower", "cable", "fiber"},
		Environment:   domain.EnvironmentMixed,
	},
	{
		Name: "Waste Management", Category: "Infrastructure",
		Description:   "Waste collection and recycling services",
		KeyUseCases:   "Vehicle safety; Manual handling; Hazardous materials",
		EmployeeModel: "Employee-based",
		Tags:          []string{"waste", "garbage", "recycling", "rubbish", "sanitation", "disposal", "collection"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Water Treatment", Category: "Infrastructure",
		Description:   "Water and wastewater treatment facilities",
		KeyUseCases:   "Chemical handling; Confined spaces; Equipment safety",
		EmployeeModel: "Employee-based",
		Tags:          []string{"water treatment", "wastewater", "sewage", "treatment plant", "water quality", "filtration"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Renewable Energy", Category: "Infrastructure",
		Description:   "Solar, wind, and renewable energy operations",
		KeyUseCases:   "Height safety; Electrical safety; Environmental monitoring",
		EmployeeModel: "Mixed (employees + contractors)",
		Tags:          []string{"solar", "wind", "renewable", "green energy", "sustainable", "wind farm", "solar farm"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Rail Infrastructure", Category: "Infrastructure",
		Description:   "Rail network maintenance and operations",
		KeyUseCases:   "Track safety; Signal systems; Heavy equipment",
		EmployeeModel: "Employee-based",
		Tags:          []string{"rail", "railway", "track", "train infrastructure", "signal", "railroad", "metro"},
		Environment:   domain.EnvironmentField,
	},

	// Placed into existing categories.
	{
		Name: "Agriculture", Category: "Core Industry",
		Description:   "Farming and agricultural operations",
		KeyUseCases:   "Machinery safety; Chemical handling; Animal safety",
		EmployeeModel: "Mixed (employees + seasonal workers)",
		Tags:          []string{"farming", "agriculture", "farm", "crops", "livestock", "harvest", "agricultural", "rural"},
		Environment:   domain.EnvironmentField,
	},
	{
		Name: "Retail", Category: "Hospitality",
		Description:   "Retail stores and shopping centers",
		KeyUseCases:   "Manual handling; Customer safety; Stock management",
		EmployeeModel: "Employee-based",
		Tags:          []string{"retail", "shop", "store", "shopping", "sales", "customer service", "mall", "boutique"},
		Environment:   domain.EnvironmentMixed,
	},
}
