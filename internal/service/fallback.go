package service

// ManufacturerCard is a housing manufacturer as presented on the home page.
// Country, Website and KeyFeatures are only known for the built-in dataset.
type ManufacturerCard struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Description  *string  `json:"description"`
	Country      *string  `json:"country"`
	Website      *string  `json:"website"`
	KeyFeatures  []string `json:"keyFeatures"`
	HousingCount int      `json:"housingCount"`
	URL          string   `json:"url"`
}

// Home page data sources.
const (
	SourceDatabase = "database"
	SourceFallback = "fallback"
)

func text(s string) *string { return &s }

// fallbackManufacturers is served on the home page while the store is unavailable.
func fallbackManufacturers() []ManufacturerCard {
	return []ManufacturerCard{
		{
			ID: "1", Name: "Nauticam", Slug: "nauticam",
			Description:  text("Premium aluminum housings for professional underwater photography"),
			Country:      text("Hong Kong"),
			Website:      text("https://www.nauticam.com"),
			KeyFeatures:  []string{"N100/N120 Port System", "Depth rated to 100m", "Professional grade controls"},
			HousingCount: 25,
		},
		{
			ID: "2", Name: "Aquatica", Slug: "aquatica",
			Description:  text("High-quality housings for Canon and Nikon cameras"),
			Country:      text("Canada"),
			Website:      text("https://www.aquatica.ca"),
			KeyFeatures:  []string{"Over 40 years experience", "Canadian engineering", "Precision machined aluminum"},
			HousingCount: 18,
		},
		{
			ID: "3", Name: "Isotta", Slug: "isotta",
			Description:  text("Italian-made housings with precision engineering"),
			Country:      text("Italy"),
			Website:      text("https://www.isotecnic.it"),
			KeyFeatures:  []string{"Made in Italy", "Wide camera compatibility", "Competitive pricing"},
			HousingCount: 32,
		},
		{
			ID: "4", Name: "AOI", Slug: "aoi",
			Description:  text("Taiwanese underwater housings and accessories"),
			Country:      text("Taiwan"),
			Website:      text("https://www.aoi-uw.com"),
			KeyFeatures:  []string{"Mirrorless specialists", "Compact design", "Innovative features"},
			HousingCount: 15,
		},
		{
			ID: "5", Name: "Sea Frogs", Slug: "sea-frogs",
			Description:  text("Affordable underwater housings for all photographers"),
			Country:      text("Hong Kong"),
			Website:      text("https://www.seafrogs.com.hk"),
			KeyFeatures:  []string{"Budget-friendly options", "Salted Line series", "Wide camera support"},
			HousingCount: 22,
		},
		{
			ID: "6", Name: "DiveVolk", Slug: "divevolk",
			Description:  text("Revolutionary smartphone housings with touchscreen technology"),
			Country:      text("China"),
			Website:      text("https://www.divevolkdiving.com"),
			KeyFeatures:  []string{"SeaTouch technology", "Full touchscreen access", "Smartphone compatibility"},
			HousingCount: 8,
		},
	}
}
