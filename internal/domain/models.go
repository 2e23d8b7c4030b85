package domain

// Character is one person record returned by the Star Wars API.
// Height (centimetres) and Mass (kilograms) are kept exactly as the API
// reports them, which includes values such as "unknown" and "1,358".
type Character struct {
	Name      string   `json:"name"`
	Height    string   `json:"height"`
	Mass      string   `json:"mass"`
	HairColor string   `json:"hair_color"`
	SkinColor string   `json:"skin_color,omitempty"`
	EyeColor  string   `json:"eye_color"`
	BirthYear string   `json:"birth_year,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Homeworld string   `json:"homeworld,omitempty"`
	Films     []string `json:"films,omitempty"`
	Species   []string `json:"species,omitempty"`
	Vehicles  []string `json:"vehicles,omitempty"`
	Starships []string `json:"starships,omitempty"`
	Created   string   `json:"created,omitempty"`
	Edited    string   `json:"edited,omitempty"`
	URL       string   `json:"url,omitempty"`
}
