package swapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Adda-Baaj/swapi-client/internal/domain"
)

// personPayload mirrors the /people/{id}/ body. Pointer fields are required.
type personPayload struct {
	Name      *string      `json:"name"`
	Height    *measurement `json:"height"`
	Mass      *measurement `json:"mass"`
	HairColor *string      `json:"hair_color"`
	EyeColor  *string      `json:"eye_color"`

	SkinColor string   `json:"skin_color"`
	BirthYear string   `json:"birth_year"`
	Gender    string   `json:"gender"`
	Homeworld string   `json:"homeworld"`
	Films     []string `json:"films"`
	Species   []string `json:"species"`
	Vehicles  []string `json:"vehicles"`
	Starships []string `json:"starships"`
	Created   string   `json:"created"`
	Edited    string   `json:"edited"`
	URL       string   `json:"url"`
}

// measurement accepts both the API's quoted values ("172", "unknown") and bare numbers.
type measurement string

func (m *measurement) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = measurement(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("measurement must be a string or number: %w", err)
	}
	*m = measurement(n.String())
	return nil
}

var (
	errNotObject    = errors.New("response body is not a JSON object")
	errMissingField = errors.New("required field missing")
)

// decodeCharacter returns the missing field name alongside the error when the
// body was well-formed but incomplete.
func decodeCharacter(body []byte) (domain.Character, string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.Character{}, "", errNotObject
	}

	var p personPayload
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return domain.Character{}, "", err
	}

	switch {
	case p.Name == nil:
		return domain.Character{}, "name", errMissingField
	case p.Height == nil:
		return domain.Character{}, "height", errMissingField
	case p.Mass == nil:
		return domain.Character{}, "mass", errMissingField
	case p.HairColor == nil:
		return domain.Character{}, "hair_color", errMissingField
	case p.EyeColor == nil:
		return domain.Character{}, "eye_color", errMissingField
	}

	return domain.Character{
		Name:      *p.Name,
		Height:    string(*p.Height),
		Mass:      string(*p.Mass),
		HairColor: *p.HairColor,
		EyeColor:  *p.EyeColor,
		SkinColor: p.SkinColor,
		BirthYear: p.BirthYear,
		Gender:    p.Gender,
		Homeworld: p.Homeworld,
		Films:     p.Films,
		Species:   p.Species,
		Vehicles:  p.Vehicles,
		Starships: p.Starships,
		Created:   p.Created,
		Edited:    p.Edited,
		URL:       p.URL,
	}, "", nil
}
