package gamedata

import "github.com/lucasb-eyer/go-colorful"

// Role says which side of the match a roster fighter plays.
type Role string

const (
	RolePlayer   Role = "player"
	RoleOpponent Role = "opponent"
)

// FighterDef defines a primary fighter loaded from JSON.
type FighterDef struct {
	ID     string  `json:"id"`     // Unique identifier (e.g., "obito")
	Name   string  `json:"name"`   // Display name (e.g., "Obito")
	Role   Role    `json:"role"`   // player or opponent
	Color  string  `json:"color"`  // Hex color code for the body
	X      float64 `json:"x"`      // Spawn position, top-left corner
	Y      float64 `json:"y"`      //
	Width  float64 `json:"width"`  // Hit box size
	Height float64 `json:"height"` //
	Health float64 `json:"health"` // Starting and maximum health
	Chakra float64 `json:"chakra"` // Starting chakra
}

// BodyColor returns the body color, falling back to white on a bad hex code.
func (f *FighterDef) BodyColor() colorful.Color {
	c, err := ParseHexColor(f.Color)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// FightersFile represents the structure of fighters.json.
type FightersFile struct {
	Fighters []FighterDef `json:"fighters"`
}

// LoadFighters loads fighter definitions from the embedded fighters.json file.
func LoadFighters() ([]FighterDef, error) {
	file, err := Load[FightersFile]("fighters.json")
	if err != nil {
		return nil, err
	}
	return file.Fighters, nil
}
