package pokeapi

// PokemonData mirrors the /pokemon/{id} response, trimmed to the fields
// the game stores.
type PokemonData struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
	BaseExperience int    `json:"base_experience"`
	Types          []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

// SpeciesData mirrors the /pokemon-species/{id} response.
type SpeciesData struct {
	Habitat *struct {
		Name string `json:"name"`
	} `json:"habitat"`
	Generation struct {
		Name string `json:"name"`
	} `json:"generation"`
	FlavorTextEntries []struct {
		FlavorText string `json:"flavor_text"`
		Language   struct {
			Name string `json:"name"`
		} `json:"language"`
	} `json:"flavor_text_entries"`
}

var generationRegions = map[string]string{
	"generation-i":    "kanto",
	"generation-ii":   "johto",
	"generation-iii":  "hoenn",
	"generation-iv":   "sinnoh",
	"generation-v":    "unova",
	"generation-vi":   "kalos",
	"generation-vii":  "alola",
	"generation-viii": "galar",
	"generation-ix":   "paldea",
}

// RegionForGeneration maps a generation name to its home region.
func RegionForGeneration(generation string) (string, bool) {
	region, ok := generationRegions[generation]
	return region, ok
}

// EnglishFlavorText returns the first English pokedex entry, cleaned of
// the control characters PokeAPI embeds in flavor text.
func (s *SpeciesData) EnglishFlavorText() string {
	for _, entry := range s.FlavorTextEntries {
		if entry.Language.Name == "en" {
			return cleanFlavorText(entry.FlavorText)
		}
	}
	return ""
}

func cleanFlavorText(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if r == '\n' || r == '\f' || r == '\r' {
			out = append(out, ' ')
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
