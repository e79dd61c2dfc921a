package pokeapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Client is a minimal PokeAPI client used by the populate tool.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// GetPokemon fetches base data for one pokemon by pokedex number.
func (c *Client) GetPokemon(id int) (*PokemonData, error) {
	var data PokemonData
	if err := c.get(fmt.Sprintf("%s/pokemon/%d/", c.baseURL, id), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetSpecies fetches species data (habitat, generation, flavor text).
func (c *Client) GetSpecies(id int) (*SpeciesData, error) {
	var data SpeciesData
	if err := c.get(fmt.Sprintf("%s/pokemon-species/%d/", c.baseURL, id), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) get(url string, result interface{}) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
