package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"arayWorlds/apperror"
	"arayWorlds/clients/gcp"

	"gopkg.in/yaml.v3"
)

//go:embed games.yaml
var defaultGames []byte

type Game struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description,omitempty"`
	// Unit is how the game's record is shown: "nivel" or "m".
	Unit     string `yaml:"unit" json:"unit"`
	MaxLevel int64  `yaml:"maxLevel" json:"maxLevel"`
}

type Catalog struct {
	games []Game
	byID  map[string]Game
}

type file struct {
	Games []Game `yaml:"games"`
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Games) == 0 {
		return nil, fmt.Errorf("catalog has no games")
	}
	c := &Catalog{
		games: f.Games,
		byID:  make(map[string]Game, len(f.Games)),
	}
	for _, g := range f.Games {
		if g.ID == "" {
			return nil, fmt.Errorf("catalog game %q has no id", g.Name)
		}
		if _, dup := c.byID[g.ID]; dup {
			return nil, fmt.Errorf("catalog game %q listed twice", g.ID)
		}
		if g.MaxLevel < 0 {
			return nil, fmt.Errorf("catalog game %q has a negative maxLevel", g.ID)
		}
		c.byID[g.ID] = g
	}
	return c, nil
}

// Default is the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultGames)
	if err != nil {
		panic(err)
	}
	return c
}

// FromBucket reads the catalog from a Cloud Storage object.
func FromBucket(ctx context.Context, bucket, object string) (*Catalog, error) {
	data, err := gcp.ReadObject(ctx, bucket, object)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func (c *Catalog) Games() []Game {
	out := make([]Game, len(c.games))
	copy(out, c.games)
	return out
}

func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.games))
	for _, g := range c.games {
		ids = append(ids, g.ID)
	}
	return ids
}

func (c *Catalog) Lookup(gameID string) (Game, bool) {
	g, ok := c.byID[gameID]
	return g, ok
}

// CheckLevel rejects unknown games and levels past the game's last level.
func (c *Catalog) CheckLevel(gameID string, level int64) error {
	g, ok := c.byID[gameID]
	if !ok {
		return apperror.NotFound("game", gameID)
	}
	if g.MaxLevel > 0 && level > g.MaxLevel {
		return apperror.ValidationFailed("level", fmt.Sprintf("%s has %d levels", g.Name, g.MaxLevel))
	}
	return nil
}
