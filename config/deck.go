package config

import (
	"fmt"
	"os"

	"onitama/game"

	"gopkg.in/yaml.v3"
)

type cardConfig struct {
	ID    int     `yaml:"id"`
	Name  string  `yaml:"name"`
	Moves [][]int `yaml:"moves"` // [dx, dy] pairs, forward is positive dy
	Start string  `yaml:"start"`
}

type deckConfig struct {
	Cards []cardConfig `yaml:"cards"`
}

func LoadDeck(path string) ([]game.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read deck: %w", err)
	}
	deck, err := ParseDeck(data)
	if err != nil {
		return nil, fmt.Errorf("cannot load deck %s: %w", path, err)
	}
	return deck, nil
}

// ParseDeck decodes a YAML deck. Cards sharing an id count once.
func ParseDeck(data []byte) ([]game.Card, error) {
	var dc deckConfig
	if err := yaml.Unmarshal(data, &dc); err != nil {
		return nil, fmt.Errorf("cannot parse deck: %w", err)
	}

	ids := map[int]bool{}
	deck := make([]game.Card, 0, len(dc.Cards))
	for _, cc := range dc.Cards {
		card, err := cc.card()
		if err != nil {
			return nil, err
		}
		ids[card.ID] = true
		deck = append(deck, card)
	}
	if len(ids) < game.DealSize {
		return nil, invalid("deck needs %d distinct cards, got %d", game.DealSize, len(ids))
	}
	return deck, nil
}

func (cc cardConfig) card() (game.Card, error) {
	side, err := game.ParseSide(cc.Start)
	if err != nil {
		return game.Card{}, invalid("card %q: %v", cc.Name, err)
	}
	if len(cc.Moves) == 0 {
		return game.Card{}, invalid("card %q has no moves", cc.Name)
	}

	moves := make([]game.Offset, 0, len(cc.Moves))
	for _, m := range cc.Moves {
		if len(m) != 2 {
			return game.Card{}, invalid("card %q: move %v is not a [dx, dy] pair", cc.Name, m)
		}
		offset := game.Offset{X: m[0], Y: m[1]}
		if offset == (game.Offset{}) || abs(offset.X) >= game.Size || abs(offset.Y) >= game.Size {
			return game.Card{}, invalid("card %q: move %v is not a valid offset", cc.Name, m)
		}
		moves = append(moves, offset)
	}

	return game.Card{ID: cc.ID, Name: cc.Name, Moves: moves, StartSide: side}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
