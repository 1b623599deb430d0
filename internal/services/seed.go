package services

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Seed is the deck created when there is no usable stored collection.
type Seed struct {
	Name  string   `yaml:"name"`
	Cards []string `yaml:"cards"`
}

// DefaultSeed is the built-in starter deck.
func DefaultSeed() Seed {
	return Seed{
		Name: "Starter Deck",
		Cards: []string{
			"What made you smile this week?",
			"What's a small thing you're looking forward to?",
			"Which place would you revisit if you could go tomorrow?",
			"What's something you changed your mind about recently?",
			"What did you want to be when you were a kid?",
		},
	}
}

func (s Seed) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("seed deck name must not be empty")
	}
	for i, c := range s.Cards {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("seed card %d must not be empty", i)
		}
	}
	return nil
}

// LoadSeedFile reads a starter deck from YAML:
//
//	name: Icebreakers
//	cards:
//	  - What did you eat today?
//	  - Cats or dogs?
func LoadSeedFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if err := seed.Validate(); err != nil {
		return Seed{}, fmt.Errorf("seed file %s: %w", path, err)
	}
	return seed, nil
}
