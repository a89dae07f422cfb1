package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/cofd-tools/character-api/internal/core/domain"
	"github.com/cofd-tools/character-api/internal/core/ports"
)

type seedFile struct {
	Users []seedUser `json:"users"`
}

// seedUser is one account together with the records it owns.
type seedUser struct {
	Username   string                   `json:"username"`
	Password   string                   `json:"password"`
	Name       string                   `json:"name"`
	Characters []domain.CharacterFields `json:"characters"`
	Merits     []seedMerit              `json:"merits"`
}

type seedMerit struct {
	Name          string `json:"name"`
	Rating        int    `json:"rating"`
	Prerequisites string `json:"prerequisites"`
	Description   string `json:"description"`
}

func loadSeed(path string) (*seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &data, nil
}

type seeder struct {
	auth       ports.AuthService
	characters ports.CharacterService
	merits     ports.MeritService
	log        zerolog.Logger
}

// seed registers every user, then creates their merits and characters in file
// order. It stops at the first rejected record.
func (s *seeder) seed(ctx context.Context, data *seedFile) error {
	var characters, merits int

	for _, u := range data.Users {
		user, err := s.auth.Register(ctx, ports.RegisterInput{
			Username: &u.Username,
			Password: &u.Password,
			Name:     &u.Name,
		})
		if err != nil {
			return fmt.Errorf("user %q: %w", u.Username, err)
		}

		for _, m := range u.Merits {
			_, err := s.merits.Create(ctx, user.ID, domain.MeritInput{
				Name:          m.Name,
				Rating:        m.Rating,
				Prerequisites: m.Prerequisites,
				Description:   m.Description,
			})
			if err != nil {
				return fmt.Errorf("merit %q of %q: %w", m.Name, u.Username, err)
			}
			merits++
		}

		for i, fields := range u.Characters {
			if _, err := s.characters.Create(ctx, user.ID, fields); err != nil {
				return fmt.Errorf("character #%d of %q: %w", i+1, u.Username, err)
			}
			characters++
		}
	}

	s.log.Info().
		Int("users", len(data.Users)).
		Int("characters", characters).
		Int("merits", merits).
		Msg("database seeded")
	return nil
}
