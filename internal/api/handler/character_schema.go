package handler

import "github.com/cofd-tools/character-api/internal/core/domain"

// ErrorResponse is the envelope of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

// characterResponse is the stored sheet with derived values inlined next to
// the traits they come from. Derived values are never accepted on input.
type characterResponse struct {
	domain.Character
	CombatBlock combatBlockResponse `json:"combatBlock"`
	Health      healthResponse      `json:"health"`
	Willpower   willpowerResponse   `json:"willpower"`
}

type combatBlockResponse struct {
	domain.CombatBlock
	InitiativeMod int `json:"initiativeMod"`
	Speed         int `json:"speed"`
	Defense       int `json:"defense"`
}

type healthResponse struct {
	domain.Health
	Max int `json:"max"`
}

type willpowerResponse struct {
	domain.Willpower
	Max int `json:"max"`
}

func toCharacterResponse(c domain.Character) characterResponse {
	d := domain.Derive(&c)
	return characterResponse{
		Character: c,
		CombatBlock: combatBlockResponse{
			CombatBlock:   c.CombatBlock,
			InitiativeMod: d.InitiativeMod,
			Speed:         d.Speed,
			Defense:       d.Defense,
		},
		Health:    healthResponse{Health: c.Health, Max: d.HealthMax},
		Willpower: willpowerResponse{Willpower: c.Willpower, Max: d.WillpowerMax},
	}
}

func toCharacterResponses(chars []domain.Character) []characterResponse {
	out := make([]characterResponse, 0, len(chars))
	for _, c := range chars {
		out = append(out, toCharacterResponse(c))
	}
	return out
}
