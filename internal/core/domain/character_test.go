package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func TestNewCharacter_Defaults(t *testing.T) {
	c := NewCharacter("owner")

	assert.Equal(t, "owner", c.UserID)
	assert.Equal(t, MentalAttributes{1, 1, 1}, c.Attributes.Mental)
	assert.Equal(t, PhysicalAttributes{1, 1, 1}, c.Attributes.Physical)
	assert.Equal(t, SocialAttributes{1, 1, 1}, c.Attributes.Social)
	assert.Equal(t, Skills{}, c.Skills)
	assert.Equal(t, CombatBlock{Size: 5}, c.CombatBlock)
	assert.Equal(t, 7, c.Integrity)
	assert.NotNil(t, c.Merits)
	assert.NotNil(t, c.Conditions)
	assert.NotNil(t, c.Aspirations)
}

func TestCharacter_Validate(t *testing.T) {
	c := NewCharacter("owner")
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "Missing `name` in request body", err.Error())

	c.Name = "Miscellaneous"
	require.NoError(t, c.Validate())

	c.CombatBlock.Size = 7
	err = c.Validate()
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "combatBlock.size", ve.Field)
	assert.Equal(t, "`combatBlock.size` must be at most 6", ve.Message)
}

func TestCharacterFields_Validate(t *testing.T) {
	tests := []struct {
		name   string
		fields CharacterFields
		field  string
	}{
		{"attribute below min", CharacterFields{Attributes: &AttributesFields{Mental: &MentalAttributesFields{Wits: intp(0)}}}, "attributes.mental.wits"},
		{"attribute above max", CharacterFields{Attributes: &AttributesFields{Social: &SocialAttributesFields{Composure: intp(21)}}}, "attributes.social.composure"},
		{"skill below min", CharacterFields{Skills: &SkillsFields{Social: &SocialSkillsFields{AnimalKen: intp(-1)}}}, "skills.social.animalKen"},
		{"size out of range", CharacterFields{CombatBlock: &CombatBlockFields{Size: intp(3)}}, "combatBlock.size"},
		{"beats out of range", CharacterFields{CombatBlock: &CombatBlockFields{Beats: intp(5)}}, "combatBlock.beats"},
		{"negative armor", CharacterFields{CombatBlock: &CombatBlockFields{Armor: intp(-1)}}, "combatBlock.armor"},
		{"negative damage", CharacterFields{Health: &HealthFields{Damage: &DamageFields{Lethal: intp(-2)}}}, "health.damage.lethal"},
		{"negative willpower", CharacterFields{Willpower: &WillpowerFields{Spent: intp(-1)}}, "willpower.spent"},
		{"integrity out of range", CharacterFields{Integrity: intp(11)}, "integrity"},
		{"blank name", CharacterFields{Name: strp("  ")}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fields.Validate()
			require.Error(t, err)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCharacterFields_ValidateAcceptsBounds(t *testing.T) {
	f := CharacterFields{
		Attributes:  &AttributesFields{Physical: &PhysicalAttributesFields{Strength: intp(20), Dexterity: intp(1)}},
		Skills:      &SkillsFields{Mental: &MentalSkillsFields{Occult: intp(0)}},
		CombatBlock: &CombatBlockFields{Size: intp(4), Beats: intp(0)},
		Integrity:   intp(1),
	}
	assert.NoError(t, f.Validate())
	assert.NoError(t, (&CharacterFields{}).Validate())
}

func TestCharacter_Apply(t *testing.T) {
	c := NewCharacter("owner")
	c.Name = "Before"
	c.Concept = "kept"

	merits := []CharacterMerit{{Name: "Resources", Rating: 2}}
	c.Apply(CharacterFields{
		Name:        strp("After"),
		Attributes:  &AttributesFields{Physical: &PhysicalAttributesFields{Stamina: intp(3)}},
		Skills:      &SkillsFields{Physical: &PhysicalSkillsFields{Athletics: intp(2)}},
		CombatBlock: &CombatBlockFields{Experience: intp(12)},
		Health:      &HealthFields{Damage: &DamageFields{Bashing: intp(1)}},
		Merits:      &merits,
		Conditions:  &[]string{"Shaken"},
	})

	assert.Equal(t, "After", c.Name)
	assert.Equal(t, "kept", c.Concept)
	assert.Equal(t, 3, c.Attributes.Physical.Stamina)
	assert.Equal(t, 1, c.Attributes.Physical.Strength)
	assert.Equal(t, 2, c.Skills.Physical.Athletics)
	assert.Equal(t, 12, c.CombatBlock.Experience)
	assert.Equal(t, 5, c.CombatBlock.Size)
	assert.Equal(t, 1, c.Health.Damage.Bashing)
	assert.Equal(t, merits, c.Merits)
	assert.Equal(t, []string{"Shaken"}, c.Conditions)

	merits[0].Rating = 5
	assert.Equal(t, 2, c.Merits[0].Rating, "Apply must copy slices")
}

func TestCharacterFields_Changes(t *testing.T) {
	f := CharacterFields{
		Name:       strp("Test Update Name"),
		Attributes: &AttributesFields{Mental: &MentalAttributesFields{Wits: intp(3)}},
		Skills:     &SkillsFields{Social: &SocialSkillsFields{Streetwise: intp(2)}},
		Willpower:  &WillpowerFields{Spent: intp(1)},
		Integrity:  intp(6),
	}

	assert.Equal(t, map[string]any{
		"name":                     "Test Update Name",
		"attributes.mental.wits":   3,
		"skills.social.streetwise": 2,
		"willpower.spent":          1,
		"integrity":                6,
	}, f.Changes())

	assert.Empty(t, (&CharacterFields{}).Changes())
}

func TestCharacterFields_EveryIntPathResolves(t *testing.T) {
	c := NewCharacter("owner")
	f := CharacterFields{
		Attributes: &AttributesFields{
			Mental:   &MentalAttributesFields{intp(1), intp(1), intp(1)},
			Physical: &PhysicalAttributesFields{intp(1), intp(1), intp(1)},
			Social:   &SocialAttributesFields{intp(1), intp(1), intp(1)},
		},
		Skills: &SkillsFields{
			Mental:   &MentalSkillsFields{intp(0), intp(0), intp(0), intp(0), intp(0), intp(0), intp(0), intp(0)},
			Physical: &PhysicalSkillsFields{intp(0), intp(0), intp(0), intp(0), intp(0), intp(0), intp(0), intp(0)},
			Social:   &SocialSkillsFields{intp(0), intp(0), intp(0), intp(0), intp(0), intp(0), intp(0), intp(0)},
		},
		CombatBlock: &CombatBlockFields{intp(5), intp(0), intp(0), intp(0)},
		Health:      &HealthFields{Damage: &DamageFields{intp(0), intp(0), intp(0)}},
		Willpower:   &WillpowerFields{Spent: intp(0)},
		Integrity:   intp(7),
	}

	paths := f.intFields()
	assert.Len(t, paths, 9+24+4+3+1+1)
	for path := range paths {
		assert.NotNil(t, c.intField(path), path)
	}
}

func TestMeritInput_Validate(t *testing.T) {
	assert.ErrorIs(t, MeritInput{Rating: 1}.Validate(), ErrValidation)
	assert.EqualError(t, MeritInput{Name: "Allies"}.Validate(), "Missing `rating` in request body")
	assert.Error(t, MeritInput{Name: "Allies", Rating: -1}.Validate())
	assert.NoError(t, MeritInput{Name: "Allies", Rating: 2}.Validate())
}
