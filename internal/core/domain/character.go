package domain

import (
	"strings"
	"time"
)

// Trait bounds.
const (
	AttributeMin = 1
	AttributeMax = 20
	SkillMin     = 0
	SkillMax     = 20
	SizeMin      = 4
	SizeMax      = 6
	BeatsMax     = 4
	IntegrityMin = 1
	IntegrityMax = 10

	DefaultSize      = 5
	DefaultIntegrity = 7
)

type MentalAttributes struct {
	Intelligence int `json:"intelligence" bson:"intelligence" validate:"min=1,max=20"`
	Wits         int `json:"wits"         bson:"wits"         validate:"min=1,max=20"`
	Resolve      int `json:"resolve"      bson:"resolve"      validate:"min=1,max=20"`
}

type PhysicalAttributes struct {
	Strength  int `json:"strength"  bson:"strength"  validate:"min=1,max=20"`
	Dexterity int `json:"dexterity" bson:"dexterity" validate:"min=1,max=20"`
	Stamina   int `json:"stamina"   bson:"stamina"   validate:"min=1,max=20"`
}

type SocialAttributes struct {
	Presence     int `json:"presence"     bson:"presence"     validate:"min=1,max=20"`
	Manipulation int `json:"manipulation" bson:"manipulation" validate:"min=1,max=20"`
	Composure    int `json:"composure"    bson:"composure"    validate:"min=1,max=20"`
}

// Attributes groups the nine rated attributes.
type Attributes struct {
	Mental   MentalAttributes   `json:"mental"   bson:"mental"`
	Physical PhysicalAttributes `json:"physical" bson:"physical"`
	Social   SocialAttributes   `json:"social"   bson:"social"`
}

type MentalSkills struct {
	Academics     int `json:"academics"     bson:"academics"     validate:"min=0,max=20"`
	Computers     int `json:"computers"     bson:"computers"     validate:"min=0,max=20"`
	Crafts        int `json:"crafts"        bson:"crafts"        validate:"min=0,max=20"`
	Investigation int `json:"investigation" bson:"investigation" validate:"min=0,max=20"`
	Medicine      int `json:"medicine"      bson:"medicine"      validate:"min=0,max=20"`
	Occult        int `json:"occult"        bson:"occult"        validate:"min=0,max=20"`
	Politics      int `json:"politics"      bson:"politics"      validate:"min=0,max=20"`
	Science       int `json:"science"       bson:"science"       validate:"min=0,max=20"`
}

type PhysicalSkills struct {
	Athletics int `json:"athletics" bson:"athletics" validate:"min=0,max=20"`
	Brawl     int `json:"brawl"     bson:"brawl"     validate:"min=0,max=20"`
	Drive     int `json:"drive"     bson:"drive"     validate:"min=0,max=20"`
	Firearms  int `json:"firearms"  bson:"firearms"  validate:"min=0,max=20"`
	Larceny   int `json:"larceny"   bson:"larceny"   validate:"min=0,max=20"`
	Stealth   int `json:"stealth"   bson:"stealth"   validate:"min=0,max=20"`
	Survival  int `json:"survival"  bson:"survival"  validate:"min=0,max=20"`
	Weaponry  int `json:"weaponry"  bson:"weaponry"  validate:"min=0,max=20"`
}

type SocialSkills struct {
	AnimalKen    int `json:"animalKen"    bson:"animalKen"    validate:"min=0,max=20"`
	Empathy      int `json:"empathy"      bson:"empathy"      validate:"min=0,max=20"`
	Expression   int `json:"expression"   bson:"expression"   validate:"min=0,max=20"`
	Intimidation int `json:"intimidation" bson:"intimidation" validate:"min=0,max=20"`
	Persuasion   int `json:"persuasion"   bson:"persuasion"   validate:"min=0,max=20"`
	Socialize    int `json:"socialize"    bson:"socialize"    validate:"min=0,max=20"`
	Streetwise   int `json:"streetwise"   bson:"streetwise"   validate:"min=0,max=20"`
	Subterfuge   int `json:"subterfuge"   bson:"subterfuge"   validate:"min=0,max=20"`
}

// Skills groups the twenty-four rated skills.
type Skills struct {
	Mental   MentalSkills   `json:"mental"   bson:"mental"`
	Physical PhysicalSkills `json:"physical" bson:"physical"`
	Social   SocialSkills   `json:"social"   bson:"social"`
}

// CharacterMerit is a merit as written on a sheet, independent of the catalog.
type CharacterMerit struct {
	Name        string `json:"name"        bson:"name"`
	Rating      int    `json:"rating"      bson:"rating"`
	Description string `json:"description" bson:"description"`
}

type CombatBlock struct {
	Size       int `json:"size"       bson:"size"       validate:"min=4,max=6"`
	Armor      int `json:"armor"      bson:"armor"      validate:"min=0"`
	Beats      int `json:"beats"      bson:"beats"      validate:"min=0,max=4"`
	Experience int `json:"experience" bson:"experience" validate:"min=0"`
}

type Damage struct {
	Bashing    int `json:"bashing"    bson:"bashing"    validate:"min=0"`
	Lethal     int `json:"lethal"     bson:"lethal"     validate:"min=0"`
	Aggravated int `json:"aggravated" bson:"aggravated" validate:"min=0"`
}

type Health struct {
	Damage Damage `json:"damage" bson:"damage"`
}

type Willpower struct {
	Spent int `json:"spent" bson:"spent" validate:"min=0"`
}

// Character is the aggregate root: one sheet owned by exactly one user.
type Character struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	Name      string `json:"name"`
	Age       string `json:"age,omitempty"`
	Player    string `json:"player,omitempty"`
	Virtue    string `json:"virtue,omitempty"`
	Vice      string `json:"vice,omitempty"`
	Concept   string `json:"concept,omitempty"`
	Chronicle string `json:"chronicle,omitempty"`
	Faction   string `json:"faction,omitempty"`
	Group     string `json:"group,omitempty"`

	Attributes  Attributes       `json:"attributes"`
	Skills      Skills           `json:"skills"`
	Merits      []CharacterMerit `json:"merits"`
	CombatBlock CombatBlock      `json:"combatBlock"`
	Health      Health           `json:"health"`
	Willpower   Willpower        `json:"willpower"`
	Integrity   int              `json:"integrity" validate:"min=1,max=10"`
	Conditions  []string         `json:"conditions"`
	Aspirations []string         `json:"aspirations"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCharacter returns a sheet owned by userID with every rated trait at its
// default: attributes 1, skills 0, size 5, integrity 7.
func NewCharacter(userID string) Character {
	return Character{
		UserID: userID,
		Attributes: Attributes{
			Mental:   MentalAttributes{Intelligence: 1, Wits: 1, Resolve: 1},
			Physical: PhysicalAttributes{Strength: 1, Dexterity: 1, Stamina: 1},
			Social:   SocialAttributes{Presence: 1, Manipulation: 1, Composure: 1},
		},
		Merits:      []CharacterMerit{},
		CombatBlock: CombatBlock{Size: DefaultSize},
		Integrity:   DefaultIntegrity,
		Conditions:  []string{},
		Aspirations: []string{},
	}
}

// Validate checks the name and every rated field against its bounds.
func (c *Character) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return MissingField("name")
	}
	return validateStruct(c)
}
