package domain

import "strings"

// CharacterFields is the whitelist of client-writable character fields. A nil
// slot means "not supplied"; JSON null is treated the same way. Identity,
// owner and timestamps are deliberately absent.
type CharacterFields struct {
	Name      *string `json:"name,omitempty"`
	Age       *string `json:"age,omitempty"`
	Player    *string `json:"player,omitempty"`
	Virtue    *string `json:"virtue,omitempty"`
	Vice      *string `json:"vice,omitempty"`
	Concept   *string `json:"concept,omitempty"`
	Chronicle *string `json:"chronicle,omitempty"`
	Faction   *string `json:"faction,omitempty"`
	Group     *string `json:"group,omitempty"`

	Attributes  *AttributesFields  `json:"attributes,omitempty"`
	Skills      *SkillsFields      `json:"skills,omitempty"`
	Merits      *[]CharacterMerit  `json:"merits,omitempty"`
	CombatBlock *CombatBlockFields `json:"combatBlock,omitempty"`
	Health      *HealthFields      `json:"health,omitempty"`
	Willpower   *WillpowerFields   `json:"willpower,omitempty"`
	Integrity   *int               `json:"integrity,omitempty" validate:"omitempty,min=1,max=10"`
	Conditions  *[]string          `json:"conditions,omitempty"`
	Aspirations *[]string          `json:"aspirations,omitempty"`
}

type AttributesFields struct {
	Mental   *MentalAttributesFields   `json:"mental,omitempty"`
	Physical *PhysicalAttributesFields `json:"physical,omitempty"`
	Social   *SocialAttributesFields   `json:"social,omitempty"`
}

type MentalAttributesFields struct {
	Intelligence *int `json:"intelligence,omitempty" validate:"omitempty,min=1,max=20"`
	Wits         *int `json:"wits,omitempty"         validate:"omitempty,min=1,max=20"`
	Resolve      *int `json:"resolve,omitempty"      validate:"omitempty,min=1,max=20"`
}

type PhysicalAttributesFields struct {
	Strength  *int `json:"strength,omitempty"  validate:"omitempty,min=1,max=20"`
	Dexterity *int `json:"dexterity,omitempty" validate:"omitempty,min=1,max=20"`
	Stamina   *int `json:"stamina,omitempty"   validate:"omitempty,min=1,max=20"`
}

type SocialAttributesFields struct {
	Presence     *int `json:"presence,omitempty"     validate:"omitempty,min=1,max=20"`
	Manipulation *int `json:"manipulation,omitempty" validate:"omitempty,min=1,max=20"`
	Composure    *int `json:"composure,omitempty"    validate:"omitempty,min=1,max=20"`
}

type SkillsFields struct {
	Mental   *MentalSkillsFields   `json:"mental,omitempty"`
	Physical *PhysicalSkillsFields `json:"physical,omitempty"`
	Social   *SocialSkillsFields   `json:"social,omitempty"`
}

type MentalSkillsFields struct {
	Academics     *int `json:"academics,omitempty"     validate:"omitempty,min=0,max=20"`
	Computers     *int `json:"computers,omitempty"     validate:"omitempty,min=0,max=20"`
	Crafts        *int `json:"crafts,omitempty"        validate:"omitempty,min=0,max=20"`
	Investigation *int `json:"investigation,omitempty" validate:"omitempty,min=0,max=20"`
	Medicine      *int `json:"medicine,omitempty"      validate:"omitempty,min=0,max=20"`
	Occult        *int `json:"occult,omitempty"        validate:"omitempty,min=0,max=20"`
	Politics      *int `json:"politics,omitempty"      validate:"omitempty,min=0,max=20"`
	Science       *int `json:"science,omitempty"       validate:"omitempty,min=0,max=20"`
}

type PhysicalSkillsFields struct {
	Athletics *int `json:"athletics,omitempty" validate:"omitempty,min=0,max=20"`
	Brawl     *int `json:"brawl,omitempty"     validate:"omitempty,min=0,max=20"`
	Drive     *int `json:"drive,omitempty"     validate:"omitempty,min=0,max=20"`
	Firearms  *int `json:"firearms,omitempty"  validate:"omitempty,min=0,max=20"`
	Larceny   *int `json:"larceny,omitempty"   validate:"omitempty,min=0,max=20"`
	Stealth   *int `json:"stealth,omitempty"   validate:"omitempty,min=0,max=20"`
	Survival  *int `json:"survival,omitempty"  validate:"omitempty,min=0,max=20"`
	Weaponry  *int `json:"weaponry,omitempty"  validate:"omitempty,min=0,max=20"`
}

type SocialSkillsFields struct {
	AnimalKen    *int `json:"animalKen,omitempty"    validate:"omitempty,min=0,max=20"`
	Empathy      *int `json:"empathy,omitempty"      validate:"omitempty,min=0,max=20"`
	Expression   *int `json:"expression,omitempty"   validate:"omitempty,min=0,max=20"`
	Intimidation *int `json:"intimidation,omitempty" validate:"omitempty,min=0,max=20"`
	Persuasion   *int `json:"persuasion,omitempty"   validate:"omitempty,min=0,max=20"`
	Socialize    *int `json:"socialize,omitempty"    validate:"omitempty,min=0,max=20"`
	Streetwise   *int `json:"streetwise,omitempty"   validate:"omitempty,min=0,max=20"`
	Subterfuge   *int `json:"subterfuge,omitempty"   validate:"omitempty,min=0,max=20"`
}

type CombatBlockFields struct {
	Size       *int `json:"size,omitempty"       validate:"omitempty,min=4,max=6"`
	Armor      *int `json:"armor,omitempty"      validate:"omitempty,min=0"`
	Beats      *int `json:"beats,omitempty"      validate:"omitempty,min=0,max=4"`
	Experience *int `json:"experience,omitempty" validate:"omitempty,min=0"`
}

type DamageFields struct {
	Bashing    *int `json:"bashing,omitempty"    validate:"omitempty,min=0"`
	Lethal     *int `json:"lethal,omitempty"     validate:"omitempty,min=0"`
	Aggravated *int `json:"aggravated,omitempty" validate:"omitempty,min=0"`
}

type HealthFields struct {
	Damage *DamageFields `json:"damage,omitempty"`
}

type WillpowerFields struct {
	Spent *int `json:"spent,omitempty" validate:"omitempty,min=0"`
}

// Validate checks every supplied field. A supplied name must not be blank.
func (f *CharacterFields) Validate() error {
	if f.Name != nil && strings.TrimSpace(*f.Name) == "" {
		return NewValidationError("name", "`name` must not be empty")
	}
	return validateStruct(f)
}

// Apply copies every supplied field onto c.
func (c *Character) Apply(f CharacterFields) {
	setString(&c.Name, f.Name)
	setString(&c.Age, f.Age)
	setString(&c.Player, f.Player)
	setString(&c.Virtue, f.Virtue)
	setString(&c.Vice, f.Vice)
	setString(&c.Concept, f.Concept)
	setString(&c.Chronicle, f.Chronicle)
	setString(&c.Faction, f.Faction)
	setString(&c.Group, f.Group)

	for path, v := range f.intFields() {
		if p := c.intField(path); p != nil {
			*p = v
		}
	}

	if f.Merits != nil {
		c.Merits = append([]CharacterMerit{}, (*f.Merits)...)
	}
	if f.Conditions != nil {
		c.Conditions = append([]string{}, (*f.Conditions)...)
	}
	if f.Aspirations != nil {
		c.Aspirations = append([]string{}, (*f.Aspirations)...)
	}
}

// Changes flattens the supplied fields into dotted paths named after the JSON
// (and storage) keys, e.g. "attributes.physical.stamina".
func (f *CharacterFields) Changes() map[string]any {
	out := make(map[string]any)
	for path, v := range map[string]*string{
		"name": f.Name, "age": f.Age, "player": f.Player, "virtue": f.Virtue,
		"vice": f.Vice, "concept": f.Concept, "chronicle": f.Chronicle,
		"faction": f.Faction, "group": f.Group,
	} {
		if v != nil {
			out[path] = *v
		}
	}
	for path, v := range f.intFields() {
		out[path] = v
	}
	if f.Merits != nil {
		out["merits"] = append([]CharacterMerit{}, (*f.Merits)...)
	}
	if f.Conditions != nil {
		out["conditions"] = append([]string{}, (*f.Conditions)...)
	}
	if f.Aspirations != nil {
		out["aspirations"] = append([]string{}, (*f.Aspirations)...)
	}
	return out
}

// intFields lists every supplied numeric field by dotted path.
func (f *CharacterFields) intFields() map[string]int {
	out := make(map[string]int)
	put := func(path string, v *int) {
		if v != nil {
			out[path] = *v
		}
	}

	if a := f.Attributes; a != nil {
		if m := a.Mental; m != nil {
			put("attributes.mental.intelligence", m.Intelligence)
			put("attributes.mental.wits", m.Wits)
			put("attributes.mental.resolve", m.Resolve)
		}
		if p := a.Physical; p != nil {
			put("attributes.physical.strength", p.Strength)
			put("attributes.physical.dexterity", p.Dexterity)
			put("attributes.physical.stamina", p.Stamina)
		}
		if s := a.Social; s != nil {
			put("attributes.social.presence", s.Presence)
			put("attributes.social.manipulation", s.Manipulation)
			put("attributes.social.composure", s.Composure)
		}
	}

	if s := f.Skills; s != nil {
		if m := s.Mental; m != nil {
			put("skills.mental.academics", m.Academics)
			put("skills.mental.computers", m.Computers)
			put("skills.mental.crafts", m.Crafts)
			put("skills.mental.investigation", m.Investigation)
			put("skills.mental.medicine", m.Medicine)
			put("skills.mental.occult", m.Occult)
			put("skills.mental.politics", m.Politics)
			put("skills.mental.science", m.Science)
		}
		if p := s.Physical; p != nil {
			put("skills.physical.athletics", p.Athletics)
			put("skills.physical.brawl", p.Brawl)
			put("skills.physical.drive", p.Drive)
			put("skills.physical.firearms", p.Firearms)
			put("skills.physical.larceny", p.Larceny)
			put("skills.physical.stealth", p.Stealth)
			put("skills.physical.survival", p.Survival)
			put("skills.physical.weaponry", p.Weaponry)
		}
		if so := s.Social; so != nil {
			put("skills.social.animalKen", so.AnimalKen)
			put("skills.social.empathy", so.Empathy)
			put("skills.social.expression", so.Expression)
			put("skills.social.intimidation", so.Intimidation)
			put("skills.social.persuasion", so.Persuasion)
			put("skills.social.socialize", so.Socialize)
			put("skills.social.streetwise", so.Streetwise)
			put("skills.social.subterfuge", so.Subterfuge)
		}
	}

	if cb := f.CombatBlock; cb != nil {
		put("combatBlock.size", cb.Size)
		put("combatBlock.armor", cb.Armor)
		put("combatBlock.beats", cb.Beats)
		put("combatBlock.experience", cb.Experience)
	}
	if h := f.Health; h != nil && h.Damage != nil {
		put("health.damage.bashing", h.Damage.Bashing)
		put("health.damage.lethal", h.Damage.Lethal)
		put("health.damage.aggravated", h.Damage.Aggravated)
	}
	if w := f.Willpower; w != nil {
		put("willpower.spent", w.Spent)
	}
	put("integrity", f.Integrity)

	return out
}

// intField resolves a dotted path from intFields to the matching field of c.
func (c *Character) intField(path string) *int {
	a, s := &c.Attributes, &c.Skills
	switch path {
	case "attributes.mental.intelligence":
		return &a.Mental.Intelligence
	case "attributes.mental.wits":
		return &a.Mental.Wits
	case "attributes.mental.resolve":
		return &a.Mental.Resolve
	case "attributes.physical.strength":
		return &a.Physical.Strength
	case "attributes.physical.dexterity":
		return &a.Physical.Dexterity
	case "attributes.physical.stamina":
		return &a.Physical.Stamina
	case "attributes.social.presence":
		return &a.Social.Presence
	case "attributes.social.manipulation":
		return &a.Social.Manipulation
	case "attributes.social.composure":
		return &a.Social.Composure
	case "skills.mental.academics":
		return &s.Mental.Academics
	case "skills.mental.computers":
		return &s.Mental.Computers
	case "skills.mental.crafts":
		return &s.Mental.Crafts
	case "skills.mental.investigation":
		return &s.Mental.Investigation
	case "skills.mental.medicine":
		return &s.Mental.Medicine
	case "skills.mental.occult":
		return &s.Mental.Occult
	case "skills.mental.politics":
		return &s.Mental.Politics
	case "skills.mental.science":
		return &s.Mental.Science
	case "skills.physical.athletics":
		return &s.Physical.Athletics
	case "skills.physical.brawl":
		return &s.Physical.Brawl
	case "skills.physical.drive":
		return &s.Physical.Drive
	case "skills.physical.firearms":
		return &s.Physical.Firearms
	case "skills.physical.larceny":
		return &s.Physical.Larceny
	case "skills.physical.stealth":
		return &s.Physical.Stealth
	case "skills.physical.survival":
		return &s.Physical.Survival
	case "skills.physical.weaponry":
		return &s.Physical.Weaponry
	case "skills.social.animalKen":
		return &s.Social.AnimalKen
	case "skills.social.empathy":
		return &s.Social.Empathy
	case "skills.social.expression":
		return &s.Social.Expression
	case "skills.social.intimidation":
		return &s.Social.Intimidation
	case "skills.social.persuasion":
		return &s.Social.Persuasion
	case "skills.social.socialize":
		return &s.Social.Socialize
	case "skills.social.streetwise":
		return &s.Social.Streetwise
	case "skills.social.subterfuge":
		return &s.Social.Subterfuge
	case "combatBlock.size":
		return &c.CombatBlock.Size
	case "combatBlock.armor":
		return &c.CombatBlock.Armor
	case "combatBlock.beats":
		return &c.CombatBlock.Beats
	case "combatBlock.experience":
		return &c.CombatBlock.Experience
	case "health.damage.bashing":
		return &c.Health.Damage.Bashing
	case "health.damage.lethal":
		return &c.Health.Damage.Lethal
	case "health.damage.aggravated":
		return &c.Health.Damage.Aggravated
	case "willpower.spent":
		return &c.Willpower.Spent
	case "integrity":
		return &c.Integrity
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
