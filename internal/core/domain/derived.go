package domain

// Derived holds the statistics computed from a sheet's base traits. None of
// them are stored; call Derive on every read.
type Derived struct {
	InitiativeMod int
	Speed         int
	Defense       int
	HealthMax     int
	WillpowerMax  int
}

// Derive computes the derived statistics for c.
func Derive(c *Character) Derived {
	a := c.Attributes
	return Derived{
		InitiativeMod: InitiativeMod(a.Social.Composure, a.Physical.Dexterity),
		Speed:         Speed(c.CombatBlock.Size, a.Physical.Strength, a.Physical.Dexterity),
		Defense:       Defense(a.Mental.Wits, a.Physical.Dexterity, c.Skills.Physical.Athletics),
		HealthMax:     HealthMax(c.CombatBlock.Size, a.Physical.Stamina),
		WillpowerMax:  WillpowerMax(a.Social.Composure, a.Mental.Resolve),
	}
}

func InitiativeMod(composure, dexterity int) int {
	return composure + dexterity
}

func Speed(size, strength, dexterity int) int {
	return size + strength + dexterity
}

// Defense adds athletics to the lower of wits and dexterity. When they are
// equal dexterity is used.
func Defense(wits, dexterity, athletics int) int {
	if wits < dexterity {
		return wits + athletics
	}
	return dexterity + athletics
}

func HealthMax(size, stamina int) int {
	return size + stamina
}

func WillpowerMax(composure, resolve int) int {
	return composure + resolve
}
