package combat

// Target is the combat state of one enemy.
type Target struct {
	Category  Category
	Health    int
	MaxHealth int

	destroyed bool
}

// NewTarget returns a target at full health.
func NewTarget(c Category, health int) *Target {
	return &Target{Category: c, Health: health, MaxHealth: health}
}

// Destroyed reports whether a lethal hit has already landed. Later hits
// are ignored.
func (t *Target) Destroyed() bool {
	return t == nil || t.destroyed
}

// Vitals is the player's health pool.
type Vitals struct {
	Health int
	Max    int
}

// NewVitals returns a full pool of n points.
func NewVitals(n int) *Vitals {
	return &Vitals{Health: n, Max: n}
}

func (v *Vitals) Dead() bool {
	return v.Health <= 0
}

func (v *Vitals) Full() bool {
	return v.Health >= v.Max
}
