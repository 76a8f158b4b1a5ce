package combat

// AttackKind selects how an auto attack resolves on fire.
type AttackKind uint8

const (
	AttackMelee AttackKind = iota
	AttackRanged
)

// KnockbackSpec configures the displacement applied to targets on hit.
// Zero force means no knockback.
type KnockbackSpec struct {
	Force    float64
	Duration float64
}

// AttackConfig is the immutable attack profile of a character. It is swapped
// as a whole unit via Character.SetAttackConfig, never mutated field by field.
type AttackConfig struct {
	Name string
	Kind AttackKind

	// Ranged
	ProjectileSpeed    float64
	ProjectileMaxDist  float64
	ProjectilePiercing bool

	// Melee
	ArcHalfAngle float64 // radians, either side of facing
	MaxTargets   int     // 1 = single target, >1 = cleave

	Knockback KnockbackSpec
}

// DefaultAttackConfig is the fallback when a character has no attack profile:
// a plain melee swing with no effects, so a misconfigured tick never fails.
func DefaultAttackConfig() AttackConfig {
	return AttackConfig{
		Name:         "default",
		Kind:         AttackMelee,
		ArcHalfAngle: 1.0,
		MaxTargets:   1,
	}
}
