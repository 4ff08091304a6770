// internal/defs/types.go
package defs

import "fmt"

// WeaponKind identifies one of the fixed weapon slots.
type WeaponKind int

const (
	WeaponLaser WeaponKind = iota
	WeaponMissile
	WeaponSpread
	WeaponSeeker
	WeaponPulse
	WeaponKindCount
)

// WeaponKinds lists every kind in firing order.
var WeaponKinds = []WeaponKind{WeaponLaser, WeaponMissile, WeaponSpread, WeaponSeeker, WeaponPulse}

var weaponKindNames = [...]string{"laser", "missile", "spread", "seeker", "pulse"}

func (k WeaponKind) String() string {
	if k < 0 || k >= WeaponKindCount {
		return fmt.Sprintf("weapon(%d)", int(k))
	}
	return weaponKindNames[k]
}

func (k WeaponKind) MarshalText() ([]byte, error) {
	if k < 0 || k >= WeaponKindCount {
		return nil, fmt.Errorf("unknown weapon kind %d", int(k))
	}
	return []byte(weaponKindNames[k]), nil
}

func (k *WeaponKind) UnmarshalText(b []byte) error {
	for i, name := range weaponKindNames {
		if name == string(b) {
			*k = WeaponKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown weapon kind %q", string(b))
}

// Tier is the enemy variant.
type Tier int

const (
	TierNormal Tier = iota
	TierRed
	TierBlue
	TierBoss
	TierCount
)

// SpawnTiers are the tiers drawn by the regular spawn timer. Bosses have their own cadence.
var SpawnTiers = []Tier{TierNormal, TierRed, TierBlue}

var tierNames = [...]string{"normal", "red", "blue", "boss"}

func (t Tier) String() string {
	if t < 0 || t >= TierCount {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

func (t Tier) MarshalText() ([]byte, error) {
	if t < 0 || t >= TierCount {
		return nil, fmt.Errorf("unknown tier %d", int(t))
	}
	return []byte(tierNames[t]), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	for i, name := range tierNames {
		if name == string(b) {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", string(b))
}
