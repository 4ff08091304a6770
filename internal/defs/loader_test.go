package defs

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeBalance(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balance.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write balance: %v", err)
	}
	return path
}

func TestLoadBalanceKeepsMissingKeys(t *testing.T) {
	path := writeBalance(t, `{"difficulty":{"boss_level":5}}`)

	b, err := LoadBalance(path)
	if err != nil {
		t.Fatalf("LoadBalance: %v", err)
	}
	def := DefaultBalance()
	if b.Difficulty.BossLevel != 5 {
		t.Errorf("boss_level = %d, want 5", b.Difficulty.BossLevel)
	}
	if b.Difficulty.WaveDurationMs != 15000 {
		t.Errorf("wave_duration_ms = %v, want 15000", b.Difficulty.WaveDurationMs)
	}
	if b.Difficulty.BossEvery != def.Difficulty.BossEvery {
		t.Errorf("boss_every = %d, want default %d", b.Difficulty.BossEvery, def.Difficulty.BossEvery)
	}
	if b.Weapon(WeaponLaser) != def.Weapon(WeaponLaser) {
		t.Errorf("laser changed without being in the file")
	}
}

func TestLoadBalanceWeaponReplacesWholeEntry(t *testing.T) {
	path := writeBalance(t, `{"weapons":{"laser":{"damage":99}}}`)

	_, err := LoadBalance(path)
	if err == nil {
		t.Fatalf("partial weapon entry accepted")
	}
	if !strings.Contains(err.Error(), "rate and min rate must be positive") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadBalanceFullWeaponOverride(t *testing.T) {
	path := writeBalance(t, `{"weapons":{"laser":{"damage":99,"rate_ms":800,"min_rate_ms":200,"max_level":3}}}`)

	b, err := LoadBalance(path)
	if err != nil {
		t.Fatalf("LoadBalance: %v", err)
	}
	laser := b.Weapon(WeaponLaser)
	if laser.Damage != 99 || laser.RateMs != 800 || laser.MaxLevel != 3 {
		t.Errorf("laser = %+v", laser)
	}
	if laser.ProjectileSpeed != 0 {
		t.Errorf("fields missing from the entry should be zero, speed = %v", laser.ProjectileSpeed)
	}
	if b.Weapon(WeaponMissile) != DefaultBalance().Weapon(WeaponMissile) {
		t.Errorf("missile changed without being in the file")
	}
}

func TestLoadBalanceRejectsWeakeningUpgrades(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative rate step", `{"weapons":{"laser":{"damage":15,"rate_ms":1000,"min_rate_ms":300,"max_level":10,"upgrade":{"rate_step_ms":-500}}}}`},
		{"negative radius step", `{"weapons":{"pulse":{"damage":8,"rate_ms":2000,"min_rate_ms":900,"max_level":6,"radius":80,"upgrade":{"radius":-10}}}}`},
		{"uncapped hp", `{"tiers":{"normal":{"size":16,"hitbox_radius":6,"base_hp":12,"hp_growth_per_wave":1,"max_hp_multiplier":0}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadBalance(writeBalance(t, tt.body)); err == nil {
				t.Errorf("LoadBalance accepted %s", tt.body)
			}
		})
	}
}

func TestLoadBalanceWrapsErrors(t *testing.T) {
	_, err := LoadBalance(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("read error not wrapped: %v", err)
	}

	_, err = LoadBalance(writeBalance(t, `{"field":`))
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Errorf("parse error not wrapped: %v", err)
	}

	_, err = LoadBalance(writeBalance(t, `{"field":[1,2]}`))
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		t.Errorf("type error not wrapped: %v", err)
	}
}

func TestLoadBalanceRejectsUnknownWeapon(t *testing.T) {
	if _, err := LoadBalance(writeBalance(t, `{"weapons":{"railgun":{}}}`)); err == nil {
		t.Errorf("unknown weapon accepted")
	}
}

func TestLoadBalanceOrDefault(t *testing.T) {
	b, err := LoadBalanceOrDefault("")
	if err != nil || b == nil {
		t.Fatalf("empty path: %v, %v", b, err)
	}
	if b.Difficulty != DefaultBalance().Difficulty {
		t.Errorf("empty path did not return defaults")
	}
	if _, err := LoadBalanceOrDefault(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Errorf("missing file should fail")
	}
}
