package slayer

import (
	"strings"

	"gp_tracker/internal/domain/entity"
	"gp_tracker/internal/domain/service/params"
)

// Kill-rate estimation bounds. The estimate never leaves 50–150% of the
// monster's base rate so a single skewed level cannot dominate the result.
const (
	minCombatEfficiency = 0.6
	maxCombatEfficiency = 1.1
	maxSlayerBonus      = 0.1
	kphClampLow         = 0.5
	kphClampHigh        = 1.5
)

// estimateKillsPerHour adjusts the monster's base kill rate by how the user's
// levels stack up against it. A per-monster override wins outright.
func estimateKillsPerHour(monster entity.Monster, in params.ResolvedSlayer) float64 {
	if kph, ok := in.KillRateOverrides[monster.ID]; ok && kph > 0 {
		return kph
	}

	base := monster.BaseKillsPerHour
	if base <= 0 {
		base = 30
	}

	monsterCombat := monster.CombatLevel
	if monsterCombat < 80 {
		monsterCombat = 80
	}

	combatEfficiency := clamp(float64(in.Levels.Combat)/float64(monsterCombat), minCombatEfficiency, maxCombatEfficiency)

	slayerBonus := 1.0 + min(maxSlayerBonus, float64(in.Levels.Slayer-monster.SlayerLevelReq)/200)

	adjusted := base * combatEfficiency * slayerBonus * weaknessBonus(monster, in)

	return clamp(adjusted, base*kphClampLow, base*kphClampHigh)
}

// weaknessBonus rewards high levels in the combat style the monster is weak
// to. Unknown weaknesses contribute nothing.
func weaknessBonus(monster entity.Monster, in params.ResolvedSlayer) float64 {
	weakness := strings.ToLower(monster.Weakness)

	var level float64

	switch {
	case strings.Contains(weakness, "melee"),
		strings.Contains(weakness, "slash"),
		strings.Contains(weakness, "crush"):
		level = float64(in.Levels.Attack+in.Levels.Strength) / 2
	case strings.Contains(weakness, "ranged"):
		level = float64(in.Levels.Ranged)
	case strings.Contains(weakness, "magic"):
		level = float64(in.Levels.Magic)
	default:
		return 1.0
	}

	return 1.0 + (level-70)/300
}

// adjustSupplyCost scales the monster's base supply drain. An explicit
// user-supplied multiplier wins outright, 1.0 included; otherwise higher
// combat means fewer supplies burned.
func adjustSupplyCost(baseCost float64, in params.ResolvedSlayer) float64 {
	if in.SupplyCostMultiplierSet && in.SupplyCostMultiplier > 0 {
		return baseCost * in.SupplyCostMultiplier
	}

	efficiency := clamp(1.0-float64(in.Levels.Combat-90)/200, 0.7, 1.3)

	return baseCost * efficiency
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
