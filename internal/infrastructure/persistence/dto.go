package persistence

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"gp_tracker/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// monsterSchema maps one row of the monsters table. The loot table lives in a
// JSONB column written by the external sync tooling.
type monsterSchema struct {
	ID                string  `db:"id"`
	Name              string  `db:"name"`
	SlayerLevelReq    int     `db:"slayer_level_req"`
	CombatLevelReq    int     `db:"combat_level_req"`
	CombatLevel       int     `db:"combat_level"`
	Weakness          string  `db:"weakness"`
	BaseKillsPerHour  float64 `db:"base_kills_per_hour"`
	SupplyCostPerHour float64 `db:"supply_cost_per_hour"`
	LootTable         []byte  `db:"loot_table"`
}

func (s monsterSchema) ToDomain() (entity.Monster, error) {
	var loot []entity.LootDrop

	if len(s.LootTable) > 0 {
		if err := json.Unmarshal(s.LootTable, &loot); err != nil {
			return entity.Monster{}, fmt.Errorf("unmarshal loot table for %q: %w", s.ID, err)
		}
	}

	return entity.Monster{
		ID:                s.ID,
		Name:              s.Name,
		SlayerLevelReq:    s.SlayerLevelReq,
		CombatLevelReq:    s.CombatLevelReq,
		CombatLevel:       s.CombatLevel,
		Weakness:          s.Weakness,
		BaseKillsPerHour:  s.BaseKillsPerHour,
		SupplyCostPerHour: s.SupplyCostPerHour,
		LootTable:         loot,
	}, nil
}

// masterSchema maps one row of the slayer_masters table.
type masterSchema struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	CombatReq       int    `db:"combat_req"`
	SlayerReq       int    `db:"slayer_req"`
	TaskAssignments []byte `db:"task_assignments"`
}

func (s masterSchema) ToDomain() (entity.SlayerMaster, error) {
	assignments := map[string]entity.TaskAssignment{}

	if len(s.TaskAssignments) > 0 {
		if err := json.Unmarshal(s.TaskAssignments, &assignments); err != nil {
			return entity.SlayerMaster{}, fmt.Errorf("unmarshal task assignments for %q: %w", s.ID, err)
		}
	}

	return entity.SlayerMaster{
		ID:              s.ID,
		Name:            s.Name,
		CombatReq:       s.CombatReq,
		SlayerReq:       s.SlayerReq,
		TaskAssignments: assignments,
	}, nil
}
