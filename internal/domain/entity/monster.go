package entity

// LootDrop is one row of a monster's drop table. Drops roll independently,
// so probabilities across the table need not sum to 1.
type LootDrop struct {
	ItemID      int     `json:"item_id"`
	Quantity    float64 `json:"quantity"`
	Probability float64 `json:"probability"`
}

type Monster struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	SlayerLevelReq    int        `json:"slayer_level_req"`
	CombatLevelReq    int        `json:"combat_level_req"`
	CombatLevel       int        `json:"combat_level"`
	Weakness          string     `json:"weakness,omitempty"`
	BaseKillsPerHour  float64    `json:"base_kills_per_hour"`
	SupplyCostPerHour float64    `json:"supply_cost_per_hour"`
	LootTable         []LootDrop `json:"loot_table"`
}

// LootItemIDs lists the distinct item ids the drop table prices against.
func (m Monster) LootItemIDs() []int {
	seen := make(map[int]struct{}, len(m.LootTable))
	ids := make([]int, 0, len(m.LootTable))

	for _, drop := range m.LootTable {
		if _, ok := seen[drop.ItemID]; ok {
			continue
		}
		seen[drop.ItemID] = struct{}{}
		ids = append(ids, drop.ItemID)
	}

	return ids
}
