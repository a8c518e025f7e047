package value

// UserLevels are the skills the eligibility filter and kill-rate estimation
// read. Zero values mean "not provided" and fall back to activity defaults
// during parameter resolution, not here.
type UserLevels struct {
	Slayer   int `json:"slayer"`
	Combat   int `json:"combat"`
	Attack   int `json:"attack"`
	Strength int `json:"strength"`
	Ranged   int `json:"ranged"`
	Magic    int `json:"magic"`
}

// MeetsMonster reports whether the levels satisfy a monster's requirements.
func (u UserLevels) MeetsMonster(slayerReq, combatReq int) bool {
	return u.Slayer >= slayerReq && u.Combat >= combatReq
}
