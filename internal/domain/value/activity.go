package value

import (
	"git.appkode.ru/pub/go/failure"

	"gp_tracker/pkg/errcodes"
)

// ActivityKind is the closed set of supported activities. Adding a kind means
// adding a constant here and a case to every switch over it; the formula
// dispatcher rejects anything else at the boundary.
type ActivityKind string

const (
	ActivityFarming   ActivityKind = "farming"
	ActivityBirdhouse ActivityKind = "birdhouse"
	ActivityGOTR      ActivityKind = "gotr"
	ActivitySlayer    ActivityKind = "slayer"
)

func ParseActivityKind(s string) (ActivityKind, error) {
	switch ActivityKind(s) {
	case ActivityFarming, ActivityBirdhouse, ActivityGOTR, ActivitySlayer:
		return ActivityKind(s), nil
	default:
		return "", failure.NewInvalidArgumentError(
			"unknown activity type: "+s,
			failure.WithCode(errcodes.UnknownActivity),
			failure.WithDescription("Unknown activity type"),
		)
	}
}

func (k ActivityKind) String() string {
	return string(k)
}

// SlayerMode selects how the assignment engine reports its evaluation.
type SlayerMode string

const (
	ModeExpected  SlayerMode = "expected"
	ModeSpecific  SlayerMode = "specific"
	ModeBreakdown SlayerMode = "breakdown"
)

func ParseSlayerMode(s string) (SlayerMode, error) {
	if s == "" {
		return ModeExpected, nil
	}

	switch SlayerMode(s) {
	case ModeExpected, ModeSpecific, ModeBreakdown:
		return SlayerMode(s), nil
	default:
		return "", failure.NewInvalidArgumentError(
			"unknown slayer mode: "+s,
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Unknown slayer calculation mode"),
		)
	}
}

func (m SlayerMode) String() string {
	return string(m)
}
