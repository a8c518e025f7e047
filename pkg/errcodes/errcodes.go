package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Profitability engine codes.
	PriceUnavailable         failure.ErrorCode = "PriceUnavailable"         // upstream fetch failed and no cached quote exists
	ConfigLoadError          failure.ErrorCode = "ConfigLoadError"          // user configuration store unreachable
	MasterRequirementsNotMet failure.ErrorCode = "MasterRequirementsNotMet" // user levels below the master's own requirements
	UnknownActivity          failure.ErrorCode = "UnknownActivity"          // activity type outside the closed set
	MonsterNotEligible       failure.ErrorCode = "MonsterNotEligible"       // monster filtered out by level requirements
	MasterNotFound           failure.ErrorCode = "MasterNotFound"
	MonsterNotFound          failure.ErrorCode = "MonsterNotFound"
)
