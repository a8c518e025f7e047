package value_test

import (
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"gp_tracker/internal/domain/value"
	"gp_tracker/pkg/errcodes"
)

func TestParseActivityKind(t *testing.T) {
	rq := require.New(t)

	for _, s := range []string{"farming", "birdhouse", "gotr", "slayer"} {
		kind, err := value.ParseActivityKind(s)
		rq.NoError(err)
		rq.Equal(s, kind.String())
	}

	_, err := value.ParseActivityKind("mining")
	rq.Error(err)
	rq.True(failure.IsInvalidArgumentError(err))
	rq.Equal(errcodes.UnknownActivity, failure.Code(err))
}

func TestParseSlayerMode(t *testing.T) {
	rq := require.New(t)

	// empty defaults to expected
	mode, err := value.ParseSlayerMode("")
	rq.NoError(err)
	rq.Equal(value.ModeExpected, mode)

	for _, s := range []string{"expected", "specific", "breakdown"} {
		mode, err := value.ParseSlayerMode(s)
		rq.NoError(err)
		rq.Equal(s, mode.String())
	}

	_, err = value.ParseSlayerMode("optimal")
	rq.Error(err)
	rq.True(failure.IsInvalidArgumentError(err))
}

func TestMeetsMonster(t *testing.T) {
	rq := require.New(t)

	levels := value.UserLevels{Slayer: 85, Combat: 100}

	rq.True(levels.MeetsMonster(85, 100))
	rq.False(levels.MeetsMonster(86, 100))
	rq.False(levels.MeetsMonster(85, 101))
}
