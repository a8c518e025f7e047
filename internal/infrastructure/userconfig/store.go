// Package userconfig reads stored per-user activity overrides out of Redis.
// Writes happen through external tooling, the service only consumes them.
package userconfig

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"gp_tracker/internal/domain"
	"gp_tracker/internal/domain/value"
	"gp_tracker/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const keyPrefix = "userconfig:"

type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, userID string) (value.ActivityParams, error) {
	raw, err := s.client.Get(ctx, keyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return value.ActivityParams{}, domain.NewError(errcodes.NotFound,
				fmt.Sprintf("no stored config for user %q", userID))
		}
		return value.ActivityParams{}, domain.WrapError(err, errcodes.ConfigLoadError,
			"failed to load stored user config")
	}

	var params value.ActivityParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return value.ActivityParams{}, domain.WrapError(err, errcodes.ConfigLoadError,
			"failed to decode stored user config")
	}
	return params, nil
}
