package server

import (
	"context"
	"log/slog"

	"gp_tracker/pkg/contextx"
	"gp_tracker/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// withUser tags the request context and its logger with the calling user, so
// every downstream log line carries the id.
func withUser(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}

	ctx = contextx.WithUserID(ctx, contextx.UserID(userID))

	return contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldUserID, userID)))
}

// Server aggregates the entity-specific HTTP servers behind one route table.
type Server struct {
	CalcServer
}

func NewServer(
	calcServer CalcServer,
) Server {
	return Server{
		CalcServer: calcServer,
	}
}
