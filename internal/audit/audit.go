package audit

import (
	"context"

	"github.com/mdSafdarKhan/redis/pkg/log"
)

// Audit actions for the user service.
const (
	ActionGetUser    = "user.get"
	ActionUpdateUser = "user.update"
	ActionSeedUsers  = "user.seed"
)

// Field constants for audit entries.
const (
	FieldAction = "action"
	FieldSource = "source"
	FieldCount  = "count"
)

// Source values describing where a read was served from.
const (
	SourceCache = "cache"
	SourceStore = "store"
)

// Log emits a structured audit log entry via the context logger.
func Log(ctx context.Context, action string, userID int64, msg string) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Int64(log.FieldUserID, userID).
		Msg(msg)
}

// LogRead records a read along with whether it was served from the cache.
func LogRead(ctx context.Context, userID int64, source string) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, ActionGetUser).
		Int64(log.FieldUserID, userID).
		Str(FieldSource, source).
		Bool(log.FieldCacheHit, source == SourceCache).
		Msg("user read")
}

// LogSeed records the number of users written by the seeder.
func LogSeed(ctx context.Context, count int) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, ActionSeedUsers).
		Int(FieldCount, count).
		Msg("users seeded")
}
