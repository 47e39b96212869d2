package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

// One flow id covers a whole orchestration pass (a checkout, a refresh tick),
// so every remote call it fans out to logs under the same correlation id.
const flowIDKey ctxKey = "flow_id"

func WithFlowID(ctx context.Context, flowID string) context.Context {
	return context.WithValue(ctx, flowIDKey, flowID)
}

func FlowIDFrom(ctx context.Context) string {
	if v := ctx.Value(flowIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns the logger with the flow id automatically attached.
func FromCtx(ctx context.Context) *zap.Logger {
	id := FlowIDFrom(ctx)
	if id == "" {
		return L()
	}
	return L().With(zap.String("flow_id", id))
}
