package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operational events that should survive in the audit
// trail regardless of log level.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
