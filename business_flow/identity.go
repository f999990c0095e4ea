package businessflow

import (
	"context"
	"strings"

	"github.com/amirphl/copydesk/utils"
)

// WithUserID returns a copy of ctx carrying the authenticated user id
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, utils.UserIDKey, userID)
}

// requireUser resolves the acting user from ctx and fails closed when there is none
func requireUser(ctx context.Context) (string, error) {
	userID, _ := ctx.Value(utils.UserIDKey).(string)
	if strings.TrimSpace(userID) == "" {
		return "", NewBusinessError(CodeUnauthorized, "Authentication required", ErrUnauthorized)
	}
	return userID, nil
}
