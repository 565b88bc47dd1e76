package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/taxclarity/backend/src/logger"
)

func TestInitDBCreatesSchema(t *testing.T) {
	logger.InitLogger("error")
	InitDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { DB.Close() })

	users, ok := tableColumns("users")
	require.True(t, ok)
	for _, col := range []string{
		"id", "username", "password", "email", "auth_provider",
		"is_email_verified", "email_verification_token",
		"email_verification_token_expires_at", "created_at", "updated_at",
	} {
		assert.True(t, users[col], "users.%s missing", col)
	}
	// There is no password-reset flow; the schema carries no columns for it.
	assert.False(t, users["password_reset_token"])
	assert.False(t, users["password_reset_token_expires_at"])

	sessions, ok := tableColumns("sessions")
	require.True(t, ok)
	for _, col := range []string{"user_id", "token", "refresh_token", "is_blocked", "expires_at"} {
		assert.True(t, sessions[col], "sessions.%s missing", col)
	}

	calcs, ok := tableColumns("tax_calculations")
	require.True(t, ok)
	for _, col := range []string{
		"user_id", "tax_year", "filing_status", "total_income", "agi",
		"taxable_income", "total_tax", "refund_or_owed",
		"input_json", "result_json", "created_at",
	} {
		assert.True(t, calcs[col], "tax_calculations.%s missing", col)
	}
}
