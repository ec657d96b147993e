package postgres

import (
	"database/sql"
	"strings"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

// isBindParameterMismatch matches the 08P01 protocol violation raised when a
// pooler in transaction mode reuses a prepared statement with a different
// parameter count.
func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "bind message supplies") || strings.Contains(msg, "08P01")
}

// isUnnamedPreparedStatementMissing matches 26000 errors from poolers that
// switch backend connections between prepare and execute.
func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "unnamed prepared statement does not exist") || strings.Contains(msg, "26000")
}
