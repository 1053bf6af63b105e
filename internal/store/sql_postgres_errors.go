package store

import (
	"context"
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells a caller whether a failed statement is worth
// running again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// PostgresErrorClassifier implements ErrorClassificator on top of pgx.
//
// Server errors are classified by SQLSTATE class: connection exceptions (08),
// transaction rollbacks (40) and the restart/shutdown codes of class 57 are
// transient. Client side failures that pgx marks safe to retry, dial timeouts
// and driver.ErrBadConn are transient as well. Everything else, including
// constraint violations raised by our own inserts, is not.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil || errors.Is(err, context.Canceled) {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	if errors.Is(err, driver.ErrBadConn) || pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return Retryable
	}

	return NonRetryable
}

// operatorInterventionRetryable lists the class 57 codes that clear up once
// the server is back. Query cancellation (57014) is deliberately absent.
var operatorInterventionRetryable = map[string]struct{}{
	pgerrcode.AdminShutdown:    {},
	pgerrcode.CrashShutdown:    {},
	pgerrcode.CannotConnectNow: {},
}

// ClassifyPgError maps a server reported error to an ErrorClassification.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if pgErr == nil {
		return NonRetryable
	}

	code := pgErr.Code
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	case pgerrcode.IsOperatorIntervention(code):
		if _, ok := operatorInterventionRetryable[code]; ok {
			return Retryable
		}
	}

	return NonRetryable
}
