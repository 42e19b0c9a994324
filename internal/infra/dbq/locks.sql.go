package dbq

import (
	"context"
)

const setLocalLockTimeout = `-- name: SetLocalLockTimeout :exec
SELECT set_config('lock_timeout', $1, true)
`

// SetLocalLockTimeout bounds lock waits for the rest of the current transaction.
// timeout uses Postgres interval syntax, e.g. "5000ms".
func (q *Queries) SetLocalLockTimeout(ctx context.Context, db DBTX, timeout string) error {
	_, err := db.Exec(ctx, setLocalLockTimeout, timeout)
	return err
}

const acquireSlotLock = `-- name: AcquireSlotLock :exec
SELECT pg_advisory_xact_lock($1)
`

// AcquireSlotLock blocks until the transaction holds the advisory lock for key.
// The lock is released on commit or rollback.
func (q *Queries) AcquireSlotLock(ctx context.Context, db DBTX, key int64) error {
	_, err := db.Exec(ctx, acquireSlotLock, key)
	return err
}
