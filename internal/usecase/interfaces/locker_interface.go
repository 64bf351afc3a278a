package interfaces

import (
	"context"
	"errors"
)

// ErrLockNotObtained is returned when another writer holds the lock.
var ErrLockNotObtained = errors.New("lock not obtained")

// ILocker serializes writers of the same key across processes.
type ILocker interface {
	Lock(ctx context.Context, key string) (unlock func(context.Context) error, err error)
}
