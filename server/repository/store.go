package repository

import (
	"context"
	"fmt"

	"github.com/ponyo877/karaokesh/server/usecase"
)

// Open builds the repository for driver. The returned close function
// releases any database handle and is never nil.
func Open(ctx context.Context, driver, dsn string) (usecase.Repository, func() error, error) {
	noop := func() error { return nil }
	switch driver {
	case DriverSQLite, DriverPgx:
		db, err := OpenDB(driver, dsn)
		if err != nil {
			return nil, noop, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("failed to reach %s store: %w", driver, err)
		}
		repo, err := NewRepository(ctx, db, driver)
		if err != nil {
			db.Close()
			return nil, noop, err
		}
		return repo, db.Close, nil
	case DriverFile:
		return NewFileRepository(dsn), noop, nil
	case DriverMemory:
		return NewMemoryRepository(), noop, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
