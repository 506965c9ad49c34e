// Package db provides database connection and schema management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization (pgx)
//   - Connection health checks
//   - Schema bootstrap at startup via embedded goose migrations
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//	if err := pg.Migrate(ctx); err != nil {
//	    return err
//	}
package db
