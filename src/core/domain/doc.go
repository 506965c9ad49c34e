// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: Player, Round, Rating, Comment
//   - Domain Errors: business rule violation errors
//   - The deterministic rating-order shuffle
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
package domain
