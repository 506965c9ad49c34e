// Package dto contains Data Transfer Objects for HTTP requests.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Handle JSON deserialization
//   - Add validation tags for request binding
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., SubmitRatingsRequest)
package dto
