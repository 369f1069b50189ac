// Package services implements the persistence layer over the Ent client:
// blackboard records and history, agent contributions, trajectory points,
// claim transitions and summaries, cost accruals, and durable events.
package services

import "errors"

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
