// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMemberNotFound is returned when a member does not exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrGroupNotFound signals a reference to a missing group.
	ErrGroupNotFound = errors.New("group not found")
	// ErrLeaderNotFound signals that no leader matches the given id.
	ErrLeaderNotFound = errors.New("leader not found")
	// ErrEmailExists signals a registration email conflict.
	ErrEmailExists = errors.New("email exists")
	// ErrEmailNotRegistered signals a login attempt with an unknown email.
	ErrEmailNotRegistered = errors.New("email not registered")
	// ErrInvalidCredentials signals a password mismatch on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAlreadyLeader signals a promotion of a member who already leads a group.
	ErrAlreadyLeader = errors.New("already leader")
	// ErrNoGroupAssigned signals a promotion of a member without a group.
	ErrNoGroupAssigned = errors.New("no group assigned")
	// ErrMailDelivery signals a failure in the outgoing mail transport.
	ErrMailDelivery = errors.New("mail delivery failed")
)
