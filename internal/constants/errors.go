package constants

import "errors"

// Configuration errors.
var (
	ErrNotLoggedIn        = errors.New("no credentials configured, use 'dnsimple login' first")
	ErrInvalidOutput      = errors.New("invalid output format, use table, json or yaml")
	ErrEmptySecret        = errors.New("secret must not be empty")
	ErrConflictingSecrets = errors.New("use only one of --api-key, --password or --token")
)

// Command errors.
var (
	ErrRemoteFailure    = errors.New("remote service reported an error")
	ErrInvalidID        = errors.New("identifier must be an integer")
	ErrInvalidSource    = errors.New("server source must be 'dnsimple' or 'external'")
	ErrMissingServers   = errors.New("at least one name server is required")
	ErrNoFieldsToUpdate = errors.New("nothing to update, pass at least one field flag")
)
