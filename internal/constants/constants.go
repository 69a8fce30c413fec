package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API location.
const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.dnsimple.com"

	// SandboxBaseURL is the sandbox API root.
	SandboxBaseURL = "https://api.sandbox.dnsimple.com"

	// DefaultAPIVersion is the path prefix between the root and resources.
	DefaultAPIVersion = "v1"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for a single exchange.
	DefaultHTTPTimeout = 30 * time.Second
)

// Header names and values.
const (
	// TokenHeader carries "<identity>:<token>" for token authentication.
	TokenHeader = "X-DNSimple-Token"

	// ContentTypeJSON is sent as Accept on every request and as
	// Content-Type when a body is attached.
	ContentTypeJSON = "application/json"

	// UserAgentPrefix precedes the build version in the default User-Agent.
	UserAgentPrefix = "dnsimple-go/"
)

// Request limits.
const (
	// MaxNameServers is the number of delegation slots (ns1..ns6).
	MaxNameServers = 6

	// MaxVanityNameServers is the number of vanity slots (ns1..ns4).
	MaxVanityNameServers = 4

	// MaxErrorBodyLog bounds the body length written to debug logs.
	MaxErrorBodyLog = 1024
)

// Payload wrapper keys.
const (
	WrapperContact     = "contact"
	WrapperDomain      = "domain"
	WrapperRecord      = "record"
	WrapperService     = "service"
	WrapperMembership  = "membership"
	WrapperNameServers = "name_servers"
	WrapperVanity      = "vanity_nameserver_configuration"
)

// CLI table rendering.
const (
	// MaxTableCellWidth truncates long values in table output.
	MaxTableCellWidth = 60
)
