package dnsimple

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DomainsAPI manages the domains of the account.
type DomainsAPI interface {
	ListDomains(ctx context.Context) (*Response, error)
	GetDomain(ctx context.Context, domain string) (*Response, error)
	CreateDomain(ctx context.Context, name string) (*Response, error)
	DeleteDomain(ctx context.Context, domain string) (*Response, error)
}

// RecordsAPI manages the DNS records of a domain.
type RecordsAPI interface {
	ListRecords(ctx context.Context, domain string) (*Response, error)
	GetRecord(ctx context.Context, domain string, id int) (*Response, error)
	CreateRecord(ctx context.Context, domain string, record *RecordRequest) (*Response, error)
	UpdateRecord(ctx context.Context, domain string, id int, record *RecordUpdateRequest) (*Response, error)
	DeleteRecord(ctx context.Context, domain string, id int) (*Response, error)
}

// ContactsAPI manages registrant contacts.
type ContactsAPI interface {
	ListContacts(ctx context.Context) (*Response, error)
	GetContact(ctx context.Context, id int) (*Response, error)
	CreateContact(ctx context.Context, contact *ContactRequest) (*Response, error)
	UpdateContact(ctx context.Context, id int, contact *ContactRequest) (*Response, error)
	DeleteContact(ctx context.Context, id int) (*Response, error)
}

// ServicesAPI lists one-click services and applies them to domains.
type ServicesAPI interface {
	ListServices(ctx context.Context) (*Response, error)
	GetService(ctx context.Context, id int) (*Response, error)
	ListAppliedServices(ctx context.Context, domain string) (*Response, error)
	ListAvailableServices(ctx context.Context, domain string) (*Response, error)
	ApplyService(ctx context.Context, domain string, serviceID int) (*Response, error)
	UnapplyService(ctx context.Context, domain string, serviceID int) (*Response, error)
}

// MembershipsAPI shares a domain with other users.
type MembershipsAPI interface {
	ListMemberships(ctx context.Context, domain string) (*Response, error)
	CreateMembership(ctx context.Context, domain, email string) (*Response, error)
	DeleteMembership(ctx context.Context, domain, email string) (*Response, error)
}

// NameServersAPI changes delegation and vanity name server settings.
type NameServersAPI interface {
	SetNameServers(ctx context.Context, domain string, servers ...string) (*Response, error)
	EnableVanityNameServers(ctx context.Context, domain string, source ServerSource, servers ...string) (*Response, error)
	DisableVanityNameServers(ctx context.Context, domain string) (*Response, error)
}

// WhoisPrivacyAPI toggles WHOIS privacy protection.
type WhoisPrivacyAPI interface {
	EnableWhoisPrivacy(ctx context.Context, domain string) (*Response, error)
	DisableWhoisPrivacy(ctx context.Context, domain string) (*Response, error)
}

// AccountAPI exposes account-wide lookups.
type AccountAPI interface {
	GetExtendedAttributes(ctx context.Context, tld string) (*Response, error)
	ListStatements(ctx context.Context) (*Response, error)
}

// Client is the DNSimple API client. Every operation returns the decoded
// Response, which may be of kind ResponseError; the error return is reserved
// for local validation, templating, transport and decode failures.
type Client interface {
	DomainsAPI
	RecordsAPI
	ContactsAPI
	ServicesAPI
	MembershipsAPI
	NameServersAPI
	WhoisPrivacyAPI
	AccountAPI
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// ServerSource selects where vanity name servers are served from.
type ServerSource string

// Vanity name server sources.
const (
	ServerSourceDNSimple ServerSource = "dnsimple"
	ServerSourceExternal ServerSource = "external"
)

// Config represents client configuration for building a dnsimple.Client.
//
// # Authentication precedence
//
// Exactly one scheme is selected when the client is built:
//  1. Token: sent as "X-DNSimple-Token: <Username or AccountID>:<Token>".
//  2. Username/Password: HTTP Basic.
//  3. AccountID/APIKey: HTTP Basic.
//
// With none of these the constructor fails with ErrNoCredentials.
type Config struct {
	// BaseURL: API root, "https://api.dnsimple.com" when empty. A missing
	// scheme is completed with "https://".
	BaseURL string
	// APIVersion: path prefix inserted after BaseURL, "v1" when empty.
	APIVersion string

	// Authentication options (provide one)
	AccountID string
	APIKey    string
	Username  string
	Password  string
	Token     string

	// HTTPTimeout bounds every exchange. Zero selects the default.
	HTTPTimeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug  bool
	Logger Logger
	// MetricsRegisterer, when set, receives per-request counters and
	// latency histograms.
	MetricsRegisterer prometheus.Registerer
}
