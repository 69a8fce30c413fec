// Package auth attaches DNSimple credentials to outgoing requests.
//
// Exactly one scheme is active per client and it is chosen once, from the
// fields supplied at construction:
//
//   - Token: "X-DNSimple-Token: <identity>:<token>", sent verbatim.
//   - Password: HTTP Basic with username and password.
//   - Account key: HTTP Basic with account id and API key.
//
// Credentials never expire or refresh. A rejected credential surfaces as an
// error response from the remote service. Every Authenticator is immutable
// after construction and safe for concurrent use.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// Scheme identifies the active authentication scheme.
type Scheme int

// Supported schemes.
const (
	SchemeAccountKey Scheme = iota + 1
	SchemePassword
	SchemeToken
)

// String returns the scheme name.
func (s Scheme) String() string {
	switch s {
	case SchemeAccountKey:
		return "account-key"
	case SchemePassword:
		return "password"
	case SchemeToken:
		return "token"
	default:
		return "none"
	}
}

// Authenticator attaches credentials to a request.
type Authenticator interface {
	Apply(req *http.Request)
	Scheme() Scheme
}

// Credential is the selected identity/secret pair together with its scheme.
type Credential struct {
	scheme   Scheme
	identity string
	secret   string
}

// NewAccountKey builds a Basic credential from an account id and API key.
func NewAccountKey(accountID, apiKey string) Credential {
	return Credential{scheme: SchemeAccountKey, identity: accountID, secret: apiKey}
}

// NewPassword builds a Basic credential from a username and password.
func NewPassword(username, password string) Credential {
	return Credential{scheme: SchemePassword, identity: username, secret: password}
}

// NewToken builds a token credential.
func NewToken(identity, token string) Credential {
	return Credential{scheme: SchemeToken, identity: identity, secret: token}
}

// Select picks the scheme from the supplied fields. A non-blank token wins,
// then username/password, then account id/API key.
func Select(accountID, apiKey, username, password, token string) (Credential, error) {
	switch {
	case !blank(token):
		identity := username
		if blank(identity) {
			identity = accountID
		}

		return NewToken(identity, token), nil
	case !blank(username) && password != "":
		return NewPassword(username, password), nil
	case !blank(accountID) && apiKey != "":
		return NewAccountKey(accountID, apiKey), nil
	default:
		return Credential{}, fmt.Errorf("selecting credential: %w", dnsimple.ErrNoCredentials)
	}
}

// Scheme reports the active scheme.
func (c Credential) Scheme() Scheme { return c.scheme }

// Identity returns the account id or username the credential belongs to.
func (c Credential) Identity() string { return c.identity }

// Apply sets the Authorization or token header on req.
func (c Credential) Apply(req *http.Request) {
	switch c.scheme {
	case SchemeToken:
		req.Header.Set(constants.TokenHeader, c.identity+":"+c.secret)
	case SchemeAccountKey, SchemePassword:
		req.SetBasicAuth(c.identity, c.secret)
	}
}

// String describes the credential without revealing the secret.
func (c Credential) String() string {
	return c.scheme.String() + "(" + c.identity + ")"
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
