package client

import (
	"context"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/internal/payload"
	"github.com/fivetwenty-io/dnsimple-client/internal/template"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

const vanityPath = "domains/{domain}/vanity_name_servers"

// EnableVanityNameServers implements
// dnsimple.NameServersAPI.EnableVanityNameServers. An external source needs
// one to four servers; with the dnsimple source any servers are ignored.
func (c *Client) EnableVanityNameServers(ctx context.Context, domain string, source dnsimple.ServerSource, servers ...string) (*dnsimple.Response, error) {
	const action = "enabling vanity name servers"

	err := validate(action, requireDomain(domain), requireSource(source))
	if err != nil {
		return nil, err
	}

	builder := payload.New(constants.WrapperVanity).Set("server_source", string(source))

	if source == dnsimple.ServerSourceExternal {
		err = validate(action, requireCount("name_servers", len(servers), 1, constants.MaxVanityNameServers))
		if err != nil {
			return nil, err
		}

		addServerSlots(builder, servers)
	}

	body, err := builder.Build()
	if err != nil {
		return nil, validate(action, err)
	}

	return c.execute(ctx, action, template.Post(vanityPath, template.Segments{}.Str("domain", domain), body))
}

// DisableVanityNameServers implements
// dnsimple.NameServersAPI.DisableVanityNameServers.
func (c *Client) DisableVanityNameServers(ctx context.Context, domain string) (*dnsimple.Response, error) {
	const action = "disabling vanity name servers"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, action, template.Delete(vanityPath, template.Segments{}.Str("domain", domain)))
}

func requireSource(source dnsimple.ServerSource) error {
	switch source {
	case dnsimple.ServerSourceDNSimple, dnsimple.ServerSourceExternal:
		return nil
	default:
		return &dnsimple.ValidationError{
			Field:  "server_source",
			Reason: dnsimple.ErrArgumentOutOfRange,
			Detail: "want dnsimple or external, got " + string(source),
		}
	}
}
