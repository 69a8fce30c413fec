package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/internal/payload"
	"github.com/fivetwenty-io/dnsimple-client/internal/template"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// SetNameServers implements dnsimple.NameServersAPI.SetNameServers. Between
// one and six servers are accepted; they fill the slots ns1..ns6 in order.
func (c *Client) SetNameServers(ctx context.Context, domain string, servers ...string) (*dnsimple.Response, error) {
	const action = "setting name servers"

	err := validate(action,
		requireDomain(domain),
		requireCount(constants.WrapperNameServers, len(servers), 1, constants.MaxNameServers),
	)
	if err != nil {
		return nil, err
	}

	builder := payload.New(constants.WrapperNameServers)
	addServerSlots(builder, servers)

	body, err := builder.Build()
	if err != nil {
		return nil, validate(action, err)
	}

	return c.execute(ctx, action, template.Post("domains/{domain}/name_servers", template.Segments{}.Str("domain", domain), body))
}

// addServerSlots stores servers as ns1, ns2, ... on builder. An empty entry
// is reported as a missing argument.
func addServerSlots(builder *payload.Builder, servers []string) {
	for i, server := range servers {
		slot := "ns" + strconv.Itoa(i+1)

		err := payload.RequireArgument(slot, server)
		if err != nil {
			builder.Fail(err)

			continue
		}

		builder.Set(slot, server)
	}
}

func requireCount(field string, count, low, high int) error {
	if count < low || count > high {
		return &dnsimple.ValidationError{
			Field:  field,
			Reason: dnsimple.ErrArgumentOutOfRange,
			Detail: fmt.Sprintf("got %d, want %d to %d", count, low, high),
		}
	}

	return nil
}
