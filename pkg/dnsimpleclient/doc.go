// Package dnsimpleclient constructs clients that implement the dnsimple.Client
// interface.
//
// It layers configuration, the HTTP transport and credential selection on top
// of the resource interfaces defined in the dnsimple package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
//	  "github.com/fivetwenty-io/dnsimple-client/pkg/dnsimpleclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Account id and API key against production.
//	  cli, err := dnsimpleclient.NewWithAccountKey("", "1234", "key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or the full config, here against the sandbox.
//	  cli, err = dnsimpleclient.New(&dnsimple.Config{
//	    BaseURL:  dnsimpleclient.SandboxBaseURL,
//	    Username: "me@example.com",
//	    Password: "secret",
//	  })
//
//	  resp, err := cli.GetDomain(ctx, "example.com")
//	  if err != nil { log.Fatal(err) }
//	  if resp.IsError() { log.Fatal(resp.Err()) }
//	}
//
// When several credentials are configured the domain token wins, then
// username and password, then account id and API key.
package dnsimpleclient
