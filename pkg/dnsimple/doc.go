// Package dnsimple provides types, interfaces, and helpers for working with
// the DNSimple v1 registrar API.
//
// # Overview
//
// The package defines the Client interface, grouped per resource (domains,
// records, contacts, services, memberships, name servers, WHOIS privacy and
// account lookups), the request structs for operations with bodies, and the
// generic Response every operation returns. A concrete implementation is
// provided by the dnsimpleclient package.
//
//	cli, err := dnsimpleclient.NewWithToken("", "me@example.com", "token")
//	if err != nil { log.Fatal(err) }
//
//	resp, err := cli.ListDomains(ctx)
//	if err != nil { log.Fatal(err) }
//	if apiErr := resp.Err(); apiErr != nil { log.Fatal(apiErr) }
//
//	domains, _ := resp.List()
//	for _, d := range domains {
//	  name, _ := d.Unwrap("domain").GetString("name")
//	  fmt.Println(name)
//	}
//
// # Responses
//
// There is no record type per resource. A Response is an Object, a List of
// Objects, or an Error carrying the status code and the decoded error body.
// Fields are read through typed accessors that fail with a *ShapeError when
// the stored value has a different shape. Object key order and the
// integer/float distinction of the JSON source are preserved.
//
// # Errors
//
// Remote 4xx/5xx replies are returned as ResponseError values, never as Go
// errors. Local failures are: *ValidationError (before any network call),
// *TemplateError, *TransportError and *DecodeError. Response.Err converts an
// error response into an *APIError for callers who prefer error flow, and
// IsNotFound, IsUnauthorized and IsValidationFailure accept either form.
package dnsimple
