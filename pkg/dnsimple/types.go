package dnsimple

// ContactRequest carries the fields of a registrant contact. A nil field is
// absent. Required fields must be non-nil; an empty string is accepted and
// forwarded. Optional fields are dropped when nil or blank. JobTitle becomes
// required once OrganizationName is non-blank.
type ContactRequest struct {
	FirstName     *string
	LastName      *string
	Address1      *string
	City          *string
	StateProvince *string
	PostalCode    *string
	Country       *string
	EmailAddress  *string
	Phone         *string

	OrganizationName *string
	JobTitle         *string
	Fax              *string
	PhoneExt         *string
	Label            *string
	Address2         *string
}

// RecordRequest describes a DNS record to create. Name is required.
type RecordRequest struct {
	Name       *string
	RecordType *string
	Content    *string
	TTL        *int
	Priority   *int
}

// RecordUpdateRequest lists the record fields to change. When every field
// is absent the update is sent without a body.
type RecordUpdateRequest struct {
	Name     *string
	Content  *string
	TTL      *int
	Priority *int
}

// String returns a pointer to v.
func String(v string) *string { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
