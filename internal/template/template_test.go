package template

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		tmpl     string
		segments Segments
		want     string
	}

	tests := []testCase{
		{
			name:     "record path",
			tmpl:     "domains/{domain}/records/{id}",
			segments: Segments{}.Str("domain", "example.com").Str("id", "42"),
			want:     "domains/example.com/records/42",
		},
		{
			name:     "segment order does not matter",
			tmpl:     "domains/{domain}/records/{id}",
			segments: Segments{}.Int("id", 42).Str("domain", "example.com"),
			want:     "domains/example.com/records/42",
		},
		{
			name: "no placeholders",
			tmpl: "domains",
			want: "domains",
		},
		{
			name:     "value is escaped",
			tmpl:     "domains/{domain}/memberships/{email}",
			segments: Segments{}.Str("domain", "example.com").Str("email", "a b/c@example.com"),
			want:     "domains/example.com/memberships/a%20b%2Fc@example.com",
		},
		{
			name:     "unused segment ignored",
			tmpl:     "contacts/{id}",
			segments: Segments{}.Int("id", 7).Str("extra", "x"),
			want:     "contacts/7",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tc.tmpl, tc.segments)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		tmpl        string
		segments    Segments
		wantReason  error
		wantSegment string
	}

	tests := []testCase{
		{
			name:        "missing segment",
			tmpl:        "domains/{domain}/records/{id}",
			segments:    Segments{}.Str("domain", "example.com"),
			wantReason:  dnsimple.ErrUnfilledSegment,
			wantSegment: "id",
		},
		{
			name:       "unterminated placeholder",
			tmpl:       "domains/{domain",
			segments:   Segments{}.Str("domain", "example.com"),
			wantReason: dnsimple.ErrMalformedTemplate,
		},
		{
			name:       "empty placeholder",
			tmpl:       "domains/{}",
			wantReason: dnsimple.ErrMalformedTemplate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Resolve(tc.tmpl, tc.segments)

			var templateErr *dnsimple.TemplateError
			require.ErrorAs(t, err, &templateErr)
			assert.ErrorIs(t, err, tc.wantReason)
			assert.Equal(t, tc.tmpl, templateErr.Template)
			assert.Equal(t, tc.wantSegment, templateErr.Segment)
		})
	}
}

func TestSpec_Headers(t *testing.T) {
	t.Parallel()

	body := map[string]any{"domain": map[string]any{"name": "example.com"}}

	assert.Equal(t, map[string]string{"Accept": "application/json"}, Get("domains", nil).Headers())
	assert.Equal(t, map[string]string{"Accept": "application/json"}, Post("domains/{domain}/whois_privacy", nil, nil).Headers())
	assert.Equal(t, map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
	}, Post("domains", nil, body).Headers())
	assert.Equal(t, map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
	}, Put("contacts/{id}", nil, body).Headers())

	get := &Spec{Method: http.MethodGet, Path: "domains", Body: body}
	assert.False(t, get.HasBody())
}

func TestSpec_Resolve(t *testing.T) {
	t.Parallel()

	spec := Delete("domains/{domain}/applied_services/{id}", Segments{}.Str("domain", "example.com").Int("id", 3))

	path, err := spec.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "domains/example.com/applied_services/3", path)
	assert.Equal(t, http.MethodDelete, spec.Method)
}
