package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeoscan/aeoscan/internal/domain"
)

func validRequest() domain.ValidationRequest {
	return domain.ValidationRequest{
		URL:      "https://example.com",
		Business: domain.BusinessContext{Name: "Example Co"},
	}
}

func TestValidationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.ValidationRequest)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(r *domain.ValidationRequest) {},
		},
		{
			name:    "missing scheme",
			mutate:  func(r *domain.ValidationRequest) { r.URL = "example.com" },
			wantErr: domain.ErrInvalidURL,
		},
		{
			name:    "ftp scheme",
			mutate:  func(r *domain.ValidationRequest) { r.URL = "ftp://example.com" },
			wantErr: domain.ErrInvalidURL,
		},
		{
			name:    "missing host",
			mutate:  func(r *domain.ValidationRequest) { r.URL = "https://" },
			wantErr: domain.ErrInvalidURL,
		},
		{
			name:    "missing business name",
			mutate:  func(r *domain.ValidationRequest) { r.Business.Name = "  " },
			wantErr: domain.ErrMissingBusiness,
		},
		{
			name: "competitor with path",
			mutate: func(r *domain.ValidationRequest) {
				r.AuthorityEnabled = true
				r.Competitors = []string{"rival.com/about"}
			},
			wantErr: domain.ErrInvalidCompetitor,
		},
		{
			name: "empty competitor",
			mutate: func(r *domain.ValidationRequest) {
				r.AuthorityEnabled = true
				r.Competitors = []string{""}
			},
			wantErr: domain.ErrInvalidCompetitor,
		},
		{
			name: "competitors ignored when authority disabled",
			mutate: func(r *domain.ValidationRequest) {
				r.Competitors = []string{"not a domain"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidationRequest_Domain(t *testing.T) {
	req := domain.ValidationRequest{URL: "https://www.example.com:8443/page"}
	assert.Equal(t, "www.example.com", req.Domain())
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"HTTPS://Example.COM/", "https://example.com"},
		{"https://example.com/page/", "https://example.com/page"},
		{"https://example.com/page#section", "https://example.com/page"},
		{"http://example.com", "http://example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.NormalizeURL(tt.in), "input %q", tt.in)
	}
}
