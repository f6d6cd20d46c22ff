package fetcher

import (
	"errors"
	"net"
	"testing"
)

func TestValidateURL_Schemes(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{
			name:    "https allowed",
			url:     "https://example.com/article",
			wantErr: nil,
		},
		{
			name:    "http allowed",
			url:     "http://example.com/article",
			wantErr: nil,
		},
		{
			name:    "ftp rejected",
			url:     "ftp://example.com/file",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "file rejected",
			url:     "file:///etc/passwd",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "gopher rejected",
			url:     "gopher://example.com",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "empty hostname",
			url:     "https://",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "not a url",
			url:     "://bad",
			wantErr: ErrInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Private IP checks disabled so no DNS resolution happens.
			err := validateURL(tt.url, false)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateURL_BlocksLoopback(t *testing.T) {
	err := validateURL("http://127.0.0.1/admin", true)
	if !errors.Is(err, ErrPrivateIP) {
		t.Errorf("expected ErrPrivateIP for loopback, got %v", err)
	}

	err = validateURL("http://localhost/admin", true)
	if !errors.Is(err, ErrPrivateIP) {
		t.Errorf("expected ErrPrivateIP for localhost, got %v", err)
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip      string
		private bool
	}{
		{"127.0.0.1", true},
		{"10.0.0.1", true},
		{"172.16.0.1", true},
		{"172.31.255.255", true},
		{"192.168.1.1", true},
		{"169.254.1.1", true},
		{"::1", true},
		{"fc00::1", true},
		{"fe80::1", true},
		{"8.8.8.8", false},
		{"1.1.1.1", false},
		{"172.32.0.1", false},
		{"2001:4860:4860::8888", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			if ip == nil {
				t.Fatalf("failed to parse IP %q", tt.ip)
			}
			if got := isPrivateIP(ip); got != tt.private {
				t.Errorf("isPrivateIP(%s) = %v, want %v", tt.ip, got, tt.private)
			}
		})
	}
}
