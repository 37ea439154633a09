package pathutil

import (
	"errors"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"data collection", "/data", "/data"},
		{"data item", "/data/123", "/data/:id"},
		{"data item other id", "/data/99999", "/data/:id"},
		{"trailing slash", "/data/123/", "/data/:id"},
		{"query string stripped", "/data/7?verbose=1", "/data/:id"},
		{"non numeric segment", "/data/abc", "/data/abc"},
		{"health unchanged", "/health", "/health"},
		{"metrics unchanged", "/metrics", "/metrics"},
		{"root unchanged", "/", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    int64
		wantErr bool
	}{
		{"valid", "/data/42", "/data/", 42, false},
		{"zero", "/data/0", "/data/", 0, true},
		{"negative", "/data/-1", "/data/", 0, true},
		{"non numeric", "/data/abc", "/data/", 0, true},
		{"empty", "/data/", "/data/", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractID(tt.path, tt.prefix)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Fatalf("want ErrInvalidID, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ExtractID(%q) = %d, %v; want %d", tt.path, got, err, tt.want)
			}
		})
	}
}

func BenchmarkNormalizePath(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NormalizePath("/data/123456")
	}
}
