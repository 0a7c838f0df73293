package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		size       int64
		maxSizeMB  int
		wantOK     bool
		wantReason string
	}{
		{
			name:      "valid csv",
			filename:  "data.csv",
			size:      1024,
			maxSizeMB: 100,
			wantOK:    true,
		},
		{
			name:       "empty filename",
			filename:   "",
			size:       10,
			maxSizeMB:  100,
			wantOK:     false,
			wantReason: "no filename provided",
		},
		{
			name:       "unsupported extension",
			filename:   "script.exe",
			size:       10,
			maxSizeMB:  100,
			wantOK:     false,
			wantReason: "unsupported file type",
		},
		{
			name:       "over size ceiling",
			filename:   "big.csv",
			size:       101 * 1024 * 1024,
			maxSizeMB:  100,
			wantOK:     false,
			wantReason: "exceeds maximum allowed size",
		},
		{
			name:       "path traversal rejected regardless of size",
			filename:   "../secret.csv",
			size:       1,
			maxSizeMB:  100,
			wantOK:     false,
			wantReason: "path traversal",
		},
		{
			name:       "backslash traversal",
			filename:   `..\secret.csv`,
			size:       1,
			maxSizeMB:  100,
			wantOK:     false,
			wantReason: "path traversal",
		},
		{
			name:      "exactly at ceiling",
			filename:  "edge.csv",
			size:      100 * 1024 * 1024,
			maxSizeMB: 100,
			wantOK:    true,
		},
		{
			name:      "zero ceiling falls back to default",
			filename:  "data.parquet",
			size:      50 * 1024 * 1024,
			maxSizeMB: 0,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := Validate(tt.filename, tt.size, tt.maxSizeMB)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Contains(t, reason, tt.wantReason)
			} else {
				assert.Empty(t, reason)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"data.csv", "data.csv"},
		{"my file.csv", "my_file.csv"},
		{"/etc/passwd.csv", "passwd.csv"},
		{`C:\temp\evil.csv`, "evil.csv"},
		{"../traversal.csv", "traversal.csv"},
		{"weird$chars!.json", "weird_chars_.json"},
		{"...", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}
