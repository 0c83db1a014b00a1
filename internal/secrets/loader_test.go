package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	keyFile := filepath.Join(dir, "key")
	if err := os.WriteFile(keyFile, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	emptyFile := filepath.Join(dir, "empty")
	if err := os.WriteFile(emptyFile, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write empty file: %v", err)
	}

	t.Setenv("INTERVIEW_SIM_TEST_KEY", " from-env ")
	t.Setenv("INTERVIEW_SIM_TEST_EMPTY", "")

	tests := []struct {
		name    string
		src     Source
		want    string
		wantErr string
	}{
		{
			name: "file wins over env and value",
			src:  Source{Name: "api key", File: keyFile, Env: "INTERVIEW_SIM_TEST_KEY", Value: "inline"},
			want: "from-file",
		},
		{
			name: "env wins over value",
			src:  Source{Env: "INTERVIEW_SIM_TEST_KEY", Value: "inline"},
			want: "from-env",
		},
		{
			name: "value when env is empty",
			src:  Source{Env: "INTERVIEW_SIM_TEST_EMPTY", Value: " inline "},
			want: "inline",
		},
		{
			name:    "missing file",
			src:     Source{Name: "api key", File: filepath.Join(dir, "missing")},
			wantErr: "reading api key from file",
		},
		{
			name:    "empty file",
			src:     Source{Name: "api key", File: emptyFile},
			wantErr: "is empty",
		},
		{
			name:    "nothing configured",
			src:     Source{},
			wantErr: "secret is not configured",
		},
		{
			name:    "empty env is reported",
			src:     Source{Name: "api key", Env: "INTERVIEW_SIM_TEST_EMPTY"},
			wantErr: "env INTERVIEW_SIM_TEST_EMPTY is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
