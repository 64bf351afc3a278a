package database

import (
	"context"
	"path/filepath"
	"testing"
)

func isolateAWSEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	t.Setenv("AWS_SESSION_TOKEN", "")
}

func TestNewDynamoDBConfig_Credentials(t *testing.T) {
	cases := []struct {
		name     string
		settings DynamoDBSettings
		env      map[string]string
		wantKey  string
	}{
		{
			name:     "local endpoint without keys",
			settings: DynamoDBSettings{Endpoint: "http://localhost:8000"},
			wantKey:  "local",
		},
		{
			name:     "explicit keys",
			settings: DynamoDBSettings{AccessKeyID: "AKIDEXPLICIT", SecretAccessKey: "secret"},
			wantKey:  "AKIDEXPLICIT",
		},
		{
			name:     "no endpoint and no keys uses the default chain",
			settings: DynamoDBSettings{},
			env:      map[string]string{"AWS_ACCESS_KEY_ID": "AKIDFROMENV", "AWS_SECRET_ACCESS_KEY": "env-secret"},
			wantKey:  "AKIDFROMENV",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isolateAWSEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := NewDynamoDBConfig(context.Background(), tc.settings)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Region != "us-east-1" {
				t.Fatalf("unexpected region %q", cfg.Region)
			}
			creds, err := cfg.Credentials.Retrieve(context.Background())
			if err != nil {
				t.Fatalf("retrieve credentials: %v", err)
			}
			if creds.AccessKeyID != tc.wantKey {
				t.Fatalf("expected key %q, got %q", tc.wantKey, creds.AccessKeyID)
			}
		})
	}
}
