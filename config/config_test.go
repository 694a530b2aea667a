package config

import "testing"

func TestValidateRequiresAPIKeyAndPlaylist(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"both set", Config{YouTubeAPIKey: "key", PlaylistID: "PLabc"}, false},
		{"missing key", Config{PlaylistID: "PLabc"}, true},
		{"missing playlist", Config{YouTubeAPIKey: "key"}, true},
		{"both missing", Config{}, true},
	}

	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestDSN(t *testing.T) {
	cfg := Config{
		PostgresHost: "db", PostgresPort: "5433", PostgresUser: "u",
		PostgresPassword: "p", PostgresDB: "f1", PostgresSSLMode: "disable",
	}
	want := "host=db port=5433 user=u password=p dbname=f1 sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
