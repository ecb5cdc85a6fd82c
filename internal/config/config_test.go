package config

import (
	"os"
	"path/filepath"
	"testing"

	"radiopanel/internal/constants"
)

func TestLoad(t *testing.T) {
	// Test default values
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != constants.DefaultPort {
		t.Errorf("Expected Port to be %s, got %s", constants.DefaultPort, cfg.Port)
	}

	if cfg.SecretKey != constants.DefaultSecretKey {
		t.Errorf("Expected SecretKey to be %s, got %s", constants.DefaultSecretKey, cfg.SecretKey)
	}

	if cfg.ConfigDir != constants.DefaultConfigDir {
		t.Errorf("Expected ConfigDir to be %s, got %s", constants.DefaultConfigDir, cfg.ConfigDir)
	}

	if cfg.SiteTitle != constants.DefaultSiteTitle {
		t.Errorf("Expected SiteTitle to be %s, got %s", constants.DefaultSiteTitle, cfg.SiteTitle)
	}

	if cfg.ShowDefaults.RemoteDirectory != "" || cfg.ShowDefaults.ArtworkFile != "" {
		t.Error("Expected show defaults to be empty (strict validation) by default")
	}
}

func TestLoadWithEnvVars(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("SECRET_KEY", "s3cret")
	os.Setenv("CONFIG_DIR", "/tmp/radiopanel")
	os.Setenv("SHOW_DEFAULT_REMOTE_DIR", "/srv/recordings")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("SECRET_KEY")
		os.Unsetenv("CONFIG_DIR")
		os.Unsetenv("SHOW_DEFAULT_REMOTE_DIR")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected Port to be 9090, got %s", cfg.Port)
	}

	if cfg.SecretKey != "s3cret" {
		t.Errorf("Expected SecretKey to be s3cret, got %s", cfg.SecretKey)
	}

	if cfg.ConfigDir != "/tmp/radiopanel" {
		t.Errorf("Expected ConfigDir to be /tmp/radiopanel, got %s", cfg.ConfigDir)
	}

	if cfg.ShowDefaults.RemoteDirectory != "/srv/recordings" {
		t.Errorf("Expected default remote dir /srv/recordings, got %s", cfg.ShowDefaults.RemoteDirectory)
	}
}

func TestLoadWithSettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "radiopanel.yaml")
	settings := `site_title: Station Ops
show_defaults:
  remote_directory: /srv/archive
  artwork_file: art/default.png
`
	if err := os.WriteFile(path, []byte(settings), 0644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	os.Setenv("SETTINGS_FILE", path)
	defer os.Unsetenv("SETTINGS_FILE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SiteTitle != "Station Ops" {
		t.Errorf("Expected SiteTitle 'Station Ops', got %s", cfg.SiteTitle)
	}
	if cfg.ShowDefaults.RemoteDirectory != "/srv/archive" {
		t.Errorf("Expected default remote dir /srv/archive, got %s", cfg.ShowDefaults.RemoteDirectory)
	}
	if cfg.ShowDefaults.ArtworkFile != "art/default.png" {
		t.Errorf("Expected default artwork art/default.png, got %s", cfg.ShowDefaults.ArtworkFile)
	}
}

func TestLoadWithMissingSettingsFile(t *testing.T) {
	os.Setenv("SETTINGS_FILE", "/does/not/exist.yaml")
	defer os.Unsetenv("SETTINGS_FILE")

	if _, err := Load(); err == nil {
		t.Error("Expected an error for a missing settings file")
	}
}

func TestEnvWinsOverSettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "radiopanel.yaml")
	settings := "show_defaults:\n  artwork_file: art/from-file.png\n"
	if err := os.WriteFile(path, []byte(settings), 0644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	os.Setenv("SETTINGS_FILE", path)
	os.Setenv("SHOW_DEFAULT_ARTWORK_FILE", "art/from-env.png")
	defer func() {
		os.Unsetenv("SETTINGS_FILE")
		os.Unsetenv("SHOW_DEFAULT_ARTWORK_FILE")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ShowDefaults.ArtworkFile != "art/from-env.png" {
		t.Errorf("Expected env to win, got %s", cfg.ShowDefaults.ArtworkFile)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Port:      "5000",
				SecretKey: "dev",
				ConfigDir: "config",
				LogLevel:  "info",
				LogFormat: "text",
			},
			wantErr: false,
		},
		{
			name: "invalid port - not a number",
			config: Config{
				Port:      "abc",
				SecretKey: "dev",
				ConfigDir: "config",
				LogLevel:  "info",
				LogFormat: "text",
			},
			wantErr: true,
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:      "99999",
				SecretKey: "dev",
				ConfigDir: "config",
				LogLevel:  "info",
				LogFormat: "text",
			},
			wantErr: true,
		},
		{
			name: "empty config dir",
			config: Config{
				Port:      "5000",
				SecretKey: "dev",
				ConfigDir: "",
				LogLevel:  "info",
				LogFormat: "text",
			},
			wantErr: true,
		},
		{
			name: "empty secret key",
			config: Config{
				Port:      "5000",
				SecretKey: "",
				ConfigDir: "config",
				LogLevel:  "info",
				LogFormat: "text",
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: Config{
				Port:      "5000",
				SecretKey: "dev",
				ConfigDir: "config",
				LogLevel:  "loud",
				LogFormat: "text",
			},
			wantErr: true,
		},
		{
			name: "invalid log format",
			config: Config{
				Port:      "5000",
				SecretKey: "dev",
				ConfigDir: "config",
				LogLevel:  "info",
				LogFormat: "xml",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInsecureSecret(t *testing.T) {
	cfg := Config{SecretKey: constants.DefaultSecretKey}
	if !cfg.InsecureSecret() {
		t.Error("Expected the default secret to be reported as insecure")
	}

	cfg.SecretKey = "something-else"
	if cfg.InsecureSecret() {
		t.Error("Expected a custom secret to not be reported as insecure")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test_value")
	defer os.Unsetenv("TEST_VAR")

	value := getEnv("TEST_VAR", "default")
	if value != "test_value" {
		t.Errorf("Expected 'test_value', got '%s'", value)
	}

	value = getEnv("NON_EXISTENT_VAR", "default")
	if value != "default" {
		t.Errorf("Expected 'default', got '%s'", value)
	}
}
