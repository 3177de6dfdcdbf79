package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	c, err := load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.ServerURL != "ws://localhost:3000/websocket" {
		t.Errorf("ServerURL = %q", c.ServerURL)
	}
	if c.Channel != "default" || c.DialTimeoutSeconds != 10 {
		t.Errorf("defaults = %+v", c)
	}
}

func TestLoadFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	body := `{"server_url":"ws://game.example:9000/ws","username":"ada","channel":"table-1"}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.ServerURL != "ws://game.example:9000/ws" || c.Username != "ada" || c.Channel != "table-1" {
		t.Errorf("config = %+v", c)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	if err := os.WriteFile(path, []byte(`{"channel":"from-file"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BOARDROOM_CHANNEL", "from-env")
	t.Setenv("BOARDROOM_DIAL_TIMEOUT_SEC", "3")

	c, err := load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Channel != "from-env" {
		t.Errorf("Channel = %q, want env override", c.Channel)
	}
	if c.DialTimeoutSeconds != 3 {
		t.Errorf("DialTimeoutSeconds = %d, want 3", c.DialTimeoutSeconds)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	if err := os.WriteFile(path, []byte(`{broken`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := load(path); err == nil {
		t.Fatal("malformed config accepted")
	}
}
