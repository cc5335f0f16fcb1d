package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCredFile(t *testing.T, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "creds")
	if err := os.WriteFile(fname, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestReadCredentialsUserPassword(t *testing.T) {
	fname := writeCredFile(t, "paola\nhunter2\n")
	creds, err := readCredentials(fname, false)
	if err != nil {
		t.Fatalf("readCredentials failed: %v", err)
	}
	if creds.username != "paola" {
		t.Errorf("username = %q", creds.username)
	}
	if string(creds.password) != "hunter2" {
		t.Errorf("password = %q", creds.password)
	}
}

func TestReadCredentialsToken(t *testing.T) {
	fname := writeCredFile(t, "abc123token\n")
	creds, err := readCredentials(fname, true)
	if err != nil {
		t.Fatalf("readCredentials failed: %v", err)
	}
	if creds.token != "abc123token" {
		t.Errorf("token = %q", creds.token)
	}
}

func TestReadCredentialsCRLF(t *testing.T) {
	fname := writeCredFile(t, "paola\r\nhunter2\r\n")
	creds, err := readCredentials(fname, false)
	if err != nil {
		t.Fatalf("readCredentials failed: %v", err)
	}
	if creds.username != "paola" || string(creds.password) != "hunter2" {
		t.Errorf("got %q / %q, line endings not stripped", creds.username, creds.password)
	}
}

func TestReadCredentialsEmptyFile(t *testing.T) {
	fname := writeCredFile(t, "")
	if _, err := readCredentials(fname, false); err == nil {
		t.Error("expected error for empty credentials file")
	}
}

func TestReadCredentialsMissingFile(t *testing.T) {
	if _, err := readCredentials(filepath.Join(t.TempDir(), "nope"), false); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCredentialsClear(t *testing.T) {
	creds := &Credentials{username: "u", password: []byte("secret")}
	buf := creds.password
	creds.Clear()
	if creds.password != nil {
		t.Error("password not nilled")
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not wiped", i)
		}
	}
}
