package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type Credentials struct {
	username string
	password []byte
	token    string
}

func (c *Credentials) Clear() {
	secureWipe(c.password)
	c.password = nil
	c.token = ""
}

// secureWipe overwrites sensitive bytes before they are dropped.
func secureWipe(data []byte) {
	for i := range data {
		data[i] = 0
	}
}

// readCredentials reads a plain-text credentials file: first line username,
// second line password. In token mode only the first line is read. A file
// with a username but no password line falls back to an interactive prompt.
// Protecting the file is the caller's problem, not ours.
func readCredentials(fname string, token bool) (*Credentials, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("failed to open credentials file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r\n"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("credentials file %s is empty", fname)
	}

	if token {
		return &Credentials{token: lines[0]}, nil
	}

	creds := &Credentials{username: lines[0]}
	if len(lines) > 1 && lines[1] != "" {
		creds.password = []byte(lines[1])
		return creds, nil
	}

	creds.password, err = askPassword()
	if err != nil {
		return nil, err
	}
	return creds, nil
}

// askPassword reads a password from the terminal without echoing it.
func askPassword() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Enter password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}
