package main

import (
	"io"
	"net/url"
	"time"
)

// RemoteKind classifies one entry of a remote directory listing.
type RemoteKind int

const (
	KindFile RemoteKind = iota
	KindDir
	KindOther // symlinks, devices, anything we never touch
)

// RemoteEntry is one record of a directory listing. Classification comes
// from the structured listing record, never from its position in the list.
type RemoteEntry struct {
	Name string
	Kind RemoteKind
}

// Connector interface for remote file operations. All operations take full
// remote paths; connectors keep no directory cursor, so the local and remote
// sides of a walk can never drift apart.
type Connector interface {
	List(path string) ([]RemoteEntry, error)
	Fetch(path string) (io.ReadCloser, error)
	ModTime(path string) (time.Time, error)
	Close() error
}

// ConnectorFactory interface for creating connectors
type ConnectorFactory interface {
	Accept(u *url.URL) bool
	Create(u *url.URL, creds *Credentials) (Connector, error)
	Name() string
}
