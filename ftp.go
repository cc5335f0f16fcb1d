package main

import (
	"io"
	"net"
	"net/url"
	"time"

	"github.com/jlaffaye/ftp"
)

const ftpDialTimeout = 30 * time.Second

type FTPConnectorFactory struct{}

func (f *FTPConnectorFactory) Accept(u *url.URL) bool {
	return u.Scheme == "ftp"
}

func (f *FTPConnectorFactory) Create(u *url.URL, creds *Credentials) (Connector, error) {
	return NewFTPConnector(u, creds)
}

func (f *FTPConnectorFactory) Name() string {
	return "ftp"
}

type FTPConnector struct {
	client *ftp.ServerConn
}

func NewFTPConnector(u *url.URL, creds *Credentials) (*FTPConnector, error) {
	addr := u.Host
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "21")
	}

	c, err := ftp.Dial(addr, ftp.DialWithTimeout(ftpDialTimeout))
	if err != nil {
		return nil, classifyConnectErr("dial "+addr, err)
	}

	user, pass := "anonymous", "anonymous"
	if creds != nil {
		user = creds.username
		pass = string(creds.password)
	}
	if err := c.Login(user, pass); err != nil {
		c.Quit() // Close connection on login failure
		return nil, classifyLoginErr("login "+user, err)
	}

	return &FTPConnector{client: c}, nil
}

func (f *FTPConnector) List(path string) ([]RemoteEntry, error) {
	raw, err := f.client.List(path)
	if err != nil {
		return nil, classifyFTPErr("list "+path, err)
	}

	entries := make([]RemoteEntry, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, RemoteEntry{
			Name: e.Name,
			Kind: kindFromFTP(e.Type),
		})
	}
	return entries, nil
}

func kindFromFTP(t ftp.EntryType) RemoteKind {
	switch t {
	case ftp.EntryTypeFile:
		return KindFile
	case ftp.EntryTypeFolder:
		return KindDir
	default:
		return KindOther
	}
}

func (f *FTPConnector) Fetch(path string) (io.ReadCloser, error) {
	r, err := f.client.Retr(path)
	if err != nil {
		return nil, classifyFTPErr("retr "+path, err)
	}
	return r, nil
}

// ModTime asks the server for the file's modification time via MDTM,
// which the protocol defines as UTC.
func (f *FTPConnector) ModTime(path string) (time.Time, error) {
	t, err := f.client.GetTime(path)
	if err != nil {
		return time.Time{}, classifyFTPErr("mdtm "+path, err)
	}
	return t.UTC(), nil
}

func (f *FTPConnector) Close() error {
	if f.client == nil {
		return nil
	}
	err := f.client.Quit()
	f.client = nil
	return err
}
