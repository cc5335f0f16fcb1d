package main

import (
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

type SFTPConnectorFactory struct{}

func (f *SFTPConnectorFactory) Accept(u *url.URL) bool { return u.Scheme == "sftp" }

func (f *SFTPConnectorFactory) Create(u *url.URL, creds *Credentials) (Connector, error) {
	return NewSFTPConnector(u, creds)
}

func (f *SFTPConnectorFactory) Name() string { return "sftp" }

type SFTPConnector struct {
	conn   *ssh.Client
	client *sftp.Client
}

func NewSFTPConnector(u *url.URL, creds *Credentials) (*SFTPConnector, error) {
	if creds == nil {
		return nil, fmt.Errorf("sftp %s: %w: credentials required", u.Host, ErrAuth)
	}

	addr := u.Host
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "22")
	}

	config := &ssh.ClientConfig{
		User: creds.username,
		Auth: []ssh.AuthMethod{
			ssh.Password(string(creds.password)),
		},
		// Runs unattended from cron, nobody is there to confirm a
		// fingerprint.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         ftpDialTimeout,
	}

	conn, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, classifyLoginErr("dial "+addr, err)
	}

	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, classifyConnectErr("sftp session "+addr, err)
	}

	return &SFTPConnector{conn: conn, client: client}, nil
}

func (s *SFTPConnector) List(path string) ([]RemoteEntry, error) {
	infos, err := s.client.ReadDir(path)
	if err != nil {
		return nil, classifySFTPErr("readdir "+path, err)
	}

	entries := make([]RemoteEntry, 0, len(infos))
	for _, fi := range infos {
		entries = append(entries, RemoteEntry{
			Name: fi.Name(),
			Kind: kindFromFileInfo(fi),
		})
	}
	return entries, nil
}

func kindFromFileInfo(fi os.FileInfo) RemoteKind {
	switch {
	case fi.Mode().IsDir():
		return KindDir
	case fi.Mode().IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

func (s *SFTPConnector) Fetch(path string) (io.ReadCloser, error) {
	f, err := s.client.Open(path)
	if err != nil {
		return nil, classifySFTPErr("open "+path, err)
	}
	return f, nil
}

func (s *SFTPConnector) ModTime(path string) (time.Time, error) {
	fi, err := s.client.Stat(path)
	if err != nil {
		return time.Time{}, classifySFTPErr("stat "+path, err)
	}
	return fi.ModTime().UTC(), nil
}

func (s *SFTPConnector) Close() error {
	if s.client == nil {
		return nil
	}
	var errs *multierror.Error
	errs = multierror.Append(errs, s.client.Close())
	errs = multierror.Append(errs, s.conn.Close())
	s.client = nil
	s.conn = nil
	return errs.ErrorOrNil()
}
