package main

import (
	"errors"
	"fmt"
	"net/textproto"
	"os"
)

// Error taxonomy for the transport layer. Connect and auth failures are
// fatal for the whole run; not-found aborts the walk branch that hit it;
// transport failures on a single file degrade to a summary entry.
var (
	ErrConnect   = errors.New("connection failed")
	ErrAuth      = errors.New("login rejected")
	ErrNotFound  = errors.New("no such remote path")
	ErrTransport = errors.New("transfer failed")
)

func classifyConnectErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %v", op, ErrConnect, err)
}

// classifyLoginErr treats a 530 reply as rejected credentials and anything
// else during session setup as a connection failure.
func classifyLoginErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var proto *textproto.Error
	if errors.As(err, &proto) && proto.Code == 530 {
		return fmt.Errorf("%s: %w: %v", op, ErrAuth, err)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrConnect, err)
}

// classifyFTPErr maps an FTP protocol reply onto the taxonomy. The server
// answers 530 for bad credentials and 550 for a missing path or file.
func classifyFTPErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var proto *textproto.Error
	if errors.As(err, &proto) {
		switch proto.Code {
		case 530:
			return fmt.Errorf("%s: %w: %v", op, ErrAuth, err)
		case 550:
			return fmt.Errorf("%s: %w: %v", op, ErrNotFound, err)
		}
	}
	return fmt.Errorf("%s: %w: %v", op, ErrTransport, err)
}

// classifySFTPErr does the same for the sftp client, which surfaces missing
// paths through os.IsNotExist.
func classifySFTPErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrTransport, err)
}
