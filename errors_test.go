package main

import (
	"errors"
	"fmt"
	"net/textproto"
	"os"
	"testing"
)

func TestClassifyFTPErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"not found", &textproto.Error{Code: 550, Msg: "No such file"}, ErrNotFound},
		{"wrapped not found", fmt.Errorf("x: %w", &textproto.Error{Code: 550}), ErrNotFound},
		{"timeout", errors.New("read tcp: i/o timeout"), ErrTransport},
		{"server error", &textproto.Error{Code: 451, Msg: "local error"}, ErrTransport},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyFTPErr("test", tc.err)
			if tc.want == nil {
				if got != nil {
					t.Errorf("got %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyLoginErr(t *testing.T) {
	if err := classifyLoginErr("login", &textproto.Error{Code: 530, Msg: "Login incorrect"}); !errors.Is(err, ErrAuth) {
		t.Errorf("530 classified as %v, want ErrAuth", err)
	}
	if err := classifyLoginErr("dial", errors.New("connection refused")); !errors.Is(err, ErrConnect) {
		t.Errorf("dial failure classified as %v, want ErrConnect", err)
	}
}

func TestClassifySFTPErr(t *testing.T) {
	if err := classifySFTPErr("stat", os.ErrNotExist); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing path classified as %v, want ErrNotFound", err)
	}
	if err := classifySFTPErr("open", errors.New("connection lost")); !errors.Is(err, ErrTransport) {
		t.Errorf("i/o failure classified as %v, want ErrTransport", err)
	}
}
