package main

import (
	"testing"

	"github.com/jlaffaye/ftp"
)

func TestKindFromFTP(t *testing.T) {
	cases := []struct {
		in   ftp.EntryType
		want RemoteKind
	}{
		{ftp.EntryTypeFile, KindFile},
		{ftp.EntryTypeFolder, KindDir},
		{ftp.EntryTypeLink, KindOther},
	}
	for _, tc := range cases {
		if got := kindFromFTP(tc.in); got != tc.want {
			t.Errorf("kindFromFTP(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
