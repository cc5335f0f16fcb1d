package main

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"os/user"
	"strconv"
)

func localMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// setGroupAccess returns a hook that hands downloaded files to the project
// group: read bits for the group plus ownership. Used as Mirror.PermissionFunc
// so the engine itself stays out of the permissions business.
func setGroupAccess(group string) func(path string) error {
	return func(path string) error {
		fi, err := os.Stat(path)
		if err != nil {
			return err
		}
		if err := os.Chmod(path, fi.Mode().Perm()|0040); err != nil {
			return err
		}

		g, err := user.LookupGroup(group)
		if err != nil {
			return fmt.Errorf("unknown group %s: %w", group, err)
		}
		gid, err := strconv.Atoi(g.Gid)
		if err != nil {
			return fmt.Errorf("bad gid for group %s: %w", group, err)
		}
		return os.Chown(path, -1, gid)
	}
}
