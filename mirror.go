package main

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// CheckMode decides whether a file that already exists locally is compared
// against the remote copy before downloading again.
type CheckMode string

const (
	CheckNone  CheckMode = ""       // never re-check existing files
	CheckMDate CheckMode = "mdate"  // compare modification times
	CheckMD5   CheckMode = "md5sum" // compare md5 digests (transfers the file first)
)

// updateSuffix is appended to the temporary sibling an update is streamed
// into before it is renamed over the original.
const updateSuffix = ".1"

// Mirror walks a remote tree in lock-step with a local one and downloads
// whatever is new or stale. One instance per run; not safe for concurrent
// use, and not meant to be.
type Mirror struct {
	conn      Connector
	log       *zap.SugaredLogger
	check     CheckMode
	extension string

	// PermissionFunc, when set, is called with the local path of every
	// successfully downloaded file. Failures are logged, never fatal.
	PermissionFunc func(path string) error

	updatedFiles []string
	newFiles     []string
	errorFiles   []string
}

func NewMirror(conn Connector, log *zap.SugaredLogger, check CheckMode, extension string) *Mirror {
	return &Mirror{
		conn:      conn,
		log:       log,
		check:     check,
		extension: extension,
	}
}

// Run mirrors the remote tree rooted at remoteDir into localDir, creating
// localDir if needed. Per-file transfer failures are recorded and skipped;
// a listing failure aborts the walk and is returned.
func (m *Mirror) Run(remoteDir, localDir string) error {
	m.log.Debugf("check: %q", m.check)
	m.log.Debugf("extension: %q", m.extension)

	if err := os.MkdirAll(localDir, 0755); err != nil {
		return fmt.Errorf("failed to create local dir: %w", err)
	}
	return m.walkDirectory(remoteDir, localDir)
}

// walkDirectory recurses over one directory level. Remote and local paths
// travel together as arguments, so a failure anywhere cannot leave the two
// sides pointing at different levels of the tree.
func (m *Mirror) walkDirectory(remoteDir, localDir string) error {
	entries, err := m.conn.List(remoteDir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.Name == "." || e.Name == ".." {
			continue
		}
		switch e.Kind {
		case KindDir:
			sub := filepath.Join(localDir, e.Name)
			if _, err := os.Stat(sub); os.IsNotExist(err) {
				if err := os.Mkdir(sub, 0755); err != nil {
					return fmt.Errorf("failed to create %s: %w", sub, err)
				}
			}
			m.log.Debugf("entering %s", path.Join(remoteDir, e.Name))
			if err := m.walkDirectory(path.Join(remoteDir, e.Name), sub); err != nil {
				return err
			}
		case KindFile:
			m.handleFile(remoteDir, localDir, e.Name)
		default:
			m.log.Debugf("ignoring %s (not a regular file or directory)", e.Name)
		}
	}
	return nil
}

// handleFile applies the extension filter, then the update-or-skip decision.
func (m *Mirror) handleFile(remoteDir, localDir, filename string) {
	if !strings.HasSuffix(filename, m.extension) {
		return
	}
	m.doFile(remoteDir, localDir, filename)
}

// doFile decides whether filename is new, stale or up to date, and downloads
// it when needed. Every failure on the way degrades to an errorFiles entry;
// the run continues with the next file.
func (m *Mirror) doFile(remoteDir, localDir, filename string) {
	remotePath := path.Join(remoteDir, filename)
	localPath := filepath.Join(localDir, filename)

	update := false
	if _, err := os.Stat(localPath); err == nil {
		switch m.check {
		case CheckMD5:
			update, err = m.checkMD5(remotePath, localPath)
		case CheckMDate:
			update, err = m.checkModTime(remotePath, localPath)
		default:
			return
		}
		if err != nil {
			m.recordError(localPath, filename, err)
			return
		}
		if !update {
			return
		}
		m.log.Infof("file exists to update: %s", filename)
	}

	n, err := m.downloadFile(remotePath, localPath, update)
	if err != nil {
		m.recordError(localPath, filename, err)
		return
	}

	abs, err := filepath.Abs(localPath)
	if err != nil {
		abs = localPath
	}
	if update {
		m.updatedFiles = append(m.updatedFiles, abs)
	} else {
		m.newFiles = append(m.newFiles, abs)
	}
	m.log.Infof("downloaded %s (%s)", filename, humanize.Bytes(uint64(n)))

	if m.PermissionFunc != nil {
		if err := m.PermissionFunc(localPath); err != nil {
			m.log.Warnf("failed to adjust permissions on %s: %v", localPath, err)
		}
	}
}

func (m *Mirror) recordError(localPath, filename string, err error) {
	m.log.Errorf("%s: %v", filename, err)
	m.errorFiles = append(m.errorFiles, fmt.Sprintf("%s: %v", localPath, err))
}

// checkModTime reports whether the local copy is strictly older than the
// remote one. Equal timestamps mean up to date.
func (m *Mirror) checkModTime(remotePath, localPath string) (bool, error) {
	remoteTime, err := m.conn.ModTime(remotePath)
	if err != nil {
		return false, err
	}
	fi, err := os.Stat(localPath)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", localPath, err)
	}
	localTime := fi.ModTime().UTC()

	m.log.Debugf("local mod_date: %s", localTime)
	m.log.Debugf("remote mod_date: %s", remoteTime)
	return localTime.Before(remoteTime), nil
}

// checkMD5 compares md5 digests of the local and remote copies. The remote
// file is transferred in full just to compute its digest, so this is much
// slower than checkModTime; that cost is inherent to the mode.
func (m *Mirror) checkMD5(remotePath, localPath string) (bool, error) {
	r, err := m.conn.Fetch(remotePath)
	if err != nil {
		return false, err
	}
	remoteHash := md5.New()
	_, copyErr := io.Copy(remoteHash, r)
	r.Close()
	if copyErr != nil {
		return false, fmt.Errorf("%w: %v", ErrTransport, copyErr)
	}

	localHash, err := localMD5(localPath)
	if err != nil {
		return false, err
	}

	remoteSum := fmt.Sprintf("%x", remoteHash.Sum(nil))
	m.log.Debugf("local md5: %s", localHash)
	m.log.Debugf("remote md5: %s", remoteSum)
	return localHash != remoteSum, nil
}

// downloadFile streams the remote file to disk and returns the byte count.
// Updates are written to a temporary sibling and renamed over the original
// only after the transfer completed, so the old file stays intact and
// readable until the new one is whole. A failed update removes its
// temporary; a failed new download leaves the partial file behind for the
// next run to overwrite.
func (m *Mirror) downloadFile(remotePath, localPath string, isUpdate bool) (int64, error) {
	target := localPath
	if isUpdate {
		target = localPath + updateSuffix
	}

	m.log.Infof("trying to download file... %s", path.Base(remotePath))

	r, err := m.conn.Fetch(remotePath)
	if err != nil {
		return 0, err
	}

	out, err := os.Create(target)
	if err != nil {
		r.Close()
		return 0, fmt.Errorf("failed to create %s: %w", target, err)
	}

	n, copyErr := io.Copy(out, r)
	closeErr := out.Close()
	r.Close()

	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		if isUpdate {
			os.Remove(target)
		}
		return n, fmt.Errorf("%w: %v", ErrTransport, copyErr)
	}

	if isUpdate {
		if err := os.Rename(target, localPath); err != nil {
			os.Remove(target)
			return n, fmt.Errorf("failed to replace %s: %w", localPath, err)
		}
	}
	return n, nil
}

// Summary logs the updated, new and failed files of this run, in that
// order. Audit output only, nothing reads it back.
func (m *Mirror) Summary() {
	m.log.Info("==========================================")
	m.log.Info("Summary")
	m.log.Info("==========================================")
	m.log.Info("These files were updated: ")
	for _, f := range m.updatedFiles {
		m.log.Info(f)
	}
	m.log.Info("==========================================")
	m.log.Info("These are new files: ")
	for _, f := range m.newFiles {
		m.log.Info(f)
	}
	m.log.Info("==========================================")
	m.log.Info("These files had problems: ")
	for _, f := range m.errorFiles {
		m.log.Info(f)
	}
}
