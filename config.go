package main

import (
	"net/url"
	"os"
	"path/filepath"
)

const (
	// Base directory of the reference climate data collection; overridable
	// for testing against another tree.
	rootDirEnv     = "AUSREFDIR"
	defaultRootDir = "/g/data/jt48/aus-ref-clim-data-nci"

	// Optional path to a credentials file (username on line 1, password on
	// line 2). Unset means anonymous login, which is what the IPSL server
	// expects.
	credFileEnv = "FROGS_CREDENTIALS"

	sourceHost  = "ftp.climserv.ipsl.polytechnique.fr"
	remoteRoot  = "/FROGs/1DD_V1"
	datasetName = "1DD_V1"

	// Group that gets read access to downloaded files.
	datasetGroup = "ia39"
)

type Config struct {
	SourceURL *url.URL
	LocalDir  string
	LogFile   string
	CredFile  string
	Check     CheckMode
	Extension string
}

// loadConfig derives the run configuration from the environment. Host,
// dataset and check mode are fixed per deployment, not flags.
func loadConfig() *Config {
	root := os.Getenv(rootDirEnv)
	if root == "" {
		root = defaultRootDir
	}
	return &Config{
		SourceURL: &url.URL{Scheme: "ftp", Host: sourceHost, Path: remoteRoot},
		LocalDir:  filepath.Join(root, "frogs", "data", datasetName),
		LogFile:   filepath.Join(root, "frogs", "code", "update_log.txt"),
		CredFile:  os.Getenv(credFileEnv),
		Check:     CheckMDate,
		Extension: ".nc",
	}
}
