package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"
)

func main() {
	debug := flag.BoolP("debug", "d", false, "print out debug information")
	flag.Parse()

	cfg := loadConfig()

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}
	logger, closeLog, err := newLogger(cfg.LogFile, *debug)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	logger.Infof("Updated on %s by %s", time.Now().Format("2006-01-02"), os.Getenv("USER"))

	var creds *Credentials
	if cfg.CredFile != "" {
		creds, err = readCredentials(cfg.CredFile, false)
		if err != nil {
			logger.Errorf("Failed to read credentials: %v", err)
			closeLog()
			os.Exit(1)
		}
		defer creds.Clear()
	}

	factory := getConnectorFactory(cfg.SourceURL)
	if factory == nil {
		logger.Errorf("No connector available for scheme: %s", cfg.SourceURL.Scheme)
		closeLog()
		os.Exit(1)
	}

	// Session setup failures are fatal: no tree was walked, no summary to
	// print.
	conn, err := factory.Create(cfg.SourceURL, creds)
	if err != nil {
		logger.Errorf("%s error: %v", factory.Name(), err)
		closeLog()
		os.Exit(1)
	}

	logger.Debugf("Processing dataset... %s", datasetName)
	m := NewMirror(conn, logger, cfg.Check, cfg.Extension)
	m.PermissionFunc = setGroupAccess(datasetGroup)

	runErr := m.Run(cfg.SourceURL.Path, cfg.LocalDir)
	m.Summary()

	if err := conn.Close(); err != nil {
		logger.Warnf("Failed to close session: %v", err)
	}
	if runErr != nil {
		logger.Errorf("Mirror aborted: %v", runErr)
		closeLog()
		os.Exit(1)
	}
	closeLog()
}
