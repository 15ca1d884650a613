package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ini/ini"
)

const defaultConfigFile = ".log-find-time.ini"

type config struct {
	Format    string
	Delimiter string
	Target    string
	Encoding  string
	Verbose   bool
}

func loadConfig(filepath string) (*config, error) {
	cfg := &config{
		Format:    "%Y-%m-%d %H:%M:%S",
		Delimiter: " - ",
	}

	// Check if config file exists
	if _, err := os.Stat(filepath); err == nil {
		iniFile, err := ini.Load(filepath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}

		// Search section
		searchSection := iniFile.Section("search")
		cfg.Format = searchSection.Key("format").MustString(cfg.Format)
		cfg.Delimiter = searchSection.Key("delimiter").MustString(cfg.Delimiter)
		cfg.Target = searchSection.Key("target").String()
		cfg.Encoding = searchSection.Key("encoding").String()

		// Log section
		logSection := iniFile.Section("log")
		cfg.Verbose = logSection.Key("verbose").MustBool(cfg.Verbose)
	}

	return cfg, nil
}

// getDefaultConfigPath returns the path to the default config file in the user's home directory
func getDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfigFile
	}
	return filepath.Join(homeDir, defaultConfigFile)
}
