package config

import (
	"os"
	"path/filepath"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/constants"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
)

// GlobalConfigDir returns the path to the global configuration directory.
// This is typically ~/.dataquality on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.AppHome), nil
}

// ProjectConfigDir returns the relative path to the project configuration
// directory. This is always .dataquality relative to the working directory.
func ProjectConfigDir() string {
	return constants.AppHome
}

// GlobalConfigPath returns the full path to the global configuration file.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "get global config path")
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// ProjectConfigPath returns the relative path to the project configuration file.
func ProjectConfigPath() string {
	return filepath.Join(ProjectConfigDir(), constants.ConfigFileName)
}

// GlobalCurrenciesPath returns the full path to the global approved-currency file.
func GlobalCurrenciesPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "get global currencies path")
	}
	return filepath.Join(dir, constants.CurrenciesFileName), nil
}

// ProjectCurrenciesPath returns the relative path to the project
// approved-currency file.
func ProjectCurrenciesPath() string {
	return filepath.Join(ProjectConfigDir(), constants.CurrenciesFileName)
}

// GlobalLogsDir returns the directory where rotating log files are written.
func GlobalLogsDir() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "get logs dir")
	}
	return filepath.Join(dir, constants.LogsDir), nil
}
