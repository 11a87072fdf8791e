package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal workspace directory.
	StateDirName = ".isofreeze"

	// PinStateDirName is the name of the pin fingerprint directory.
	PinStateDirName = "state"

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = "isofreeze.yaml"

	// RequirementsInFileName is the preferred default input file.
	RequirementsInFileName = "requirements.in"

	// PyProjectFileName is the fallback default input file.
	PyProjectFileName = "pyproject.toml"

	// DefaultOutputFile is the pin file written when no output is configured.
	DefaultOutputFile = "requirements.txt"

	// DefaultPython is the interpreter used when none is configured.
	DefaultPython = "python3"

	// ScratchEnvPrefix prefixes temporary virtual environment directories.
	ScratchEnvPrefix = "isofreeze-venv-"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultPinStatePath returns the default path for pin fingerprints.
// It joins .isofreeze and state.
func DefaultPinStatePath() string {
	return filepath.Join(StateDirName, PinStateDirName)
}
