package domain

import "go.trai.ch/zerr"

var (
	// ErrReportDecodeFailed is returned when the resolution report is not valid JSON.
	ErrReportDecodeFailed = zerr.New("failed to decode resolution report")

	// ErrMalformedReport is returned when a report entry is missing a required field.
	ErrMalformedReport = zerr.New("malformed resolution report entry")

	// ErrDuplicatePackage is returned when a report lists the same package twice.
	ErrDuplicatePackage = zerr.New("duplicate package in resolution report")

	// ErrInstalledDecodeFailed is returned when the installed package listing cannot be decoded.
	ErrInstalledDecodeFailed = zerr.New("failed to decode installed package list")

	// ErrPackageManagerFailed is returned when a package manager command fails.
	ErrPackageManagerFailed = zerr.New("package manager command failed")

	// ErrPipTooOld is returned when the interpreter's pip cannot produce installation reports.
	ErrPipTooOld = zerr.New("pip >= 22.2 required, please update pip and try again")

	// ErrPipVersionUnparsable is returned when the pip version output has an unexpected shape.
	ErrPipVersionUnparsable = zerr.New("failed to parse pip version")

	// ErrSyncFailed is returned when applying a pin set to an environment fails.
	ErrSyncFailed = zerr.New("failed to sync environment")

	// ErrNoInputFile is returned when no input file was given and no default exists.
	ErrNoInputFile = zerr.New("no requirements.in or pyproject.toml file found in current directory, please specify input file")

	// ErrNotAFile is returned when the input path is not a regular file.
	ErrNotAFile = zerr.New("not a file")

	// ErrDependencyRequiresTOML is returned when an optional dependency is requested for a non-TOML input.
	ErrDependencyRequiresTOML = zerr.New("optional dependencies can only be specified if the input file is pyproject.toml")

	// ErrMissingProjectSection is returned when a pyproject.toml has no [project] table.
	ErrMissingProjectSection = zerr.New("TOML file does not contain a 'project' section")

	// ErrNoOptionalDependencies is returned when a pyproject.toml defines no optional dependencies.
	ErrNoOptionalDependencies = zerr.New("no optional dependencies defined in TOML file")

	// ErrOptionalDependencyNotFound is returned when the requested optional dependency group does not exist.
	ErrOptionalDependencyNotFound = zerr.New("optional dependency not found in TOML file")

	// ErrIsolatedSync is returned when an isolated scratch environment is requested for a sync.
	ErrIsolatedSync = zerr.New("--isolated cannot be combined with sync")

	// ErrConfigReadFailed is returned when a config or input file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a config or input file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrOutputWriteFailed is returned when the pin file cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write requirements file")

	// ErrStateCreateFailed is returned when the pin state directory cannot be created.
	ErrStateCreateFailed = zerr.New("failed to create pin state directory")

	// ErrStateReadFailed is returned when the pin state cannot be read.
	ErrStateReadFailed = zerr.New("failed to read pin state")

	// ErrStateUnmarshalFailed is returned when the pin state cannot be unmarshaled.
	ErrStateUnmarshalFailed = zerr.New("failed to unmarshal pin state")

	// ErrStateMarshalFailed is returned when the pin state cannot be marshaled.
	ErrStateMarshalFailed = zerr.New("failed to marshal pin state")

	// ErrStateWriteFailed is returned when the pin state cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write pin state")

	// ErrScratchEnvFailed is returned when a temporary virtual environment cannot be created.
	ErrScratchEnvFailed = zerr.New("failed to create scratch environment")

	// ErrInvalidPipArgs is returned when --pip-args cannot be split into words.
	ErrInvalidPipArgs = zerr.New("invalid --pip-args")

	// ErrWatchFailed is returned when the input files cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch input files")
)
