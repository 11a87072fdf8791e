package pip

import (
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/zerr"
)

// MinimumVersion is the first pip release able to write installation reports.
const MinimumVersion = "22.2"

// ValidateVersion checks a "pip X.Y from <path> (python Z)" banner against MinimumVersion.
// Ordering follows PEP 440, so pre-releases sort before their final release.
func ValidateVersion(banner string) error {
	version, err := ParseVersion(banner)
	if err != nil {
		return err
	}

	minimum, err := pep440.Parse(MinimumVersion)
	if err != nil {
		return zerr.Wrap(err, domain.ErrPipVersionUnparsable.Error())
	}
	if version.LessThan(minimum) {
		return zerr.With(domain.ErrPipTooOld, "version", version.String())
	}
	return nil
}

// ParseVersion extracts the PEP 440 version from a pip version banner.
func ParseVersion(banner string) (pep440.Version, error) {
	fields := strings.Fields(banner)
	if len(fields) < 2 || fields[0] != "pip" {
		return pep440.Version{}, zerr.With(domain.ErrPipVersionUnparsable, "output", strings.TrimSpace(banner))
	}

	version, err := pep440.Parse(fields[1])
	if err != nil {
		return pep440.Version{}, zerr.With(zerr.Wrap(err, domain.ErrPipVersionUnparsable.Error()), "output", fields[1])
	}
	return version, nil
}
