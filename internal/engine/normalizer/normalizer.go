// Package normalizer turns a pip installation report into package records.
package normalizer

import (
	"encoding/json"
	"strings"

	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/zerr"
)

// report mirrors the parts of `pip install --report` output that are consumed.
// Pointer fields distinguish absent keys from zero values.
type report struct {
	Install []installEntry `json:"install"`
}

type installEntry struct {
	Metadata     *metadata     `json:"metadata"`
	Requested    *bool         `json:"requested"`
	DownloadInfo *downloadInfo `json:"download_info"`
}

type metadata struct {
	Name    *string `json:"name"`
	Version *string `json:"version"`
}

type downloadInfo struct {
	ArchiveInfo *archiveInfo `json:"archive_info"`
}

type archiveInfo struct {
	Hash *string `json:"hash"`
}

// Normalize decodes a raw report and returns its install entries as records.
//
// found is false when the report has no install entries, meaning there is nothing to pin.
// Any malformed entry fails the whole report; no partial records are returned.
func Normalize(data []byte) (records []domain.PackageRecord, found bool, err error) {
	var r report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, false, zerr.Wrap(err, domain.ErrReportDecodeFailed.Error())
	}
	return fromReport(&r)
}

func fromReport(r *report) ([]domain.PackageRecord, bool, error) {
	if len(r.Install) == 0 {
		return nil, false, nil
	}

	records := make([]domain.PackageRecord, 0, len(r.Install))
	seen := make(map[string]int, len(r.Install))

	for i := range r.Install {
		rec, err := toRecord(&r.Install[i])
		if err != nil {
			return nil, false, zerr.With(err, "index", i)
		}

		if first, dup := seen[rec.Key()]; dup {
			err := zerr.With(domain.ErrDuplicatePackage, "package", rec.Name())
			err = zerr.With(err, "first_index", first)
			return nil, false, zerr.With(err, "index", i)
		}
		seen[rec.Key()] = i

		records = append(records, rec)
	}

	return records, true, nil
}

func toRecord(e *installEntry) (domain.PackageRecord, error) {
	switch {
	case e.Metadata == nil:
		return domain.PackageRecord{}, missing("metadata")
	case e.Metadata.Name == nil || *e.Metadata.Name == "":
		return domain.PackageRecord{}, missing("metadata.name")
	case e.Metadata.Version == nil || *e.Metadata.Version == "":
		return domain.PackageRecord{}, missing("metadata.version")
	case e.Requested == nil:
		return domain.PackageRecord{}, missing("requested")
	case e.DownloadInfo == nil:
		return domain.PackageRecord{}, missing("download_info")
	case e.DownloadInfo.ArchiveInfo == nil:
		return domain.PackageRecord{}, missing("download_info.archive_info")
	case e.DownloadInfo.ArchiveInfo.Hash == nil:
		return domain.PackageRecord{}, missing("download_info.archive_info.hash")
	}

	hash, err := TranslateHash(*e.DownloadInfo.ArchiveInfo.Hash)
	if err != nil {
		return domain.PackageRecord{}, zerr.With(err, "package", *e.Metadata.Name)
	}

	return domain.NewPackageRecord(*e.Metadata.Name, *e.Metadata.Version, *e.Requested, hash), nil
}

// TranslateHash rewrites a report hash "<algorithm>=<digest>" into the
// "<algorithm>:<digest>" form accepted by `pip install --hash`.
func TranslateHash(raw string) (string, error) {
	algorithm, digest, ok := strings.Cut(raw, "=")
	if !ok || algorithm == "" || digest == "" {
		err := zerr.With(domain.ErrMalformedReport, "field", "download_info.archive_info.hash")
		return "", zerr.With(err, "hash", raw)
	}
	return algorithm + ":" + digest, nil
}

func missing(field string) error {
	return zerr.With(domain.ErrMalformedReport, "field", field)
}
