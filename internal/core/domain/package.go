package domain

import "strings"

// PackageRecord is one pinned package from a resolution report.
//
// Records are built once by NewPackageRecord and are read-only afterwards.
type PackageRecord struct {
	name        string
	version     string
	requested   bool
	contentHash string
}

// NewPackageRecord creates a PackageRecord.
// contentHash is in the "<algorithm>:<hex-digest>" form and may be empty.
func NewPackageRecord(name, version string, requested bool, contentHash string) PackageRecord {
	return PackageRecord{
		name:        name,
		version:     version,
		requested:   requested,
		contentHash: contentHash,
	}
}

// Name returns the distribution name as reported by the resolver.
func (p PackageRecord) Name() string {
	return p.name
}

// Version returns the exact pinned version.
func (p PackageRecord) Version() string {
	return p.version
}

// Requested reports whether the package was named by the input (top-level).
func (p PackageRecord) Requested() bool {
	return p.requested
}

// ContentHash returns the artifact hash, or "" if none was resolved.
func (p PackageRecord) ContentHash() string {
	return p.contentHash
}

// Key returns the case-insensitive identity of the package.
func (p PackageRecord) Key() string {
	return PackageKey(p.name)
}

// Pin returns the "name==version" requirement string.
func (p PackageRecord) Pin() string {
	return p.name + "==" + p.version
}

// InstalledPackage is a package currently present in a target environment.
type InstalledPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Key returns the case-insensitive identity of the package.
func (p InstalledPackage) Key() string {
	return PackageKey(p.Name)
}

// PackageKey normalizes a package name for identity comparisons.
func PackageKey(name string) string {
	return strings.ToLower(name)
}
