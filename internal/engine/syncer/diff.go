package syncer

import "go.trai.ch/isofreeze/internal/core/domain"

// Diff returns the names of installed packages that are absent from desired.
//
// Names are compared case-insensitively. Packages in protected are never returned.
// The result keeps the installed order; nil means nothing needs to be removed.
func Diff(installed []domain.InstalledPackage, desired []domain.PackageRecord, protected []string) []string {
	keep := make(map[string]struct{}, len(desired)+len(protected))
	for _, rec := range desired {
		keep[rec.Key()] = struct{}{}
	}
	for _, name := range protected {
		keep[domain.PackageKey(name)] = struct{}{}
	}

	var remove []string
	for _, pkg := range installed {
		if _, ok := keep[pkg.Key()]; ok {
			continue
		}
		remove = append(remove, pkg.Name)
	}
	return remove
}

// Requirements formats records as "name==version" install arguments, in order.
func Requirements(records []domain.PackageRecord) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Pin())
	}
	return out
}
