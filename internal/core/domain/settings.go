package domain

// DefaultProtectedPackages are never proposed for removal during a sync.
// They bootstrap the package manager itself.
var DefaultProtectedPackages = []string{"pip", "setuptools"}

// Settings holds the tool configuration after merging defaults, the settings file and flags.
type Settings struct {
	Python    string   `yaml:"python"`
	Output    string   `yaml:"output"`
	Hashes    bool     `yaml:"hashes"`
	Isolated  bool     `yaml:"isolated"`
	PipArgs   []string `yaml:"pip_args"`
	Protected []string `yaml:"protected"`
}

// DefaultSettings returns the settings used when nothing else is configured.
func DefaultSettings() Settings {
	return Settings{
		Python: DefaultPython,
		Output: DefaultOutputFile,
	}
}

// ProtectedSet builds the set of package keys excluded from removal.
// project is the name of the managed project itself and may be empty.
func ProtectedSet(extra []string, project string) []string {
	names := make([]string, 0, len(DefaultProtectedPackages)+len(extra)+1)
	names = append(names, DefaultProtectedPackages...)
	names = append(names, extra...)
	if project != "" {
		names = append(names, project)
	}
	return names
}
