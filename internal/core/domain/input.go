package domain

// InputKind describes where the requirements to resolve come from.
type InputKind int

const (
	// InputRequirements is a pip requirements file passed with "-r".
	InputRequirements InputKind = iota
	// InputPyProject is a pyproject.toml whose dependencies are passed verbatim.
	InputPyProject
)

// InputSpec is the resolved input handed to the package manager's report command.
type InputSpec struct {
	// Path is the input file.
	Path string

	// Kind selects how Path is passed to the resolver.
	Kind InputKind

	// Requirements holds the dependency strings read from a pyproject.toml.
	// It is empty for requirements files.
	Requirements []string

	// Project is the [project].name of a pyproject.toml, if any.
	Project string
}

// ResolverArgs returns the trailing arguments that select the requirements to resolve.
func (s InputSpec) ResolverArgs() []string {
	if s.Kind == InputRequirements {
		return []string{"-r", s.Path}
	}
	return append([]string(nil), s.Requirements...)
}
