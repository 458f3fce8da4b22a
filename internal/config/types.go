package config

// Config holds defaults for the command-line flags, read from an optional
// YAML file. Zero values mean "not set" and leave the built-in default alone.
//   - Pack: manifest path; relative paths resolve against the config file's directory.
//   - Main: explicit main entry to write when the manifest has none.
//   - Project: project directory used to derive the default main entry (relative
//     paths resolve like Pack).
//   - Indent: spaces per nesting level when writing the manifest.
type Config struct {
	Pack    string `yaml:"pack"`
	Main    string `yaml:"main"`
	Project string `yaml:"project"`
	Indent  *int   `yaml:"indent"`
}
