package configs

// Configurable is a value read from a fixed path of the configuration.
type Configurable interface {
	ConfigPath() string
}

// Get reads the first configured value at T's path, or the zero T.
func Get[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigPath())
}
