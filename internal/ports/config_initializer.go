package ports

// ConfigInitializer writes a default configuration under root.
type ConfigInitializer interface {
	Init(root string, force bool) error
}
