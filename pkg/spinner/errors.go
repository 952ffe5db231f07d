package spinner

// ConfigError reports an invalid spinner configuration. It is only
// returned at construction time; the redraw loop never surfaces errors
// to the caller.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "spinner: " + e.Reason
}
