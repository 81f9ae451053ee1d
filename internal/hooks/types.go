package hooks

// Config is the top-level configuration for hooks loaded from .wheelr.hooks.yml.
type Config struct {
	Version int         `yaml:"version"`
	Hooks   HooksConfig `yaml:"hooks"`
}

// HooksConfig contains all hook configurations.
type HooksConfig struct {
	OnAccept []*HookConfig `yaml:"on_accept"`
	OnCancel []*HookConfig `yaml:"on_cancel"`
}

// HookConfig defines a single hook's configuration. Pickers limits the hook
// to the named pickers; empty means every picker.
type HookConfig struct {
	Command string   `yaml:"command"`
	Timeout int      `yaml:"timeout"` // seconds, default 30
	Pickers []string `yaml:"pickers"`
}

// DefaultTimeout is the default timeout for hook execution in seconds.
const DefaultTimeout = 30
