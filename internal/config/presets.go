package config

// Presets are ready-made configurations for the bundled demo scenarios,
// keyed by model then name.
var presets = map[string]map[string]func() *Config{
	ModelSimple: {
		"small": func() *Config {
			cfg := DefaultConfig()
			cfg.InitState.Theta = 0.2
			return cfg
		},
		"damped": func() *Config {
			cfg := DefaultConfig()
			cfg.InitState = InitStateConfig{Theta: 0, Omega: 1}
			cfg.Physical.Damping = 2
			cfg.T1 = 20
			return cfg
		},
		"freefall": func() *Config {
			cfg := DefaultConfig()
			cfg.InitState.Theta = 1.5707963267948966
			cfg.Pivot.Preset = "freefall"
			return cfg
		},
		"step": func() *Config {
			cfg := DefaultConfig()
			cfg.InitState = InitStateConfig{}
			cfg.Physical.Damping = 1
			cfg.Pivot.Preset = "step"
			cfg.T0, cfg.T1 = -1, 3
			return cfg
		},
		"shake": func() *Config {
			cfg := DefaultConfig()
			cfg.InitState = InitStateConfig{Theta: 0.1}
			cfg.Pivot.Preset = "shake"
			cfg.Pivot.Amplitude = 0.2
			cfg.Pivot.Frequency = 2
			return cfg
		},
	},
	ModelDouble: {
		"chaotic": func() *Config {
			cfg := DefaultConfig()
			cfg.Model = ModelDouble
			cfg.InitState = InitStateConfig{Theta: 2, Theta2: 2.5}
			return cfg
		},
		"freefall": func() *Config {
			cfg := DefaultConfig()
			cfg.Model = ModelDouble
			cfg.InitState = InitStateConfig{Theta: 1.5707963267948966, Theta2: 1.5707963267948966}
			cfg.Pivot.Preset = "freefall"
			return cfg
		},
	},
}

// GetPreset returns a named preset configuration, or nil when the model or
// name is unknown.
func GetPreset(model, name string) *Config {
	group, ok := presets[model]
	if !ok {
		return nil
	}
	build, ok := group[name]
	if !ok {
		return nil
	}
	return build()
}

// ListPresets returns the preset names for a model, or nil for unknown
// models.
func ListPresets(model string) []string {
	group, ok := presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
