package config

import "os"

const (
	// EnvAppBasePath overrides the SPA shell mount path.
	EnvAppBasePath = "APP_BASE_PATH"

	// EnvAppThemeFile overrides the theme token file.
	EnvAppThemeFile = "APP_THEME_FILE"
)

// AppConfig configures the SPA shell module.
type AppConfig struct {
	BasePath string `toml:"base_path"`
	// ThemeFile is a TOML theme token file merged over the built-in defaults.
	// Empty uses the defaults as-is.
	ThemeFile string `toml:"theme_file"`
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppThemeFile); v != "" {
		c.ThemeFile = v
	}
	return validateBasePath(c.BasePath)
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.ThemeFile != "" {
		c.ThemeFile = overlay.ThemeFile
	}
}
