package domain

// Config mirrors ~/.apparatus/config.yaml.
type Config struct {
	ConfigFormatVersion string             `yaml:"config_format_version"`
	Actuator            ActuatorSettings   `yaml:"actuator"`
	Screenshots         ScreenshotSettings `yaml:"screenshots"`
	Server              ServerSettings     `yaml:"server"`
}

// ActuatorSettings selects and tunes the automation backend.
type ActuatorSettings struct {
	// Mode is auto, simulated or driver.
	Mode string `yaml:"mode"`
	// PauseMS is the settle delay applied after each driver input action.
	PauseMS int `yaml:"pause_ms"`
	// Screen sizes the simulated display; the driver ignores it.
	Screen ScreenSettings `yaml:"screen"`
}

// ScreenSettings holds display dimensions in pixels.
type ScreenSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScreenshotSettings controls where capture artifacts land.
type ScreenshotSettings struct {
	Dir string `yaml:"dir"`
}

// ServerSettings configures the web control panel.
type ServerSettings struct {
	Addr            string `yaml:"addr"`
	AllowAllOrigins bool   `yaml:"allow_all_origins"`
}

// Actuator modes.
const (
	ActuatorModeAuto      = "auto"
	ActuatorModeSimulated = "simulated"
	ActuatorModeDriver    = "driver"
)
