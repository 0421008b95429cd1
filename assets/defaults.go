package assets

import (
	"embed"
)

// DefaultConfigYAML contains the embedded default configuration template.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// WebFS contains the control panel page template and its static files.
//
//go:embed web
var WebFS embed.FS
