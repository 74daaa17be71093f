package static

import "embed"

//go:embed logo.svg app.css
var FS embed.FS
