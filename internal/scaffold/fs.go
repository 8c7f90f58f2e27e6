package scaffold

import "embed"

// scaffoldFS embeds the template sets, one directory per service type.
// The all: prefix picks up dotfile templates such as .gitignore.tmpl.
//
//go:embed all:scaffolds
var scaffoldFS embed.FS
