// ABOUTME: Embeds HTML templates, static assets and markdown content
// ABOUTME: Provides the filesystems used by the web handlers at runtime

package web

import "embed"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

//go:embed content/*.md
var contentFS embed.FS
