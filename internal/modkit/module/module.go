// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "meteopage/internal/platform/net/http"
)

// Module defines the minimal contract used by modkit
// keep this sibling to avoid import knots when a module also exports its own ports type
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// PageModule is a Module that also serves html outside the API scope
type PageModule interface {
	Module
	MountPages(r phttp.Router)
}

// Pages returns the modules in mods that serve html, order kept
func Pages(mods []Module) []PageModule {
	var out []PageModule
	for _, m := range mods {
		if pm, ok := m.(PageModule); ok {
			out = append(out, pm)
		}
	}
	return out
}
