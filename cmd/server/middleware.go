package main

import "github.com/JaimeStill/discvault/pkg/middleware"

// buildMiddleware creates the server-wide stack applied ahead of module routing.
// Request ids are assigned here so every module and native endpoint shares them.
func buildMiddleware() middleware.System {
	mw := middleware.New()
	mw.Use(middleware.RequestID())
	return mw
}
