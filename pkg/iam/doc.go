// Package iam holds identity concerns shared by the HTTP surface.
//
// Tokens are issued by the platform's login service; this module only
// validates them. An access token carries the user id, the platform session
// id (sid) and the caller's scopes. The auth middleware turns a valid token
// into a *kernel.AuthContext stored in fiber locals:
//
//	app.Post("/api/v1/journals/:journal/submissions/:id/submit",
//		mw.Authenticate(),
//		mw.RequireScope(scopes.SubmissionsSubmit),
//		handler.Submit)
//
// Handlers read it back with auth.FromFiber(c).
package iam
