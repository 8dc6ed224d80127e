// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(duration_ms).

# CORS Middleware

Enable cross-origin requests for the scoreboard pages:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.RawJSONResponse(w, http.StatusOK, storedPayload)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

RawJSONResponse writes an already-encoded payload verbatim, used when
serving stored records back to the page.

Parse JSON request bodies:

	var req models.SaveResponse
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
