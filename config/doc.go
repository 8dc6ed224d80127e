// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package config handles configuration parsing for the scoreboard store.

# Configuration

Load returns a Config struct with all settings:

	cfg, err := config.Load(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabasePath: SQLite database file (default: scoreboard.db)
  - LogRequests: Per-request logging toggle

# Sources

Values are resolved in order: a .env file in the working directory,
environment variables (PORT, DATABASE_PATH, LOG_REQUESTS), then CLI
flags (-p, -d). CLI flags take precedence.

# Validation

Load returns an error for ports outside 1-65535 or an empty database
path.
*/
package config
