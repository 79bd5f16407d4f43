// Package config loads server, database, auth and schema settings from
// defaults, an optional config.yaml, a .env file and the environment, and
// validates them before the server starts.
package config
