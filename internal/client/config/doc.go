// Package config loads runtime configuration for the bookstall client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file
//     (BOOKSTALL_API_URL, BOOKSTALL_SESSION_DB, BOOKSTALL_TIMEOUT).
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override everything.
//
// Supported flags
//
//	-a string   base URL of the bookstore API (e.g. https://host/api)
//	-d string   path to the local session database
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so intervals can be strings like
// "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://bookstore.example.com/api",
//	  "session_db_path": "bookstall.db",
//	  "request_timeout": "10s"
//	}
package config
