// Package configs manages the scaffold configuration for liteend.
//
// Configuration is optional and stored in TOML at
// <user config dir>/liteend/config.toml (for example
// ~/.config/liteend/config.toml on Linux). When the file does not exist
// the built-in defaults are used, which scaffold from the LiteEnd template:
//
//	template_url     = "https://github.com/uxname/liteend.git"
//	install_command  = "npm install --legacy-peer-deps"
//	generate_command = "npm run db:gen"
//	sample_file      = ".env.sample"
//	env_file         = ".env"
//	secret_fields    = ["SALT", "LOGS_ADMIN_PANEL_PASSWORD", "DATABASE_PASSWORD"]
//	secret_length    = 64
//
// Fields left out of the file keep their defaults.
//
// # Settings
//
// UserLiteendSettings holds the resolved config directory. Tests replace
// it to point at a temporary directory.
package configs
