// Package config loads, normalizes, and validates the subtext TOML
// configuration.
//
// Load resolves the effective config path (explicit flag, then
// ~/.config/subtext/config.toml, then ./subtext.toml), decodes it over the
// repository defaults, expands home-relative paths, and validates ranges so
// downstream code can trust the values it receives. CreateSample writes the
// embedded annotated sample for `subtext config init`.
package config
