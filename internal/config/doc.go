// Package config loads clikit settings and stores the saved profile.
//
// Settings come from the environment (CLIKIT_PROFILE, CLIKIT_LOG_LEVEL,
// CLIKIT_LOG_FORMAT) with built-in defaults. The profile is the set of
// answers collected by "clikit configure", kept as JSON at
// $XDG_CONFIG_HOME/clikit/profile.json unless CLIKIT_PROFILE points
// elsewhere.
package config
