// Package config resolves command-line flags into the application's startup
// configuration: it applies defaults and coerces raw strings into typed
// values (integers, paths, sysctl sections).
package config
