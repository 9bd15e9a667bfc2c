// Package config resolves run settings from layered sources.
//
// Precedence, highest first:
//  1. command-line flags (applied by the cli package)
//  2. .env files given with --env-file, using MSGPREP_* keys; later files win
//  3. the yaml file given with --config, or msgprep.yaml in the working directory
//  4. built-in defaults
//
// The process environment is never consulted.
package config
