// Package input reads integer sequences from files and streams.
//
// Decoder understands plain text, JSON, YAML and TOML. Watcher follows a
// single file and re-decodes it whenever it is written.
package input
