package main

import "embed"

// configFS holds the tuning and levels shipped with the binary
//
//go:embed configs
var configFS embed.FS
