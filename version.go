package hscramble

import _ "embed"

// Version is the release version of hscramble.
//
//go:embed VERSION
var Version string
