// Package assets holds the bundled default dataset shown when no CIK is requested.
package assets

import "embed"

// DataFile is the name of the default dataset inside FS.
const DataFile = "data.json"

// FS contains DataFile.
//
//go:embed data.json
var FS embed.FS
