// Package data embeds the catalogue shipped with the site.
package data

import _ "embed"

//go:embed movies.json
var Movies []byte
