// Package schema embeds the JSON Schema used to validate merged manifests.
package schema

import _ "embed"

//go:embed depwave.schema.json
var Bytes []byte
