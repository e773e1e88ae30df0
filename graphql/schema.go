package graphql

import (
	_ "embed"
)

//go:embed schema.graphqls
var Schema string
