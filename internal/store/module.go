package store

import "go.uber.org/fx"

// Module provides the store to the fx container.
var Module = fx.Provide(New)
