package modkit

import "meteopage/internal/modkit/module"

// Module is the surface every web module satisfies: mount routes, expose ports, report a name
// it aliases module.Module so leaf packages can depend on the contract without modkit
type Module = module.Module
