package migration

import "context"

// Migrators maps a version name to its migrator. The migrate command looks
// the requested version up here.
var Migrators = map[string]func(context.Context) error{
	"auto": AutoMigrate,
}
