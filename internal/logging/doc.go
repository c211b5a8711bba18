// Package logging builds the zerolog loggers used across vpnmenu.
//
// An interactive session shares the terminal with the menu, so the default
// destination is a log file; console output is reserved for --debug runs.
// Every session carries a ULID trace ID in its context, and a hook stamps
// that ID onto each event logged with .Ctx(ctx).
//
// Components obtain their logger from the context:
//
//	log := logging.FromContext(ctx)
//	log.Debug().Ctx(ctx).Str("component", "runner").Msg("spawning client")
package logging
