// Package appconfig retrieves feature ruleset snapshots from an
// AppConfig-compatible local configuration agent.
//
// The agent runs as a sidecar and serves the currently deployed
// configuration document at
//
//	GET {endpoint}/applications/{app}/environments/{env}/configurations/{profile}
//
// together with a Configuration-Version header identifying the snapshot.
// The agent owns caching and atomic publication; this package only performs
// a bounded-timeout fetch per call and parses the body into a
// flagrules.Ruleset.
//
// The Source interface decouples consumers from the transport: production
// code uses Client, tests use StaticSource.
package appconfig
