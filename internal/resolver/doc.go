// Package resolver implements the variable resolution engine for envseek.
//
// A variable is resolved by consulting one or more backends. Three backends
// exist:
//
//   - file: the project's .env file, re-read and re-parsed on every lookup
//   - system: the process's inherited environment table
//   - input: an interactive prompt on the terminal
//
// Which backends are consulted, and in what order, is chosen by a SearchType
// selector. The single-backend selectors (File, System, Input) consult exactly
// that backend and return its result unchanged. The All selector runs the
// fallback chain file -> system -> input and returns the first success; a
// NotFound or ReadError from an earlier backend falls through to the next one.
//
// # Failure Reporting
//
// Failures are typed so callers can tell the difference between "the backend
// worked but the key is absent" (NotFoundError), "the env file could not be
// opened" (ReadError), "a file line is malformed" (ParseError, strict mode
// only), and "the terminal read failed" (IOError). When the All chain is
// exhausted the caller receives a ResolutionError carrying every per-backend
// cause in attempt order.
//
// # Statelessness
//
// Nothing is cached between calls. Each lookup re-opens the env file and
// re-reads the environment, so external edits are observed immediately. The
// file and system backends hold no mutable state; the input backend only
// buffers its reader between prompts.
package resolver
