// meta/meta.go
package meta

// SEARCH_DEPTH is the default lookahead depth for the bundled drivers.
// Nine plies covers a 3x3 board completely.
const SEARCH_DEPTH = 9

// MAX_TURNS caps the number of turns in a local match.
const MAX_TURNS = 300
