// meta/meta.go
package meta

// DEPTH is the number of plies the automated side searches per turn.
const DEPTH = 4

// MAX_DEPTH caps the depth a remote client may request. Search is full width
// and cannot be cancelled.
const MAX_DEPTH = 5

// MAX_TURNS bounds a headless game; the rules have no other ending.
const MAX_TURNS = 200

// GAMES is the number of games per experiment configuration.
const GAMES = 5

// SEED seeds the random agents and tie-breaks of experiments.
const SEED = 1
