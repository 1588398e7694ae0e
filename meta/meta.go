// meta/meta.go
package meta

// DEFAULT_DEPTH defines the alpha-beta search depth in plies (one ply per faction move).
const DEFAULT_DEPTH = 4

// MAX_TURNS caps the number of turns of a self-play game.
const MAX_TURNS = 200
