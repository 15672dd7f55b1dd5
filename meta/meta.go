package meta

import "time"

// NumGames defines the number of games per tournament matchup.
const NumGames = 65

// TimeLimit defines the time an agent has for each move.
const TimeLimit = 1000 * time.Millisecond

// DefaultSeed defines the seed of random agents when none is given.
const DefaultSeed = 1

// OutDir defines where tournament records are written.
const OutDir = "experiments"
