// meta/meta.go
package meta

// MAX_CARD_VALUE is the default board size: cards 1..MAX_CARD_VALUE.
const MAX_CARD_VALUE = 10

// NUM_PLAYERS is the default player count.
const NUM_PLAYERS = 1

// INCLUDE_SINK defines whether factor points past the last seat go to the sink.
const INCLUDE_SINK = true

// EVEN_GAIN selects the even-gain distribution instead of next-player.
const EVEN_GAIN = false

// DISCARD_UNPLAYABLE drops dead cards without scoring them.
const DISCARD_UNPLAYABLE = false

// PROGRESS_EVERY logs search progress every N leaves, 0 disables it.
const PROGRESS_EVERY = 0
