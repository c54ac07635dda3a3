package game

// NextPlayerDistribution gives every factor point to the next player, or to
// the sink when there is only one player.
func NextPlayerDistribution() Distribution {
	return Distribution{{Offset: 1, Weight: 1}}
}

// EvenGainDistribution spreads factor points evenly across every player other
// than the mover. A single player has nobody to share with, so it falls back
// to NextPlayerDistribution.
func EvenGainDistribution(numPlayers int) Distribution {
	if numPlayers < 2 {
		return NextPlayerDistribution()
	}
	d := make(Distribution, 0, numPlayers-1)
	for offset := 1; offset < numPlayers; offset++ {
		d = append(d, Share{Offset: offset, Weight: 1})
	}
	return d
}
