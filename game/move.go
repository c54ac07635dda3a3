package game

// Turn records what a single TakeTurn did to the board.
type Turn struct {
	Player  int   // the mover
	Card    int   // the card played
	Factors []int // proper divisors of Card collected from the board
	Dead    []int // cards swept because they could never interact again
	Points  int   // factor points distributed after the turn
}
