package pong

// Score limits follow the clock fields each player chases.
const (
	maxHourScore   = 23
	maxMinuteScore = 59
)

// Points is the score change awarded for a goal when the player's score is
// difference behind (positive) or ahead of (negative) their clock field. The
// further apart they are, the bigger the corrective jump, so scores keep
// pulling themselves back to the time of day.
func Points(difference int) int {
	switch {
	case difference > 7:
		return 8
	case difference > 4:
		return 5
	case difference > 2:
		return 3
	case difference > 1:
		return 2
	case difference < -4:
		return -5
	case difference < -2:
		return -3
	case difference < -1:
		return -2
	case difference < 0:
		return -1
	default:
		return 1
	}
}

// Scoreboard holds both players' scores. Player 1 (left) tracks the hour,
// player 2 (right) tracks the minute.
type Scoreboard struct {
	Player1 int
	Player2 int
}

// AwardPlayer1 scores a goal for the left player against the current hour and
// returns the points applied.
func (sb *Scoreboard) AwardPlayer1(hour int) int {
	p := Points(hour - sb.Player1)
	sb.Player1 += p
	if sb.Player1 > maxHourScore {
		sb.Player1 = 0
	}
	return p
}

// AwardPlayer2 scores a goal for the right player against the current minute
// and returns the points applied.
func (sb *Scoreboard) AwardPlayer2(minute int) int {
	p := Points(minute - sb.Player2)
	sb.Player2 += p
	if sb.Player2 > maxMinuteScore {
		sb.Player2 = 0
	}
	return p
}

// Syncing reports whether the board is visibly behind the clock, which the
// renderer announces with a blinking banner.
func (sb Scoreboard) Syncing(tod TimeOfDay) bool {
	return tod.Hour-sb.Player1+tod.Minute-sb.Player2 > 2
}

// InSync reports whether both scores show the clock exactly.
func (sb Scoreboard) InSync(tod TimeOfDay) bool {
	return sb.Player1 == tod.Hour && sb.Player2 == tod.Minute
}
