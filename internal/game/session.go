package game

// Session is the cross-round state of one player: cumulative score and the
// active difficulty. It lives as long as its Engine; Reset starts over.
type Session struct {
	score      int
	difficulty Difficulty
	initial    Difficulty
}

// NewSession returns a zero-score session on difficulty d.
func NewSession(d Difficulty) *Session {
	return &Session{difficulty: d, initial: d}
}

// Score is the cumulative score.
func (s *Session) Score() int { return s.score }

// Difficulty is the difficulty of the current (or next) round.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Reset clears the score and restores the session's starting difficulty.
func (s *Session) Reset() {
	s.score = 0
	s.difficulty = s.initial
}

func (s *Session) reward() { s.score += WinReward }
