package schedule

// Difficulty is the difficulty level of an interview question.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// NumQuestions is the fixed length of an interview.
const NumQuestions = 6

// Plan is the fixed difficulty progression for the six questions.
var Plan = [NumQuestions]Difficulty{Easy, Easy, Medium, Medium, Hard, Hard}

// timeLimits maps difficulty to the answer countdown in seconds.
var timeLimits = map[Difficulty]int{
	Easy:   20,
	Medium: 60,
	Hard:   120,
}

// weights maps difficulty to its contribution in the final weighted score.
var weights = map[Difficulty]int{
	Easy:   1,
	Medium: 2,
	Hard:   3,
}

// At returns the scheduled difficulty for question index i (0-based).
// Indexes outside [0, NumQuestions) fall back to Medium.
func At(i int) Difficulty {
	if i < 0 || i >= NumQuestions {
		return Medium
	}
	return Plan[i]
}

// TimeLimit returns the canonical answer time limit in seconds for a
// difficulty. The schedule's limit always wins over any generator-supplied
// value.
func TimeLimit(d Difficulty) int {
	if secs, ok := timeLimits[d]; ok {
		return secs
	}
	return timeLimits[Medium]
}

// Weight returns the scoring weight for a difficulty.
func Weight(d Difficulty) int {
	if w, ok := weights[d]; ok {
		return w
	}
	return weights[Easy]
}

// Valid reports whether d is a known difficulty level.
func Valid(d Difficulty) bool {
	_, ok := timeLimits[d]
	return ok
}
