package assessment

import "fmt"

// Option is a single selectable answer on a five-point ordinal scale.
// Value 1 is the lowest frequency/amount, 5 the highest.
type Option struct {
	Value int
	Label string
}

// Question is a single assessment item. Questions are immutable and seeded
// at compile time; see bank.go.
type Question struct {
	ID       int
	Prompt   string
	Options  []Option
	Category Category
	Section  string
}

// HasValue reports whether v is one of the question's option values.
func (q Question) HasValue(v int) bool {
	for _, opt := range q.Options {
		if opt.Value == v {
			return true
		}
	}
	return false
}

// AnswerSet maps question id → chosen option value. Built one entry at a
// time as the respondent works through the bank.
type AnswerSet map[int]int

// Record stores value under the given question id after checking that the
// question exists and the value is one of its option values.
func (a AnswerSet) Record(questionID, value int) error {
	q, ok := ByID(questionID)
	if !ok {
		return fmt.Errorf("unknown question id %d", questionID)
	}
	if !q.HasValue(value) {
		return fmt.Errorf("value %d is not an option for question %d", value, questionID)
	}
	a[questionID] = value
	return nil
}
