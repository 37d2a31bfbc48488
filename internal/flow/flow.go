// Package flow sequences the assessment: one question at a time, strictly
// forward, scoring on the final answer. It is UI-free so the state machine
// can be tested in isolation from rendering.
package flow

import (
	"fmt"

	"github.com/mindfulme/mindful/internal/assessment"
	"github.com/mindfulme/mindful/internal/scoring"
)

// State identifies where the controller is in its lifecycle.
type State int

const (
	StateInProgress State = iota
	StateComplete
)

// Controller owns one assessment run: the answer set being built and the
// cursor into the question bank. One instance per session; not shared.
type Controller struct {
	state   State
	index   int
	answers assessment.AnswerSet
	result  *scoring.Result
}

// New creates a controller at the first question with no answers recorded.
func New() *Controller {
	return &Controller{answers: assessment.AnswerSet{}}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Current returns the question awaiting an answer. ok is false once the
// assessment is complete.
func (c *Controller) Current() (assessment.Question, bool) {
	if c.state != StateInProgress {
		return assessment.Question{}, false
	}
	qs := assessment.Questions()
	return qs[c.index], true
}

// Progress returns the 1-based position of the current question and the
// total question count.
func (c *Controller) Progress() (current, total int) {
	pos := c.index + 1
	if c.state == StateComplete {
		pos = assessment.Count()
	}
	return pos, assessment.Count()
}

// SubmitAnswer records value for the current question and advances. The
// final answer triggers scoring and the transition to Complete.
func (c *Controller) SubmitAnswer(value int) error {
	q, ok := c.Current()
	if !ok {
		return fmt.Errorf("assessment already complete")
	}
	if err := c.answers.Record(q.ID, value); err != nil {
		return err
	}

	if c.index == assessment.Count()-1 {
		result := scoring.Compute(c.answers)
		c.result = &result
		c.state = StateComplete
		return nil
	}

	c.index++
	return nil
}

// Result returns the computed outcome once the run is complete.
func (c *Controller) Result() (*scoring.Result, bool) {
	if c.state != StateComplete {
		return nil, false
	}
	return c.result, true
}

// Answers returns a copy of the recorded answers so far.
func (c *Controller) Answers() assessment.AnswerSet {
	out := make(assessment.AnswerSet, len(c.answers))
	for id, v := range c.answers {
		out[id] = v
	}
	return out
}

// Reset returns the controller to the initial state from any state,
// discarding answers and any computed result.
func (c *Controller) Reset() {
	c.state = StateInProgress
	c.index = 0
	c.answers = assessment.AnswerSet{}
	c.result = nil
}
