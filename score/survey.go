package score

import (
	"errors"
	"fmt"
)

// Answer is a survey response.
type Answer int

const (
	Incorrect Answer = iota
	Correct
	Skipped
)

func (a Answer) String() string {
	switch a {
	case Incorrect:
		return "incorrect"
	case Correct:
		return "correct"
	case Skipped:
		return "skipped"
	}
	return fmt.Sprintf("answer(%d)", int(a))
}

// Topic is one survey question, one per waste category, in the order the
// survey asks them.
type Topic int

const (
	TopicOrganic Topic = iota
	TopicGlass
	TopicPlasticBrickCan
	TopicPaperCardboard
)

// Topics lists the topics in column order.
var Topics = [...]Topic{TopicOrganic, TopicGlass, TopicPlasticBrickCan, TopicPaperCardboard}

func (t Topic) String() string {
	switch t {
	case TopicOrganic:
		return "organic"
	case TopicGlass:
		return "glass"
	case TopicPlasticBrickCan:
		return "plastic_brick_can"
	case TopicPaperCardboard:
		return "paper_cardboard"
	}
	return fmt.Sprintf("topic(%d)", int(t))
}

// Phase is when the survey is asked.
type Phase int

const (
	BeforePlay Phase = iota
	AfterPlay
)

var ErrUnknownTopic = errors.New("score: unknown survey topic")

// Survey holds the answers given before and after playing.
type Survey struct {
	Before [len(Topics)]Answer
	After  [len(Topics)]Answer
}

// Record stores an answer for a topic in the given phase.
func (s *Survey) Record(p Phase, t Topic, a Answer) error {
	if t < TopicOrganic || t > TopicPaperCardboard {
		return fmt.Errorf("%w: %d", ErrUnknownTopic, int(t))
	}
	if p == AfterPlay {
		s.After[t] = a
		return nil
	}
	s.Before[t] = a
	return nil
}

// Skip records that the topic was not answered in phase p.
func (s *Survey) Skip(p Phase, t Topic) error {
	return s.Record(p, t, Skipped)
}
