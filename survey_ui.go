package main

import (
	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/wastesorter/score"
)

var topicQuestions = map[score.Topic]string{
	score.TopicOrganic:         "Do food scraps go in the organic bin?",
	score.TopicGlass:           "Do bottles and jars go in the glass bin?",
	score.TopicPlasticBrickCan: "Do plastic, drink cartons and cans share a bin?",
	score.TopicPaperCardboard:  "Do paper and cardboard go in the paper bin?",
}

// surveyUI asks every topic once for one phase. Topics left unanswered are
// recorded as skipped when the player continues.
type surveyUI struct {
	ui       *ebitenui.UI
	survey   *score.Survey
	phase    score.Phase
	answered [len(score.Topics)]bool
	status   [len(score.Topics)]*widget.Text
}

func NewSurveyUI(survey *score.Survey, phase score.Phase, done func()) *surveyUI {
	face := uiFace()
	ui, panel := newPanelUI()
	s := &surveyUI{ui: ui, survey: survey, phase: phase}

	title := "Before you play"
	if phase == score.AfterPlay {
		title = "Now that you have played"
	}
	panel.AddChild(newLabel(face, title, white))

	for _, topic := range score.Topics {
		panel.AddChild(newLabel(face, topicQuestions[topic], white))

		row := newRow(8)
		row.AddChild(newButton(face, "Yes", func() { s.answer(topic, score.Correct) }))
		row.AddChild(newButton(face, "No", func() { s.answer(topic, score.Incorrect) }))
		row.AddChild(newButton(face, "Not sure", func() { s.answer(topic, score.Skipped) }))
		s.status[topic] = newLabel(face, "-", dimWhite)
		row.AddChild(s.status[topic])
		panel.AddChild(row)
	}

	panel.AddChild(newButton(face, "Continue", func() {
		s.skipRest()
		done()
	}))
	return s
}

func (s *surveyUI) answer(t score.Topic, a score.Answer) {
	if err := s.survey.Record(s.phase, t, a); err != nil {
		log.Error("survey answer", "topic", t, "err", err)
		return
	}
	s.answered[t] = true
	s.status[t].Label = a.String()
	log.Debug("survey answer", "phase", s.phase, "topic", t, "answer", a)
}

func (s *surveyUI) skipRest() {
	for _, t := range score.Topics {
		if s.answered[t] {
			continue
		}
		if err := s.survey.Skip(s.phase, t); err != nil {
			log.Error("survey skip", "topic", t, "err", err)
		}
	}
}
