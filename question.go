package reportqa

import (
	"fmt"
	"strings"
)

// QuestionKind tags the type of a question's raw value.
type QuestionKind int

const (
	// QuestionText is a natural-language question.
	QuestionText QuestionKind = iota
	// QuestionOther is any non-string value found in a question list.
	QuestionOther
)

// Question is one entry in a question list. Lists loaded from files may mix
// strings with other scalar values, so the raw value is kept with its tag.
type Question struct {
	Kind  QuestionKind
	Value any
}

// NewQuestion tags v as a text question when it is a string and as
// QuestionOther otherwise.
func NewQuestion(v any) Question {
	if _, ok := v.(string); ok {
		return Question{Kind: QuestionText, Value: v}
	}
	return Question{Kind: QuestionOther, Value: v}
}

// IsText reports whether q is a natural-language question.
func (q Question) IsText() bool {
	return q.Kind == QuestionText
}

// String renders the raw value as text.
func (q Question) String() string {
	if s, ok := q.Value.(string); ok {
		return s
	}
	if q.Value == nil {
		return ""
	}
	return fmt.Sprint(q.Value)
}

// QuestionList is an ordered list of questions asked of every report.
type QuestionList []Question

// Questions builds a QuestionList of text questions.
func Questions(texts ...string) QuestionList {
	l := make(QuestionList, 0, len(texts))
	for _, s := range texts {
		l = append(l, NewQuestion(s))
	}
	return l
}

// DefaultQuestions returns the built-in question list.
func DefaultQuestions() QuestionList {
	return Questions(
		"Compare FY23 & FY24 plans vs result",
		"Digital transformation promises vs actual progress",
		"What is new",
	)
}

// Validate returns EINVALID for an empty list, a non-text entry, or a blank
// entry. Positions in messages are 1-based.
func (l QuestionList) Validate() error {
	if len(l) == 0 {
		return Errorf(EINVALID, "question list is empty")
	}
	for i, q := range l {
		if !q.IsText() {
			return Errorf(EINVALID, "question %d is not text: %v (%T); quote it in the question file to ask it as text", i+1, q.Value, q.Value)
		}
		if strings.TrimSpace(q.String()) == "" {
			return Errorf(EINVALID, "question %d is blank", i+1)
		}
	}
	return nil
}

// Strings renders every question as text.
func (l QuestionList) Strings() []string {
	out := make([]string, len(l))
	for i, q := range l {
		out[i] = q.String()
	}
	return out
}
