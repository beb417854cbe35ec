// Package yaml loads question lists from YAML or JSON files.
package yaml

import (
	"fmt"
	"os"

	"github.com/fwojciec/reportqa"
	goyaml "gopkg.in/yaml.v2"
)

// questionFile is the mapping form of a question file.
type questionFile struct {
	Questions []any `yaml:"questions"`
}

// ParseQuestions decodes a question list. The document is either a sequence
// or a mapping with a "questions" sequence. JSON arrays are accepted as
// YAML flow sequences. Entries keep their decoded type, so a list may mix
// text with numbers or booleans.
func ParseQuestions(data []byte) (reportqa.QuestionList, error) {
	var raw any
	if err := goyaml.Unmarshal(data, &raw); err != nil {
		return nil, reportqa.Errorf(reportqa.EINVALID, "invalid question file: %v", err)
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case map[any]any:
		var f questionFile
		if err := goyaml.Unmarshal(data, &f); err != nil {
			return nil, reportqa.Errorf(reportqa.EINVALID, "invalid question file: %v", err)
		}
		if f.Questions == nil {
			return nil, reportqa.Errorf(reportqa.EINVALID, "question file has no questions key")
		}
		items = f.Questions
	case nil:
		return nil, reportqa.Errorf(reportqa.EINVALID, "question file is empty")
	default:
		return nil, reportqa.Errorf(reportqa.EINVALID, "question file must be a list, got %T", raw)
	}

	l := make(reportqa.QuestionList, 0, len(items))
	for _, item := range items {
		l = append(l, reportqa.NewQuestion(item))
	}
	return l, nil
}

// LoadQuestions reads and parses a question file.
func LoadQuestions(path string) (reportqa.QuestionList, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, reportqa.Errorf(reportqa.ENOTFOUND, "question file not found: %s", path)
	} else if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}
	return ParseQuestions(data)
}

// MarshalQuestions renders a question list as a YAML sequence.
func MarshalQuestions(l reportqa.QuestionList) ([]byte, error) {
	items := make([]any, len(l))
	for i, q := range l {
		items[i] = q.Value
	}
	return goyaml.Marshal(items)
}
