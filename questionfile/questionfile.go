// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package questionfile validates bulk question uploads.
//
// An upload is a JSON array of objects:
//
//	[{"question": "...", "options": ["a","b","c","d"],
//	  "correct_answer": 1, "explanation": "...", "reason": "..."}]
//
// reason is optional; everything else is required. Any violation
// rejects the whole document so uploads are all-or-nothing.
package questionfile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quizcast/quizcast/models"
)

type rawQuestion struct {
	Question      *string   `json:"question"`
	Options       *[]string `json:"options"`
	CorrectAnswer *int      `json:"correct_answer"`
	Explanation   *string   `json:"explanation"`
	Reason        string    `json:"reason"`
}

// Parse decodes and validates an upload document. The returned
// questions carry no channel or ID; the caller assigns ownership.
func Parse(data []byte) ([]models.Question, error) {
	var raw []rawQuestion
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("upload contains no questions")
	}

	questions := make([]models.Question, 0, len(raw))
	for i, rq := range raw {
		n := i + 1
		if rq.Question == nil {
			return nil, fmt.Errorf("question %d: missing required field: question", n)
		}
		if strings.TrimSpace(*rq.Question) == "" {
			return nil, fmt.Errorf("question %d: question text must not be empty", n)
		}
		if rq.Options == nil {
			return nil, fmt.Errorf("question %d: missing required field: options", n)
		}
		if len(*rq.Options) != 4 {
			return nil, fmt.Errorf("question %d: must have exactly 4 options, got %d", n, len(*rq.Options))
		}
		for j, opt := range *rq.Options {
			if strings.TrimSpace(opt) == "" {
				return nil, fmt.Errorf("question %d: option %d must not be empty", n, j+1)
			}
		}
		if rq.CorrectAnswer == nil {
			return nil, fmt.Errorf("question %d: missing required field: correct_answer", n)
		}
		if *rq.CorrectAnswer < 0 || *rq.CorrectAnswer > 3 {
			return nil, fmt.Errorf("question %d: correct_answer must be 0, 1, 2, or 3", n)
		}
		if rq.Explanation == nil {
			return nil, fmt.Errorf("question %d: missing required field: explanation", n)
		}

		opts := *rq.Options
		questions = append(questions, models.Question{
			QuestionText:  *rq.Question,
			OptionA:       opts[0],
			OptionB:       opts[1],
			OptionC:       opts[2],
			OptionD:       opts[3],
			CorrectOption: *rq.CorrectAnswer,
			Explanation:   *rq.Explanation,
			Reason:        rq.Reason,
		})
	}
	return questions, nil
}
