// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package questionfile

import (
	"strings"
	"testing"
)

func TestParseValid(t *testing.T) {
	data := []byte(`[
		{"question": "What is the capital of India?",
		 "options": ["Mumbai", "New Delhi", "Kolkata", "Chennai"],
		 "correct_answer": 1,
		 "explanation": "New Delhi is the capital of India",
		 "reason": "New Delhi has been the capital since 1911."}
	]`)

	questions, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("parsed %d questions, want 1", len(questions))
	}
	q := questions[0]
	if q.OptionB != "New Delhi" || q.CorrectOption != 1 {
		t.Errorf("parsed question = %+v", q)
	}
	if q.Reason == "" {
		t.Error("reason not carried through")
	}
}

func TestParseOptionalReason(t *testing.T) {
	data := []byte(`[{"question": "q", "options": ["a","b","c","d"], "correct_answer": 0, "explanation": ""}]`)
	questions, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if questions[0].Reason != "" {
		t.Errorf("reason = %q, want empty", questions[0].Reason)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"not an array", `{"question": "q"}`, "invalid JSON"},
		{"element not an object", `["just a string"]`, "invalid JSON"},
		{"empty array", `[]`, "no questions"},
		{"missing question", `[{"options": ["a","b","c","d"], "correct_answer": 0, "explanation": "e"}]`, "missing required field: question"},
		{"blank question", `[{"question": "  ", "options": ["a","b","c","d"], "correct_answer": 0, "explanation": "e"}]`, "must not be empty"},
		{"missing options", `[{"question": "q", "correct_answer": 0, "explanation": "e"}]`, "missing required field: options"},
		{"three options", `[{"question": "q", "options": ["a","b","c"], "correct_answer": 0, "explanation": "e"}]`, "exactly 4 options"},
		{"five options", `[{"question": "q", "options": ["a","b","c","d","e"], "correct_answer": 0, "explanation": "e"}]`, "exactly 4 options"},
		{"empty option", `[{"question": "q", "options": ["a","","c","d"], "correct_answer": 0, "explanation": "e"}]`, "option 2 must not be empty"},
		{"correct_answer too big", `[{"question": "q", "options": ["a","b","c","d"], "correct_answer": 4, "explanation": "e"}]`, "correct_answer must be"},
		{"correct_answer negative", `[{"question": "q", "options": ["a","b","c","d"], "correct_answer": -1, "explanation": "e"}]`, "correct_answer must be"},
		{"correct_answer wrong type", `[{"question": "q", "options": ["a","b","c","d"], "correct_answer": "1", "explanation": "e"}]`, "invalid JSON"},
		{"missing explanation", `[{"question": "q", "options": ["a","b","c","d"], "correct_answer": 0}]`, "missing required field: explanation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}

	// A bad question anywhere rejects the whole document
	t.Run("second question bad rejects all", func(t *testing.T) {
		data := `[
			{"question": "good", "options": ["a","b","c","d"], "correct_answer": 0, "explanation": "e"},
			{"question": "bad", "options": ["a","b"], "correct_answer": 0, "explanation": "e"}
		]`
		if _, err := Parse([]byte(data)); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
