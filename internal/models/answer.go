package models

import (
	"encoding/base64"
	"time"
)

// Response is a tri-state answer to a yes/no question. The zero value means
// the question has not been answered yet.
type Response int

const (
	ResponseUnset Response = iota
	ResponseNo
	ResponseYes
)

// Answered reports whether the question has a yes or no response. An unset
// response counts as unanswered regardless of notes or evidence.
func (r Response) Answered() bool {
	return r == ResponseYes || r == ResponseNo
}

// MarshalJSON serializes the response as true, false or null so that the
// persisted layout stays compatible with readers expecting a nullable boolean.
func (r Response) MarshalJSON() ([]byte, error) {
	switch r {
	case ResponseYes:
		return []byte("true"), nil
	case ResponseNo:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON parses a nullable boolean. Anything other than true or false
// degrades to an unset response instead of failing the whole document.
func (r *Response) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*r = ResponseYes
	case "false":
		*r = ResponseNo
	default:
		*r = ResponseUnset
	}
	return nil
}

// Evidence is a file attached to an answer, stored inline as a base64 payload
// with its metadata.
type Evidence struct {
	FileName      string    `json:"fileName"`
	FileSizeBytes int64     `json:"fileSizeBytes"`
	MimeType      string    `json:"mimeType"`
	UploadedAt    time.Time `json:"uploadedAt"`
	Payload       string    `json:"payload"`
}

// Decode returns the original file content of the evidence payload.
func (e Evidence) Decode() ([]byte, error) {
	return base64.StdEncoding.DecodeString(e.Payload)
}

// Answer records the response to a single question together with optional
// evidence and free-form notes.
type Answer struct {
	QuestionID string    `json:"questionId"`
	Response   Response  `json:"response"`
	Evidence   *Evidence `json:"evidence,omitempty"`
	Notes      string    `json:"notes"`
}

// AnswerPatch is a partial update to an Answer. Nil fields keep the previous
// value. RemoveEvidence clears the stored evidence and wins over Evidence.
type AnswerPatch struct {
	Response       *Response
	Evidence       *Evidence
	RemoveEvidence bool
	Notes          *string
}

// Apply merges the patch into the answer and returns the result.
func (a Answer) Apply(patch AnswerPatch) Answer {
	if patch.Response != nil {
		a.Response = *patch.Response
	}
	switch {
	case patch.RemoveEvidence:
		a.Evidence = nil
	case patch.Evidence != nil:
		a.Evidence = patch.Evidence
	}
	if patch.Notes != nil {
		a.Notes = *patch.Notes
	}
	return a
}
