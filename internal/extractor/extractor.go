// Package extractor pulls an embedded JSON payload out of free-form model output.
package extractor

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"TrendSpotter/internal/model"
)

// ExtractArray parses the text between the first '[' and the last ']'.
func ExtractArray(text string) (any, error) {
	return extract(text, '[', ']')
}

// ExtractObject parses the text between the first '{' and the last '}'.
func ExtractObject(text string) (any, error) {
	return extract(text, '{', '}')
}

// Span returns the outermost openCh...closeCh substring of text, or false if there is none.
func Span(text string, openCh, closeCh byte) (string, bool) {
	start := strings.IndexByte(text, openCh)
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(text, closeCh)
	if end < start {
		return "", false
	}
	return text[start : end+1], true
}

func extract(text string, openCh, closeCh byte) (any, error) {
	raw, ok := Span(text, openCh, closeCh)
	if !ok {
		return nil, &model.ExtractionError{Msg: model.MsgNoJSON}
	}
	v, err := decode(raw)
	if err != nil {
		return nil, &model.ExtractionError{Msg: model.MsgNoJSON, Err: err}
	}
	return v, nil
}

// decode keeps numbers as json.Number so callers can tell 101.5 from "101.5".
func decode(raw string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode json: trailing data after offset %d", dec.InputOffset())
	}
	return v, nil
}
