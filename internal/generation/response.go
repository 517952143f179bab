package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var (
	reFenceOpen  = regexp.MustCompile("^```(?:json)?\\s*")
	reFenceClose = regexp.MustCompile("\\s*```\\s*$")
)

var responseSchema = gojsonschema.NewStringLoader(`{
	"type": "object",
	"properties": {
		"description": {"type": ["string", "null"]},
		"labels": {"type": ["string", "null"]}
	}
}`)

type response struct {
	Description *string `json:"description"`
	Labels      *string `json:"labels"`
}

// stripFences removes an optional markdown code fence around the reply.
func stripFences(text string) string {
	text = reFenceOpen.ReplaceAllString(text, "")
	text = reFenceClose.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func parseResponse(text string) (*response, error) {
	text = stripFences(text)
	if !json.Valid([]byte(text)) {
		return nil, errors.New("response is not JSON")
	}

	result, err := gojsonschema.Validate(responseSchema, gojsonschema.NewStringLoader(text))
	if err != nil {
		return nil, fmt.Errorf("failed to validate response: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("unexpected response shape: %s", strings.Join(msgs, "; "))
	}

	var r response
	if err := json.Unmarshal([]byte(text), &r); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &r, nil
}
