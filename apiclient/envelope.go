package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// unwrap strips the ad-hoc envelopes the API wraps its payloads in. Arrays
// and scalars are returned as is; objects are unwrapped through "data" and
// then through the given fallback keys, in order. An object carrying none of
// those keys is the payload itself.
func unwrap(body []byte, keys ...string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) == 0 || isNull(trimmed) {
		return nil, nil
	}

	if trimmed[0] != '{' {
		return trimmed, nil
	}

	var envelope map[string]json.RawMessage

	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode envelope: %w", err)
	}

	for _, key := range append([]string{"data"}, keys...) {
		raw, ok := envelope[key]

		if !ok {
			continue
		}

		if isNull(raw) {
			return nil, nil
		}

		return raw, nil
	}

	return trimmed, nil
}

func decodeList[T any](body []byte, keys ...string) ([]T, error) {
	raw, err := unwrap(body, keys...)

	if err != nil {
		return nil, err
	}

	items := []T{}

	// Anything that is not an array after unwrapping is treated as an empty list.
	if len(raw) == 0 || raw[0] != '[' {
		return items, nil
	}

	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed reading body: %w", err)
	}

	return items, nil
}

func decodeOne[T any](body []byte, keys ...string) (*T, error) {
	raw, err := unwrap(body, keys...)

	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, nil
	}

	var item T

	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("failed reading body: %w", err)
	}

	return &item, nil
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
