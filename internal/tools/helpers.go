// Package tools implements the MCP tool handlers for the meal-planning
// server.
//
// Each tool is a struct that receives its stores via the constructor and
// exposes a Definition for registration plus a Handle compatible with
// mcp-go's CallToolRequest signature. Validation failures become
// structured tool errors; I/O failures are returned as Go errors.
package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"mealplan-mcp/internal/mealplan"
	"mealplan-mcp/internal/paths"
)

// isValidationErr reports whether err is caller input that should come
// back as a structured tool error rather than a server failure.
func isValidationErr(err error) bool {
	return errors.Is(err, mealplan.ErrInvalidDate)
}

// decodeArg re-marshals a structured argument (arrays and objects arrive
// as map[string]any from the JSON-RPC layer) into a typed value. A
// missing or nil argument yields the zero value.
func decodeArg[T any](req mcp.CallToolRequest, key string) (T, error) {
	var out T
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return out, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return out, fmt.Errorf("encoding %q: %w", key, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("invalid %q: %w", key, err)
	}
	return out, nil
}

// parsePlanDate accepts a calendar day or a full timestamp and
// normalizes it to a day; storage paths only carry the day.
func parsePlanDate(s string) (time.Time, error) {
	if day, err := mealplan.ParseDay(s); err == nil {
		return day, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
}

// dayString formats a day for responses.
func dayString(t time.Time) string {
	return t.Format(paths.DayFormat)
}
