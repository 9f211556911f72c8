package dto

import (
	"encoding/json"
	"strings"
	"time"
)

// The admin console submits most writes as multipart forms, so list-valued
// and boolean fields arrive either as proper JSON values or as delimited
// strings ("a, b, c", one author per line, checkbox "on"). These types are the
// single coercion step that normalizes both shapes before validation.

// FlexStrings is a comma-delimited string list. It accepts a JSON array or a
// single comma-separated string; Values applies the split either way.
type FlexStrings []string

// UnmarshalJSON accepts ["a","b"] as well as "a, b".
func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = FlexStrings{s}
	return nil
}

// Values returns the trimmed, non-empty elements, splitting a lone
// comma-joined element the way the form path delivers it.
func (f FlexStrings) Values() []string {
	return splitFlex(f, ",")
}

// FlexLines is a newline-delimited string list (one entry per line). Author
// names contain commas, so newline is the only delimiter here.
type FlexLines []string

// UnmarshalJSON accepts ["a","b"] as well as "a\nb".
func (f *FlexLines) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = FlexLines{s}
	return nil
}

// Values returns the trimmed, non-empty lines.
func (f FlexLines) Values() []string {
	return splitFlex(f, "\n")
}

func splitFlex(in []string, sep string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, sep) {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// FlexBool is a checkbox-tolerant boolean: JSON true/false or the strings
// "true", "on", "1". Use a pointer field to detect presence on updates.
type FlexBool string

// UnmarshalJSON accepts a JSON bool or string.
func (f *FlexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*f = "true"
		} else {
			*f = "false"
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = FlexBool(s)
	return nil
}

// Bool reports the truthiness of the raw value.
func (f FlexBool) Bool() bool {
	switch strings.ToLower(string(f)) {
	case "true", "on", "1":
		return true
	default:
		return false
	}
}

// Date layouts accepted for form-submitted dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 date or datetime string.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
