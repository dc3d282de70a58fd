package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var depthMetersPattern = regexp.MustCompile(`(\d+)m`)

// metersToFeet is the conversion used when a rating is given in meters only.
const metersToFeet = 3.28084

// ParseDepth returns the meters component of a depth rating. Integers are
// already meters; strings are read from the first "<digits>m" group, so
// "40m/130ft" yields 40. Anything unparseable or absent yields 0.
func ParseDepth(v any) int {
	switch d := v.(type) {
	case nil:
		return 0
	case int:
		return clampDepth(int64(d))
	case int32:
		return clampDepth(int64(d))
	case int64:
		return clampDepth(d)
	case float64:
		return floatDepth(d)
	case json.Number:
		if i, err := d.Int64(); err == nil {
			return clampDepth(i)
		}
		if f, err := d.Float64(); err == nil {
			return floatDepth(f)
		}
		return 0
	case string:
		return parseDepthString(d)
	case *string:
		if d == nil {
			return 0
		}
		return parseDepthString(*d)
	default:
		return 0
	}
}

func parseDepthString(s string) int {
	m := depthMetersPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		// Only ErrRange is possible for a digit run.
		return math.MaxInt32
	}
	return clampDepth(n)
}

// floatDepth truncates f toward zero, clamping before the integer conversion.
func floatDepth(f float64) int {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(f)
}

func clampDepth(n int64) int {
	if n < 0 {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// FormatDepth renders meters in the canonical "<m>m/<ft>ft" form.
func FormatDepth(meters int) string {
	feet := int(math.Round(float64(meters) * metersToFeet))
	return fmt.Sprintf("%dm/%dft", meters, feet)
}

// DepthInput accepts a depth rating from JSON as either a number of meters or
// free text. Numbers are truncated to whole meters and normalized with
// FormatDepth; negative numbers are rejected. Empty text and null leave Value nil.
type DepthInput struct {
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DepthInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		d.Value = nil
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			d.Value = nil
			return nil
		}
		// Bare numbers sent as text are meters, as with numeric input.
		if n, err := strconv.Atoi(s); err == nil {
			s = FormatDepth(clampDepth(int64(n)))
		}
		d.Value = &s
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("depthRating must be a number of meters or text: %w", err)
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("depthRating %s is out of range: %w", n, err)
	}
	if f < 0 {
		return fmt.Errorf("depthRating must not be negative, got %s", n)
	}
	s := FormatDepth(floatDepth(f))
	d.Value = &s
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d DepthInput) MarshalJSON() ([]byte, error) {
	if d.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*d.Value)
}
