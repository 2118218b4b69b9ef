package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Percent is a rate expressed in percent units: 5.5 means 5.5%, not 550%.
// Call Fraction at the point of use to get the multiplier form.
type Percent float64

// Fraction returns the rate as a fraction (5.5 -> 0.055).
func (p Percent) Fraction() float64 {
	return float64(p) / 100
}

// Growth returns the yearly growth factor 1 + p/100.
func (p Percent) Growth() float64 {
	return 1 + p.Fraction()
}

func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64) + "%"
}

// ParsePercent accepts "5.5", "5.5%" and " 5.5 % ".
func ParsePercent(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percent %q: %w", s, err)
	}
	return Percent(v), nil
}

// UnmarshalYAML lets scenario files write rates as 5.5 or "5.5%".
func (p *Percent) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: percent must be a scalar", value.Line)
	}
	v, err := ParsePercent(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = v
	return nil
}

// UnmarshalJSON accepts both numbers and "5.5%" strings.
func (p *Percent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := ParsePercent(s)
		if err != nil {
			return err
		}
		*p = v
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid percent %s", data)
	}
	*p = Percent(f)
	return nil
}
