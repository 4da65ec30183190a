package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat accepts both JSON numbers and numeric strings. Admin payloads and
// legacy product documents carry prices either way.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt accepts both JSON numbers and numeric strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var ff FlexFloat
	if err := ff.UnmarshalJSON(data); err != nil {
		return err
	}
	*f = FlexInt(ff)
	return nil
}

// AttrValue is a single- or multi-select attribute value: a bare string in
// JSON for single select, an array for multi select. It always holds at
// least one value once set.
type AttrValue []string

func (a *AttrValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = nil
		return nil
	}
	if len(s) > 0 && s[0] == '[' {
		var vs []string
		if err := json.Unmarshal(data, &vs); err != nil {
			return err
		}
		*a = AttrValue(vs)
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = AttrValue{v}
	return nil
}

func (a AttrValue) MarshalJSON() ([]byte, error) {
	if len(a) == 1 {
		return json.Marshal(a[0])
	}
	return json.Marshal([]string(a))
}

// Contains reports whether v is one of the selected values.
func (a AttrValue) Contains(v string) bool {
	for _, s := range a {
		if s == v {
			return true
		}
	}
	return false
}

// SelectedAttributes maps attribute name to the user's current pick(s).
type SelectedAttributes map[string]AttrValue
