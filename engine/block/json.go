package block

import "encoding/json"

// JSON encoding carries a "type" discriminator per variant, so a block
// dump is self-describing. Alignments encode as their names.

// MarshalJSON is part of interface json.Marshaler.
func (a Alignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON is part of interface json.Unmarshaler. Unknown alignment
// names decode to AlignLeft.
func (a *Alignment) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = ParseAlignment(s)
	return nil
}

func tagged(kind Kind, v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	head := []byte(`{"type":"` + kind.String() + `",`)
	if len(raw) == 2 { // empty object
		return append(head[:len(head)-1], '}'), nil
	}
	return append(head, raw[1:]...), nil
}

// MarshalJSON is part of interface json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	type alias Text
	return tagged(KindText, alias(t))
}

// MarshalJSON is part of interface json.Marshaler.
func (i Image) MarshalJSON() ([]byte, error) {
	type alias Image
	return tagged(KindImage, alias(i))
}

// MarshalJSON is part of interface json.Marshaler.
func (v Video) MarshalJSON() ([]byte, error) {
	type alias Video
	return tagged(KindVideo, alias(v))
}

// MarshalJSON is part of interface json.Marshaler.
func (c Code) MarshalJSON() ([]byte, error) {
	type alias Code
	return tagged(KindCode, alias(c))
}

// MarshalJSON is part of interface json.Marshaler.
func (h HTML) MarshalJSON() ([]byte, error) {
	type alias HTML
	return tagged(KindHTML, alias(h))
}

// MarshalJSON is part of interface json.Marshaler.
func (c Callout) MarshalJSON() ([]byte, error) {
	type alias Callout
	return tagged(KindCallout, alias(c))
}

// MarshalJSON is part of interface json.Marshaler.
func (d Divider) MarshalJSON() ([]byte, error) {
	type alias Divider
	return tagged(KindDivider, alias(d))
}

// MarshalJSON is part of interface json.Marshaler.
func (r Row) MarshalJSON() ([]byte, error) {
	type alias Row
	return tagged(KindRow, alias(r))
}
