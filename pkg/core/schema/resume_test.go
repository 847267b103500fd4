// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"reflect"
	"testing"
)

// A validated record serialized to the wire shape and re-validated must come
// back identical: normalization is idempotent.
func TestResume_RoundTrip(t *testing.T) {
	first, err := Validate(mustParse(t, `{
		"full_name": "Milan K O",
		"phone": "+371 20000000",
		"email": "milan@example.com",
		"country": "Latvia",
		"industry": ["maritime", "oil_n_gas"],
		"positions": ["Deck Officer"],
		"contract": "rotational",
		"education": [{"institution": "Riga Technical University", "degree": "BSc", "from": "2010", "to": "2014-06"}],
		"certificates": [{"title": "STCW Basic Safety", "from": "2015-02", "to": "2999-02-01"}],
		"experience": [{"industry": "maritime", "position": "Second Officer", "from": "2016-03", "to": "present", "description": "Tanker fleet"}],
		"languages": [{"language": "English", "level": "fluent"}, {"language": "Latvian", "level": "native"}],
		"extra_skills": ["crane operation"],
		"references": [{"name": "A. Berzins", "company": "Baltic Shipping", "mobile": "+371 29999999"}]
	}`))
	if err != nil {
		t.Fatalf("first validation failed: %v", err)
	}

	wire, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	second, err := Validate(mustParse(t, string(wire)))
	if err != nil {
		t.Fatalf("second validation failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed the record:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestResume_WireFieldNames(t *testing.T) {
	resume, err := Validate(mustParse(t, `{
		"full_name": "Jane Roe",
		"experience": [{"position": "Technician", "from": "2020-01", "to": "2021-05"}]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wire, err := json.Marshal(resume)
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]any
	if err := json.Unmarshal(wire, &m); err != nil {
		t.Fatal(err)
	}
	exp := m["experience"].([]any)[0].(map[string]any)
	if _, ok := exp["from"]; !ok {
		t.Error(`experience entry missing "from" wire alias`)
	}
	if _, ok := exp["to"]; !ok {
		t.Error(`experience entry missing "to" wire alias`)
	}
}
