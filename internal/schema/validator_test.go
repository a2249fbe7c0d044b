package schema

import "testing"

func newSurveyValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator([]byte(SurveySchema))
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	return v
}

func TestSurveySchema_AcceptsFullPayload(t *testing.T) {
	v := newSurveyValidator(t)
	payload := `{
		"chunks": [{"x": 0, "y": 0, "seed": true}, {"x": -3, "y": 12}],
		"tags": {"player": [{"position": {"x": 1.5, "y": -2}, "text": "spawn"}]}
	}`
	if err := v.ValidateBytes([]byte(payload)); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestSurveySchema_TagTextIsOptional(t *testing.T) {
	v := newSurveyValidator(t)
	payload := `{
		"chunks": [{"x": 0, "y": 0, "seed": true}],
		"tags": {"player": [{"position": {"x": 16, "y": 16}}]}
	}`
	if err := v.ValidateBytes([]byte(payload)); err != nil {
		t.Fatalf("position-only tag rejected: %v", err)
	}
}

func TestSurveySchema_RejectsBadPayloads(t *testing.T) {
	v := newSurveyValidator(t)
	cases := map[string]string{
		"missing chunks":    `{}`,
		"float coordinate":  `{"chunks": [{"x": 1.5, "y": 0}]}`,
		"missing y":         `{"chunks": [{"x": 1}]}`,
		"unknown field":     `{"chunks": [], "extra": 1}`,
		"tag sans position": `{"chunks": [], "tags": {"player": [{"text": "spawn"}]}}`,
	}
	for name, payload := range cases {
		if err := v.ValidateBytes([]byte(payload)); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestValidateBytes_RejectsInvalidJSON(t *testing.T) {
	v := newSurveyValidator(t)
	if err := v.ValidateBytes([]byte(`{"chunks": [`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
