package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeUnmarshal(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		truthy bool
		text   bool
	}{
		{name: "number", body: `{"age":30}`, truthy: true},
		{name: "fractional number", body: `{"age":2.5}`, truthy: true},
		{name: "beyond float64 range", body: `{"age":1e400}`, truthy: true},
		{name: "negative beyond float64 range", body: `{"age":-1e400}`, truthy: true},
		{name: "string", body: `{"age":"30"}`, truthy: true, text: true},
		{name: "zero", body: `{"age":0}`, truthy: false},
		{name: "negative zero", body: `{"age":-0.0}`, truthy: false},
		{name: "empty string", body: `{"age":""}`, truthy: false, text: true},
		{name: "null", body: `{"age":null}`, truthy: false},
		{name: "absent", body: `{}`, truthy: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in UserInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			assert.Equal(t, tt.truthy, in.Age.Truthy())
			assert.Equal(t, tt.text, in.Age.IsText())
		})
	}
}

func TestAgeRejectsOtherTypes(t *testing.T) {
	for _, body := range []string{`{"age":true}`, `{"age":{}}`, `{"age":[30]}`} {
		var in UserInput
		err := json.Unmarshal([]byte(body), &in)
		assert.ErrorIs(t, err, ErrInvalidAge, body)
	}
}

func TestAgeEchoesInput(t *testing.T) {
	for _, body := range []string{`{"age":30}`, `{"age":"thirty"}`, `{"age":1e2}`} {
		var in UserInput
		require.NoError(t, json.Unmarshal([]byte(body), &in))

		out, err := json.Marshal(struct {
			Age Age `json:"age"`
		}{in.Age})
		require.NoError(t, err)
		assert.JSONEq(t, body, string(out))
	}
}

func TestAgeConstructors(t *testing.T) {
	b, err := json.Marshal(NumericAge(42))
	require.NoError(t, err)
	assert.Equal(t, "42", string(b))

	b, err = json.Marshal(TextAge("42"))
	require.NoError(t, err)
	assert.Equal(t, `"42"`, string(b))

	b, err = json.Marshal(Age{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestAgeScan(t *testing.T) {
	var a Age
	require.NoError(t, a.Scan([]byte(`"7"`)))
	assert.Equal(t, TextAge("7"), a)

	require.NoError(t, a.Scan("7"))
	assert.Equal(t, NumericAge(7), a)

	require.NoError(t, a.Scan(nil))
	assert.True(t, a.IsZero())

	assert.Error(t, a.Scan(7))

	v, err := NumericAge(7).Value()
	require.NoError(t, err)
	assert.Equal(t, "7", v)
}

func TestWithID(t *testing.T) {
	in := UserInput{Name: "A", Email: "a@b.co", Age: NumericAge(30)}
	assert.Equal(t, User{ID: "u1", Name: "A", Email: "a@b.co", Age: NumericAge(30)}, in.WithID("u1"))
}
