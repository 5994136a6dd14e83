package expected_test

import (
	"testing"

	"github.com/WinPooh32/expected"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultMarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    expected.Result[int, string]
		want string
	}{
		{"success", expected.Ok[string](42), `{"value":42}`},
		{"zero value success", expected.Result[int, string]{}, `{"value":0}`},
		{"failure", expected.Err[int]("bad"), `{"error":"bad"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.r)

			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestResultMarshalJSONUnit(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(expected.Unexpected("bad"))

	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"bad"}`, string(data))

	data, err = json.Marshal(expected.Ok[string](expected.Unit{}))

	require.NoError(t, err)
	assert.JSONEq(t, `{"value":{}}`, string(data))
}

func TestResultMarshalJSONBadPayload(t *testing.T) {
	t.Parallel()

	_, err := json.Marshal(expected.Ok[string](make(chan int)))

	require.Error(t, err)
}

func TestResultUnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    expected.Result[int, string]
		wantErr bool
	}{
		{"success", `{"value":42}`, expected.Ok[string](42), false},
		{"failure", `{"error":"bad"}`, expected.Err[int]("bad"), false},
		{"both keys", `{"value":42,"error":"bad"}`, expected.Result[int, string]{}, true},
		{"no keys", `{}`, expected.Result[int, string]{}, true},
		{"not an object", `[1,2]`, expected.Result[int, string]{}, true},
		{"wrong payload type", `{"value":"nope"}`, expected.Result[int, string]{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var r expected.Result[int, string]

			err := json.Unmarshal([]byte(tt.data), &r)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestResultJSONRoundTrip(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
		Size int    `json:"size"`
	}

	orig := expected.Ok[string](payload{Name: "a.txt", Size: 3})

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var got expected.Result[payload, string]

	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, orig, got)
}
