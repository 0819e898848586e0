package shares

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(fy int, val int64) Observation {
	return Observation{FY: fy, Val: decimal.NewFromInt(val)}
}

func assertObservation(t *testing.T, want, got Observation) {
	t.Helper()
	assert.Equal(t, want.FY, got.FY)
	assert.True(t, want.Val.Equal(got.Val), "val: want %s, got %s", want.Val, got.Val)
}

func TestProcessConcept(t *testing.T) {
	t.Run("single observation is both max and min", func(t *testing.T) {
		body := `{"entityName":"apple inc","units":{"shares":[{"fy":2021,"val":100}]}}`

		got, err := ProcessConcept([]byte(body), DefaultCutoff)
		require.NoError(t, err)
		assert.Equal(t, "Apple Inc", got.EntityName)
		assertObservation(t, obs(2021, 100), got.Max)
		assertObservation(t, obs(2021, 100), got.Min)
	})

	t.Run("ties resolve to the first occurrence", func(t *testing.T) {
		body := `{"entityName":"x","units":{"shares":[
			{"fy":2021,"val":50},{"fy":2022,"val":100},{"fy":2023,"val":100}]}}`

		got, err := ProcessConcept([]byte(body), DefaultCutoff)
		require.NoError(t, err)
		assertObservation(t, obs(2022, 100), got.Max)
		assertObservation(t, obs(2021, 50), got.Min)
	})

	t.Run("tied minimum keeps earliest", func(t *testing.T) {
		body := `{"entityName":"x","units":{"shares":[
			{"fy":2023,"val":10},{"fy":2021,"val":10},{"fy":2022,"val":30}]}}`

		got, err := ProcessConcept([]byte(body), DefaultCutoff)
		require.NoError(t, err)
		assertObservation(t, obs(2023, 10), got.Min)
		assertObservation(t, obs(2022, 30), got.Max)
	})

	t.Run("filters out cutoff year and earlier", func(t *testing.T) {
		body := `{"entityName":"x","units":{"shares":[
			{"fy":2019,"val":999999},{"fy":2020,"val":1},{"fy":2021,"val":500},{"fy":2024,"val":400}]}}`

		got, err := ProcessConcept([]byte(body), DefaultCutoff)
		require.NoError(t, err)
		assertObservation(t, obs(2021, 500), got.Max)
		assertObservation(t, obs(2024, 400), got.Min)
	})

	t.Run("skips non-numeric values and fiscal years", func(t *testing.T) {
		body := `{"entityName":"x","units":{"shares":[
			{"fy":2021,"val":"1000"},{"fy":2022,"val":null},{"fy":"2023","val":7},
			{"fy":null,"val":8},{"fy":2024,"val":300},7,"junk",null]}}`

		got, err := ProcessConcept([]byte(body), DefaultCutoff)
		require.NoError(t, err)
		assertObservation(t, obs(2024, 300), got.Max)
		assertObservation(t, obs(2024, 300), got.Min)
	})

	t.Run("integral fiscal years in float form are kept", func(t *testing.T) {
		body := `{"entityName":"x","units":{"shares":[
			{"fy":2021.0,"val":5},{"fy":2022,"val":3},{"fy":2.023e3,"val":4},{"fy":2021.5,"val":99}]}}`

		got, err := ProcessConcept([]byte(body), DefaultCutoff)
		require.NoError(t, err)
		assertObservation(t, obs(2021, 5), got.Max)
		assertObservation(t, obs(2022, 3), got.Min)
	})

	t.Run("keeps large counts exact", func(t *testing.T) {
		body := `{"entityName":"x","units":{"shares":[
			{"fy":2021,"val":15115785000},{"fy":2022,"val":15115785001}]}}`

		got, err := ProcessConcept([]byte(body), DefaultCutoff)
		require.NoError(t, err)
		assert.Equal(t, "15115785001", got.Max.Val.String())
		assert.Equal(t, "15115785000", got.Min.Val.String())
	})

	t.Run("custom cutoff", func(t *testing.T) {
		body := `{"entityName":"x","units":{"shares":[{"fy":2018,"val":5},{"fy":2019,"val":6}]}}`

		got, err := ProcessConcept([]byte(body), 2017)
		require.NoError(t, err)
		assertObservation(t, obs(2019, 6), got.Max)
	})
}

func TestProcessConcept_EmptyWindow(t *testing.T) {
	body := `{"entityName":"x","units":{"shares":[{"fy":2019,"val":5},{"fy":2020,"val":6}]}}`

	_, err := ProcessConcept([]byte(body), DefaultCutoff)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyWindow)
	assert.NotErrorIs(t, err, ErrMalformedPayload)
	assert.Equal(t, "No shares data found for the period after 2020.", err.Error())

	var ewe *EmptyWindowError
	require.True(t, errors.As(err, &ewe))
	assert.Equal(t, DefaultCutoff, ewe.Cutoff)
}

func TestProcessConcept_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>rate limited</html>`},
		{name: "empty body", body: ``},
		{name: "array root", body: `[]`},
		{name: "missing entityName", body: `{"units":{"shares":[{"fy":2021,"val":1}]}}`},
		{name: "numeric entityName", body: `{"entityName":5,"units":{"shares":[{"fy":2021,"val":1}]}}`},
		{name: "missing units", body: `{"entityName":"x"}`},
		{name: "missing shares", body: `{"entityName":"x","units":{"USD":[]}}`},
		{name: "shares not array", body: `{"entityName":"x","units":{"shares":{}}}`},
		{name: "trailing garbage", body: `{"entityName":"x","units":{"shares":[{"fy":2021,"val":1}]}}<!-- relay error page -->`},
		{name: "second JSON value", body: `{"entityName":"x","units":{"shares":[{"fy":2021,"val":1}]}} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProcessConcept([]byte(tt.body), DefaultCutoff)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestProcessDefault(t *testing.T) {
	t.Run("trusts values and title-cases name", func(t *testing.T) {
		body := `{"entityName":"JOHNSON & JOHNSON","max":{"val":10,"fy":2019},"min":{"val":20,"fy":2018}}`

		got, err := ProcessDefault([]byte(body))
		require.NoError(t, err)
		assert.Equal(t, "Johnson & Johnson", got.EntityName)
		// Not recomputed: max < min and pre-cutoff years are kept verbatim.
		assertObservation(t, obs(2019, 10), got.Max)
		assertObservation(t, obs(2018, 20), got.Min)
	})

	t.Run("integral fiscal years in float form", func(t *testing.T) {
		body := `{"entityName":"x","max":{"val":10,"fy":2021.0},"min":{"val":5,"fy":2024.00}}`

		got, err := ProcessDefault([]byte(body))
		require.NoError(t, err)
		assertObservation(t, obs(2021, 10), got.Max)
		assertObservation(t, obs(2024, 5), got.Min)
	})

	t.Run("trailing whitespace is fine", func(t *testing.T) {
		body := "{\"entityName\":\"x\",\"max\":{\"val\":1,\"fy\":2021},\"min\":{\"val\":1,\"fy\":2021}}\n\n"

		_, err := ProcessDefault([]byte(body))
		require.NoError(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		for _, body := range []string{
			`{}`,
			`{"entityName":"x","max":{"val":1,"fy":2021}}`,
			`{"entityName":"x","max":{"val":1},"min":{"val":1,"fy":2021}}`,
			`{"entityName":"x","max":{"val":"1","fy":2021},"min":{"val":1,"fy":2021}}`,
			`{"max":{"val":1,"fy":2021},"min":{"val":1,"fy":2021}}`,
			`not json`,
			`{"entityName":"x","max":{"val":1,"fy":2021},"min":{"val":1,"fy":2021.5}}`,
			`{"entityName":"x","max":{"val":1,"fy":2021},"min":{"val":1,"fy":2021}}trailing`,
		} {
			_, err := ProcessDefault([]byte(body))
			assert.ErrorIs(t, err, ErrMalformedPayload, body)
		}
	})
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "apple inc", want: "Apple Inc"},
		{in: "JOHNSON & JOHNSON", want: "Johnson & Johnson"},
		{in: "Apple Inc.", want: "Apple Inc."},
		{in: "", want: ""},
		{in: "a  b", want: "A  B"},
		{in: " leading", want: " Leading"},
		{in: "tab\tseparated", want: "Tab\tseparated"},
		{in: "3m co", want: "3m Co"},
		{in: "élan corp", want: "Élan Corp"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleCase(tt.in))
		})
	}
}

func TestExtrema_JSONMatchesDataFile(t *testing.T) {
	e := Extrema{EntityName: "Apple Inc.", Max: obs(2021, 17528214000), Min: obs(2024, 15115785000)}

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"entityName":"Apple Inc.","max":{"val":17528214000,"fy":2021},"min":{"val":15115785000,"fy":2024}}`,
		string(b))

	back, err := ProcessDefault(b)
	require.NoError(t, err)
	assertObservation(t, e.Max, back.Max)
	assertObservation(t, e.Min, back.Min)
}
