package vegalite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	vegalite "github.com/reoring/vegalite"
)

func TestDateTime_RoundTrip(t *testing.T) {
	at := time.Date(2019, time.March, 14, 15, 9, 26, 535*int(time.Millisecond), time.UTC)
	dt := vegalite.DateTimeOf(at)
	out, err := vegalite.Marshal(dt)
	require.NoError(t, err)
	require.Equal(t, `{"date":14,"hours":15,"milliseconds":535,"minutes":9,"month":3,"seconds":26,"utc":true,"year":2019}`, string(out))

	back, err := dt.Time(time.Local)
	require.NoError(t, err)
	require.True(t, at.Equal(back))
	require.Equal(t, time.UTC, back.Location())
}

func TestDateTime_Defaults(t *testing.T) {
	dt := vegalite.DateTime{Year: vegalite.Ptr(2012.0), Quarter: vegalite.Ptr(3.0)}
	got, err := dt.Time(time.UTC)
	require.NoError(t, err)
	require.Equal(t, time.Date(2012, time.July, 1, 0, 0, 0, 0, time.UTC), got)

	dt = vegalite.DateTime{Year: vegalite.Ptr(2012.0), Month: vegalite.String("Feb"), Date: vegalite.Ptr(29.0)}
	got, err = dt.Time(time.UTC)
	require.NoError(t, err)
	require.Equal(t, time.Date(2012, time.February, 29, 0, 0, 0, 0, time.UTC), got)
}

func TestDateTime_Errors(t *testing.T) {
	_, err := vegalite.DateTime{}.Time(time.UTC)
	iss, ok := vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, "/year", iss[0].Path)

	_, err = vegalite.DateTime{Year: vegalite.Ptr(2000.0), Month: vegalite.String("Smarch")}.Time(time.UTC)
	iss, ok = vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, "/month", iss[0].Path)

	_, err = vegalite.ParseDateTime("yesterday")
	iss, ok = vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vegalite.CodeInvalidType, iss[0].Code)
	require.NotNil(t, iss[0].Cause)
}

func TestDateTime_OutOfRangeParts(t *testing.T) {
	cases := []struct {
		name string
		dt   vegalite.DateTime
		path string
	}{
		{"quarter zero", vegalite.DateTime{Year: vegalite.Ptr(2000.0), Quarter: vegalite.Ptr(0.0)}, "/quarter"},
		{"quarter five", vegalite.DateTime{Year: vegalite.Ptr(2000.0), Quarter: vegalite.Ptr(5.0)}, "/quarter"},
		{"fractional quarter", vegalite.DateTime{Year: vegalite.Ptr(2000.0), Quarter: vegalite.Ptr(2.5)}, "/quarter"},
		{"month thirteen", vegalite.DateTime{Year: vegalite.Ptr(2000.0), Month: vegalite.Number(13)}, "/month"},
		{"fractional month", vegalite.DateTime{Year: vegalite.Ptr(2000.0), Month: vegalite.Number(1.5)}, "/month"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.dt.Time(time.UTC)
			iss, ok := vegalite.AsIssues(err)
			require.True(t, ok)
			require.Equal(t, vegalite.CodeInvalidType, iss[0].Code)
			require.Equal(t, tc.path, iss[0].Path)
		})
	}

	got, err := vegalite.DateTime{Year: vegalite.Ptr(2000.0), Quarter: vegalite.Ptr(4.0)}.Time(time.UTC)
	require.NoError(t, err)
	require.Equal(t, time.October, got.Month())
}

func TestParseDateTime(t *testing.T) {
	dt, err := vegalite.ParseDateTime("2020-01-02T03:04:05+09:00")
	require.NoError(t, err)
	require.Equal(t, 2020.0, *dt.Year)
	require.Equal(t, vegalite.Value(vegalite.Number(1)), dt.Month)
	require.Equal(t, 1.0, *dt.Date)
	require.Equal(t, 18.0, *dt.Hours)
	require.True(t, *dt.Utc)

	// DateTime is a predicate value alternative.
	p, err := vegalite.NewFieldEqualPredicateBuilder().Field("when").Equal(dt).Build()
	require.NoError(t, err)
	out, err := vegalite.Marshal(p)
	require.NoError(t, err)
	require.Contains(t, string(out), `"equal":{"date":1,"hours":18,`)
}
