package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disqus-client/models"
)

func TestClassifyCallbackAndOptions(t *testing.T) {
	var got []string
	fn1 := func(v int) { got = append(got, "fn1") }

	c := Classify(Call[int]{Success: fn1}, Call[int]{Options: Params{"limit": 5}})

	require.NotNil(t, c.Success)
	assert.Nil(t, c.Failure)
	assert.Equal(t, Params{"limit": 5}, c.Options)

	c.Success(1)
	assert.Equal(t, []string{"fn1"}, got)
}

func TestClassifyFirstOccurrenceWins(t *testing.T) {
	var got []string
	first := func(int) { got = append(got, "first") }
	second := func(int) { got = append(got, "second") }
	fail1 := func(Code) { got = append(got, "fail1") }
	fail2 := func(Code) { got = append(got, "fail2") }

	c := Classify(
		Call[int]{Success: first},
		Call[int]{Failure: fail1, Options: Params{"a": 1}},
		Call[int]{Success: second, Failure: fail2, Options: Params{"b": 2}},
	)

	c.Success(0)
	c.Failure("x")
	assert.Equal(t, []string{"first", "fail1"}, got)
	assert.Equal(t, Params{"a": 1}, c.Options)
}

func TestClassifyNothing(t *testing.T) {
	c := Classify[string]()
	assert.Nil(t, c.Success)
	assert.Nil(t, c.Failure)
	assert.Nil(t, c.Options)

	c = Classify(Call[string]{Options: Params{"limit": 5}})
	assert.Nil(t, c.Success)
	assert.Nil(t, c.Failure)
}

func TestOnSuccess(t *testing.T) {
	called := false
	c := Classify(OnSuccess(func(string) { called = true }))
	c.Success("ok")
	assert.True(t, called)
}

func TestMergeLaterLayersWin(t *testing.T) {
	merged := Merge(
		Params{"api_version": "1.1", "forum_id": "1"},
		Params{"forum_id": "2", "limit": 5},
		nil,
	)
	assert.Equal(t, Params{"api_version": "1.1", "forum_id": "2", "limit": 5}, merged)
	assert.Equal(t, []string{"api_version", "forum_id", "limit"}, merged.Keys())
}

func TestParamsStrings(t *testing.T) {
	since := time.Date(2009, time.March, 30, 17, 41, 0, 0, time.FixedZone("CEST", 2*60*60))
	got, err := Params{
		"limit":      25,
		"shown":      true,
		"thread_ids": []string{"1", "2", "3"},
		"mixed":      []interface{}{1, "b"},
		"since":      since,
		"empty":      nil,
		"forum_id":   models.ID("7"),
	}.Strings()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"limit":      "25",
		"shown":      "true",
		"thread_ids": "1,2,3",
		"mixed":      "1,b",
		"since":      "2009-03-30T15:41",
		"empty":      "",
		"forum_id":   "7",
	}, got)
}

func TestParamsStringsReportsUnencodableValues(t *testing.T) {
	got, err := Params{
		"limit":  5,
		"filter": map[string]string{"status": "new"},
		"author": struct{ Name string }{"g"},
	}.Strings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parameter author")
	assert.Contains(t, err.Error(), "parameter filter")
	assert.Equal(t, map[string]string{"limit": "5"}, got)
}
