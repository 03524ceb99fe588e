package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimtools/dimctl/dim"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "simple comparison", expression: "Year < 2000"},
		{name: "boolean combination", expression: `Rating >= 7 and MediaType == "movie"`},
		{name: "helper call", expression: `contains(Name, "alien")`},
		{name: "empty expression", expression: "  ", wantErr: true},
		{name: "syntax error", expression: "Year <", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expression)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	item := dim.MediaItem{
		ID:        1,
		Name:      "Alien",
		MediaType: dim.MediaTypeMovie,
		Year:      1979,
		Rating:    8.4,
		Genres:    []string{"Horror", "Science Fiction"},
	}

	tests := []struct {
		expression string
		want       bool
	}{
		{expression: "Year < 2000", want: true},
		{expression: "Year > 2000", want: false},
		{expression: `MediaType == "movie" and Rating >= 8`, want: true},
		{expression: `contains(Name, "ALIEN")`, want: true},
		{expression: `hasGenre(Genres, "horror")`, want: true},
		{expression: `hasGenre(Genres, "comedy")`, want: false},
		{expression: `startsWith(Name, "al") and endsWith(Name, "en")`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := f.Match(item)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	items := []dim.MediaItem{
		{Name: "Alien", Year: 1979},
		{Name: "Aliens", Year: 1986},
		{Name: "Alien: Covenant", Year: 2017},
	}

	f, err := Compile("Year < 2000")
	require.NoError(t, err)

	matched, err := f.Apply(items)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Alien", matched[0].Name)
	assert.Equal(t, "Aliens", matched[1].Name)
}
