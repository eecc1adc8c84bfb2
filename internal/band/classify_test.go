package band

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"archive2svg/internal/dataset"
)

func article(klima, politikk string) dataset.Article {
	return dataset.Article{
		ID:      "a",
		Matches: map[string]string{"klima": klima, "politikk": politikk},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		article dataset.Article
		filters Filters
		want    Class
	}{
		{"NoFilter", article("klima", "politikk"), Filters{}, None},
		{"BothMatch", article("klima", "politikk"), Filters{KeywordOne: "klima", KeywordTwo: "politikk"}, Both},
		{"OnlyFirst", article("klima", dataset.NoMatch), Filters{KeywordOne: "klima", KeywordTwo: "politikk"}, KeywordOne},
		{"OnlySecond", article(dataset.NoMatch, "politiske"), Filters{KeywordOne: "klima", KeywordTwo: "politikk"}, KeywordTwo},
		{"Neither", article(dataset.NoMatch, dataset.NoMatch), Filters{KeywordOne: "klima", KeywordTwo: "politikk"}, Dimmed},
		{"SecondSlotOnly", article(dataset.NoMatch, "politikk"), Filters{KeywordTwo: "politikk"}, KeywordTwo},
		{"SecondSlotOnlyMiss", article("klima", dataset.NoMatch), Filters{KeywordTwo: "politikk"}, Dimmed},
		{"UnknownKeyword", article("klima", "politikk"), Filters{KeywordOne: "isbjørn"}, Dimmed},
		{"EmptyValue", article("", ""), Filters{KeywordOne: "klima"}, Dimmed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.article, tt.filters))
		})
	}
}

func TestNoMatchIsDimmed(t *testing.T) {
	a := article(dataset.NoMatch, dataset.NoMatch)
	class := Classify(a, Filters{KeywordOne: "klima"})

	assert.Equal(t, Dimmed, class)
	assert.False(t, class.Highlighted())
	assert.Less(t, DefaultOpacity.For(class), DefaultOpacity.For(KeywordOne))
}

func TestOpacityTiers(t *testing.T) {
	assert.Equal(t, 0.7, DefaultOpacity.For(None))
	assert.Equal(t, 0.8, DefaultOpacity.For(KeywordOne))
	assert.Equal(t, 0.8, DefaultOpacity.For(KeywordTwo))
	assert.Equal(t, 0.8, DefaultOpacity.For(Both))
	assert.Equal(t, 0.25, DefaultOpacity.For(Dimmed))
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "keyword-one", KeywordOne.String())
	assert.Equal(t, "dimmed", Dimmed.String())
	assert.Equal(t, "unknown", Class(42).String())
	assert.True(t, Both.Highlighted())
	assert.False(t, None.Highlighted())
}
