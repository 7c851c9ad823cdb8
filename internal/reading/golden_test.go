package reading

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"sovhud/internal/catalog"
	"sovhud/internal/journal"
)

// Golden coverage for the full four-paragraph output. Byte-identical
// output for identical entries is part of the contract; regenerate with
// go test -update after intentional text changes.
func TestGenerate_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	cat := catalog.Default()

	t.Run("recovery_arc", func(t *testing.T) {
		entries := seq(
			sovChange(70, 25),
			journal.Entry{Type: journal.TypeSkill, Action: "walling", Intensity: journal.IntensityHigh,
				Note: "said no to the extra project"},
			func() journal.Entry {
				e := sovChange(25, 60)
				e.Note = "rested and better"
				return e
			}(),
		)
		g.Assert(t, "recovery_arc", []byte(Generate(entries, cat)))
	})

	t.Run("crisis_arc", func(t *testing.T) {
		entries := seq(
			sovChange(80, 50),
			func() journal.Entry {
				e := sovChange(50, 15)
				e.Note = "this is awful, I am drowning"
				return e
			}(),
		)
		g.Assert(t, "crisis_arc", []byte(Generate(entries, cat)))
	})
}
