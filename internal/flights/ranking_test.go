package flights

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offer(id, depart string, price float64) domain.Flight {
	return domain.Flight{ID: id, DepartTime: depart, Price: price}
}

func ids(flights []domain.Flight) []string {
	out := make([]string, len(flights))
	for i, f := range flights {
		out[i] = f.ID
	}
	return out
}

func TestRank_CheapestAscending(t *testing.T) {
	in := []domain.Flight{
		offer("a", "07:00", 4500),
		offer("b", "14:00", 6200),
		offer("c", "20:15", 3800),
	}

	got := Rank(in, domain.PreferenceCheapest)

	assert.Equal(t, []string{"c", "a", "b"}, ids(got))
	assert.Equal(t, []string{"a", "b", "c"}, ids(in), "input must not be reordered")
}

func TestRank_GoodTimingDaytimeFirst(t *testing.T) {
	in := []domain.Flight{
		offer("early-cheap", "05:30", 1000),
		offer("noon", "12:00", 5000),
		offer("late", "22:10", 900),
		offer("evening", "20:45", 4000),
		offer("missing", "", 4500),
	}

	got := Rank(in, domain.PreferenceGoodTiming)

	assert.Equal(t, []string{"evening", "missing", "noon", "late", "early-cheap"}, ids(got))
}

func TestRank_EqualKeysKeepInputOrder(t *testing.T) {
	in := []domain.Flight{
		offer("first", "09:00", 3000),
		offer("second", "10:00", 3000),
		offer("third", "11:00", 3000),
	}

	assert.Equal(t, []string{"first", "second", "third"}, ids(Rank(in, domain.PreferenceCheapest)))
	assert.Equal(t, []string{"first", "second", "third"}, ids(Rank(in, domain.PreferenceGoodTiming)))
}

func TestRank_Empty(t *testing.T) {
	got := Rank(nil, domain.PreferenceCheapest)
	assert.Empty(t, got)
}

func TestDepartureHour(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want int
	}{
		{"07:00", 7},
		{"20:59", 20},
		{"7:05 PM", 19},
		{"12:30 AM", 0},
		{"2024-04-01T06:45:00", 6},
		{"2024-04-01 21:10", 21},
		{"", 12},
		{"N/A", 12},
		{"99:00", 12},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DepartureHour(tc.in), tc.in)
	}
}

func randomOffers(rng *rand.Rand) []domain.Flight {
	n := rng.Intn(12)
	out := make([]domain.Flight, n)
	for i := range out {
		depart := fmt.Sprintf("%02d:%02d", rng.Intn(24), rng.Intn(60))
		if rng.Intn(6) == 0 {
			depart = ""
		}
		out[i] = offer(fmt.Sprintf("f%d", i), depart, float64(rng.Intn(5))*1000)
	}
	return out
}

func TestRank_Invariants_Cheapest(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 300; trial++ {
		in := randomOffers(rng)
		got := Rank(in, domain.PreferenceCheapest)
		require.Len(t, got, len(in))
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].Price, got[i].Price, "trial %d", trial)
		}
	}
}

func TestRank_Invariants_GoodTiming(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 300; trial++ {
		in := randomOffers(rng)
		got := Rank(in, domain.PreferenceGoodTiming)
		require.Len(t, got, len(in))

		pos := make(map[string]int, len(in))
		for i, f := range in {
			pos[f.ID] = i
		}
		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			sp, sc := DaytimeScore(prev.DepartTime), DaytimeScore(cur.DepartTime)
			assert.LessOrEqual(t, sp, sc, "trial %d: daytime tier must come first", trial)
			if sp == sc {
				assert.LessOrEqual(t, prev.Price, cur.Price, "trial %d: price within tier", trial)
				if prev.Price == cur.Price {
					assert.Less(t, pos[prev.ID], pos[cur.ID], "trial %d: stable order", trial)
				}
			}
		}
	}
}
