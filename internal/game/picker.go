package game

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sort"
)

// Picker chooses an index in [0, n). Secret selection goes through a Picker
// so tests and the daily mode can pin it.
type Picker interface {
	Intn(n int) int
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) int

func (f PickerFunc) Intn(n int) int { return f(n) }

// NewRandPicker returns a seeded, reproducible picker.
func NewRandPicker(seed uint64) Picker {
	r := mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return PickerFunc(r.IntN)
}

// NewCryptoPicker returns a picker backed by crypto/rand.
func NewCryptoPicker() Picker {
	return PickerFunc(func(n int) int {
		v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
		if err != nil {
			return mrand.IntN(n)
		}
		return int(v.Int64())
	})
}

// FixedPicker replays the given indices in order, wrapping around.
// Each index is reduced modulo n.
type FixedPicker struct {
	Indices []int
	next    int
}

func (p *FixedPicker) Intn(n int) int {
	if len(p.Indices) == 0 {
		return 0
	}
	v := p.Indices[p.next%len(p.Indices)]
	p.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// pickSecrets draws count distinct words from candidates. The candidates are
// copied and sorted first so a seeded picker gives the same words no matter
// what order the source returned them in.
func pickSecrets(candidates []string, count int, p Picker) ([]string, error) {
	pool := uniqueSorted(candidates)
	if len(pool) < count {
		return nil, ErrNotEnoughCandidates
	}
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		j := p.Intn(len(pool))
		out = append(out, pool[j])
		pool[j] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return out, nil
}

func uniqueSorted(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	n := 0
	for i, w := range out {
		if i > 0 && w == out[n-1] {
			continue
		}
		out[n] = w
		n++
	}
	return out[:n]
}
