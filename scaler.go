package scatter

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

const (
	DefaultTicks = 10
	maxNiceIter  = 10
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

type Domain struct {
	F float64
	T float64
}

func NumberDomain(f, t float64) Domain {
	return Domain{
		F: f,
		T: t,
	}
}

// ExtentOf returns the domain covered by the values of attr across all
// records. NaN and infinite values are ignored. A domain without values is [0, 1] and a
// single value v gives [v-0.5, v+0.5].
func ExtentOf(records []Record, attr Attribute) Domain {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		v := r.Get(attr)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return NumberDomain(0, 1)
	}
	f, t := stats.Bounds(values)
	if f == t {
		return NumberDomain(f-0.5, t+0.5)
	}
	return NumberDomain(f, t)
}

func (d Domain) Extend() float64 {
	return d.T - d.F
}

func (d Domain) Diff(v float64) float64 {
	return v - d.F
}

func (d Domain) Contains(v float64) bool {
	return v >= d.F && v <= d.T
}

// Nice expands the domain to round boundaries so that the ticks generated
// for count fall on its bounds. The order of the bounds is kept. When no
// stable step is found, the domain is returned unchanged.
func (d Domain) Nice(count int) Domain {
	var (
		start   = d.F
		stop    = d.T
		reverse = stop < start
		prev    float64
	)
	if reverse {
		start, stop = stop, start
	}
	for i := 0; i < maxNiceIter; i++ {
		step := tickIncrement(start, stop, count)
		switch {
		case step == 0:
			return d
		case step == prev:
			start, stop = positiveZero(start), positiveZero(stop)
			if reverse {
				return NumberDomain(stop, start)
			}
			return NumberDomain(start, stop)
		case step > 0:
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		default:
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		}
		prev = step
	}
	return d
}

// Ticks returns roughly count values in the domain, spaced by 1, 2 or 5
// times a power of ten.
func (d Domain) Ticks(count int) []float64 {
	if count <= 0 || math.IsNaN(d.F) || math.IsNaN(d.T) {
		return nil
	}
	if d.F == d.T {
		return []float64{d.F}
	}
	start, stop := d.F, d.T
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, float64(count))
	if i2 < i1 {
		return nil
	}
	all := make([]float64, 0, int(i2-i1)+1)
	for i := i1; i <= i2; i++ {
		var v float64
		if inc < 0 {
			v = i / -inc
		} else {
			v = i * inc
		}
		all = append(all, positiveZero(v))
	}
	if reverse {
		for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
			all[i], all[j] = all[j], all[i]
		}
	}
	return all
}

func tickIncrement(start, stop float64, count int) float64 {
	var (
		step   = (stop - start) / math.Max(0, float64(count))
		power  = magnitude(step)
		factor = stepFactor(step / math.Pow(10, power))
	)
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return 0
	}
	if power >= 0 {
		return math.Pow(10, power) * factor
	}
	return -math.Pow(10, -power) / factor
}

func tickSpec(start, stop, count float64) (float64, float64, float64) {
	var (
		step   = (stop - start) / math.Max(0, count)
		power  = magnitude(step)
		factor = stepFactor(step / math.Pow(10, power))
		i1, i2 float64
		inc    float64
	)
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && count >= 0.5 && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// magnitude returns the power of ten of v, guarding against the rounding of
// math.Log10 around exact powers.
func magnitude(v float64) float64 {
	p := math.Floor(math.Log10(v))
	switch {
	case math.IsNaN(p) || math.IsInf(p, 0):
		return p
	case math.Pow(10, p+1) <= v:
		p++
	case math.Pow(10, p) > v:
		p--
	}
	return p
}

func stepFactor(err float64) float64 {
	switch {
	case err >= e10:
		return 10
	case err >= e5:
		return 5
	case err >= e2:
		return 2
	default:
		return 1
	}
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

// Scaler maps values of a numeric domain linearly onto a pixel range.
type Scaler struct {
	Range
	Domain Domain
	Count  int
}

// NewScaler builds the scale of attr over records: the extent of the values
// niced for DefaultTicks and mapped onto rg.
func NewScaler(records []Record, attr Attribute, rg Range) Scaler {
	return NumberScaler(ExtentOf(records, attr), rg, DefaultTicks)
}

func NumberScaler(dom Domain, rg Range, count int) Scaler {
	if count <= 0 {
		count = DefaultTicks
	}
	if dom.Extend() == 0 {
		dom = NumberDomain(dom.F-0.5, dom.T+0.5)
	}
	return Scaler{
		Range:  rg,
		Domain: dom.Nice(count),
		Count:  count,
	}
}

func (s Scaler) Scale(v float64) float64 {
	return s.F + s.Domain.Diff(v)*s.Space()
}

func (s Scaler) Space() float64 {
	ext := s.Domain.Extend()
	if ext == 0 {
		return 0
	}
	return s.Len() / ext
}

func (s Scaler) Ticks() []float64 {
	return s.Domain.Ticks(s.Count)
}

