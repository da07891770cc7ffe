package scatter

import (
	"math"
)

type Attribute string

const (
	SepalLength Attribute = "sepalLength"
	SepalWidth  Attribute = "sepalWidth"
	PetalLength Attribute = "petalLength"
	PetalWidth  Attribute = "petalWidth"
)

// Attributes lists the fields that can be bound to an axis, in the order
// they are offered to the user.
var Attributes = []Attribute{
	SepalLength,
	SepalWidth,
	PetalLength,
	PetalWidth,
}

func ParseAttribute(str string) (Attribute, error) {
	for _, a := range Attributes {
		if string(a) == str {
			return a, nil
		}
	}
	return "", ErrUnknownAttribute
}

func (a Attribute) String() string {
	return string(a)
}

type Record struct {
	Species string
	Values  map[Attribute]float64
}

func NewRecord(species string, values map[Attribute]float64) Record {
	r := Record{
		Species: species,
		Values:  make(map[Attribute]float64, len(values)),
	}
	for k, v := range values {
		r.Values[k] = v
	}
	return r
}

// Get returns the value of attr, NaN when the record does not have it.
func (r Record) Get(attr Attribute) float64 {
	v, ok := r.Values[attr]
	if !ok {
		return math.NaN()
	}
	return v
}
