package dataset

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/midbel/scatter"
	"github.com/tidwall/gjson"
)

const speciesField = "species"

var ErrMalformed = errors.New("malformed dataset")

// Decode reads a JSON array of objects into records. Fields are not
// validated: a missing or non numeric attribute gives NaN and a missing
// species the empty label. Elements that are not objects are skipped.
func Decode(data []byte) ([]scatter.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformed
	}
	res := gjson.ParseBytes(data)
	if !res.IsArray() {
		return nil, ErrMalformed
	}
	var list []scatter.Record
	res.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		list = append(list, decodeRecord(item))
		return true
	})
	return list, nil
}

func decodeRecord(item gjson.Result) scatter.Record {
	values := make(map[scatter.Attribute]float64, len(scatter.Attributes))
	for _, a := range scatter.Attributes {
		values[a] = getNumber(item.Get(string(a)))
	}
	return scatter.NewRecord(item.Get(speciesField).String(), values)
}

// getNumber gives NaN for anything that is not a finite number, including
// "Infinity" and numbers out of the float64 range.
func getNumber(res gjson.Result) float64 {
	var f float64
	switch res.Type {
	case gjson.Number:
		f = res.Num
	case gjson.String:
		v, err := strconv.ParseFloat(strings.TrimSpace(res.Str), 64)
		if err != nil {
			return math.NaN()
		}
		f = v
	default:
		return math.NaN()
	}
	if math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}
