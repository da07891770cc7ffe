package scatter

import (
	"fmt"
	"strings"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func PaletteByName(name string) (Palette, error) {
	switch strings.ToLower(name) {
	case "category10", "":
		return Category10, nil
	case "tableau10":
		return Tableau10, nil
	default:
		return nil, fmt.Errorf("%s: unknown palette", name)
	}
}

// Color returns the i-th colour of the palette, cycling when i goes past its
// end.
func (p Palette) Color(i int) string {
	if len(p) == 0 {
		return "black"
	}
	return p[i%len(p)]
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}
