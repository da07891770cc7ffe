package scatter

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func ParseAxis(str string) (Axis, error) {
	switch str {
	case "horizontal", "x":
		return Horizontal, nil
	case "vertical", "y":
		return Vertical, nil
	default:
		return 0, ErrUnknownAxis
	}
}

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

type ChangeFunc func(Axis, Attribute)

// Control is one dropdown as displayed to the user.
type Control struct {
	Name     string
	Label    string
	Options  []Attribute
	Selected Attribute
}

// Selector binds the two axis dropdowns. The displayed values are set by the
// caller; a change is only forwarded to OnChange.
type Selector struct {
	Horizontal Attribute
	Vertical   Attribute
	Options    []Attribute
	OnChange   ChangeFunc
}

func (s Selector) Controls() []Control {
	opts := s.Options
	if len(opts) == 0 {
		opts = Attributes
	}
	return []Control{
		{
			Name:     Horizontal.String(),
			Label:    "Horizontal Axis",
			Options:  opts,
			Selected: s.Horizontal,
		},
		{
			Name:     Vertical.String(),
			Label:    "Vertical Axis",
			Options:  opts,
			Selected: s.Vertical,
		},
	}
}

func (s Selector) Change(name, value string) error {
	axis, err := ParseAxis(name)
	if err != nil {
		return err
	}
	attr, err := s.parse(value)
	if err != nil {
		return err
	}
	if s.OnChange != nil {
		s.OnChange(axis, attr)
	}
	return nil
}

func (s Selector) parse(value string) (Attribute, error) {
	if len(s.Options) == 0 {
		return ParseAttribute(value)
	}
	for _, a := range s.Options {
		if string(a) == value {
			return a, nil
		}
	}
	return "", ErrUnknownAttribute
}
