package color

// Category groups a color family as warm, cool or neutral.
type Category string

const (
	CategoryWarm    Category = "warm"
	CategoryCool    Category = "cool"
	CategoryNeutral Category = "neutral"
)

// Family is the base color-family label before modifiers.
type Family string

const (
	FamilyBlack       Family = "black"
	FamilyDarkGray    Family = "dark gray"
	FamilyGray        Family = "gray"
	FamilyWhite       Family = "white"
	FamilyRed         Family = "red"
	FamilyRedOrange   Family = "red-orange"
	FamilyOrange      Family = "orange"
	FamilyYellow      Family = "yellow"
	FamilyYellowGreen Family = "yellow-green"
	FamilyGreen       Family = "green"
	FamilyTeal        Family = "teal"
	FamilyCyan        Family = "cyan"
	FamilyBlue        Family = "blue"
	FamilyPurple      Family = "purple"
	FamilyMagenta     Family = "magenta"
	FamilyMixed       Family = "mixed"
)

// Classification pairs a color family with its warm/cool/neutral category.
// The pastel and deep modifiers are kept structured rather than baked into
// a string; Label renders the exact textual form.
type Classification struct {
	Family   Family
	Pastel   bool
	Deep     bool
	Category Category
}

// Label renders the display label with modifier prefixes: pastel
// innermost, deep outermost.
func (c Classification) Label() string {
	label := string(c.Family)
	if c.Pastel {
		label = "pastel " + label
	}
	if c.Deep {
		label = "deep " + label
	}
	return label
}

// Classify assigns a color family and category to an approximate color.
//
// Branch order is load-bearing: later branches are only reached when every
// earlier condition failed, and the thresholds (30, 85, 170, 0.7, 1.5) are
// exact compatibility constants. Black and near-grayscale colors (channel
// spread under 30) return before any hue logic runs and never take the
// pastel/deep modifiers; the remaining colors branch on the strictly
// dominant channel, then on two-way ties at the top. The trailing mixed
// fallback is kept as-is even though integer channels are not known to
// reach it.
func Classify(c RGB) Classification {
	maxVal := max3(c.R, c.G, c.B)
	minVal := min3(c.R, c.G, c.B)

	if maxVal == 0 {
		return Classification{Family: FamilyBlack, Category: CategoryNeutral}
	}

	if maxVal-minVal < 30 {
		switch {
		case maxVal < 85:
			return Classification{Family: FamilyDarkGray, Category: CategoryNeutral}
		case maxVal < 170:
			return Classification{Family: FamilyGray, Category: CategoryNeutral}
		default:
			return Classification{Family: FamilyWhite, Category: CategoryNeutral}
		}
	}

	var cls Classification

	switch {
	case c.R > c.G && c.R > c.B:
		if float64(c.G) > float64(c.B)*1.5 {
			cls.Category = CategoryWarm
			if float64(c.G) > float64(c.R)*0.7 {
				cls.Family = FamilyOrange
			} else {
				cls.Family = FamilyRedOrange
			}
		} else if float64(c.B) > float64(c.R)*0.7 {
			cls = Classification{Family: FamilyMagenta, Category: CategoryCool}
		} else {
			cls = Classification{Family: FamilyRed, Category: CategoryWarm}
		}

	case c.G > c.R && c.G > c.B:
		if float64(c.R) > float64(c.B)*1.5 {
			cls = Classification{Family: FamilyYellowGreen, Category: CategoryWarm}
		} else if float64(c.B) > float64(c.G)*0.7 {
			cls = Classification{Family: FamilyTeal, Category: CategoryCool}
		} else {
			cls = Classification{Family: FamilyGreen, Category: CategoryCool}
		}

	case c.B > c.R && c.B > c.G:
		if float64(c.R) > float64(c.G)*1.5 {
			cls = Classification{Family: FamilyPurple, Category: CategoryCool}
		} else if float64(c.G) > float64(c.B)*0.7 {
			cls = Classification{Family: FamilyCyan, Category: CategoryCool}
		} else {
			cls = Classification{Family: FamilyBlue, Category: CategoryCool}
		}

	case c.R == c.G && c.R > c.B:
		cls = Classification{Family: FamilyYellow, Category: CategoryWarm}

	case c.R == c.B && c.R > c.G:
		cls = Classification{Family: FamilyMagenta, Category: CategoryCool}

	case c.G == c.B && c.G > c.R:
		cls = Classification{Family: FamilyCyan, Category: CategoryCool}

	default:
		cls = Classification{Family: FamilyMixed, Category: CategoryNeutral}
	}

	// Modifiers apply only on the hue path, after the base family.
	// min <= max keeps them mutually exclusive for real inputs.
	if minVal > 170 {
		cls.Pastel = true
	}
	if maxVal < 170 {
		cls.Deep = true
	}

	return cls
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
