// Package catalog builds the theme and template reference data offered when
// a visitor claims a canvas.
package catalog

const (
	// VariantBaseCount is how many base themes receive an atelier variant.
	VariantBaseCount = 20
	// FeaturedCount is how many base themes are featured.
	FeaturedCount = 6

	variantIDSuffix   = "-atelier"
	variantNameSuffix = " Atelier"
	variantDescSuffix = " Atelier variation with deeper signal contrast."
)

type ThemeSeed struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Accent      string `json:"accent"`
	Preview     string `json:"preview"`
	Atmosphere  string `json:"atmosphere"`
}

type TemplateSeed struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Accent      string `json:"accent"`
	Preview     string `json:"preview"`
	Category    string `json:"category"`
}

type Catalog struct {
	Themes    []ThemeSeed    `json:"themes"`
	Templates []TemplateSeed `json:"templates"`
	Featured  []ThemeSeed    `json:"featured"`
}

// Variant derives the atelier variant of a base theme.
func Variant(base ThemeSeed) ThemeSeed {
	v := base
	v.ID = base.ID + variantIDSuffix
	v.Name = base.Name + variantNameSuffix
	v.Description = base.Description + variantDescSuffix
	return v
}

// Expand returns the bases followed by one variant for each of the first
// VariantBaseCount bases, in base order.
func Expand(bases []ThemeSeed) []ThemeSeed {
	n := len(bases)
	if n > VariantBaseCount {
		n = VariantBaseCount
	}

	out := make([]ThemeSeed, 0, len(bases)+n)
	out = append(out, bases...)
	for _, b := range bases[:n] {
		out = append(out, Variant(b))
	}
	return out
}

// Featured returns the first FeaturedCount entries of the base list.
func Featured(bases []ThemeSeed) []ThemeSeed {
	n := len(bases)
	if n > FeaturedCount {
		n = FeaturedCount
	}
	out := make([]ThemeSeed, n)
	copy(out, bases[:n])
	return out
}

// Build assembles the full catalog from the built-in seeds.
func Build() Catalog {
	return buildFrom(baseThemes, templates)
}

func buildFrom(bases []ThemeSeed, tpls []TemplateSeed) Catalog {
	t := make([]TemplateSeed, len(tpls))
	copy(t, tpls)
	return Catalog{
		Themes:    Expand(bases),
		Templates: t,
		Featured:  Featured(bases),
	}
}

// BaseThemes returns a copy of the built-in base seeds.
func BaseThemes() []ThemeSeed {
	out := make([]ThemeSeed, len(baseThemes))
	copy(out, baseThemes)
	return out
}

// HasTheme reports whether id names a theme in the expanded catalog.
func HasTheme(id string) bool {
	for _, t := range Expand(baseThemes) {
		if t.ID == id {
			return true
		}
	}
	return false
}
