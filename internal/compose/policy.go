package compose

// PolicyKind enumerates the mutually exclusive transparency rules a run can
// operate under.
type PolicyKind int

const (
	// NoSpecialTransparency: every covered pixel is blended.
	NoSpecialTransparency PolicyKind = iota
	// UseWatermarkAlpha: watermark pixels with alpha 0 pass the base pixel
	// through unchanged.
	UseWatermarkAlpha
	// ColorKey: watermark pixels whose RGB exactly equals the key color pass
	// the base pixel through unchanged. Alpha is ignored in the comparison.
	ColorKey
)

// String returns a human-readable name for the kind.
func (k PolicyKind) String() string {
	switch k {
	case UseWatermarkAlpha:
		return "watermark alpha"
	case ColorKey:
		return "color key"
	default:
		return "none"
	}
}

// Policy is the transparency rule resolved once per run. Key is meaningful
// only when Kind is ColorKey.
type Policy struct {
	Kind PolicyKind
	Key  RGBColor
}

// NewColorKey validates the three channel values and builds a ColorKey
// policy. Each channel must lie in [0, 255]; the first out-of-range channel
// fails with a RangeError.
func NewColorKey(r, g, b int) (Policy, error) {
	channels := []struct {
		name  string
		value int
	}{
		{"red channel", r},
		{"green channel", g},
		{"blue channel", b},
	}
	for _, ch := range channels {
		if ch.value < 0 || ch.value > 255 {
			return Policy{}, &RangeError{What: ch.name, Value: ch.value, Min: 0, Max: 255}
		}
	}
	return Policy{Kind: ColorKey, Key: RGBColor{R: uint8(r), G: uint8(g), B: uint8(b)}}, nil
}

// BlendWeight is the watermark's contribution to the linear blend, as an
// integer percentage.
type BlendWeight int

// NewBlendWeight validates that the weight lies in [0, 100].
func NewBlendWeight(v int) (BlendWeight, error) {
	if v < 0 || v > 100 {
		return 0, &RangeError{What: "blend weight", Value: v, Min: 0, Max: 100}
	}
	return BlendWeight(v), nil
}

// Prompter supplies the user decisions the policy resolution needs. Each
// method is called at most once per run, and only when the decision is
// relevant. Implementations report input failures through the error return;
// resolution stops at the first error.
type Prompter interface {
	// ConfirmAlpha asks whether the watermark's own alpha channel should be
	// honored. Called only when the watermark actually uses transparency.
	ConfirmAlpha() (bool, error)

	// ConfirmColorKey asks whether a single RGB color should be treated as
	// fully transparent.
	ConfirmColorKey() (bool, error)

	// ReadColorKey reads the key color's red, green and blue values. Range
	// validation happens in the resolver, not here.
	ReadColorKey() (r, g, b int, err error)
}

// ResolvePolicy walks the transparency decision tree for a watermark with
// the given alpha classification.
//
// A watermark that uses its alpha channel is first offered alpha-based
// transparency. Declining it, or having no usable alpha at all, leads to the
// color key question; declining that as well yields NoSpecialTransparency.
// Exactly one policy is active per run.
func ResolvePolicy(class AlphaClass, p Prompter) (Policy, error) {
	if class.UsesTransparency() {
		honor, err := p.ConfirmAlpha()
		if err != nil {
			return Policy{}, err
		}
		if honor {
			return Policy{Kind: UseWatermarkAlpha}, nil
		}
	}

	useKey, err := p.ConfirmColorKey()
	if err != nil {
		return Policy{}, err
	}
	if !useKey {
		return Policy{Kind: NoSpecialTransparency}, nil
	}

	r, g, b, err := p.ReadColorKey()
	if err != nil {
		return Policy{}, err
	}
	return NewColorKey(r, g, b)
}
