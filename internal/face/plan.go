package face

import "strconv"

// Kind is the draw primitive a renderer must emit.
type Kind int

const (
	KindDisc    Kind = iota // filled circle: Center, Radius, Fill
	KindRing                // stroked circle: Center, Radius, Stroke
	KindSegment             // line: From, To, Stroke
	KindNumeral             // text: Text, Center, Baseline, Font, Size, Fill
)

func (k Kind) String() string {
	switch k {
	case KindDisc:
		return "disc"
	case KindRing:
		return "ring"
	case KindSegment:
		return "segment"
	case KindNumeral:
		return "numeral"
	default:
		return "unknown"
	}
}

// Role says which part of the face a primitive belongs to.
type Role int

const (
	RoleFace Role = iota
	RoleBezel
	RoleDot
	RoleHourHand
	RoleMinuteHand
	RoleSecondHand
	RoleNumeral
)

func (r Role) String() string {
	switch r {
	case RoleFace:
		return "face"
	case RoleBezel:
		return "bezel"
	case RoleDot:
		return "dot"
	case RoleHourHand:
		return "hour"
	case RoleMinuteHand:
		return "minute"
	case RoleSecondHand:
		return "second"
	case RoleNumeral:
		return "numeral"
	default:
		return "unknown"
	}
}

// Shadow is an offset, optionally blurred copy drawn under a stroke.
type Shadow struct {
	DX, DY float64
	Blur   float64
	Color  ARGB
}

// Stroke is the complete style of one stroked primitive. Every primitive
// carries its own value; nothing is shared between draw calls.
type Stroke struct {
	Width  float64
	Color  ARGB
	Shadow *Shadow
}

// Primitive is one draw call. Which fields matter depends on Kind.
type Primitive struct {
	Kind Kind
	Role Role

	Center Point
	Radius float64

	From, To Point

	Text     string
	Font     string
	Size     float64
	Baseline float64

	Fill   ARGB
	Stroke Stroke
}

// Plan is the ordered list of primitives for one frame. Renderers draw it
// front to back in index order.
type Plan []Primitive

// PlanLen is the number of primitives Build always returns:
// face, bezel, 60 dots, 3 hands of 2 segments, 12 numerals.
const PlanLen = 1 + 1 + dotCount + 3*2 + 12

// ByRole returns the primitives with the given role, in draw order.
func (p Plan) ByRole(role Role) []Primitive {
	var out []Primitive
	for _, prim := range p {
		if prim.Role == role {
			out = append(out, prim)
		}
	}
	return out
}

type handSpec struct {
	role  Role
	angle func(TimeOfDay) float64
	front float64
	back  float64
	width float64
}

// hands are drawn hour, minute, second; lengths and widths relative to
// the face radius.
var hands = [...]handSpec{
	{RoleHourHand, HourAngle, 0.5, 0.1, 0.03},
	{RoleMinuteHand, MinuteAngle, 0.7, 0.2, 0.02},
	{RoleSecondHand, SecondAngle, 0.9, 0.3, 0.01},
}

// Build lays out a w x h face showing t in style s.
//
// Order: background disc, bezel ring, 60 tick dots, hour hand, minute
// hand, second hand, numerals 1 to 12. The result always has PlanLen
// entries in that order, whatever the size, so renderers may map
// primitives to long-lived objects by index.
func Build(w, h float64, t TimeOfDay, s FaceStyle) Plan {
	g := GeometryFor(w, h)
	r := g.Radius
	center := g.Center()
	shadowColor := Darken(s.Bezel)

	plan := make(Plan, 0, PlanLen)

	plan = append(plan, Primitive{
		Kind:   KindDisc,
		Role:   RoleFace,
		Center: center,
		Radius: r,
		Fill:   s.Background,
	})

	plan = append(plan, Primitive{
		Kind:   KindRing,
		Role:   RoleBezel,
		Center: center,
		Radius: r,
		Stroke: Stroke{
			Width: r * bezelWidth,
			Color: s.Bezel,
			Shadow: &Shadow{
				DX:    r * bezelShadowOffset,
				DY:    r * bezelShadowOffset,
				Blur:  r * bezelShadowBlur,
				Color: shadowColor,
			},
		},
	})

	for i := 0; i < dotCount; i++ {
		plan = append(plan, Primitive{
			Kind:   KindDisc,
			Role:   RoleDot,
			Center: DotPoint(g, i),
			Radius: r * dotRadius,
			Fill:   s.Hand,
		})
	}

	for _, hs := range hands {
		deg := hs.angle(t)
		stroke := Stroke{
			Width: r * hs.width,
			Color: s.Hand,
			Shadow: &Shadow{
				DX:    r * handShadowOffset,
				DY:    r * handShadowOffset,
				Blur:  r * handShadowBlur,
				Color: shadowColor,
			},
		}
		plan = append(plan,
			Primitive{
				Kind:   KindSegment,
				Role:   hs.role,
				From:   center,
				To:     HandPoint(g, deg, r*hs.front),
				Stroke: stroke,
			},
			Primitive{
				Kind:   KindSegment,
				Role:   hs.role,
				From:   center,
				To:     HandPoint(g, CounterweightAngle(deg), r*hs.back),
				Stroke: stroke,
			},
		)
	}

	size := s.NumeralSizeFor(w, h)
	for i := 1; i <= 12; i++ {
		at := NumeralPoint(w, h, i)
		plan = append(plan, Primitive{
			Kind:     KindNumeral,
			Role:     RoleNumeral,
			Center:   at,
			Text:     strconv.Itoa(i),
			Font:     s.NumeralFont,
			Size:     size,
			Baseline: at.Y + NumeralBaselineOffset(size),
			Fill:     s.Hand,
		})
	}

	return plan
}
