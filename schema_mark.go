package vegalite

// MarkDef is the object form of a primitive mark.
type MarkDef struct {
	Align            *Align        `json:"align,omitempty"`
	Angle            *float64      `json:"angle,omitempty"`
	Baseline         *Baseline     `json:"baseline,omitempty"`
	BinSpacing       *float64      `json:"binSpacing,omitempty"`
	Clip             *bool         `json:"clip,omitempty"`
	Color            *string       `json:"color,omitempty"`
	CornerRadius     *float64      `json:"cornerRadius,omitempty"`
	Cursor           *string       `json:"cursor,omitempty"`
	DX               *float64      `json:"dx,omitempty"`
	DY               *float64      `json:"dy,omitempty"`
	Fill             *string       `json:"fill,omitempty"`
	Filled           *bool         `json:"filled,omitempty"`
	FillOpacity      *float64      `json:"fillOpacity,omitempty"`
	Font             *string       `json:"font,omitempty"`
	FontSize         *float64      `json:"fontSize,omitempty"`
	FontStyle        *string       `json:"fontStyle,omitempty"`
	FontWeight       FontWeight    `json:"fontWeight,omitempty"`
	Href             *string       `json:"href,omitempty"`
	Interpolate      *Interpolate  `json:"interpolate,omitempty"`
	Line             any           `json:"line,omitempty"`
	Opacity          *float64      `json:"opacity,omitempty"`
	Orient           *Orient       `json:"orient,omitempty"`
	Point            any           `json:"point,omitempty"`
	Radius           *float64      `json:"radius,omitempty"`
	Shape            *string       `json:"shape,omitempty"`
	Size             *float64      `json:"size,omitempty"`
	Stroke           *string       `json:"stroke,omitempty"`
	StrokeCap        *string       `json:"strokeCap,omitempty"`
	StrokeDash       []float64     `json:"strokeDash,omitempty"`
	StrokeDashOffset *float64      `json:"strokeDashOffset,omitempty"`
	StrokeJoin       *string       `json:"strokeJoin,omitempty"`
	StrokeMiterLimit *float64      `json:"strokeMiterLimit,omitempty"`
	StrokeOpacity    *float64      `json:"strokeOpacity,omitempty"`
	StrokeWidth      *float64      `json:"strokeWidth,omitempty"`
	Style            StringOrArray `json:"style,omitempty"`
	Tension          *float64      `json:"tension,omitempty"`
	Text             *string       `json:"text,omitempty"`
	Theta            *float64      `json:"theta,omitempty"`
	Thickness        *float64      `json:"thickness,omitempty"`
	// Tooltip is a plain JSON value: true, an object, or a channel map.
	Tooltip Removable[any] `json:"tooltip,omitempty"`
	Type    Mark           `json:"type" vl:"required"`
}

// CompositeMarkDef is the object form of a box plot, error bar or error band.
type CompositeMarkDef struct {
	Band     any           `json:"band,omitempty"`
	Borders  any           `json:"borders,omitempty"`
	Box      any           `json:"box,omitempty"`
	Clip     *bool         `json:"clip,omitempty"`
	Color    *string       `json:"color,omitempty"`
	Extent   Extent        `json:"extent,omitempty"`
	Median   any           `json:"median,omitempty"`
	Opacity  *float64      `json:"opacity,omitempty"`
	Orient   *Orient       `json:"orient,omitempty"`
	Outliers any           `json:"outliers,omitempty"`
	Rule     any           `json:"rule,omitempty"`
	Size     *float64      `json:"size,omitempty"`
	Ticks    any           `json:"ticks,omitempty"`
	Type     CompositeMark `json:"type" vl:"required"`
}
