package vegalite

// Axis configures the axis of a positional channel. A null axis removes it.
type Axis struct {
	BandPosition    *float64        `json:"bandPosition,omitempty"`
	Domain          *bool           `json:"domain,omitempty"`
	DomainColor     *string         `json:"domainColor,omitempty"`
	DomainWidth     *float64        `json:"domainWidth,omitempty"`
	Format          *string         `json:"format,omitempty"`
	Grid            *bool           `json:"grid,omitempty"`
	GridColor       *string         `json:"gridColor,omitempty"`
	GridDash        []float64       `json:"gridDash,omitempty"`
	GridOpacity     *float64        `json:"gridOpacity,omitempty"`
	GridWidth       *float64        `json:"gridWidth,omitempty"`
	LabelAlign      *Align          `json:"labelAlign,omitempty"`
	LabelAngle      *float64        `json:"labelAngle,omitempty"`
	LabelBaseline   *Baseline       `json:"labelBaseline,omitempty"`
	LabelColor      *string         `json:"labelColor,omitempty"`
	LabelFont       *string         `json:"labelFont,omitempty"`
	LabelFontSize   *float64        `json:"labelFontSize,omitempty"`
	LabelFontWeight FontWeight      `json:"labelFontWeight,omitempty"`
	LabelLimit      *float64        `json:"labelLimit,omitempty"`
	LabelOverlap    any             `json:"labelOverlap,omitempty"`
	LabelPadding    *float64        `json:"labelPadding,omitempty"`
	Labels          *bool           `json:"labels,omitempty"`
	MaxExtent       *float64        `json:"maxExtent,omitempty"`
	MinExtent       *float64        `json:"minExtent,omitempty"`
	Offset          *float64        `json:"offset,omitempty"`
	Orient          *AxisOrient     `json:"orient,omitempty"`
	Position        *float64        `json:"position,omitempty"`
	TickColor       *string         `json:"tickColor,omitempty"`
	TickCount       *float64        `json:"tickCount,omitempty"`
	Ticks           *bool           `json:"ticks,omitempty"`
	TickSize        *float64        `json:"tickSize,omitempty"`
	TickWidth       *float64        `json:"tickWidth,omitempty"`
	Title           Removable[Text] `json:"title,omitempty"`
	TitleAlign      *Align          `json:"titleAlign,omitempty"`
	TitleAngle      *float64        `json:"titleAngle,omitempty"`
	TitleBaseline   *Baseline       `json:"titleBaseline,omitempty"`
	TitleColor      *string         `json:"titleColor,omitempty"`
	TitleFont       *string         `json:"titleFont,omitempty"`
	TitleFontSize   *float64        `json:"titleFontSize,omitempty"`
	TitleFontWeight FontWeight      `json:"titleFontWeight,omitempty"`
	TitleLimit      *float64        `json:"titleLimit,omitempty"`
	TitlePadding    *float64        `json:"titlePadding,omitempty"`
	TitleX          *float64        `json:"titleX,omitempty"`
	TitleY          *float64        `json:"titleY,omitempty"`
	Values          any             `json:"values,omitempty"`
	ZIndex          *float64        `json:"zindex,omitempty"`
}

// Scale maps data values to visual values. A null scale disables scaling.
type Scale struct {
	Align        *float64  `json:"align,omitempty"`
	Base         *float64  `json:"base,omitempty"`
	Bins         []float64 `json:"bins,omitempty"`
	Clamp        *bool     `json:"clamp,omitempty"`
	Constant     *float64  `json:"constant,omitempty"`
	Domain       Domain    `json:"domain,omitempty"`
	DomainMid    *float64  `json:"domainMid,omitempty"`
	Exponent     *float64  `json:"exponent,omitempty"`
	Interpolate  *string   `json:"interpolate,omitempty"`
	Nice         Nice      `json:"nice,omitempty"`
	Padding      *float64  `json:"padding,omitempty"`
	PaddingInner *float64  `json:"paddingInner,omitempty"`
	PaddingOuter *float64  `json:"paddingOuter,omitempty"`
	Range        Range     `json:"range,omitempty"`
	// RangeStep is null to fit the discrete range to the view size.
	RangeStep Removable[float64] `json:"rangeStep,omitempty"`
	Reverse   *bool              `json:"reverse,omitempty"`
	Round     *bool              `json:"round,omitempty"`
	Scheme    Scheme             `json:"scheme,omitempty"`
	Type      *ScaleType         `json:"type,omitempty"`
	Zero      *bool              `json:"zero,omitempty"`
}

type SchemeParams struct {
	Count  *float64  `json:"count,omitempty"`
	Extent []float64 `json:"extent,omitempty"`
	Name   string    `json:"name" vl:"required"`
}

// SelectionDomain derives a scale domain from a selection.
type SelectionDomain struct {
	Encoding  *string `json:"encoding,omitempty"`
	Field     *string `json:"field,omitempty"`
	Selection string  `json:"selection" vl:"required"`
}

// Legend configures the legend of a mark property channel. A null legend
// removes it.
type Legend struct {
	ClipHeight        *float64        `json:"clipHeight,omitempty"`
	ColumnPadding     *float64        `json:"columnPadding,omitempty"`
	Columns           *float64        `json:"columns,omitempty"`
	CornerRadius      *float64        `json:"cornerRadius,omitempty"`
	Direction         *Orient         `json:"direction,omitempty"`
	FillColor         *string         `json:"fillColor,omitempty"`
	Format            *string         `json:"format,omitempty"`
	GradientLength    *float64        `json:"gradientLength,omitempty"`
	GradientThickness *float64        `json:"gradientThickness,omitempty"`
	LabelAlign        *Align          `json:"labelAlign,omitempty"`
	LabelBaseline     *Baseline       `json:"labelBaseline,omitempty"`
	LabelColor        *string         `json:"labelColor,omitempty"`
	LabelFont         *string         `json:"labelFont,omitempty"`
	LabelFontSize     *float64        `json:"labelFontSize,omitempty"`
	LabelFontWeight   FontWeight      `json:"labelFontWeight,omitempty"`
	LabelLimit        *float64        `json:"labelLimit,omitempty"`
	LabelOffset       *float64        `json:"labelOffset,omitempty"`
	LabelPadding      *float64        `json:"labelPadding,omitempty"`
	Offset            *float64        `json:"offset,omitempty"`
	Orient            *LegendOrient   `json:"orient,omitempty"`
	Padding           *float64        `json:"padding,omitempty"`
	RowPadding        *float64        `json:"rowPadding,omitempty"`
	StrokeColor       *string         `json:"strokeColor,omitempty"`
	SymbolSize        *float64        `json:"symbolSize,omitempty"`
	SymbolType        *string         `json:"symbolType,omitempty"`
	TickCount         *float64        `json:"tickCount,omitempty"`
	Title             Removable[Text] `json:"title,omitempty"`
	TitleAlign        *Align          `json:"titleAlign,omitempty"`
	TitleAnchor       *TitleAnchor    `json:"titleAnchor,omitempty"`
	TitleColor        *string         `json:"titleColor,omitempty"`
	TitleFont         *string         `json:"titleFont,omitempty"`
	TitleFontSize     *float64        `json:"titleFontSize,omitempty"`
	TitleFontWeight   FontWeight      `json:"titleFontWeight,omitempty"`
	TitleLimit        *float64        `json:"titleLimit,omitempty"`
	TitleOrient       *TitleOrient    `json:"titleOrient,omitempty"`
	TitlePadding      *float64        `json:"titlePadding,omitempty"`
	Type              *LegendType     `json:"type,omitempty"`
	Values            any             `json:"values,omitempty"`
	ZIndex            *float64        `json:"zindex,omitempty"`
}

// Header configures the row or column header of a facet.
type Header struct {
	Format          *string         `json:"format,omitempty"`
	LabelAlign      *Align          `json:"labelAlign,omitempty"`
	LabelAnchor     *TitleAnchor    `json:"labelAnchor,omitempty"`
	LabelAngle      *float64        `json:"labelAngle,omitempty"`
	LabelColor      *string         `json:"labelColor,omitempty"`
	LabelFont       *string         `json:"labelFont,omitempty"`
	LabelFontSize   *float64        `json:"labelFontSize,omitempty"`
	LabelLimit      *float64        `json:"labelLimit,omitempty"`
	LabelOrient     *HeaderOrient   `json:"labelOrient,omitempty"`
	LabelPadding    *float64        `json:"labelPadding,omitempty"`
	Labels          *bool           `json:"labels,omitempty"`
	Title           Removable[Text] `json:"title,omitempty"`
	TitleAlign      *Align          `json:"titleAlign,omitempty"`
	TitleAnchor     *TitleAnchor    `json:"titleAnchor,omitempty"`
	TitleAngle      *float64        `json:"titleAngle,omitempty"`
	TitleBaseline   *Baseline       `json:"titleBaseline,omitempty"`
	TitleColor      *string         `json:"titleColor,omitempty"`
	TitleFont       *string         `json:"titleFont,omitempty"`
	TitleFontSize   *float64        `json:"titleFontSize,omitempty"`
	TitleFontWeight FontWeight      `json:"titleFontWeight,omitempty"`
	TitleLimit      *float64        `json:"titleLimit,omitempty"`
	TitleOrient     *HeaderOrient   `json:"titleOrient,omitempty"`
	TitlePadding    *float64        `json:"titlePadding,omitempty"`
}

// Projection maps longitude and latitude to x and y for geographic views.
type Projection struct {
	Center      []float64       `json:"center,omitempty"`
	ClipAngle   *float64        `json:"clipAngle,omitempty"`
	ClipExtent  [][]float64     `json:"clipExtent,omitempty"`
	Coefficient *float64        `json:"coefficient,omitempty"`
	Distance    *float64        `json:"distance,omitempty"`
	Fraction    *float64        `json:"fraction,omitempty"`
	Lobes       *float64        `json:"lobes,omitempty"`
	Parallel    *float64        `json:"parallel,omitempty"`
	Precision   *float64        `json:"precision,omitempty"`
	Radius      *float64        `json:"radius,omitempty"`
	Ratio       *float64        `json:"ratio,omitempty"`
	ReflectX    *bool           `json:"reflectX,omitempty"`
	ReflectY    *bool           `json:"reflectY,omitempty"`
	Rotate      []float64       `json:"rotate,omitempty"`
	Scale       *float64        `json:"scale,omitempty"`
	Spacing     *float64        `json:"spacing,omitempty"`
	Tilt        *float64        `json:"tilt,omitempty"`
	Translate   []float64       `json:"translate,omitempty"`
	Type        *ProjectionType `json:"type,omitempty"`
}
