package vegalite

// Config holds the default look of a document.
type Config struct {
	Area         *MarkConfig   `json:"area,omitempty"`
	Autosize     Autosize      `json:"autosize,omitempty"`
	Axis         *AxisConfig   `json:"axis,omitempty"`
	AxisBottom   *AxisConfig   `json:"axisBottom,omitempty"`
	AxisLeft     *AxisConfig   `json:"axisLeft,omitempty"`
	AxisRight    *AxisConfig   `json:"axisRight,omitempty"`
	AxisTop      *AxisConfig   `json:"axisTop,omitempty"`
	AxisX        *AxisConfig   `json:"axisX,omitempty"`
	AxisY        *AxisConfig   `json:"axisY,omitempty"`
	Background   *string       `json:"background,omitempty"`
	Bar          *MarkConfig   `json:"bar,omitempty"`
	Circle       *MarkConfig   `json:"circle,omitempty"`
	CountTitle   *string       `json:"countTitle,omitempty"`
	FieldTitle   *string       `json:"fieldTitle,omitempty"`
	Geoshape     *MarkConfig   `json:"geoshape,omitempty"`
	Legend       *LegendConfig `json:"legend,omitempty"`
	Line         *MarkConfig   `json:"line,omitempty"`
	Mark         *MarkConfig   `json:"mark,omitempty"`
	NumberFormat *string       `json:"numberFormat,omitempty"`
	Padding      Padding       `json:"padding,omitempty"`
	Point        *MarkConfig   `json:"point,omitempty"`
	Rect         *MarkConfig   `json:"rect,omitempty"`
	Rule         *MarkConfig   `json:"rule,omitempty"`
	Square       *MarkConfig   `json:"square,omitempty"`
	Text         *MarkConfig   `json:"text,omitempty"`
	Tick         *MarkConfig   `json:"tick,omitempty"`
	TimeFormat   *string       `json:"timeFormat,omitempty"`
	Title        *TitleConfig  `json:"title,omitempty"`
	Trail        *MarkConfig   `json:"trail,omitempty"`
	View         *ViewConfig   `json:"view,omitempty"`
}

type AxisConfig struct {
	BandPosition    *float64   `json:"bandPosition,omitempty"`
	Domain          *bool      `json:"domain,omitempty"`
	DomainColor     *string    `json:"domainColor,omitempty"`
	DomainWidth     *float64   `json:"domainWidth,omitempty"`
	Grid            *bool      `json:"grid,omitempty"`
	GridColor       *string    `json:"gridColor,omitempty"`
	GridDash        []float64  `json:"gridDash,omitempty"`
	GridOpacity     *float64   `json:"gridOpacity,omitempty"`
	GridWidth       *float64   `json:"gridWidth,omitempty"`
	LabelAngle      *float64   `json:"labelAngle,omitempty"`
	LabelColor      *string    `json:"labelColor,omitempty"`
	LabelFont       *string    `json:"labelFont,omitempty"`
	LabelFontSize   *float64   `json:"labelFontSize,omitempty"`
	LabelFontWeight FontWeight `json:"labelFontWeight,omitempty"`
	LabelLimit      *float64   `json:"labelLimit,omitempty"`
	LabelOverlap    any        `json:"labelOverlap,omitempty"`
	LabelPadding    *float64   `json:"labelPadding,omitempty"`
	Labels          *bool      `json:"labels,omitempty"`
	MaxExtent       *float64   `json:"maxExtent,omitempty"`
	MinExtent       *float64   `json:"minExtent,omitempty"`
	ShortTimeLabels *bool      `json:"shortTimeLabels,omitempty"`
	TickColor       *string    `json:"tickColor,omitempty"`
	TickCount       *float64   `json:"tickCount,omitempty"`
	Ticks           *bool      `json:"ticks,omitempty"`
	TickSize        *float64   `json:"tickSize,omitempty"`
	TickWidth       *float64   `json:"tickWidth,omitempty"`
	TitleColor      *string    `json:"titleColor,omitempty"`
	TitleFont       *string    `json:"titleFont,omitempty"`
	TitleFontSize   *float64   `json:"titleFontSize,omitempty"`
	TitleFontWeight FontWeight `json:"titleFontWeight,omitempty"`
	TitleLimit      *float64   `json:"titleLimit,omitempty"`
	TitlePadding    *float64   `json:"titlePadding,omitempty"`
}

type LegendConfig struct {
	ClipHeight        *float64      `json:"clipHeight,omitempty"`
	ColumnPadding     *float64      `json:"columnPadding,omitempty"`
	Columns           *float64      `json:"columns,omitempty"`
	CornerRadius      *float64      `json:"cornerRadius,omitempty"`
	FillColor         *string       `json:"fillColor,omitempty"`
	GradientDirection *Orient       `json:"gradientDirection,omitempty"`
	GradientLength    *float64      `json:"gradientLength,omitempty"`
	GradientThickness *float64      `json:"gradientThickness,omitempty"`
	LabelAlign        *Align        `json:"labelAlign,omitempty"`
	LabelBaseline     *Baseline     `json:"labelBaseline,omitempty"`
	LabelColor        *string       `json:"labelColor,omitempty"`
	LabelFont         *string       `json:"labelFont,omitempty"`
	LabelFontSize     *float64      `json:"labelFontSize,omitempty"`
	LabelFontWeight   FontWeight    `json:"labelFontWeight,omitempty"`
	LabelLimit        *float64      `json:"labelLimit,omitempty"`
	LabelOffset       *float64      `json:"labelOffset,omitempty"`
	LabelPadding      *float64      `json:"labelPadding,omitempty"`
	Orient            *LegendOrient `json:"orient,omitempty"`
	Padding           *float64      `json:"padding,omitempty"`
	RowPadding        *float64      `json:"rowPadding,omitempty"`
	StrokeColor       *string       `json:"strokeColor,omitempty"`
	SymbolDirection   *Orient       `json:"symbolDirection,omitempty"`
	SymbolSize        *float64      `json:"symbolSize,omitempty"`
	SymbolType        *string       `json:"symbolType,omitempty"`
	TitleAlign        *Align        `json:"titleAlign,omitempty"`
	TitleColor        *string       `json:"titleColor,omitempty"`
	TitleFont         *string       `json:"titleFont,omitempty"`
	TitleFontSize     *float64      `json:"titleFontSize,omitempty"`
	TitleFontWeight   FontWeight    `json:"titleFontWeight,omitempty"`
	TitleLimit        *float64      `json:"titleLimit,omitempty"`
	TitlePadding      *float64      `json:"titlePadding,omitempty"`
}

type MarkConfig struct {
	Align            *Align         `json:"align,omitempty"`
	Angle            *float64       `json:"angle,omitempty"`
	Baseline         *Baseline      `json:"baseline,omitempty"`
	Color            *string        `json:"color,omitempty"`
	CornerRadius     *float64       `json:"cornerRadius,omitempty"`
	Cursor           *string        `json:"cursor,omitempty"`
	DX               *float64       `json:"dx,omitempty"`
	DY               *float64       `json:"dy,omitempty"`
	Fill             *string        `json:"fill,omitempty"`
	Filled           *bool          `json:"filled,omitempty"`
	FillOpacity      *float64       `json:"fillOpacity,omitempty"`
	Font             *string        `json:"font,omitempty"`
	FontSize         *float64       `json:"fontSize,omitempty"`
	FontStyle        *string        `json:"fontStyle,omitempty"`
	FontWeight       FontWeight     `json:"fontWeight,omitempty"`
	Href             *string        `json:"href,omitempty"`
	Interpolate      *Interpolate   `json:"interpolate,omitempty"`
	Limit            *float64       `json:"limit,omitempty"`
	Opacity          *float64       `json:"opacity,omitempty"`
	Orient           *Orient        `json:"orient,omitempty"`
	Radius           *float64       `json:"radius,omitempty"`
	Shape            *string        `json:"shape,omitempty"`
	Size             *float64       `json:"size,omitempty"`
	Stroke           *string        `json:"stroke,omitempty"`
	StrokeCap        *string        `json:"strokeCap,omitempty"`
	StrokeDash       []float64      `json:"strokeDash,omitempty"`
	StrokeDashOffset *float64       `json:"strokeDashOffset,omitempty"`
	StrokeJoin       *string        `json:"strokeJoin,omitempty"`
	StrokeMiterLimit *float64       `json:"strokeMiterLimit,omitempty"`
	StrokeOpacity    *float64       `json:"strokeOpacity,omitempty"`
	StrokeWidth      *float64       `json:"strokeWidth,omitempty"`
	Tension          *float64       `json:"tension,omitempty"`
	Text             *string        `json:"text,omitempty"`
	Theta            *float64       `json:"theta,omitempty"`
	Tooltip          Removable[any] `json:"tooltip,omitempty"`
}

type TitleConfig struct {
	Align      *Align       `json:"align,omitempty"`
	Anchor     *TitleAnchor `json:"anchor,omitempty"`
	Angle      *float64     `json:"angle,omitempty"`
	Baseline   *Baseline    `json:"baseline,omitempty"`
	Color      *string      `json:"color,omitempty"`
	DX         *float64     `json:"dx,omitempty"`
	DY         *float64     `json:"dy,omitempty"`
	Font       *string      `json:"font,omitempty"`
	FontSize   *float64     `json:"fontSize,omitempty"`
	FontWeight FontWeight   `json:"fontWeight,omitempty"`
	Frame      *string      `json:"frame,omitempty"`
	Limit      *float64     `json:"limit,omitempty"`
	Offset     *float64     `json:"offset,omitempty"`
	Orient     *TitleOrient `json:"orient,omitempty"`
}

// ViewConfig styles the view background. A null stroke or fill removes the
// default.
type ViewConfig struct {
	Clip             *bool             `json:"clip,omitempty"`
	CornerRadius     *float64          `json:"cornerRadius,omitempty"`
	Fill             Removable[string] `json:"fill,omitempty"`
	FillOpacity      *float64          `json:"fillOpacity,omitempty"`
	Height           *float64          `json:"height,omitempty"`
	Opacity          *float64          `json:"opacity,omitempty"`
	Stroke           Removable[string] `json:"stroke,omitempty"`
	StrokeCap        *string           `json:"strokeCap,omitempty"`
	StrokeDash       []float64         `json:"strokeDash,omitempty"`
	StrokeDashOffset *float64          `json:"strokeDashOffset,omitempty"`
	StrokeJoin       *string           `json:"strokeJoin,omitempty"`
	StrokeMiterLimit *float64          `json:"strokeMiterLimit,omitempty"`
	StrokeOpacity    *float64          `json:"strokeOpacity,omitempty"`
	StrokeWidth      *float64          `json:"strokeWidth,omitempty"`
	Width            *float64          `json:"width,omitempty"`
}
