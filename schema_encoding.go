package vegalite

// Encoding maps data fields to visual channels.
type Encoding struct {
	Color         *MarkPropDef       `json:"color,omitempty"`
	Column        *FacetFieldDef     `json:"column,omitempty"`
	Detail        Detail             `json:"detail,omitempty"`
	Fill          *MarkPropDef       `json:"fill,omitempty"`
	FillOpacity   *MarkPropDef       `json:"fillOpacity,omitempty"`
	Href          *TextDef           `json:"href,omitempty"`
	Key           *FieldDef          `json:"key,omitempty"`
	Latitude      *FieldDef          `json:"latitude,omitempty"`
	Latitude2     *SecondaryFieldDef `json:"latitude2,omitempty"`
	Longitude     *FieldDef          `json:"longitude,omitempty"`
	Longitude2    *SecondaryFieldDef `json:"longitude2,omitempty"`
	Opacity       *MarkPropDef       `json:"opacity,omitempty"`
	Order         Order              `json:"order,omitempty"`
	Row           *FacetFieldDef     `json:"row,omitempty"`
	Shape         *MarkPropDef       `json:"shape,omitempty"`
	Size          *MarkPropDef       `json:"size,omitempty"`
	Stroke        *MarkPropDef       `json:"stroke,omitempty"`
	StrokeOpacity *MarkPropDef       `json:"strokeOpacity,omitempty"`
	StrokeWidth   *MarkPropDef       `json:"strokeWidth,omitempty"`
	Text          *TextDef           `json:"text,omitempty"`
	// Tooltip overrides the mark tooltip; null disables it.
	Tooltip Removable[Tooltip] `json:"tooltip,omitempty"`
	X       *PositionDef       `json:"x,omitempty"`
	X2      *SecondaryFieldDef `json:"x2,omitempty"`
	XError  *SecondaryFieldDef `json:"xError,omitempty"`
	XError2 *SecondaryFieldDef `json:"xError2,omitempty"`
	Y       *PositionDef       `json:"y,omitempty"`
	Y2      *SecondaryFieldDef `json:"y2,omitempty"`
	YError  *SecondaryFieldDef `json:"yError,omitempty"`
	YError2 *SecondaryFieldDef `json:"yError2,omitempty"`
}

// PositionDef is the definition of the x and y channels.
type PositionDef struct {
	Aggregate Aggregate        `json:"aggregate,omitempty"`
	Axis      Removable[Axis]  `json:"axis,omitempty"`
	Bin       Bin              `json:"bin,omitempty"`
	Field     Field            `json:"field,omitempty"`
	Scale     Removable[Scale] `json:"scale,omitempty"`
	Sort      Removable[Sort]  `json:"sort,omitempty"`
	// Stack is null to disable stacking.
	Stack    Removable[Stack] `json:"stack,omitempty"`
	TimeUnit *TimeUnit        `json:"timeUnit,omitempty"`
	Title    Text             `json:"title,omitempty"`
	Type     *Type            `json:"type,omitempty"`
	Value    Value            `json:"value,omitempty"`
}

// SecondaryFieldDef defines x2, y2 and the error channels. It inherits the
// type of its primary channel.
type SecondaryFieldDef struct {
	Aggregate Aggregate `json:"aggregate,omitempty"`
	Bin       Bin       `json:"bin,omitempty"`
	Field     Field     `json:"field,omitempty"`
	TimeUnit  *TimeUnit `json:"timeUnit,omitempty"`
	Title     Text      `json:"title,omitempty"`
	Value     Value     `json:"value,omitempty"`
}

// MarkPropDef is a field or value definition for mark property channels such
// as color, size and shape.
type MarkPropDef struct {
	Aggregate Aggregate         `json:"aggregate,omitempty"`
	Bin       Bin               `json:"bin,omitempty"`
	Condition Condition         `json:"condition,omitempty"`
	Field     Field             `json:"field,omitempty"`
	Legend    Removable[Legend] `json:"legend,omitempty"`
	Scale     Removable[Scale]  `json:"scale,omitempty"`
	Sort      Removable[Sort]   `json:"sort,omitempty"`
	TimeUnit  *TimeUnit         `json:"timeUnit,omitempty"`
	Title     Text              `json:"title,omitempty"`
	Type      *Type             `json:"type,omitempty"`
	// Value is a constant; null means no value.
	Value Removable[Value] `json:"value,omitempty"`
}

// TextDef defines the text, tooltip and href channels.
type TextDef struct {
	Aggregate Aggregate `json:"aggregate,omitempty"`
	Bin       Bin       `json:"bin,omitempty"`
	Condition Condition `json:"condition,omitempty"`
	Field     Field     `json:"field,omitempty"`
	Format    *string   `json:"format,omitempty"`
	TimeUnit  *TimeUnit `json:"timeUnit,omitempty"`
	Title     Text      `json:"title,omitempty"`
	Type      *Type     `json:"type,omitempty"`
	Value     Value     `json:"value,omitempty"`
}

// FieldDef is a plain field definition (detail, key, latitude and longitude).
type FieldDef struct {
	Aggregate Aggregate `json:"aggregate,omitempty"`
	Bin       Bin       `json:"bin,omitempty"`
	Field     Field     `json:"field,omitempty"`
	TimeUnit  *TimeUnit `json:"timeUnit,omitempty"`
	Title     Text      `json:"title,omitempty"`
	Type      Type      `json:"type" vl:"required"`
}

type OrderFieldDef struct {
	Aggregate Aggregate  `json:"aggregate,omitempty"`
	Bin       Bin        `json:"bin,omitempty"`
	Field     Field      `json:"field,omitempty"`
	Sort      *SortOrder `json:"sort,omitempty"`
	TimeUnit  *TimeUnit  `json:"timeUnit,omitempty"`
	Title     Text       `json:"title,omitempty"`
	Type      Type       `json:"type" vl:"required"`
}

// FacetFieldDef defines the row and column channels.
type FacetFieldDef struct {
	Aggregate Aggregate         `json:"aggregate,omitempty"`
	Bin       Bin               `json:"bin,omitempty"`
	Field     Field             `json:"field,omitempty"`
	Header    Removable[Header] `json:"header,omitempty"`
	Sort      Removable[Sort]   `json:"sort,omitempty"`
	TimeUnit  *TimeUnit         `json:"timeUnit,omitempty"`
	Title     Text              `json:"title,omitempty"`
	Type      Type              `json:"type" vl:"required"`
}

// ConditionalValueDef applies a value when a predicate or selection holds.
type ConditionalValueDef struct {
	// Selection is a selection name; Test is ignored when it is set.
	Selection *string          `json:"selection,omitempty"`
	Test      Predicate        `json:"test,omitempty"`
	Value     Removable[Value] `json:"value" vl:"required"`
}

// ConditionalFieldDef applies a field definition when a predicate or
// selection holds.
type ConditionalFieldDef struct {
	Aggregate Aggregate `json:"aggregate,omitempty"`
	Bin       Bin       `json:"bin,omitempty"`
	Field     Field     `json:"field,omitempty"`
	Selection *string   `json:"selection,omitempty"`
	Test      Predicate `json:"test,omitempty"`
	TimeUnit  *TimeUnit `json:"timeUnit,omitempty"`
	Title     Text      `json:"title,omitempty"`
	Type      Type      `json:"type" vl:"required"`
}

// BinParams configures binning.
type BinParams struct {
	Anchor  *float64  `json:"anchor,omitempty"`
	Base    *float64  `json:"base,omitempty"`
	Binned  *bool     `json:"binned,omitempty"`
	Divide  []float64 `json:"divide,omitempty"`
	Extent  []float64 `json:"extent,omitempty"`
	MaxBins *float64  `json:"maxbins,omitempty"`
	MinStep *float64  `json:"minstep,omitempty"`
	Nice    *bool     `json:"nice,omitempty"`
	Step    *float64  `json:"step,omitempty"`
	Steps   []float64 `json:"steps,omitempty"`
}

type ArgmaxDef struct {
	Argmax string `json:"argmax" vl:"required"`
}

type ArgminDef struct {
	Argmin string `json:"argmin" vl:"required"`
}

// EncodingSortField sorts by an aggregate of another field.
type EncodingSortField struct {
	Field Field        `json:"field,omitempty"`
	Op    *AggregateOp `json:"op,omitempty"`
	// Order is null for no sorting.
	Order Removable[SortOrder] `json:"order,omitempty"`
}

// SortByEncoding sorts by another encoding channel.
type SortByEncoding struct {
	Encoding string               `json:"encoding" vl:"required"`
	Order    Removable[SortOrder] `json:"order,omitempty"`
}

type SortField struct {
	Field string     `json:"field" vl:"required"`
	Order *SortOrder `json:"order,omitempty"`
}
