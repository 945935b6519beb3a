package vegalite

// Document is a complete Vega-Lite document: a unit, layered, faceted,
// repeated or concatenated view with its data, config and "$schema".
type Document struct {
	// Schema is the URL of the JSON schema the document conforms to.
	Schema      string  `json:"$schema" vl:"default=https://vega.github.io/schema/vega-lite/v3.4.0.json"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Title       Title   `json:"title,omitempty"`
	// Data is inherited by nested views when unset. Null removes it.
	Data Removable[Data] `json:"data,omitempty"`
	// Datasets holds named inline datasets as plain JSON values.
	Datasets   map[string]any       `json:"datasets,omitempty"`
	Transform  []Transform          `json:"transform,omitempty"`
	Width      *float64             `json:"width,omitempty"`
	Height     *float64             `json:"height,omitempty"`
	Autosize   Autosize             `json:"autosize,omitempty"`
	Padding    Padding              `json:"padding,omitempty"`
	Background *string              `json:"background,omitempty"`
	Projection *Projection          `json:"projection,omitempty"`
	Selection  map[string]Selection `json:"selection,omitempty"`
	// Mark is required unless the document composes views.
	Mark     AnyMark        `json:"mark,omitempty"`
	Encoding *Encoding      `json:"encoding,omitempty"`
	Layer    []LayerSpec    `json:"layer,omitempty"`
	Facet    Facet          `json:"facet,omitempty"`
	Repeat   Repeat         `json:"repeat,omitempty"`
	Columns  *float64       `json:"columns,omitempty"`
	Spec     *Spec          `json:"spec,omitempty"`
	Concat   []Spec         `json:"concat,omitempty"`
	HConcat  []Spec         `json:"hconcat,omitempty"`
	VConcat  []Spec         `json:"vconcat,omitempty"`
	Spacing  *float64       `json:"spacing,omitempty"`
	Resolve  *Resolve       `json:"resolve,omitempty"`
	Config   *Config        `json:"config,omitempty"`
	Usermeta map[string]any `json:"usermeta,omitempty"`
}

// Spec is a view nested in a facet, repeat or concatenation. It has the
// composition keys of Document but no top-level metadata.
type Spec struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Title       Title   `json:"title,omitempty"`
	// Data is inherited from the parent when unset.
	Data       Removable[Data]      `json:"data,omitempty"`
	Transform  []Transform          `json:"transform,omitempty"`
	Width      *float64             `json:"width,omitempty"`
	Height     *float64             `json:"height,omitempty"`
	Projection *Projection          `json:"projection,omitempty"`
	Selection  map[string]Selection `json:"selection,omitempty"`
	Mark       AnyMark              `json:"mark,omitempty"`
	Encoding   *Encoding            `json:"encoding,omitempty"`
	Layer      []LayerSpec          `json:"layer,omitempty"`
	Facet      Facet                `json:"facet,omitempty"`
	Repeat     Repeat               `json:"repeat,omitempty"`
	Columns    *float64             `json:"columns,omitempty"`
	Spec       *Spec                `json:"spec,omitempty"`
	Concat     []Spec               `json:"concat,omitempty"`
	HConcat    []Spec               `json:"hconcat,omitempty"`
	VConcat    []Spec               `json:"vconcat,omitempty"`
	Spacing    *float64             `json:"spacing,omitempty"`
	Resolve    *Resolve             `json:"resolve,omitempty"`
}

// LayerSpec is one layer of a layered view. A layer is either a unit (mark)
// or another layer stack.
type LayerSpec struct {
	Name        *string              `json:"name,omitempty"`
	Description *string              `json:"description,omitempty"`
	Title       Title                `json:"title,omitempty"`
	Data        Removable[Data]      `json:"data,omitempty"`
	Transform   []Transform          `json:"transform,omitempty"`
	Width       *float64             `json:"width,omitempty"`
	Height      *float64             `json:"height,omitempty"`
	Projection  *Projection          `json:"projection,omitempty"`
	Selection   map[string]Selection `json:"selection,omitempty"`
	Mark        AnyMark              `json:"mark,omitempty"`
	Encoding    *Encoding            `json:"encoding,omitempty"`
	Layer       []LayerSpec          `json:"layer,omitempty"`
	Resolve     *Resolve             `json:"resolve,omitempty"`
}

// FacetMapping facets a view into a grid of rows and columns.
type FacetMapping struct {
	Column *FacetFieldDef `json:"column,omitempty"`
	Row    *FacetFieldDef `json:"row,omitempty"`
}

// RepeatMapping lists the fields repeated along rows and columns.
type RepeatMapping struct {
	Column []string `json:"column,omitempty"`
	Row    []string `json:"row,omitempty"`
}

// RepeatRef refers to the field of the current repeat iteration.
type RepeatRef struct {
	Repeat RepeatType `json:"repeat" vl:"required"`
}

// Resolve sets shared or independent scales, axes and legends for composed
// views.
type Resolve struct {
	Axis   *AxisResolveMap   `json:"axis,omitempty"`
	Legend *LegendResolveMap `json:"legend,omitempty"`
	Scale  *ScaleResolveMap  `json:"scale,omitempty"`
}

type AxisResolveMap struct {
	X *ResolveMode `json:"x,omitempty"`
	Y *ResolveMode `json:"y,omitempty"`
}

type LegendResolveMap struct {
	Color         *ResolveMode `json:"color,omitempty"`
	Fill          *ResolveMode `json:"fill,omitempty"`
	FillOpacity   *ResolveMode `json:"fillOpacity,omitempty"`
	Opacity       *ResolveMode `json:"opacity,omitempty"`
	Shape         *ResolveMode `json:"shape,omitempty"`
	Size          *ResolveMode `json:"size,omitempty"`
	Stroke        *ResolveMode `json:"stroke,omitempty"`
	StrokeOpacity *ResolveMode `json:"strokeOpacity,omitempty"`
	StrokeWidth   *ResolveMode `json:"strokeWidth,omitempty"`
}

type ScaleResolveMap struct {
	Color         *ResolveMode `json:"color,omitempty"`
	Fill          *ResolveMode `json:"fill,omitempty"`
	FillOpacity   *ResolveMode `json:"fillOpacity,omitempty"`
	Opacity       *ResolveMode `json:"opacity,omitempty"`
	Shape         *ResolveMode `json:"shape,omitempty"`
	Size          *ResolveMode `json:"size,omitempty"`
	Stroke        *ResolveMode `json:"stroke,omitempty"`
	StrokeOpacity *ResolveMode `json:"strokeOpacity,omitempty"`
	StrokeWidth   *ResolveMode `json:"strokeWidth,omitempty"`
	X             *ResolveMode `json:"x,omitempty"`
	Y             *ResolveMode `json:"y,omitempty"`
}

// TitleParams is the object form of a view title.
type TitleParams struct {
	Align      *Align        `json:"align,omitempty"`
	Anchor     *TitleAnchor  `json:"anchor,omitempty"`
	Angle      *float64      `json:"angle,omitempty"`
	Baseline   *Baseline     `json:"baseline,omitempty"`
	Color      *string       `json:"color,omitempty"`
	DX         *float64      `json:"dx,omitempty"`
	DY         *float64      `json:"dy,omitempty"`
	Font       *string       `json:"font,omitempty"`
	FontSize   *float64      `json:"fontSize,omitempty"`
	FontWeight FontWeight    `json:"fontWeight,omitempty"`
	Frame      *string       `json:"frame,omitempty"`
	Limit      *float64      `json:"limit,omitempty"`
	Offset     *float64      `json:"offset,omitempty"`
	Orient     *TitleOrient  `json:"orient,omitempty"`
	Style      StringOrArray `json:"style,omitempty"`
	Text       Text          `json:"text" vl:"required"`
}

type PaddingParams struct {
	Bottom *float64 `json:"bottom,omitempty"`
	Left   *float64 `json:"left,omitempty"`
	Right  *float64 `json:"right,omitempty"`
	Top    *float64 `json:"top,omitempty"`
}

// AutoSizeParams is the object form of autosize.
type AutoSizeParams struct {
	Contains *AutosizeContains `json:"contains,omitempty"`
	Resize   *bool             `json:"resize,omitempty"`
	Type     *AutosizeType     `json:"type,omitempty"`
}

// MissingKeys reports "mark" for a unit document without a mark.
func (d Document) MissingKeys() []string {
	if d.Mark == nil && d.Layer == nil && d.Facet == nil && d.Repeat == nil &&
		d.Concat == nil && d.HConcat == nil && d.VConcat == nil {
		return []string{"mark"}
	}
	return nil
}

// MarshalJSON renders the document with Marshal.
func (d Document) MarshalJSON() ([]byte, error) { return Marshal(d) }

// UnmarshalJSON decodes the document with Unmarshal.
func (d *Document) UnmarshalJSON(b []byte) error { return Unmarshal(b, d) }

// String renders the document as compact JSON, or "" when it cannot be encoded.
func (d Document) String() string {
	b, err := Marshal(d)
	if err != nil {
		return ""
	}
	return string(b)
}

// MissingKeys reports "mark" for a unit spec without a mark.
func (s Spec) MissingKeys() []string {
	if s.Mark == nil && s.Layer == nil && s.Facet == nil && s.Repeat == nil &&
		s.Concat == nil && s.HConcat == nil && s.VConcat == nil {
		return []string{"mark"}
	}
	return nil
}

// MissingKeys reports "mark" for a layer with neither a mark nor sub-layers.
func (l LayerSpec) MissingKeys() []string {
	if l.Mark == nil && l.Layer == nil {
		return []string{"mark"}
	}
	return nil
}
