package vegalite

type AggregateTransform struct {
	Aggregate []AggregatedFieldDef `json:"aggregate" vl:"required"`
	GroupBy   []string             `json:"groupby,omitempty"`
}

type AggregatedFieldDef struct {
	As    string      `json:"as" vl:"required"`
	Field *string     `json:"field,omitempty"`
	Op    AggregateOp `json:"op" vl:"required"`
}

type BinTransform struct {
	As    StringOrArray `json:"as" vl:"required"`
	Bin   Bin           `json:"bin" vl:"required"`
	Field string        `json:"field" vl:"required"`
}

type CalculateTransform struct {
	As        string `json:"as" vl:"required"`
	Calculate string `json:"calculate" vl:"required"`
}

type FilterTransform struct {
	Filter Predicate `json:"filter" vl:"required"`
}

type FlattenTransform struct {
	As      []string `json:"as,omitempty"`
	Flatten []string `json:"flatten" vl:"required"`
}

type FoldTransform struct {
	As   []string `json:"as,omitempty"`
	Fold []string `json:"fold" vl:"required"`
}

// ImputeTransform fills missing values. Frame, KeyVals and Value are kept as
// plain JSON values.
type ImputeTransform struct {
	Frame   any           `json:"frame,omitempty"`
	GroupBy []string      `json:"groupby,omitempty"`
	Impute  string        `json:"impute" vl:"required"`
	Key     string        `json:"key" vl:"required"`
	KeyVals any           `json:"keyvals,omitempty"`
	Method  *ImputeMethod `json:"method,omitempty"`
	Value   any           `json:"value,omitempty"`
}

type JoinAggregateTransform struct {
	GroupBy       []string                `json:"groupby,omitempty"`
	JoinAggregate []JoinAggregateFieldDef `json:"joinaggregate" vl:"required"`
}

type JoinAggregateFieldDef struct {
	As    string      `json:"as" vl:"required"`
	Field string      `json:"field" vl:"required"`
	Op    AggregateOp `json:"op" vl:"required"`
}

type LookupTransform struct {
	As      StringOrArray `json:"as,omitempty"`
	Default *string       `json:"default,omitempty"`
	From    LookupData    `json:"from" vl:"required"`
	Lookup  string        `json:"lookup" vl:"required"`
}

type TimeUnitTransform struct {
	As       string   `json:"as" vl:"required"`
	Field    string   `json:"field" vl:"required"`
	TimeUnit TimeUnit `json:"timeUnit" vl:"required"`
}

type SampleTransform struct {
	Sample float64 `json:"sample" vl:"required"`
}

type StackTransform struct {
	As      StringOrArray `json:"as" vl:"required"`
	GroupBy []string      `json:"groupby" vl:"required"`
	Offset  *StackOffset  `json:"offset,omitempty"`
	Sort    []SortField   `json:"sort,omitempty"`
	Stack   string        `json:"stack" vl:"required"`
}

// WindowTransform computes window functions over sorted groups. Frame is a
// plain JSON value.
type WindowTransform struct {
	Frame       any              `json:"frame,omitempty"`
	GroupBy     []string         `json:"groupby,omitempty"`
	IgnorePeers *bool            `json:"ignorePeers,omitempty"`
	Sort        []SortField      `json:"sort,omitempty"`
	Window      []WindowFieldDef `json:"window" vl:"required"`
}

type WindowFieldDef struct {
	As    string   `json:"as" vl:"required"`
	Field *string  `json:"field,omitempty"`
	Op    WindowOp `json:"op" vl:"required"`
	Param *float64 `json:"param,omitempty"`
}
