package vegalite

import "reflect"

// Unions are sealed interfaces. Decoding tries the variants listed in
// unionVariants in order and keeps the first one that decodes; encoding writes
// the active variant as is.

// AnyMark is a mark name or a mark definition object.
type AnyMark interface{ isAnyMark() }

// Title is a view title: a string, several lines, or TitleParams.
type Title interface{ isTitle() }

// Text is a string or several lines of text.
type Text interface{ isText() }

// Field names a data field directly or through a repeat reference.
type Field interface{ isField() }

type Aggregate interface{ isAggregate() }

// Bin turns binning on or off, configures it, or marks a field as binned.
type Bin interface{ isBin() }

// Sort is an explicit order, a sort direction, or a sort by another channel
// or field. SortByEncoding precedes EncodingSortField: the latter has no
// required keys and would match any object.
type Sort interface{ isSort() }

type Stack interface{ isStack() }

// Value is a constant visual value.
type Value interface{ isValue() }

type Condition interface{ isCondition() }

type Tooltip interface{ isTooltip() }

type Detail interface{ isDetail() }

type Order interface{ isOrder() }

// Facet is a single facet field or a row/column mapping.
type Facet interface{ isFacet() }

// Repeat lists the repeated fields or maps them to rows and columns.
type Repeat interface{ isRepeat() }

// Transform is one step of the data transformation pipeline.
type Transform interface{ isTransform() }

// Predicate is a filter test. The String variant is a Vega expression.
type Predicate interface{ isPredicate() }

type PredicateValue interface{ isPredicateValue() }

type Padding interface{ isPadding() }

type Autosize interface{ isAutosize() }

// Domain is a scale domain. Explicit domains are kept as plain JSON values
// (numbers, strings, booleans or DateTime objects).
type Domain interface{ isDomain() }

type Range interface{ isRange() }

type Scheme interface{ isScheme() }

type Nice interface{ isNice() }

type Extent interface{ isExtent() }

type StringOrArray interface{ isStringOrArray() }

type FontWeight interface{ isFontWeight() }

// Selection is a named selection definition.
type Selection interface{ isSelection() }

// Translate enables a gesture or names the event stream that triggers it.
type Translate interface{ isTranslate() }

// InlineDataset is inline data: rows as plain JSON values, a string in the
// declared format, or a single object (for example TopoJSON).
type InlineDataset interface{ isInlineDataset() }

func (AggregateOp) isAggregate() {}

func (AggregateTransform) isTransform() {}

func (ArgmaxDef) isAggregate() {}

func (ArgminDef) isAggregate() {}

func (AutoSizeParams) isAutosize() {}

func (AutosizeType) isAutosize() {}

func (Binned) isBin() {}

func (BinParams) isBin() {}

func (BinTransform) isTransform() {}

func (Bool) isBin() {}
func (Bool) isStack() {}
func (Bool) isValue() {}
func (Bool) isPredicateValue() {}
func (Bool) isNice() {}
func (Bool) isTranslate() {}

func (CalculateTransform) isTransform() {}

func (CompositeMark) isAnyMark() {}

func (CompositeMarkDef) isAnyMark() {}

func (ConditionalFieldDef) isCondition() {}

func (ConditionalValueDef) isCondition() {}

func (ConditionalValueDefs) isCondition() {}

func (DateTime) isPredicateValue() {}

func (DomainValues) isDomain() {}

func (EncodingSortField) isSort() {}

func (ExtentType) isExtent() {}

func (FacetFieldDef) isFacet() {}

func (FacetMapping) isFacet() {}

func (FieldDef) isDetail() {}

func (FieldDefs) isDetail() {}

func (FieldEqualPredicate) isPredicate() {}

func (FieldGTEPredicate) isPredicate() {}

func (FieldGTPredicate) isPredicate() {}

func (FieldLTEPredicate) isPredicate() {}

func (FieldLTPredicate) isPredicate() {}

func (FieldOneOfPredicate) isPredicate() {}

func (FieldRangePredicate) isPredicate() {}

func (FieldValidPredicate) isPredicate() {}

func (FilterTransform) isTransform() {}

func (FlattenTransform) isTransform() {}

func (FoldTransform) isTransform() {}

func (FontWeightName) isFontWeight() {}

func (ImputeTransform) isTransform() {}

func (InlineObject) isInlineDataset() {}

func (InlineValues) isInlineDataset() {}

func (IntervalSelection) isSelection() {}

func (JoinAggregateTransform) isTransform() {}

func (LogicalAnd) isPredicate() {}

func (LogicalNot) isPredicate() {}

func (LogicalOr) isPredicate() {}

func (LookupTransform) isTransform() {}

func (Mark) isAnyMark() {}

func (MarkDef) isAnyMark() {}

func (MultiSelection) isSelection() {}

func (NiceTime) isNice() {}

func (Number) isValue() {}
func (Number) isPredicateValue() {}
func (Number) isPadding() {}
func (Number) isNice() {}
func (Number) isExtent() {}
func (Number) isFontWeight() {}

func (NumberArray) isRange() {}

func (OrderFieldDef) isOrder() {}

func (OrderFieldDefs) isOrder() {}

func (PaddingParams) isPadding() {}

func (RepeatMapping) isRepeat() {}

func (RepeatRef) isField() {}

func (SampleTransform) isTransform() {}

func (SchemeParams) isScheme() {}

func (SelectionDomain) isDomain() {}

func (SelectionPredicate) isPredicate() {}

func (SingleSelection) isSelection() {}

func (SortByEncoding) isSort() {}

func (SortOrder) isSort() {}

func (StackOffset) isStack() {}

func (StackTransform) isTransform() {}

func (String) isTitle() {}
func (String) isText() {}
func (String) isField() {}
func (String) isValue() {}
func (String) isPredicate() {}
func (String) isPredicateValue() {}
func (String) isRange() {}
func (String) isScheme() {}
func (String) isStringOrArray() {}
func (String) isTranslate() {}
func (String) isInlineDataset() {}

func (StringArray) isTitle() {}
func (StringArray) isText() {}
func (StringArray) isSort() {}
func (StringArray) isRepeat() {}
func (StringArray) isRange() {}
func (StringArray) isStringOrArray() {}

func (TextDef) isTooltip() {}

func (TextDefs) isTooltip() {}

func (TimeUnitTransform) isTransform() {}

func (TitleParams) isTitle() {}

func (Unaggregated) isDomain() {}

func (WindowTransform) isTransform() {}

func typeOf[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

type unionEntry struct {
	iface    reflect.Type
	variants []reflect.Type
}

func union[U any](variants ...reflect.Type) unionEntry {
	return unionEntry{iface: typeOf[U](), variants: variants}
}

func unionTable(entries ...unionEntry) map[reflect.Type][]reflect.Type {
	m := make(map[reflect.Type][]reflect.Type, len(entries))
	for _, e := range entries {
		m[e.iface] = e.variants
	}
	return m
}

// unionVariants is the precedence table of every union.
var unionVariants = unionTable(
	union[AnyMark](
		typeOf[CompositeMark](), typeOf[CompositeMarkDef](), typeOf[Mark](), typeOf[MarkDef](),
	),
	union[Title](typeOf[String](), typeOf[StringArray](), typeOf[TitleParams]()),
	union[Text](typeOf[String](), typeOf[StringArray]()),
	union[Field](typeOf[String](), typeOf[RepeatRef]()),
	union[Aggregate](typeOf[AggregateOp](), typeOf[ArgmaxDef](), typeOf[ArgminDef]()),
	union[Bin](typeOf[Bool](), typeOf[BinParams](), typeOf[Binned]()),
	union[Sort](
		typeOf[StringArray](), typeOf[SortOrder](), typeOf[SortByEncoding](),
		typeOf[EncodingSortField](),
	),
	union[Stack](typeOf[StackOffset](), typeOf[Bool]()),
	union[Value](typeOf[Number](), typeOf[String](), typeOf[Bool]()),
	union[Condition](
		typeOf[ConditionalValueDefs](), typeOf[ConditionalValueDef](),
		typeOf[ConditionalFieldDef](),
	),
	union[Tooltip](typeOf[TextDefs](), typeOf[TextDef]()),
	union[Detail](typeOf[FieldDefs](), typeOf[FieldDef]()),
	union[Order](typeOf[OrderFieldDefs](), typeOf[OrderFieldDef]()),
	union[Facet](typeOf[FacetFieldDef](), typeOf[FacetMapping]()),
	union[Repeat](typeOf[StringArray](), typeOf[RepeatMapping]()),
	union[Transform](
		typeOf[AggregateTransform](), typeOf[BinTransform](), typeOf[CalculateTransform](),
		typeOf[FilterTransform](), typeOf[FlattenTransform](), typeOf[FoldTransform](),
		typeOf[ImputeTransform](), typeOf[JoinAggregateTransform](), typeOf[LookupTransform](),
		typeOf[TimeUnitTransform](), typeOf[SampleTransform](), typeOf[StackTransform](),
		typeOf[WindowTransform](),
	),
	union[Predicate](
		typeOf[LogicalNot](), typeOf[LogicalAnd](), typeOf[LogicalOr](),
		typeOf[FieldEqualPredicate](), typeOf[FieldRangePredicate](),
		typeOf[FieldOneOfPredicate](), typeOf[FieldLTPredicate](), typeOf[FieldGTPredicate](),
		typeOf[FieldLTEPredicate](), typeOf[FieldGTEPredicate](), typeOf[FieldValidPredicate](),
		typeOf[SelectionPredicate](), typeOf[String](),
	),
	union[PredicateValue](typeOf[Number](), typeOf[String](), typeOf[Bool](), typeOf[DateTime]()),
	union[Padding](typeOf[Number](), typeOf[PaddingParams]()),
	union[Autosize](typeOf[AutosizeType](), typeOf[AutoSizeParams]()),
	union[Domain](typeOf[DomainValues](), typeOf[Unaggregated](), typeOf[SelectionDomain]()),
	union[Range](typeOf[NumberArray](), typeOf[StringArray](), typeOf[String]()),
	union[Scheme](typeOf[String](), typeOf[SchemeParams]()),
	union[Nice](typeOf[Bool](), typeOf[Number](), typeOf[NiceTime]()),
	union[Extent](typeOf[Number](), typeOf[ExtentType]()),
	union[StringOrArray](typeOf[String](), typeOf[StringArray]()),
	union[FontWeight](typeOf[FontWeightName](), typeOf[Number]()),
	union[Selection](typeOf[SingleSelection](), typeOf[MultiSelection](), typeOf[IntervalSelection]()),
	union[Translate](typeOf[Bool](), typeOf[String]()),
	union[InlineDataset](typeOf[InlineValues](), typeOf[String](), typeOf[InlineObject]()),
)
