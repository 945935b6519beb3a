package vegalite

import "slices"

// enumStrings converts enumerated literals to their string form.
func enumStrings[T ~string](vs ...T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// Mark is a primitive mark type.
type Mark string

const (
	MarkArea     Mark = "area"
	MarkBar      Mark = "bar"
	MarkLine     Mark = "line"
	MarkTrail    Mark = "trail"
	MarkPoint    Mark = "point"
	MarkText     Mark = "text"
	MarkTick     Mark = "tick"
	MarkRect     Mark = "rect"
	MarkRule     Mark = "rule"
	MarkCircle   Mark = "circle"
	MarkSquare   Mark = "square"
	MarkGeoshape Mark = "geoshape"
)

// EnumValues lists the accepted literals.
func (Mark) EnumValues() []string {
	return enumStrings(
		MarkArea, MarkBar, MarkLine, MarkTrail, MarkPoint, MarkText, MarkTick,
		MarkRect, MarkRule, MarkCircle, MarkSquare, MarkGeoshape,
	)
}

// CompositeMark is a mark that expands into several primitive marks.
type CompositeMark string

const (
	CompositeMarkBoxplot   CompositeMark = "boxplot"
	CompositeMarkErrorbar  CompositeMark = "errorbar"
	CompositeMarkErrorband CompositeMark = "errorband"
)

func (CompositeMark) EnumValues() []string {
	return enumStrings(
		CompositeMarkBoxplot, CompositeMarkErrorbar, CompositeMarkErrorband,
	)
}

// Type is the measurement type of an encoded field.
type Type string

const (
	TypeQuantitative Type = "quantitative"
	TypeOrdinal      Type = "ordinal"
	TypeTemporal     Type = "temporal"
	TypeNominal      Type = "nominal"
	TypeGeoJSON      Type = "geojson"
)

func (Type) EnumValues() []string {
	return enumStrings(
		TypeQuantitative, TypeOrdinal, TypeTemporal, TypeNominal, TypeGeoJSON,
	)
}

type AggregateOp string

const (
	AggregateOpArgmax    AggregateOp = "argmax"
	AggregateOpArgmin    AggregateOp = "argmin"
	AggregateOpAverage   AggregateOp = "average"
	AggregateOpCount     AggregateOp = "count"
	AggregateOpDistinct  AggregateOp = "distinct"
	AggregateOpMax       AggregateOp = "max"
	AggregateOpMean      AggregateOp = "mean"
	AggregateOpMedian    AggregateOp = "median"
	AggregateOpMin       AggregateOp = "min"
	AggregateOpMissing   AggregateOp = "missing"
	AggregateOpQ1        AggregateOp = "q1"
	AggregateOpQ3        AggregateOp = "q3"
	AggregateOpCI0       AggregateOp = "ci0"
	AggregateOpCI1       AggregateOp = "ci1"
	AggregateOpStderr    AggregateOp = "stderr"
	AggregateOpStdev     AggregateOp = "stdev"
	AggregateOpStdevp    AggregateOp = "stdevp"
	AggregateOpSum       AggregateOp = "sum"
	AggregateOpValid     AggregateOp = "valid"
	AggregateOpValues    AggregateOp = "values"
	AggregateOpVariance  AggregateOp = "variance"
	AggregateOpVariancep AggregateOp = "variancep"
)

func (AggregateOp) EnumValues() []string {
	return enumStrings(
		AggregateOpArgmax, AggregateOpArgmin, AggregateOpAverage, AggregateOpCount,
		AggregateOpDistinct, AggregateOpMax, AggregateOpMean, AggregateOpMedian,
		AggregateOpMin, AggregateOpMissing, AggregateOpQ1, AggregateOpQ3,
		AggregateOpCI0, AggregateOpCI1, AggregateOpStderr, AggregateOpStdev,
		AggregateOpStdevp, AggregateOpSum, AggregateOpValid, AggregateOpValues,
		AggregateOpVariance, AggregateOpVariancep,
	)
}

// TimeUnit discretizes temporal values. Every unit has a UTC variant.
type TimeUnit string

const (
	TimeUnitYear                                TimeUnit = "year"
	TimeUnitQuarter                             TimeUnit = "quarter"
	TimeUnitMonth                               TimeUnit = "month"
	TimeUnitDay                                 TimeUnit = "day"
	TimeUnitDate                                TimeUnit = "date"
	TimeUnitHours                               TimeUnit = "hours"
	TimeUnitMinutes                             TimeUnit = "minutes"
	TimeUnitSeconds                             TimeUnit = "seconds"
	TimeUnitMilliseconds                        TimeUnit = "milliseconds"
	TimeUnitYearQuarter                         TimeUnit = "yearquarter"
	TimeUnitYearQuarterMonth                    TimeUnit = "yearquartermonth"
	TimeUnitYearMonth                           TimeUnit = "yearmonth"
	TimeUnitYearMonthDate                       TimeUnit = "yearmonthdate"
	TimeUnitYearMonthDateHours                  TimeUnit = "yearmonthdatehours"
	TimeUnitYearMonthDateHoursMinutes           TimeUnit = "yearmonthdatehoursminutes"
	TimeUnitYearMonthDateHoursMinutesSeconds    TimeUnit = "yearmonthdatehoursminutesseconds"
	TimeUnitQuarterMonth                        TimeUnit = "quartermonth"
	TimeUnitMonthDate                           TimeUnit = "monthdate"
	TimeUnitMonthDateHours                      TimeUnit = "monthdatehours"
	TimeUnitHoursMinutes                        TimeUnit = "hoursminutes"
	TimeUnitHoursMinutesSeconds                 TimeUnit = "hoursminutesseconds"
	TimeUnitMinutesSeconds                      TimeUnit = "minutesseconds"
	TimeUnitSecondsMilliseconds                 TimeUnit = "secondsmilliseconds"
	TimeUnitUTCYear                             TimeUnit = "utcyear"
	TimeUnitUTCQuarter                          TimeUnit = "utcquarter"
	TimeUnitUTCMonth                            TimeUnit = "utcmonth"
	TimeUnitUTCDay                              TimeUnit = "utcday"
	TimeUnitUTCDate                             TimeUnit = "utcdate"
	TimeUnitUTCHours                            TimeUnit = "utchours"
	TimeUnitUTCMinutes                          TimeUnit = "utcminutes"
	TimeUnitUTCSeconds                          TimeUnit = "utcseconds"
	TimeUnitUTCMilliseconds                     TimeUnit = "utcmilliseconds"
	TimeUnitUTCYearQuarter                      TimeUnit = "utcyearquarter"
	TimeUnitUTCYearQuarterMonth                 TimeUnit = "utcyearquartermonth"
	TimeUnitUTCYearMonth                        TimeUnit = "utcyearmonth"
	TimeUnitUTCYearMonthDate                    TimeUnit = "utcyearmonthdate"
	TimeUnitUTCYearMonthDateHours               TimeUnit = "utcyearmonthdatehours"
	TimeUnitUTCYearMonthDateHoursMinutes        TimeUnit = "utcyearmonthdatehoursminutes"
	TimeUnitUTCYearMonthDateHoursMinutesSeconds TimeUnit = "utcyearmonthdatehoursminutesseconds"
	TimeUnitUTCQuarterMonth                     TimeUnit = "utcquartermonth"
	TimeUnitUTCMonthDate                        TimeUnit = "utcmonthdate"
	TimeUnitUTCMonthDateHours                   TimeUnit = "utcmonthdatehours"
	TimeUnitUTCHoursMinutes                     TimeUnit = "utchoursminutes"
	TimeUnitUTCHoursMinutesSeconds              TimeUnit = "utchoursminutesseconds"
	TimeUnitUTCMinutesSeconds                   TimeUnit = "utcminutesseconds"
	TimeUnitUTCSecondsMilliseconds              TimeUnit = "utcsecondsmilliseconds"
)

// EnumValues lists the accepted literals.
func (TimeUnit) EnumValues() []string {
	return enumStrings(
		TimeUnitYear, TimeUnitQuarter, TimeUnitMonth, TimeUnitDay, TimeUnitDate,
		TimeUnitHours, TimeUnitMinutes, TimeUnitSeconds, TimeUnitMilliseconds,
		TimeUnitYearQuarter, TimeUnitYearQuarterMonth, TimeUnitYearMonth,
		TimeUnitYearMonthDate, TimeUnitYearMonthDateHours,
		TimeUnitYearMonthDateHoursMinutes, TimeUnitYearMonthDateHoursMinutesSeconds,
		TimeUnitQuarterMonth, TimeUnitMonthDate, TimeUnitMonthDateHours,
		TimeUnitHoursMinutes, TimeUnitHoursMinutesSeconds, TimeUnitMinutesSeconds,
		TimeUnitSecondsMilliseconds, TimeUnitUTCYear, TimeUnitUTCQuarter,
		TimeUnitUTCMonth, TimeUnitUTCDay, TimeUnitUTCDate, TimeUnitUTCHours,
		TimeUnitUTCMinutes, TimeUnitUTCSeconds, TimeUnitUTCMilliseconds,
		TimeUnitUTCYearQuarter, TimeUnitUTCYearQuarterMonth, TimeUnitUTCYearMonth,
		TimeUnitUTCYearMonthDate, TimeUnitUTCYearMonthDateHours,
		TimeUnitUTCYearMonthDateHoursMinutes,
		TimeUnitUTCYearMonthDateHoursMinutesSeconds, TimeUnitUTCQuarterMonth,
		TimeUnitUTCMonthDate, TimeUnitUTCMonthDateHours, TimeUnitUTCHoursMinutes,
		TimeUnitUTCHoursMinutesSeconds, TimeUnitUTCMinutesSeconds,
		TimeUnitUTCSecondsMilliseconds,
	)
}

type SortOrder string

const (
	SortOrderAscending  SortOrder = "ascending"
	SortOrderDescending SortOrder = "descending"
)

func (SortOrder) EnumValues() []string {
	return enumStrings(SortOrderAscending, SortOrderDescending)
}

type StackOffset string

const (
	StackOffsetZero      StackOffset = "zero"
	StackOffsetCenter    StackOffset = "center"
	StackOffsetNormalize StackOffset = "normalize"
)

func (StackOffset) EnumValues() []string {
	return enumStrings(StackOffsetZero, StackOffsetCenter, StackOffsetNormalize)
}

type ScaleType string

const (
	ScaleTypeLinear     ScaleType = "linear"
	ScaleTypeLog        ScaleType = "log"
	ScaleTypePow        ScaleType = "pow"
	ScaleTypeSqrt       ScaleType = "sqrt"
	ScaleTypeSymlog     ScaleType = "symlog"
	ScaleTypeIdentity   ScaleType = "identity"
	ScaleTypeSequential ScaleType = "sequential"
	ScaleTypeTime       ScaleType = "time"
	ScaleTypeUTC        ScaleType = "utc"
	ScaleTypeQuantile   ScaleType = "quantile"
	ScaleTypeQuantize   ScaleType = "quantize"
	ScaleTypeThreshold  ScaleType = "threshold"
	ScaleTypeBinOrdinal ScaleType = "bin-ordinal"
	ScaleTypeOrdinal    ScaleType = "ordinal"
	ScaleTypePoint      ScaleType = "point"
	ScaleTypeBand       ScaleType = "band"
)

func (ScaleType) EnumValues() []string {
	return enumStrings(
		ScaleTypeLinear, ScaleTypeLog, ScaleTypePow, ScaleTypeSqrt, ScaleTypeSymlog,
		ScaleTypeIdentity, ScaleTypeSequential, ScaleTypeTime, ScaleTypeUTC,
		ScaleTypeQuantile, ScaleTypeQuantize, ScaleTypeThreshold, ScaleTypeBinOrdinal,
		ScaleTypeOrdinal, ScaleTypePoint, ScaleTypeBand,
	)
}

type AxisOrient string

const (
	AxisOrientTop    AxisOrient = "top"
	AxisOrientBottom AxisOrient = "bottom"
	AxisOrientLeft   AxisOrient = "left"
	AxisOrientRight  AxisOrient = "right"
)

func (AxisOrient) EnumValues() []string {
	return enumStrings(
		AxisOrientTop, AxisOrientBottom, AxisOrientLeft, AxisOrientRight,
	)
}

type LegendOrient string

const (
	LegendOrientNone        LegendOrient = "none"
	LegendOrientLeft        LegendOrient = "left"
	LegendOrientRight       LegendOrient = "right"
	LegendOrientTop         LegendOrient = "top"
	LegendOrientBottom      LegendOrient = "bottom"
	LegendOrientTopLeft     LegendOrient = "top-left"
	LegendOrientTopRight    LegendOrient = "top-right"
	LegendOrientBottomLeft  LegendOrient = "bottom-left"
	LegendOrientBottomRight LegendOrient = "bottom-right"
)

func (LegendOrient) EnumValues() []string {
	return enumStrings(
		LegendOrientNone, LegendOrientLeft, LegendOrientRight, LegendOrientTop,
		LegendOrientBottom, LegendOrientTopLeft, LegendOrientTopRight,
		LegendOrientBottomLeft, LegendOrientBottomRight,
	)
}

type LegendType string

const (
	LegendTypeSymbol   LegendType = "symbol"
	LegendTypeGradient LegendType = "gradient"
)

func (LegendType) EnumValues() []string {
	return enumStrings(LegendTypeSymbol, LegendTypeGradient)
}

type TitleAnchor string

const (
	TitleAnchorStart  TitleAnchor = "start"
	TitleAnchorMiddle TitleAnchor = "middle"
	TitleAnchorEnd    TitleAnchor = "end"
)

func (TitleAnchor) EnumValues() []string {
	return enumStrings(TitleAnchorStart, TitleAnchorMiddle, TitleAnchorEnd)
}

type TitleOrient string

const (
	TitleOrientNone   TitleOrient = "none"
	TitleOrientLeft   TitleOrient = "left"
	TitleOrientRight  TitleOrient = "right"
	TitleOrientTop    TitleOrient = "top"
	TitleOrientBottom TitleOrient = "bottom"
)

func (TitleOrient) EnumValues() []string {
	return enumStrings(
		TitleOrientNone, TitleOrientLeft, TitleOrientRight, TitleOrientTop,
		TitleOrientBottom,
	)
}

type HeaderOrient string

const (
	HeaderOrientTop    HeaderOrient = "top"
	HeaderOrientBottom HeaderOrient = "bottom"
	HeaderOrientLeft   HeaderOrient = "left"
	HeaderOrientRight  HeaderOrient = "right"
)

func (HeaderOrient) EnumValues() []string {
	return enumStrings(
		HeaderOrientTop, HeaderOrientBottom, HeaderOrientLeft, HeaderOrientRight,
	)
}

type ProjectionType string

const (
	ProjectionTypeAlbers               ProjectionType = "albers"
	ProjectionTypeAlbersUSA            ProjectionType = "albersUsa"
	ProjectionTypeAzimuthalEqualArea   ProjectionType = "azimuthalEqualArea"
	ProjectionTypeAzimuthalEquidistant ProjectionType = "azimuthalEquidistant"
	ProjectionTypeConicConformal       ProjectionType = "conicConformal"
	ProjectionTypeConicEqualArea       ProjectionType = "conicEqualArea"
	ProjectionTypeConicEquidistant     ProjectionType = "conicEquidistant"
	ProjectionTypeEquirectangular      ProjectionType = "equirectangular"
	ProjectionTypeGnomonic             ProjectionType = "gnomonic"
	ProjectionTypeIdentity             ProjectionType = "identity"
	ProjectionTypeMercator             ProjectionType = "mercator"
	ProjectionTypeNaturalEarth1        ProjectionType = "naturalEarth1"
	ProjectionTypeOrthographic         ProjectionType = "orthographic"
	ProjectionTypeStereographic        ProjectionType = "stereographic"
	ProjectionTypeTransverseMercator   ProjectionType = "transverseMercator"
)

func (ProjectionType) EnumValues() []string {
	return enumStrings(
		ProjectionTypeAlbers, ProjectionTypeAlbersUSA,
		ProjectionTypeAzimuthalEqualArea, ProjectionTypeAzimuthalEquidistant,
		ProjectionTypeConicConformal, ProjectionTypeConicEqualArea,
		ProjectionTypeConicEquidistant, ProjectionTypeEquirectangular,
		ProjectionTypeGnomonic, ProjectionTypeIdentity, ProjectionTypeMercator,
		ProjectionTypeNaturalEarth1, ProjectionTypeOrthographic,
		ProjectionTypeStereographic, ProjectionTypeTransverseMercator,
	)
}

// Interpolate is the line interpolation method of line and area marks.
type Interpolate string

const (
	InterpolateLinear         Interpolate = "linear"
	InterpolateLinearClosed   Interpolate = "linear-closed"
	InterpolateStep           Interpolate = "step"
	InterpolateStepBefore     Interpolate = "step-before"
	InterpolateStepAfter      Interpolate = "step-after"
	InterpolateBasis          Interpolate = "basis"
	InterpolateBasisOpen      Interpolate = "basis-open"
	InterpolateBasisClosed    Interpolate = "basis-closed"
	InterpolateCardinal       Interpolate = "cardinal"
	InterpolateCardinalOpen   Interpolate = "cardinal-open"
	InterpolateCardinalClosed Interpolate = "cardinal-closed"
	InterpolateBundle         Interpolate = "bundle"
	InterpolateMonotone       Interpolate = "monotone"
)

func (Interpolate) EnumValues() []string {
	return enumStrings(
		InterpolateLinear, InterpolateLinearClosed, InterpolateStep,
		InterpolateStepBefore, InterpolateStepAfter, InterpolateBasis,
		InterpolateBasisOpen, InterpolateBasisClosed, InterpolateCardinal,
		InterpolateCardinalOpen, InterpolateCardinalClosed, InterpolateBundle,
		InterpolateMonotone,
	)
}

type Orient string

const (
	OrientHorizontal Orient = "horizontal"
	OrientVertical   Orient = "vertical"
)

func (Orient) EnumValues() []string {
	return enumStrings(OrientHorizontal, OrientVertical)
}

// ExtentType is the extent of a composite mark.
type ExtentType string

const (
	ExtentTypeCI     ExtentType = "ci"
	ExtentTypeIQR    ExtentType = "iqr"
	ExtentTypeStderr ExtentType = "stderr"
	ExtentTypeStdev  ExtentType = "stdev"
	ExtentTypeMinMax ExtentType = "min-max"
)

func (ExtentType) EnumValues() []string {
	return enumStrings(
		ExtentTypeCI, ExtentTypeIQR, ExtentTypeStderr, ExtentTypeStdev,
		ExtentTypeMinMax,
	)
}

type RepeatType string

const (
	RepeatTypeRow    RepeatType = "row"
	RepeatTypeColumn RepeatType = "column"
	RepeatTypeRepeat RepeatType = "repeat"
)

func (RepeatType) EnumValues() []string {
	return enumStrings(RepeatTypeRow, RepeatTypeColumn, RepeatTypeRepeat)
}

type ResolveMode string

const (
	ResolveModeIndependent ResolveMode = "independent"
	ResolveModeShared      ResolveMode = "shared"
)

func (ResolveMode) EnumValues() []string {
	return enumStrings(ResolveModeIndependent, ResolveModeShared)
}

type AutosizeType string

const (
	AutosizeTypePad  AutosizeType = "pad"
	AutosizeTypeFit  AutosizeType = "fit"
	AutosizeTypeNone AutosizeType = "none"
)

func (AutosizeType) EnumValues() []string {
	return enumStrings(AutosizeTypePad, AutosizeTypeFit, AutosizeTypeNone)
}

type AutosizeContains string

const (
	AutosizeContainsContent AutosizeContains = "content"
	AutosizeContainsPadding AutosizeContains = "padding"
)

func (AutosizeContains) EnumValues() []string {
	return enumStrings(AutosizeContainsContent, AutosizeContainsPadding)
}

type DataFormatType string

const (
	DataFormatTypeCSV      DataFormatType = "csv"
	DataFormatTypeTSV      DataFormatType = "tsv"
	DataFormatTypeDSV      DataFormatType = "dsv"
	DataFormatTypeJSON     DataFormatType = "json"
	DataFormatTypeTopoJSON DataFormatType = "topojson"
)

func (DataFormatType) EnumValues() []string {
	return enumStrings(
		DataFormatTypeCSV, DataFormatTypeTSV, DataFormatTypeDSV, DataFormatTypeJSON,
		DataFormatTypeTopoJSON,
	)
}

type SelectionResolution string

const (
	SelectionResolutionGlobal    SelectionResolution = "global"
	SelectionResolutionUnion     SelectionResolution = "union"
	SelectionResolutionIntersect SelectionResolution = "intersect"
)

func (SelectionResolution) EnumValues() []string {
	return enumStrings(
		SelectionResolutionGlobal, SelectionResolutionUnion,
		SelectionResolutionIntersect,
	)
}

type SelectionEmpty string

const (
	SelectionEmptyAll  SelectionEmpty = "all"
	SelectionEmptyNone SelectionEmpty = "none"
)

func (SelectionEmpty) EnumValues() []string {
	return enumStrings(SelectionEmptyAll, SelectionEmptyNone)
}

type NiceTime string

const (
	NiceTimeMillisecond NiceTime = "millisecond"
	NiceTimeSecond      NiceTime = "second"
	NiceTimeMinute      NiceTime = "minute"
	NiceTimeHour        NiceTime = "hour"
	NiceTimeDay         NiceTime = "day"
	NiceTimeWeek        NiceTime = "week"
	NiceTimeMonth       NiceTime = "month"
	NiceTimeYear        NiceTime = "year"
)

func (NiceTime) EnumValues() []string {
	return enumStrings(
		NiceTimeMillisecond, NiceTimeSecond, NiceTimeMinute, NiceTimeHour, NiceTimeDay,
		NiceTimeWeek, NiceTimeMonth, NiceTimeYear,
	)
}

type FontWeightName string

const (
	FontWeightNameNormal  FontWeightName = "normal"
	FontWeightNameBold    FontWeightName = "bold"
	FontWeightNameLighter FontWeightName = "lighter"
	FontWeightNameBolder  FontWeightName = "bolder"
)

func (FontWeightName) EnumValues() []string {
	return enumStrings(
		FontWeightNameNormal, FontWeightNameBold, FontWeightNameLighter,
		FontWeightNameBolder,
	)
}

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

func (Align) EnumValues() []string {
	return enumStrings(AlignLeft, AlignCenter, AlignRight)
}

type Baseline string

const (
	BaselineTop        Baseline = "top"
	BaselineMiddle     Baseline = "middle"
	BaselineBottom     Baseline = "bottom"
	BaselineAlphabetic Baseline = "alphabetic"
)

func (Baseline) EnumValues() []string {
	return enumStrings(
		BaselineTop, BaselineMiddle, BaselineBottom, BaselineAlphabetic,
	)
}

// WindowOp is a window-only operation or any AggregateOp.
type WindowOp string

const (
	WindowOpRowNumber   WindowOp = "row_number"
	WindowOpRank        WindowOp = "rank"
	WindowOpDenseRank   WindowOp = "dense_rank"
	WindowOpPercentRank WindowOp = "percent_rank"
	WindowOpCumeDist    WindowOp = "cume_dist"
	WindowOpNtile       WindowOp = "ntile"
	WindowOpLag         WindowOp = "lag"
	WindowOpLead        WindowOp = "lead"
	WindowOpFirstValue  WindowOp = "first_value"
	WindowOpLastValue   WindowOp = "last_value"
	WindowOpNthValue    WindowOp = "nth_value"
	WindowOpArgmax      WindowOp = "argmax"
	WindowOpArgmin      WindowOp = "argmin"
	WindowOpAverage     WindowOp = "average"
	WindowOpCount       WindowOp = "count"
	WindowOpDistinct    WindowOp = "distinct"
	WindowOpMax         WindowOp = "max"
	WindowOpMean        WindowOp = "mean"
	WindowOpMedian      WindowOp = "median"
	WindowOpMin         WindowOp = "min"
	WindowOpMissing     WindowOp = "missing"
	WindowOpQ1          WindowOp = "q1"
	WindowOpQ3          WindowOp = "q3"
	WindowOpCI0         WindowOp = "ci0"
	WindowOpCI1         WindowOp = "ci1"
	WindowOpStderr      WindowOp = "stderr"
	WindowOpStdev       WindowOp = "stdev"
	WindowOpStdevp      WindowOp = "stdevp"
	WindowOpSum         WindowOp = "sum"
	WindowOpValid       WindowOp = "valid"
	WindowOpValues      WindowOp = "values"
	WindowOpVariance    WindowOp = "variance"
	WindowOpVariancep   WindowOp = "variancep"
)

// EnumValues lists the accepted literals, window operations first.
func (WindowOp) EnumValues() []string {
	return slices.Concat(
		enumStrings(WindowOpRowNumber, WindowOpRank, WindowOpDenseRank, WindowOpPercentRank,
			WindowOpCumeDist, WindowOpNtile, WindowOpLag, WindowOpLead,
			WindowOpFirstValue, WindowOpLastValue, WindowOpNthValue),
		AggregateOp("").EnumValues(),
	)
}

type ImputeMethod string

const (
	ImputeMethodValue  ImputeMethod = "value"
	ImputeMethodMedian ImputeMethod = "median"
	ImputeMethodMax    ImputeMethod = "max"
	ImputeMethodMin    ImputeMethod = "min"
	ImputeMethodMean   ImputeMethod = "mean"
)

func (ImputeMethod) EnumValues() []string {
	return enumStrings(
		ImputeMethodValue, ImputeMethodMedian, ImputeMethodMax, ImputeMethodMin,
		ImputeMethodMean,
	)
}

// Unaggregated asks a scale to use the unaggregated domain.
type Unaggregated string

const (
	UnaggregatedDomain Unaggregated = "unaggregated"
)

func (Unaggregated) EnumValues() []string {
	return enumStrings(UnaggregatedDomain)
}

// Binned marks a field as already binned.
type Binned string

const (
	BinnedField Binned = "binned"
)

func (Binned) EnumValues() []string {
	return enumStrings(BinnedField)
}

// Scales binds an interval selection to the view scales.
type Scales string

const (
	ScalesBind Scales = "scales"
)

func (Scales) EnumValues() []string {
	return enumStrings(ScalesBind)
}

type SingleSelectionType string

const (
	SelectionSingle SingleSelectionType = "single"
)

func (SingleSelectionType) EnumValues() []string {
	return enumStrings(SelectionSingle)
}

type MultiSelectionType string

const (
	SelectionMulti MultiSelectionType = "multi"
)

func (MultiSelectionType) EnumValues() []string {
	return enumStrings(SelectionMulti)
}

type IntervalSelectionType string

const (
	SelectionInterval IntervalSelectionType = "interval"
)

func (IntervalSelectionType) EnumValues() []string {
	return enumStrings(SelectionInterval)
}
