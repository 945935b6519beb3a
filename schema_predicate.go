package vegalite

type LogicalNot struct {
	Not Predicate `json:"not" vl:"required"`
}

type LogicalAnd struct {
	And []Predicate `json:"and" vl:"required"`
}

type LogicalOr struct {
	Or []Predicate `json:"or" vl:"required"`
}

type FieldEqualPredicate struct {
	Equal    PredicateValue `json:"equal" vl:"required"`
	Field    string         `json:"field" vl:"required"`
	TimeUnit *TimeUnit      `json:"timeUnit,omitempty"`
}

// FieldRangePredicate tests that a field lies in [min, max]. Range elements
// are plain JSON values (number, DateTime object or null).
type FieldRangePredicate struct {
	Field    string    `json:"field" vl:"required"`
	Range    []any     `json:"range" vl:"required"`
	TimeUnit *TimeUnit `json:"timeUnit,omitempty"`
}

// FieldOneOfPredicate tests membership in a set of plain JSON values.
type FieldOneOfPredicate struct {
	Field    string    `json:"field" vl:"required"`
	OneOf    []any     `json:"oneOf" vl:"required"`
	TimeUnit *TimeUnit `json:"timeUnit,omitempty"`
}

type FieldLTPredicate struct {
	Field    string         `json:"field" vl:"required"`
	LT       PredicateValue `json:"lt" vl:"required"`
	TimeUnit *TimeUnit      `json:"timeUnit,omitempty"`
}

type FieldGTPredicate struct {
	Field    string         `json:"field" vl:"required"`
	GT       PredicateValue `json:"gt" vl:"required"`
	TimeUnit *TimeUnit      `json:"timeUnit,omitempty"`
}

type FieldLTEPredicate struct {
	Field    string         `json:"field" vl:"required"`
	LTE      PredicateValue `json:"lte" vl:"required"`
	TimeUnit *TimeUnit      `json:"timeUnit,omitempty"`
}

type FieldGTEPredicate struct {
	Field    string         `json:"field" vl:"required"`
	GTE      PredicateValue `json:"gte" vl:"required"`
	TimeUnit *TimeUnit      `json:"timeUnit,omitempty"`
}

type FieldValidPredicate struct {
	Field    string    `json:"field" vl:"required"`
	TimeUnit *TimeUnit `json:"timeUnit,omitempty"`
	Valid    bool      `json:"valid" vl:"required"`
}

type SelectionPredicate struct {
	Selection string `json:"selection" vl:"required"`
}

// DateTime is a date and time literal used in predicates and domains.
type DateTime struct {
	Date         *float64 `json:"date,omitempty"`
	Day          Value    `json:"day,omitempty"`
	Hours        *float64 `json:"hours,omitempty"`
	Milliseconds *float64 `json:"milliseconds,omitempty"`
	Minutes      *float64 `json:"minutes,omitempty"`
	Month        Value    `json:"month,omitempty"`
	Quarter      *float64 `json:"quarter,omitempty"`
	Seconds      *float64 `json:"seconds,omitempty"`
	Utc          *bool    `json:"utc,omitempty"`
	Year         *float64 `json:"year,omitempty"`
}
