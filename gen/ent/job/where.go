// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/joseph-ayodele/mowbot/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// SiteName applies equality check predicate on the "site_name" field. It's identical to SiteNameEQ.
func SiteName(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSiteName, v))
}

// Quote applies equality check predicate on the "quote" field. It's identical to QuoteEQ.
func Quote(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldQuote, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAddress, v))
}

// OrderNo applies equality check predicate on the "order_no" field. It's identical to OrderNoEQ.
func OrderNo(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldOrderNo, v))
}

// OrderPeriod applies equality check predicate on the "order_period" field. It's identical to OrderPeriodEQ.
func OrderPeriod(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldOrderPeriod, v))
}

// Area applies equality check predicate on the "area" field. It's identical to AreaEQ.
func Area(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldArea, v))
}

// SummerSchedule applies equality check predicate on the "summer_schedule" field. It's identical to SummerScheduleEQ.
func SummerSchedule(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSummerSchedule, v))
}

// WinterSchedule applies equality check predicate on the "winter_schedule" field. It's identical to WinterScheduleEQ.
func WinterSchedule(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWinterSchedule, v))
}

// Contact applies equality check predicate on the "contact" field. It's identical to ContactEQ.
func Contact(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldContact, v))
}

// GateCode applies equality check predicate on the "gate_code" field. It's identical to GateCodeEQ.
func GateCode(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldGateCode, v))
}

// MapLink applies equality check predicate on the "map_link" field. It's identical to MapLinkEQ.
func MapLink(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMapLink, v))
}

// AssignedTo applies equality check predicate on the "assigned_to" field. It's identical to AssignedToEQ.
func AssignedTo(v int64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAssignedTo, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartTime, v))
}

// FinishTime applies equality check predicate on the "finish_time" field. It's identical to FinishTimeEQ.
func FinishTime(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFinishTime, v))
}

// ScheduledDate applies equality check predicate on the "scheduled_date" field. It's identical to ScheduledDateEQ.
func ScheduledDate(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldScheduledDate, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPriority, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// SiteNameEQ applies the EQ predicate on the "site_name" field.
func SiteNameEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSiteName, v))
}

// SiteNameNEQ applies the NEQ predicate on the "site_name" field.
func SiteNameNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSiteName, v))
}

// SiteNameIn applies the In predicate on the "site_name" field.
func SiteNameIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSiteName, vs...))
}

// SiteNameNotIn applies the NotIn predicate on the "site_name" field.
func SiteNameNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSiteName, vs...))
}

// SiteNameGT applies the GT predicate on the "site_name" field.
func SiteNameGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSiteName, v))
}

// SiteNameGTE applies the GTE predicate on the "site_name" field.
func SiteNameGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSiteName, v))
}

// SiteNameLT applies the LT predicate on the "site_name" field.
func SiteNameLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSiteName, v))
}

// SiteNameLTE applies the LTE predicate on the "site_name" field.
func SiteNameLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSiteName, v))
}

// SiteNameContains applies the Contains predicate on the "site_name" field.
func SiteNameContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldSiteName, v))
}

// SiteNameHasPrefix applies the HasPrefix predicate on the "site_name" field.
func SiteNameHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldSiteName, v))
}

// SiteNameHasSuffix applies the HasSuffix predicate on the "site_name" field.
func SiteNameHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldSiteName, v))
}

// SiteNameEqualFold applies the EqualFold predicate on the "site_name" field.
func SiteNameEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldSiteName, v))
}

// SiteNameContainsFold applies the ContainsFold predicate on the "site_name" field.
func SiteNameContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldSiteName, v))
}

// QuoteEQ applies the EQ predicate on the "quote" field.
func QuoteEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldQuote, v))
}

// QuoteNEQ applies the NEQ predicate on the "quote" field.
func QuoteNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldQuote, v))
}

// QuoteIn applies the In predicate on the "quote" field.
func QuoteIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldQuote, vs...))
}

// QuoteNotIn applies the NotIn predicate on the "quote" field.
func QuoteNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldQuote, vs...))
}

// QuoteGT applies the GT predicate on the "quote" field.
func QuoteGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldQuote, v))
}

// QuoteGTE applies the GTE predicate on the "quote" field.
func QuoteGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldQuote, v))
}

// QuoteLT applies the LT predicate on the "quote" field.
func QuoteLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldQuote, v))
}

// QuoteLTE applies the LTE predicate on the "quote" field.
func QuoteLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldQuote, v))
}

// QuoteContains applies the Contains predicate on the "quote" field.
func QuoteContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldQuote, v))
}

// QuoteHasPrefix applies the HasPrefix predicate on the "quote" field.
func QuoteHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldQuote, v))
}

// QuoteHasSuffix applies the HasSuffix predicate on the "quote" field.
func QuoteHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldQuote, v))
}

// QuoteIsNil applies the IsNil predicate on the "quote" field.
func QuoteIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldQuote))
}

// QuoteNotNil applies the NotNil predicate on the "quote" field.
func QuoteNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldQuote))
}

// QuoteEqualFold applies the EqualFold predicate on the "quote" field.
func QuoteEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldQuote, v))
}

// QuoteContainsFold applies the ContainsFold predicate on the "quote" field.
func QuoteContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldQuote, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldAddress, v))
}

// OrderNoEQ applies the EQ predicate on the "order_no" field.
func OrderNoEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldOrderNo, v))
}

// OrderNoNEQ applies the NEQ predicate on the "order_no" field.
func OrderNoNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldOrderNo, v))
}

// OrderNoIn applies the In predicate on the "order_no" field.
func OrderNoIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldOrderNo, vs...))
}

// OrderNoNotIn applies the NotIn predicate on the "order_no" field.
func OrderNoNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldOrderNo, vs...))
}

// OrderNoGT applies the GT predicate on the "order_no" field.
func OrderNoGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldOrderNo, v))
}

// OrderNoGTE applies the GTE predicate on the "order_no" field.
func OrderNoGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldOrderNo, v))
}

// OrderNoLT applies the LT predicate on the "order_no" field.
func OrderNoLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldOrderNo, v))
}

// OrderNoLTE applies the LTE predicate on the "order_no" field.
func OrderNoLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldOrderNo, v))
}

// OrderNoContains applies the Contains predicate on the "order_no" field.
func OrderNoContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldOrderNo, v))
}

// OrderNoHasPrefix applies the HasPrefix predicate on the "order_no" field.
func OrderNoHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldOrderNo, v))
}

// OrderNoHasSuffix applies the HasSuffix predicate on the "order_no" field.
func OrderNoHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldOrderNo, v))
}

// OrderNoIsNil applies the IsNil predicate on the "order_no" field.
func OrderNoIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldOrderNo))
}

// OrderNoNotNil applies the NotNil predicate on the "order_no" field.
func OrderNoNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldOrderNo))
}

// OrderNoEqualFold applies the EqualFold predicate on the "order_no" field.
func OrderNoEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldOrderNo, v))
}

// OrderNoContainsFold applies the ContainsFold predicate on the "order_no" field.
func OrderNoContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldOrderNo, v))
}

// OrderPeriodEQ applies the EQ predicate on the "order_period" field.
func OrderPeriodEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldOrderPeriod, v))
}

// OrderPeriodNEQ applies the NEQ predicate on the "order_period" field.
func OrderPeriodNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldOrderPeriod, v))
}

// OrderPeriodIn applies the In predicate on the "order_period" field.
func OrderPeriodIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldOrderPeriod, vs...))
}

// OrderPeriodNotIn applies the NotIn predicate on the "order_period" field.
func OrderPeriodNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldOrderPeriod, vs...))
}

// OrderPeriodGT applies the GT predicate on the "order_period" field.
func OrderPeriodGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldOrderPeriod, v))
}

// OrderPeriodGTE applies the GTE predicate on the "order_period" field.
func OrderPeriodGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldOrderPeriod, v))
}

// OrderPeriodLT applies the LT predicate on the "order_period" field.
func OrderPeriodLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldOrderPeriod, v))
}

// OrderPeriodLTE applies the LTE predicate on the "order_period" field.
func OrderPeriodLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldOrderPeriod, v))
}

// OrderPeriodContains applies the Contains predicate on the "order_period" field.
func OrderPeriodContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldOrderPeriod, v))
}

// OrderPeriodHasPrefix applies the HasPrefix predicate on the "order_period" field.
func OrderPeriodHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldOrderPeriod, v))
}

// OrderPeriodHasSuffix applies the HasSuffix predicate on the "order_period" field.
func OrderPeriodHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldOrderPeriod, v))
}

// OrderPeriodIsNil applies the IsNil predicate on the "order_period" field.
func OrderPeriodIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldOrderPeriod))
}

// OrderPeriodNotNil applies the NotNil predicate on the "order_period" field.
func OrderPeriodNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldOrderPeriod))
}

// OrderPeriodEqualFold applies the EqualFold predicate on the "order_period" field.
func OrderPeriodEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldOrderPeriod, v))
}

// OrderPeriodContainsFold applies the ContainsFold predicate on the "order_period" field.
func OrderPeriodContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldOrderPeriod, v))
}

// AreaEQ applies the EQ predicate on the "area" field.
func AreaEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldArea, v))
}

// AreaNEQ applies the NEQ predicate on the "area" field.
func AreaNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldArea, v))
}

// AreaIn applies the In predicate on the "area" field.
func AreaIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldArea, vs...))
}

// AreaNotIn applies the NotIn predicate on the "area" field.
func AreaNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldArea, vs...))
}

// AreaGT applies the GT predicate on the "area" field.
func AreaGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldArea, v))
}

// AreaGTE applies the GTE predicate on the "area" field.
func AreaGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldArea, v))
}

// AreaLT applies the LT predicate on the "area" field.
func AreaLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldArea, v))
}

// AreaLTE applies the LTE predicate on the "area" field.
func AreaLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldArea, v))
}

// AreaContains applies the Contains predicate on the "area" field.
func AreaContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldArea, v))
}

// AreaHasPrefix applies the HasPrefix predicate on the "area" field.
func AreaHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldArea, v))
}

// AreaHasSuffix applies the HasSuffix predicate on the "area" field.
func AreaHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldArea, v))
}

// AreaIsNil applies the IsNil predicate on the "area" field.
func AreaIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldArea))
}

// AreaNotNil applies the NotNil predicate on the "area" field.
func AreaNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldArea))
}

// AreaEqualFold applies the EqualFold predicate on the "area" field.
func AreaEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldArea, v))
}

// AreaContainsFold applies the ContainsFold predicate on the "area" field.
func AreaContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldArea, v))
}

// SummerScheduleEQ applies the EQ predicate on the "summer_schedule" field.
func SummerScheduleEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSummerSchedule, v))
}

// SummerScheduleNEQ applies the NEQ predicate on the "summer_schedule" field.
func SummerScheduleNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSummerSchedule, v))
}

// SummerScheduleIn applies the In predicate on the "summer_schedule" field.
func SummerScheduleIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSummerSchedule, vs...))
}

// SummerScheduleNotIn applies the NotIn predicate on the "summer_schedule" field.
func SummerScheduleNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSummerSchedule, vs...))
}

// SummerScheduleGT applies the GT predicate on the "summer_schedule" field.
func SummerScheduleGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSummerSchedule, v))
}

// SummerScheduleGTE applies the GTE predicate on the "summer_schedule" field.
func SummerScheduleGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSummerSchedule, v))
}

// SummerScheduleLT applies the LT predicate on the "summer_schedule" field.
func SummerScheduleLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSummerSchedule, v))
}

// SummerScheduleLTE applies the LTE predicate on the "summer_schedule" field.
func SummerScheduleLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSummerSchedule, v))
}

// SummerScheduleContains applies the Contains predicate on the "summer_schedule" field.
func SummerScheduleContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldSummerSchedule, v))
}

// SummerScheduleHasPrefix applies the HasPrefix predicate on the "summer_schedule" field.
func SummerScheduleHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldSummerSchedule, v))
}

// SummerScheduleHasSuffix applies the HasSuffix predicate on the "summer_schedule" field.
func SummerScheduleHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldSummerSchedule, v))
}

// SummerScheduleIsNil applies the IsNil predicate on the "summer_schedule" field.
func SummerScheduleIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSummerSchedule))
}

// SummerScheduleNotNil applies the NotNil predicate on the "summer_schedule" field.
func SummerScheduleNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSummerSchedule))
}

// SummerScheduleEqualFold applies the EqualFold predicate on the "summer_schedule" field.
func SummerScheduleEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldSummerSchedule, v))
}

// SummerScheduleContainsFold applies the ContainsFold predicate on the "summer_schedule" field.
func SummerScheduleContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldSummerSchedule, v))
}

// WinterScheduleEQ applies the EQ predicate on the "winter_schedule" field.
func WinterScheduleEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWinterSchedule, v))
}

// WinterScheduleNEQ applies the NEQ predicate on the "winter_schedule" field.
func WinterScheduleNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldWinterSchedule, v))
}

// WinterScheduleIn applies the In predicate on the "winter_schedule" field.
func WinterScheduleIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldWinterSchedule, vs...))
}

// WinterScheduleNotIn applies the NotIn predicate on the "winter_schedule" field.
func WinterScheduleNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldWinterSchedule, vs...))
}

// WinterScheduleGT applies the GT predicate on the "winter_schedule" field.
func WinterScheduleGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldWinterSchedule, v))
}

// WinterScheduleGTE applies the GTE predicate on the "winter_schedule" field.
func WinterScheduleGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldWinterSchedule, v))
}

// WinterScheduleLT applies the LT predicate on the "winter_schedule" field.
func WinterScheduleLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldWinterSchedule, v))
}

// WinterScheduleLTE applies the LTE predicate on the "winter_schedule" field.
func WinterScheduleLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldWinterSchedule, v))
}

// WinterScheduleContains applies the Contains predicate on the "winter_schedule" field.
func WinterScheduleContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldWinterSchedule, v))
}

// WinterScheduleHasPrefix applies the HasPrefix predicate on the "winter_schedule" field.
func WinterScheduleHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldWinterSchedule, v))
}

// WinterScheduleHasSuffix applies the HasSuffix predicate on the "winter_schedule" field.
func WinterScheduleHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldWinterSchedule, v))
}

// WinterScheduleIsNil applies the IsNil predicate on the "winter_schedule" field.
func WinterScheduleIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldWinterSchedule))
}

// WinterScheduleNotNil applies the NotNil predicate on the "winter_schedule" field.
func WinterScheduleNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldWinterSchedule))
}

// WinterScheduleEqualFold applies the EqualFold predicate on the "winter_schedule" field.
func WinterScheduleEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldWinterSchedule, v))
}

// WinterScheduleContainsFold applies the ContainsFold predicate on the "winter_schedule" field.
func WinterScheduleContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldWinterSchedule, v))
}

// ContactEQ applies the EQ predicate on the "contact" field.
func ContactEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldContact, v))
}

// ContactNEQ applies the NEQ predicate on the "contact" field.
func ContactNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldContact, v))
}

// ContactIn applies the In predicate on the "contact" field.
func ContactIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldContact, vs...))
}

// ContactNotIn applies the NotIn predicate on the "contact" field.
func ContactNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldContact, vs...))
}

// ContactGT applies the GT predicate on the "contact" field.
func ContactGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldContact, v))
}

// ContactGTE applies the GTE predicate on the "contact" field.
func ContactGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldContact, v))
}

// ContactLT applies the LT predicate on the "contact" field.
func ContactLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldContact, v))
}

// ContactLTE applies the LTE predicate on the "contact" field.
func ContactLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldContact, v))
}

// ContactContains applies the Contains predicate on the "contact" field.
func ContactContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldContact, v))
}

// ContactHasPrefix applies the HasPrefix predicate on the "contact" field.
func ContactHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldContact, v))
}

// ContactHasSuffix applies the HasSuffix predicate on the "contact" field.
func ContactHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldContact, v))
}

// ContactIsNil applies the IsNil predicate on the "contact" field.
func ContactIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldContact))
}

// ContactNotNil applies the NotNil predicate on the "contact" field.
func ContactNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldContact))
}

// ContactEqualFold applies the EqualFold predicate on the "contact" field.
func ContactEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldContact, v))
}

// ContactContainsFold applies the ContainsFold predicate on the "contact" field.
func ContactContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldContact, v))
}

// GateCodeEQ applies the EQ predicate on the "gate_code" field.
func GateCodeEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldGateCode, v))
}

// GateCodeNEQ applies the NEQ predicate on the "gate_code" field.
func GateCodeNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldGateCode, v))
}

// GateCodeIn applies the In predicate on the "gate_code" field.
func GateCodeIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldGateCode, vs...))
}

// GateCodeNotIn applies the NotIn predicate on the "gate_code" field.
func GateCodeNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldGateCode, vs...))
}

// GateCodeGT applies the GT predicate on the "gate_code" field.
func GateCodeGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldGateCode, v))
}

// GateCodeGTE applies the GTE predicate on the "gate_code" field.
func GateCodeGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldGateCode, v))
}

// GateCodeLT applies the LT predicate on the "gate_code" field.
func GateCodeLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldGateCode, v))
}

// GateCodeLTE applies the LTE predicate on the "gate_code" field.
func GateCodeLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldGateCode, v))
}

// GateCodeContains applies the Contains predicate on the "gate_code" field.
func GateCodeContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldGateCode, v))
}

// GateCodeHasPrefix applies the HasPrefix predicate on the "gate_code" field.
func GateCodeHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldGateCode, v))
}

// GateCodeHasSuffix applies the HasSuffix predicate on the "gate_code" field.
func GateCodeHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldGateCode, v))
}

// GateCodeIsNil applies the IsNil predicate on the "gate_code" field.
func GateCodeIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldGateCode))
}

// GateCodeNotNil applies the NotNil predicate on the "gate_code" field.
func GateCodeNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldGateCode))
}

// GateCodeEqualFold applies the EqualFold predicate on the "gate_code" field.
func GateCodeEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldGateCode, v))
}

// GateCodeContainsFold applies the ContainsFold predicate on the "gate_code" field.
func GateCodeContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldGateCode, v))
}

// MapLinkEQ applies the EQ predicate on the "map_link" field.
func MapLinkEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMapLink, v))
}

// MapLinkNEQ applies the NEQ predicate on the "map_link" field.
func MapLinkNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldMapLink, v))
}

// MapLinkIn applies the In predicate on the "map_link" field.
func MapLinkIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldMapLink, vs...))
}

// MapLinkNotIn applies the NotIn predicate on the "map_link" field.
func MapLinkNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldMapLink, vs...))
}

// MapLinkGT applies the GT predicate on the "map_link" field.
func MapLinkGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldMapLink, v))
}

// MapLinkGTE applies the GTE predicate on the "map_link" field.
func MapLinkGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldMapLink, v))
}

// MapLinkLT applies the LT predicate on the "map_link" field.
func MapLinkLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldMapLink, v))
}

// MapLinkLTE applies the LTE predicate on the "map_link" field.
func MapLinkLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldMapLink, v))
}

// MapLinkContains applies the Contains predicate on the "map_link" field.
func MapLinkContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldMapLink, v))
}

// MapLinkHasPrefix applies the HasPrefix predicate on the "map_link" field.
func MapLinkHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldMapLink, v))
}

// MapLinkHasSuffix applies the HasSuffix predicate on the "map_link" field.
func MapLinkHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldMapLink, v))
}

// MapLinkIsNil applies the IsNil predicate on the "map_link" field.
func MapLinkIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldMapLink))
}

// MapLinkNotNil applies the NotNil predicate on the "map_link" field.
func MapLinkNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldMapLink))
}

// MapLinkEqualFold applies the EqualFold predicate on the "map_link" field.
func MapLinkEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldMapLink, v))
}

// MapLinkContainsFold applies the ContainsFold predicate on the "map_link" field.
func MapLinkContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldMapLink, v))
}

// AssignedToEQ applies the EQ predicate on the "assigned_to" field.
func AssignedToEQ(v int64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAssignedTo, v))
}

// AssignedToNEQ applies the NEQ predicate on the "assigned_to" field.
func AssignedToNEQ(v int64) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAssignedTo, v))
}

// AssignedToIn applies the In predicate on the "assigned_to" field.
func AssignedToIn(vs ...int64) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAssignedTo, vs...))
}

// AssignedToNotIn applies the NotIn predicate on the "assigned_to" field.
func AssignedToNotIn(vs ...int64) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAssignedTo, vs...))
}

// AssignedToGT applies the GT predicate on the "assigned_to" field.
func AssignedToGT(v int64) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldAssignedTo, v))
}

// AssignedToGTE applies the GTE predicate on the "assigned_to" field.
func AssignedToGTE(v int64) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldAssignedTo, v))
}

// AssignedToLT applies the LT predicate on the "assigned_to" field.
func AssignedToLT(v int64) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldAssignedTo, v))
}

// AssignedToLTE applies the LTE predicate on the "assigned_to" field.
func AssignedToLTE(v int64) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldAssignedTo, v))
}

// AssignedToIsNil applies the IsNil predicate on the "assigned_to" field.
func AssignedToIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldAssignedTo))
}

// AssignedToNotNil applies the NotNil predicate on the "assigned_to" field.
func AssignedToNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldAssignedTo))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldStatus, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeIsNil applies the IsNil predicate on the "start_time" field.
func StartTimeIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldStartTime))
}

// StartTimeNotNil applies the NotNil predicate on the "start_time" field.
func StartTimeNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldStartTime))
}

// FinishTimeEQ applies the EQ predicate on the "finish_time" field.
func FinishTimeEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFinishTime, v))
}

// FinishTimeNEQ applies the NEQ predicate on the "finish_time" field.
func FinishTimeNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldFinishTime, v))
}

// FinishTimeIn applies the In predicate on the "finish_time" field.
func FinishTimeIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldFinishTime, vs...))
}

// FinishTimeNotIn applies the NotIn predicate on the "finish_time" field.
func FinishTimeNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldFinishTime, vs...))
}

// FinishTimeGT applies the GT predicate on the "finish_time" field.
func FinishTimeGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldFinishTime, v))
}

// FinishTimeGTE applies the GTE predicate on the "finish_time" field.
func FinishTimeGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldFinishTime, v))
}

// FinishTimeLT applies the LT predicate on the "finish_time" field.
func FinishTimeLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldFinishTime, v))
}

// FinishTimeLTE applies the LTE predicate on the "finish_time" field.
func FinishTimeLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldFinishTime, v))
}

// FinishTimeIsNil applies the IsNil predicate on the "finish_time" field.
func FinishTimeIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldFinishTime))
}

// FinishTimeNotNil applies the NotNil predicate on the "finish_time" field.
func FinishTimeNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldFinishTime))
}

// PhotosIsNil applies the IsNil predicate on the "photos" field.
func PhotosIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldPhotos))
}

// PhotosNotNil applies the NotNil predicate on the "photos" field.
func PhotosNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldPhotos))
}

// ScheduledDateEQ applies the EQ predicate on the "scheduled_date" field.
func ScheduledDateEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldScheduledDate, v))
}

// ScheduledDateNEQ applies the NEQ predicate on the "scheduled_date" field.
func ScheduledDateNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldScheduledDate, v))
}

// ScheduledDateIn applies the In predicate on the "scheduled_date" field.
func ScheduledDateIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldScheduledDate, vs...))
}

// ScheduledDateNotIn applies the NotIn predicate on the "scheduled_date" field.
func ScheduledDateNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldScheduledDate, vs...))
}

// ScheduledDateGT applies the GT predicate on the "scheduled_date" field.
func ScheduledDateGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldScheduledDate, v))
}

// ScheduledDateGTE applies the GTE predicate on the "scheduled_date" field.
func ScheduledDateGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldScheduledDate, v))
}

// ScheduledDateLT applies the LT predicate on the "scheduled_date" field.
func ScheduledDateLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldScheduledDate, v))
}

// ScheduledDateLTE applies the LTE predicate on the "scheduled_date" field.
func ScheduledDateLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldScheduledDate, v))
}

// ScheduledDateContains applies the Contains predicate on the "scheduled_date" field.
func ScheduledDateContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldScheduledDate, v))
}

// ScheduledDateHasPrefix applies the HasPrefix predicate on the "scheduled_date" field.
func ScheduledDateHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldScheduledDate, v))
}

// ScheduledDateHasSuffix applies the HasSuffix predicate on the "scheduled_date" field.
func ScheduledDateHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldScheduledDate, v))
}

// ScheduledDateIsNil applies the IsNil predicate on the "scheduled_date" field.
func ScheduledDateIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldScheduledDate))
}

// ScheduledDateNotNil applies the NotNil predicate on the "scheduled_date" field.
func ScheduledDateNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldScheduledDate))
}

// ScheduledDateEqualFold applies the EqualFold predicate on the "scheduled_date" field.
func ScheduledDateEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldScheduledDate, v))
}

// ScheduledDateContainsFold applies the ContainsFold predicate on the "scheduled_date" field.
func ScheduledDateContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldScheduledDate, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldPriority, v))
}

// PriorityContains applies the Contains predicate on the "priority" field.
func PriorityContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldPriority, v))
}

// PriorityHasPrefix applies the HasPrefix predicate on the "priority" field.
func PriorityHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldPriority, v))
}

// PriorityHasSuffix applies the HasSuffix predicate on the "priority" field.
func PriorityHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldPriority, v))
}

// PriorityEqualFold applies the EqualFold predicate on the "priority" field.
func PriorityEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldPriority, v))
}

// PriorityContainsFold applies the ContainsFold predicate on the "priority" field.
func PriorityContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldPriority, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasNotes applies the HasEdge predicate on the "notes" edge.
func HasNotes() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NotesTable, NotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNotesWith applies the HasEdge predicate on the "notes" edge with a given conditions (other predicates).
func HasNotesWith(preds ...predicate.Note) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newNotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
