// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/blackboardrecord"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// BlackboardRecordUpdate is the builder for updating BlackboardRecord entities.
type BlackboardRecordUpdate struct {
	config
	hooks    []Hook
	mutation *BlackboardRecordMutation
}

// Where appends a list predicates to the BlackboardRecordUpdate builder.
func (_u *BlackboardRecordUpdate) Where(ps ...predicate.BlackboardRecord) *BlackboardRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSeedClaim sets the "seed_claim" field.
func (_u *BlackboardRecordUpdate) SetSeedClaim(v string) *BlackboardRecordUpdate {
	_u.mutation.SetSeedClaim(v)
	return _u
}

// SetNillableSeedClaim sets the "seed_claim" field if the given value is not nil.
func (_u *BlackboardRecordUpdate) SetNillableSeedClaim(v *string) *BlackboardRecordUpdate {
	if v != nil {
		_u.SetSeedClaim(*v)
	}
	return _u
}

// SetCurrentClaim sets the "current_claim" field.
func (_u *BlackboardRecordUpdate) SetCurrentClaim(v string) *BlackboardRecordUpdate {
	_u.mutation.SetCurrentClaim(v)
	return _u
}

// SetNillableCurrentClaim sets the "current_claim" field if the given value is not nil.
func (_u *BlackboardRecordUpdate) SetNillableCurrentClaim(v *string) *BlackboardRecordUpdate {
	if v != nil {
		_u.SetCurrentClaim(*v)
	}
	return _u
}

// ClearCurrentClaim clears the value of the "current_claim" field.
func (_u *BlackboardRecordUpdate) ClearCurrentClaim() *BlackboardRecordUpdate {
	_u.mutation.ClearCurrentClaim()
	return _u
}

// SetSupportStrength sets the "support_strength" field.
func (_u *BlackboardRecordUpdate) SetSupportStrength(v float64) *BlackboardRecordUpdate {
	_u.mutation.ResetSupportStrength()
	_u.mutation.SetSupportStrength(v)
	return _u
}

// SetNillableSupportStrength sets the "support_strength" field if the given value is not nil.
func (_u *BlackboardRecordUpdate) SetNillableSupportStrength(v *float64) *BlackboardRecordUpdate {
	if v != nil {
		_u.SetSupportStrength(*v)
	}
	return _u
}

// AddSupportStrength adds value to the "support_strength" field.
func (_u *BlackboardRecordUpdate) AddSupportStrength(v float64) *BlackboardRecordUpdate {
	_u.mutation.AddSupportStrength(v)
	return _u
}

// SetActiveObjection sets the "active_objection" field.
func (_u *BlackboardRecordUpdate) SetActiveObjection(v string) *BlackboardRecordUpdate {
	_u.mutation.SetActiveObjection(v)
	return _u
}

// SetNillableActiveObjection sets the "active_objection" field if the given value is not nil.
func (_u *BlackboardRecordUpdate) SetNillableActiveObjection(v *string) *BlackboardRecordUpdate {
	if v != nil {
		_u.SetActiveObjection(*v)
	}
	return _u
}

// ClearActiveObjection clears the value of the "active_objection" field.
func (_u *BlackboardRecordUpdate) ClearActiveObjection() *BlackboardRecordUpdate {
	_u.mutation.ClearActiveObjection()
	return _u
}

// SetAnalogyOfRecord sets the "analogy_of_record" field.
func (_u *BlackboardRecordUpdate) SetAnalogyOfRecord(v string) *BlackboardRecordUpdate {
	_u.mutation.SetAnalogyOfRecord(v)
	return _u
}

// SetNillableAnalogyOfRecord sets the "analogy_of_record" field if the given value is not nil.
func (_u *BlackboardRecordUpdate) SetNillableAnalogyOfRecord(v *string) *BlackboardRecordUpdate {
	if v != nil {
		_u.SetAnalogyOfRecord(*v)
	}
	return _u
}

// ClearAnalogyOfRecord clears the value of the "analogy_of_record" field.
func (_u *BlackboardRecordUpdate) ClearAnalogyOfRecord() *BlackboardRecordUpdate {
	_u.mutation.ClearAnalogyOfRecord()
	return _u
}

// SetCycleCount sets the "cycle_count" field.
func (_u *BlackboardRecordUpdate) SetCycleCount(v int) *BlackboardRecordUpdate {
	_u.mutation.ResetCycleCount()
	_u.mutation.SetCycleCount(v)
	return _u
}

// SetNillableCycleCount sets the "cycle_count" field if the given value is not nil.
func (_u *BlackboardRecordUpdate) SetNillableCycleCount(v *int) *BlackboardRecordUpdate {
	if v != nil {
		_u.SetCycleCount(*v)
	}
	return _u
}

// AddCycleCount adds value to the "cycle_count" field.
func (_u *BlackboardRecordUpdate) AddCycleCount(v int) *BlackboardRecordUpdate {
	_u.mutation.AddCycleCount(v)
	return _u
}

// SetFrontierPool sets the "frontier_pool" field.
func (_u *BlackboardRecordUpdate) SetFrontierPool(v []map[string]interface{}) *BlackboardRecordUpdate {
	_u.mutation.SetFrontierPool(v)
	return _u
}

// AppendFrontierPool appends value to the "frontier_pool" field.
func (_u *BlackboardRecordUpdate) AppendFrontierPool(v []map[string]interface{}) *BlackboardRecordUpdate {
	_u.mutation.AppendFrontierPool(v)
	return _u
}

// ClearFrontierPool clears the value of the "frontier_pool" field.
func (_u *BlackboardRecordUpdate) ClearFrontierPool() *BlackboardRecordUpdate {
	_u.mutation.ClearFrontierPool()
	return _u
}

// SetCemetery sets the "cemetery" field.
func (_u *BlackboardRecordUpdate) SetCemetery(v []map[string]interface{}) *BlackboardRecordUpdate {
	_u.mutation.SetCemetery(v)
	return _u
}

// AppendCemetery appends value to the "cemetery" field.
func (_u *BlackboardRecordUpdate) AppendCemetery(v []map[string]interface{}) *BlackboardRecordUpdate {
	_u.mutation.AppendCemetery(v)
	return _u
}

// ClearCemetery clears the value of the "cemetery" field.
func (_u *BlackboardRecordUpdate) ClearCemetery() *BlackboardRecordUpdate {
	_u.mutation.ClearCemetery()
	return _u
}

// SetGraduatedClaims sets the "graduated_claims" field.
func (_u *BlackboardRecordUpdate) SetGraduatedClaims(v []map[string]interface{}) *BlackboardRecordUpdate {
	_u.mutation.SetGraduatedClaims(v)
	return _u
}

// AppendGraduatedClaims appends value to the "graduated_claims" field.
func (_u *BlackboardRecordUpdate) AppendGraduatedClaims(v []map[string]interface{}) *BlackboardRecordUpdate {
	_u.mutation.AppendGraduatedClaims(v)
	return _u
}

// ClearGraduatedClaims clears the value of the "graduated_claims" field.
func (_u *BlackboardRecordUpdate) ClearGraduatedClaims() *BlackboardRecordUpdate {
	_u.mutation.ClearGraduatedClaims()
	return _u
}

// SetTranslatorFrameworks sets the "translator_frameworks" field.
func (_u *BlackboardRecordUpdate) SetTranslatorFrameworks(v []string) *BlackboardRecordUpdate {
	_u.mutation.SetTranslatorFrameworks(v)
	return _u
}

// AppendTranslatorFrameworks appends value to the "translator_frameworks" field.
func (_u *BlackboardRecordUpdate) AppendTranslatorFrameworks(v []string) *BlackboardRecordUpdate {
	_u.mutation.AppendTranslatorFrameworks(v)
	return _u
}

// ClearTranslatorFrameworks clears the value of the "translator_frameworks" field.
func (_u *BlackboardRecordUpdate) ClearTranslatorFrameworks() *BlackboardRecordUpdate {
	_u.mutation.ClearTranslatorFrameworks()
	return _u
}

// SetCostLimitUsd sets the "cost_limit_usd" field.
func (_u *BlackboardRecordUpdate) SetCostLimitUsd(v float64) *BlackboardRecordUpdate {
	_u.mutation.ResetCostLimitUsd()
	_u.mutation.SetCostLimitUsd(v)
	return _u
}

// SetNillableCostLimitUsd sets the "cost_limit_usd" field if the given value is not nil.
func (_u *BlackboardRecordUpdate) SetNillableCostLimitUsd(v *float64) *BlackboardRecordUpdate {
	if v != nil {
		_u.SetCostLimitUsd(*v)
	}
	return _u
}

// AddCostLimitUsd adds value to the "cost_limit_usd" field.
func (_u *BlackboardRecordUpdate) AddCostLimitUsd(v float64) *BlackboardRecordUpdate {
	_u.mutation.AddCostLimitUsd(v)
	return _u
}

// ClearCostLimitUsd clears the value of the "cost_limit_usd" field.
func (_u *BlackboardRecordUpdate) ClearCostLimitUsd() *BlackboardRecordUpdate {
	_u.mutation.ClearCostLimitUsd()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlackboardRecordUpdate) SetUpdatedAt(v time.Time) *BlackboardRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BlackboardRecordMutation object of the builder.
func (_u *BlackboardRecordUpdate) Mutation() *BlackboardRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlackboardRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlackboardRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlackboardRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlackboardRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlackboardRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blackboardrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BlackboardRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(blackboardrecord.Table, blackboardrecord.Columns, sqlgraph.NewFieldSpec(blackboardrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SeedClaim(); ok {
		_spec.SetField(blackboardrecord.FieldSeedClaim, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentClaim(); ok {
		_spec.SetField(blackboardrecord.FieldCurrentClaim, field.TypeString, value)
	}
	if _u.mutation.CurrentClaimCleared() {
		_spec.ClearField(blackboardrecord.FieldCurrentClaim, field.TypeString)
	}
	if value, ok := _u.mutation.SupportStrength(); ok {
		_spec.SetField(blackboardrecord.FieldSupportStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupportStrength(); ok {
		_spec.AddField(blackboardrecord.FieldSupportStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActiveObjection(); ok {
		_spec.SetField(blackboardrecord.FieldActiveObjection, field.TypeString, value)
	}
	if _u.mutation.ActiveObjectionCleared() {
		_spec.ClearField(blackboardrecord.FieldActiveObjection, field.TypeString)
	}
	if value, ok := _u.mutation.AnalogyOfRecord(); ok {
		_spec.SetField(blackboardrecord.FieldAnalogyOfRecord, field.TypeString, value)
	}
	if _u.mutation.AnalogyOfRecordCleared() {
		_spec.ClearField(blackboardrecord.FieldAnalogyOfRecord, field.TypeString)
	}
	if value, ok := _u.mutation.CycleCount(); ok {
		_spec.SetField(blackboardrecord.FieldCycleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCycleCount(); ok {
		_spec.AddField(blackboardrecord.FieldCycleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FrontierPool(); ok {
		_spec.SetField(blackboardrecord.FieldFrontierPool, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFrontierPool(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blackboardrecord.FieldFrontierPool, value)
		})
	}
	if _u.mutation.FrontierPoolCleared() {
		_spec.ClearField(blackboardrecord.FieldFrontierPool, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cemetery(); ok {
		_spec.SetField(blackboardrecord.FieldCemetery, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCemetery(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blackboardrecord.FieldCemetery, value)
		})
	}
	if _u.mutation.CemeteryCleared() {
		_spec.ClearField(blackboardrecord.FieldCemetery, field.TypeJSON)
	}
	if value, ok := _u.mutation.GraduatedClaims(); ok {
		_spec.SetField(blackboardrecord.FieldGraduatedClaims, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGraduatedClaims(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blackboardrecord.FieldGraduatedClaims, value)
		})
	}
	if _u.mutation.GraduatedClaimsCleared() {
		_spec.ClearField(blackboardrecord.FieldGraduatedClaims, field.TypeJSON)
	}
	if value, ok := _u.mutation.TranslatorFrameworks(); ok {
		_spec.SetField(blackboardrecord.FieldTranslatorFrameworks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranslatorFrameworks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blackboardrecord.FieldTranslatorFrameworks, value)
		})
	}
	if _u.mutation.TranslatorFrameworksCleared() {
		_spec.ClearField(blackboardrecord.FieldTranslatorFrameworks, field.TypeJSON)
	}
	if value, ok := _u.mutation.CostLimitUsd(); ok {
		_spec.SetField(blackboardrecord.FieldCostLimitUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostLimitUsd(); ok {
		_spec.AddField(blackboardrecord.FieldCostLimitUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CostLimitUsdCleared() {
		_spec.ClearField(blackboardrecord.FieldCostLimitUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(blackboardrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blackboardrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlackboardRecordUpdateOne is the builder for updating a single BlackboardRecord entity.
type BlackboardRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlackboardRecordMutation
}

// SetSeedClaim sets the "seed_claim" field.
func (_u *BlackboardRecordUpdateOne) SetSeedClaim(v string) *BlackboardRecordUpdateOne {
	_u.mutation.SetSeedClaim(v)
	return _u
}

// SetNillableSeedClaim sets the "seed_claim" field if the given value is not nil.
func (_u *BlackboardRecordUpdateOne) SetNillableSeedClaim(v *string) *BlackboardRecordUpdateOne {
	if v != nil {
		_u.SetSeedClaim(*v)
	}
	return _u
}

// SetCurrentClaim sets the "current_claim" field.
func (_u *BlackboardRecordUpdateOne) SetCurrentClaim(v string) *BlackboardRecordUpdateOne {
	_u.mutation.SetCurrentClaim(v)
	return _u
}

// SetNillableCurrentClaim sets the "current_claim" field if the given value is not nil.
func (_u *BlackboardRecordUpdateOne) SetNillableCurrentClaim(v *string) *BlackboardRecordUpdateOne {
	if v != nil {
		_u.SetCurrentClaim(*v)
	}
	return _u
}

// ClearCurrentClaim clears the value of the "current_claim" field.
func (_u *BlackboardRecordUpdateOne) ClearCurrentClaim() *BlackboardRecordUpdateOne {
	_u.mutation.ClearCurrentClaim()
	return _u
}

// SetSupportStrength sets the "support_strength" field.
func (_u *BlackboardRecordUpdateOne) SetSupportStrength(v float64) *BlackboardRecordUpdateOne {
	_u.mutation.ResetSupportStrength()
	_u.mutation.SetSupportStrength(v)
	return _u
}

// SetNillableSupportStrength sets the "support_strength" field if the given value is not nil.
func (_u *BlackboardRecordUpdateOne) SetNillableSupportStrength(v *float64) *BlackboardRecordUpdateOne {
	if v != nil {
		_u.SetSupportStrength(*v)
	}
	return _u
}

// AddSupportStrength adds value to the "support_strength" field.
func (_u *BlackboardRecordUpdateOne) AddSupportStrength(v float64) *BlackboardRecordUpdateOne {
	_u.mutation.AddSupportStrength(v)
	return _u
}

// SetActiveObjection sets the "active_objection" field.
func (_u *BlackboardRecordUpdateOne) SetActiveObjection(v string) *BlackboardRecordUpdateOne {
	_u.mutation.SetActiveObjection(v)
	return _u
}

// SetNillableActiveObjection sets the "active_objection" field if the given value is not nil.
func (_u *BlackboardRecordUpdateOne) SetNillableActiveObjection(v *string) *BlackboardRecordUpdateOne {
	if v != nil {
		_u.SetActiveObjection(*v)
	}
	return _u
}

// ClearActiveObjection clears the value of the "active_objection" field.
func (_u *BlackboardRecordUpdateOne) ClearActiveObjection() *BlackboardRecordUpdateOne {
	_u.mutation.ClearActiveObjection()
	return _u
}

// SetAnalogyOfRecord sets the "analogy_of_record" field.
func (_u *BlackboardRecordUpdateOne) SetAnalogyOfRecord(v string) *BlackboardRecordUpdateOne {
	_u.mutation.SetAnalogyOfRecord(v)
	return _u
}

// SetNillableAnalogyOfRecord sets the "analogy_of_record" field if the given value is not nil.
func (_u *BlackboardRecordUpdateOne) SetNillableAnalogyOfRecord(v *string) *BlackboardRecordUpdateOne {
	if v != nil {
		_u.SetAnalogyOfRecord(*v)
	}
	return _u
}

// ClearAnalogyOfRecord clears the value of the "analogy_of_record" field.
func (_u *BlackboardRecordUpdateOne) ClearAnalogyOfRecord() *BlackboardRecordUpdateOne {
	_u.mutation.ClearAnalogyOfRecord()
	return _u
}

// SetCycleCount sets the "cycle_count" field.
func (_u *BlackboardRecordUpdateOne) SetCycleCount(v int) *BlackboardRecordUpdateOne {
	_u.mutation.ResetCycleCount()
	_u.mutation.SetCycleCount(v)
	return _u
}

// SetNillableCycleCount sets the "cycle_count" field if the given value is not nil.
func (_u *BlackboardRecordUpdateOne) SetNillableCycleCount(v *int) *BlackboardRecordUpdateOne {
	if v != nil {
		_u.SetCycleCount(*v)
	}
	return _u
}

// AddCycleCount adds value to the "cycle_count" field.
func (_u *BlackboardRecordUpdateOne) AddCycleCount(v int) *BlackboardRecordUpdateOne {
	_u.mutation.AddCycleCount(v)
	return _u
}

// SetFrontierPool sets the "frontier_pool" field.
func (_u *BlackboardRecordUpdateOne) SetFrontierPool(v []map[string]interface{}) *BlackboardRecordUpdateOne {
	_u.mutation.SetFrontierPool(v)
	return _u
}

// AppendFrontierPool appends value to the "frontier_pool" field.
func (_u *BlackboardRecordUpdateOne) AppendFrontierPool(v []map[string]interface{}) *BlackboardRecordUpdateOne {
	_u.mutation.AppendFrontierPool(v)
	return _u
}

// ClearFrontierPool clears the value of the "frontier_pool" field.
func (_u *BlackboardRecordUpdateOne) ClearFrontierPool() *BlackboardRecordUpdateOne {
	_u.mutation.ClearFrontierPool()
	return _u
}

// SetCemetery sets the "cemetery" field.
func (_u *BlackboardRecordUpdateOne) SetCemetery(v []map[string]interface{}) *BlackboardRecordUpdateOne {
	_u.mutation.SetCemetery(v)
	return _u
}

// AppendCemetery appends value to the "cemetery" field.
func (_u *BlackboardRecordUpdateOne) AppendCemetery(v []map[string]interface{}) *BlackboardRecordUpdateOne {
	_u.mutation.AppendCemetery(v)
	return _u
}

// ClearCemetery clears the value of the "cemetery" field.
func (_u *BlackboardRecordUpdateOne) ClearCemetery() *BlackboardRecordUpdateOne {
	_u.mutation.ClearCemetery()
	return _u
}

// SetGraduatedClaims sets the "graduated_claims" field.
func (_u *BlackboardRecordUpdateOne) SetGraduatedClaims(v []map[string]interface{}) *BlackboardRecordUpdateOne {
	_u.mutation.SetGraduatedClaims(v)
	return _u
}

// AppendGraduatedClaims appends value to the "graduated_claims" field.
func (_u *BlackboardRecordUpdateOne) AppendGraduatedClaims(v []map[string]interface{}) *BlackboardRecordUpdateOne {
	_u.mutation.AppendGraduatedClaims(v)
	return _u
}

// ClearGraduatedClaims clears the value of the "graduated_claims" field.
func (_u *BlackboardRecordUpdateOne) ClearGraduatedClaims() *BlackboardRecordUpdateOne {
	_u.mutation.ClearGraduatedClaims()
	return _u
}

// SetTranslatorFrameworks sets the "translator_frameworks" field.
func (_u *BlackboardRecordUpdateOne) SetTranslatorFrameworks(v []string) *BlackboardRecordUpdateOne {
	_u.mutation.SetTranslatorFrameworks(v)
	return _u
}

// AppendTranslatorFrameworks appends value to the "translator_frameworks" field.
func (_u *BlackboardRecordUpdateOne) AppendTranslatorFrameworks(v []string) *BlackboardRecordUpdateOne {
	_u.mutation.AppendTranslatorFrameworks(v)
	return _u
}

// ClearTranslatorFrameworks clears the value of the "translator_frameworks" field.
func (_u *BlackboardRecordUpdateOne) ClearTranslatorFrameworks() *BlackboardRecordUpdateOne {
	_u.mutation.ClearTranslatorFrameworks()
	return _u
}

// SetCostLimitUsd sets the "cost_limit_usd" field.
func (_u *BlackboardRecordUpdateOne) SetCostLimitUsd(v float64) *BlackboardRecordUpdateOne {
	_u.mutation.ResetCostLimitUsd()
	_u.mutation.SetCostLimitUsd(v)
	return _u
}

// SetNillableCostLimitUsd sets the "cost_limit_usd" field if the given value is not nil.
func (_u *BlackboardRecordUpdateOne) SetNillableCostLimitUsd(v *float64) *BlackboardRecordUpdateOne {
	if v != nil {
		_u.SetCostLimitUsd(*v)
	}
	return _u
}

// AddCostLimitUsd adds value to the "cost_limit_usd" field.
func (_u *BlackboardRecordUpdateOne) AddCostLimitUsd(v float64) *BlackboardRecordUpdateOne {
	_u.mutation.AddCostLimitUsd(v)
	return _u
}

// ClearCostLimitUsd clears the value of the "cost_limit_usd" field.
func (_u *BlackboardRecordUpdateOne) ClearCostLimitUsd() *BlackboardRecordUpdateOne {
	_u.mutation.ClearCostLimitUsd()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlackboardRecordUpdateOne) SetUpdatedAt(v time.Time) *BlackboardRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BlackboardRecordMutation object of the builder.
func (_u *BlackboardRecordUpdateOne) Mutation() *BlackboardRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the BlackboardRecordUpdate builder.
func (_u *BlackboardRecordUpdateOne) Where(ps ...predicate.BlackboardRecord) *BlackboardRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlackboardRecordUpdateOne) Select(field string, fields ...string) *BlackboardRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlackboardRecord entity.
func (_u *BlackboardRecordUpdateOne) Save(ctx context.Context) (*BlackboardRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlackboardRecordUpdateOne) SaveX(ctx context.Context) *BlackboardRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlackboardRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlackboardRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlackboardRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blackboardrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BlackboardRecordUpdateOne) sqlSave(ctx context.Context) (_node *BlackboardRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(blackboardrecord.Table, blackboardrecord.Columns, sqlgraph.NewFieldSpec(blackboardrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlackboardRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blackboardrecord.FieldID)
		for _, f := range fields {
			if !blackboardrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blackboardrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SeedClaim(); ok {
		_spec.SetField(blackboardrecord.FieldSeedClaim, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentClaim(); ok {
		_spec.SetField(blackboardrecord.FieldCurrentClaim, field.TypeString, value)
	}
	if _u.mutation.CurrentClaimCleared() {
		_spec.ClearField(blackboardrecord.FieldCurrentClaim, field.TypeString)
	}
	if value, ok := _u.mutation.SupportStrength(); ok {
		_spec.SetField(blackboardrecord.FieldSupportStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupportStrength(); ok {
		_spec.AddField(blackboardrecord.FieldSupportStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActiveObjection(); ok {
		_spec.SetField(blackboardrecord.FieldActiveObjection, field.TypeString, value)
	}
	if _u.mutation.ActiveObjectionCleared() {
		_spec.ClearField(blackboardrecord.FieldActiveObjection, field.TypeString)
	}
	if value, ok := _u.mutation.AnalogyOfRecord(); ok {
		_spec.SetField(blackboardrecord.FieldAnalogyOfRecord, field.TypeString, value)
	}
	if _u.mutation.AnalogyOfRecordCleared() {
		_spec.ClearField(blackboardrecord.FieldAnalogyOfRecord, field.TypeString)
	}
	if value, ok := _u.mutation.CycleCount(); ok {
		_spec.SetField(blackboardrecord.FieldCycleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCycleCount(); ok {
		_spec.AddField(blackboardrecord.FieldCycleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FrontierPool(); ok {
		_spec.SetField(blackboardrecord.FieldFrontierPool, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFrontierPool(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blackboardrecord.FieldFrontierPool, value)
		})
	}
	if _u.mutation.FrontierPoolCleared() {
		_spec.ClearField(blackboardrecord.FieldFrontierPool, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cemetery(); ok {
		_spec.SetField(blackboardrecord.FieldCemetery, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCemetery(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blackboardrecord.FieldCemetery, value)
		})
	}
	if _u.mutation.CemeteryCleared() {
		_spec.ClearField(blackboardrecord.FieldCemetery, field.TypeJSON)
	}
	if value, ok := _u.mutation.GraduatedClaims(); ok {
		_spec.SetField(blackboardrecord.FieldGraduatedClaims, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGraduatedClaims(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blackboardrecord.FieldGraduatedClaims, value)
		})
	}
	if _u.mutation.GraduatedClaimsCleared() {
		_spec.ClearField(blackboardrecord.FieldGraduatedClaims, field.TypeJSON)
	}
	if value, ok := _u.mutation.TranslatorFrameworks(); ok {
		_spec.SetField(blackboardrecord.FieldTranslatorFrameworks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranslatorFrameworks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blackboardrecord.FieldTranslatorFrameworks, value)
		})
	}
	if _u.mutation.TranslatorFrameworksCleared() {
		_spec.ClearField(blackboardrecord.FieldTranslatorFrameworks, field.TypeJSON)
	}
	if value, ok := _u.mutation.CostLimitUsd(); ok {
		_spec.SetField(blackboardrecord.FieldCostLimitUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostLimitUsd(); ok {
		_spec.AddField(blackboardrecord.FieldCostLimitUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CostLimitUsdCleared() {
		_spec.ClearField(blackboardrecord.FieldCostLimitUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(blackboardrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BlackboardRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blackboardrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
