// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/venn-social/vennd/ent/circle"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/ent/schema"
	"github.com/venn-social/vennd/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	circleFields := schema.Circle{}.Fields()
	_ = circleFields
	// circleDescCreatedAt is the schema descriptor for created_at field.
	circleDescCreatedAt := circleFields[7].Descriptor()
	// circle.DefaultCreatedAt holds the default value on creation for the created_at field.
	circle.DefaultCreatedAt = circleDescCreatedAt.Default.(func() time.Time)
	// circleDescUpdatedAt is the schema descriptor for updated_at field.
	circleDescUpdatedAt := circleFields[8].Descriptor()
	// circle.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	circle.DefaultUpdatedAt = circleDescUpdatedAt.Default.(func() time.Time)
	// circle.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	circle.UpdateDefaultUpdatedAt = circleDescUpdatedAt.UpdateDefault.(func() time.Time)
	collisioneventFields := schema.CollisionEvent{}.Fields()
	_ = collisioneventFields
	// collisioneventDescCreatedAt is the schema descriptor for created_at field.
	collisioneventDescCreatedAt := collisioneventFields[11].Descriptor()
	// collisionevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	collisionevent.DefaultCreatedAt = collisioneventDescCreatedAt.Default.(func() time.Time)
	// collisioneventDescUpdatedAt is the schema descriptor for updated_at field.
	collisioneventDescUpdatedAt := collisioneventFields[12].Descriptor()
	// collisionevent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	collisionevent.DefaultUpdatedAt = collisioneventDescUpdatedAt.Default.(func() time.Time)
	// collisionevent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	collisionevent.UpdateDefaultUpdatedAt = collisioneventDescUpdatedAt.UpdateDefault.(func() time.Time)
	interviewmissionFields := schema.InterviewMission{}.Fields()
	_ = interviewmissionFields
	// interviewmissionDescAttemptNumber is the schema descriptor for attempt_number field.
	interviewmissionDescAttemptNumber := interviewmissionFields[8].Descriptor()
	// interviewmission.DefaultAttemptNumber holds the default value on creation for the attempt_number field.
	interviewmission.DefaultAttemptNumber = interviewmissionDescAttemptNumber.Default.(int)
	// interviewmissionDescDeliveryAttempts is the schema descriptor for delivery_attempts field.
	interviewmissionDescDeliveryAttempts := interviewmissionFields[17].Descriptor()
	// interviewmission.DefaultDeliveryAttempts holds the default value on creation for the delivery_attempts field.
	interviewmission.DefaultDeliveryAttempts = interviewmissionDescDeliveryAttempts.Default.(int)
	// interviewmissionDescNextAttemptAt is the schema descriptor for next_attempt_at field.
	interviewmissionDescNextAttemptAt := interviewmissionFields[18].Descriptor()
	// interviewmission.DefaultNextAttemptAt holds the default value on creation for the next_attempt_at field.
	interviewmission.DefaultNextAttemptAt = interviewmissionDescNextAttemptAt.Default.(func() time.Time)
	// interviewmissionDescCreatedAt is the schema descriptor for created_at field.
	interviewmissionDescCreatedAt := interviewmissionFields[19].Descriptor()
	// interviewmission.DefaultCreatedAt holds the default value on creation for the created_at field.
	interviewmission.DefaultCreatedAt = interviewmissionDescCreatedAt.Default.(func() time.Time)
	// interviewmissionDescUpdatedAt is the schema descriptor for updated_at field.
	interviewmissionDescUpdatedAt := interviewmissionFields[20].Descriptor()
	// interviewmission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	interviewmission.DefaultUpdatedAt = interviewmissionDescUpdatedAt.Default.(func() time.Time)
	// interviewmission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	interviewmission.UpdateDefaultUpdatedAt = interviewmissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	matchFields := schema.Match{}.Fields()
	_ = matchFields
	// matchDescCreatedAt is the schema descriptor for created_at field.
	matchDescCreatedAt := matchFields[11].Descriptor()
	// match.DefaultCreatedAt holds the default value on creation for the created_at field.
	match.DefaultCreatedAt = matchDescCreatedAt.Default.(func() time.Time)
	// matchDescUpdatedAt is the schema descriptor for updated_at field.
	matchDescUpdatedAt := matchFields[12].Descriptor()
	// match.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	match.DefaultUpdatedAt = matchDescUpdatedAt.Default.(func() time.Time)
	// match.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	match.UpdateDefaultUpdatedAt = matchDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[8].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
