package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ClerkUser is the user document persisted per tenant.
//
// The struct carries two tag sets on purpose: json tags follow the
// Clerk wire naming, bson tags follow the collection schema. The one
// field where the two disagree is the identifier: Clerk sends it as
// "id" but it is stored as "clerk_id", while the Mongo "_id" is
// generated independently and never comes from the payload.
type ClerkUser struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ClerkID string             `bson:"clerk_id" json:"id"`

	Object     *string `bson:"object,omitempty" json:"object"`
	ExternalID *string `bson:"external_id,omitempty" json:"external_id"`
	FirstName  *string `bson:"first_name,omitempty" json:"first_name"`
	LastName   *string `bson:"last_name,omitempty" json:"last_name"`
	Username   *string `bson:"username,omitempty" json:"username"`

	Banned bool `bson:"banned" json:"banned"`
	Locked bool `bson:"locked" json:"locked"`

	ImageURL        *string `bson:"image_url,omitempty" json:"image_url"`
	HasImage        bool    `bson:"has_image" json:"has_image"`
	ProfileImageURL *string `bson:"profile_image_url,omitempty" json:"profile_image_url"`

	TwoFactorEnabled  bool `bson:"two_factor_enabled" json:"two_factor_enabled"`
	TotpEnabled       bool `bson:"totp_enabled" json:"totp_enabled"`
	BackupCodeEnabled bool `bson:"backup_code_enabled" json:"backup_code_enabled"`
	PasswordEnabled   bool `bson:"password_enabled" json:"password_enabled"`

	PrimaryEmailAddressID *string `bson:"primary_email_address_id,omitempty" json:"primary_email_address_id"`
	PrimaryPhoneNumberID  *string `bson:"primary_phone_number_id,omitempty" json:"primary_phone_number_id"`

	// Metadata blobs are opaque; they are stored as-is and never typed further.
	PublicMetadata  map[string]interface{} `bson:"public_metadata,omitempty" json:"public_metadata"`
	PrivateMetadata map[string]interface{} `bson:"private_metadata,omitempty" json:"private_metadata"`
	UnsafeMetadata  map[string]interface{} `bson:"unsafe_metadata,omitempty" json:"unsafe_metadata"`

	EmailAddresses []ClerkEmailAddress `bson:"email_addresses,omitempty" json:"email_addresses"`
	PhoneNumbers   []ClerkPhoneNumber  `bson:"phone_numbers,omitempty" json:"phone_numbers"`

	CreatedAt    int64  `bson:"created_at" json:"created_at"`
	UpdatedAt    int64  `bson:"updated_at" json:"updated_at"`
	LastSignInAt *int64 `bson:"last_sign_in_at,omitempty" json:"last_sign_in_at"`
}

// ClerkEmailAddress is one entry of a user's email_addresses array.
type ClerkEmailAddress struct {
	ID           *string            `bson:"id,omitempty" json:"id"`
	EmailAddress *string            `bson:"email_address,omitempty" json:"email_address"`
	Verification *ClerkVerification `bson:"verification,omitempty" json:"verification"`
	CreatedAt    int64              `bson:"created_at" json:"created_at"`
	UpdatedAt    int64              `bson:"updated_at" json:"updated_at"`
}

// ClerkPhoneNumber is one entry of a user's phone_numbers array.
type ClerkPhoneNumber struct {
	ID           *string            `bson:"id,omitempty" json:"id"`
	PhoneNumber  *string            `bson:"phone_number,omitempty" json:"phone_number"`
	Verification *ClerkVerification `bson:"verification,omitempty" json:"verification"`
	CreatedAt    int64              `bson:"created_at" json:"created_at"`
	UpdatedAt    int64              `bson:"updated_at" json:"updated_at"`
}

// ClerkVerification describes the verification state of an email or phone.
type ClerkVerification struct {
	Status   *string `bson:"status,omitempty" json:"status"`
	Strategy *string `bson:"strategy,omitempty" json:"strategy"`
}

// ClerkDeletedUser is the payload of a user.deleted event.
type ClerkDeletedUser struct {
	ID      string `json:"id"`
	Deleted *bool  `json:"deleted"`
}
