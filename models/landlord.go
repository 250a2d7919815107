package models

import "time"

// Landlord is a registered property owner.
type Landlord struct {
	ID             string           `bson:"id" json:"id"`
	FirstName      string           `bson:"firstName" json:"firstName"`
	LastName       string           `bson:"lastName" json:"lastName"`
	EmailAddress   string           `bson:"emailAddress" json:"emailAddress"`
	PhoneNumber    string           `bson:"phoneNumber" json:"phoneNumber"`
	Address        string           `bson:"address" json:"address"`
	City           string           `bson:"city" json:"city"`
	State          string           `bson:"state" json:"state"`
	ZipCode        string           `bson:"zipCode" json:"zipCode"`
	Password       string           `bson:"password" json:"-"`
	HouseDocuments UploadedDocument `bson:"houseDocuments" json:"houseDocuments"`
	ProofOfAddress UploadedDocument `bson:"proofOfAddress" json:"proofOfAddress"`
	CreatedAt      time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time        `bson:"updatedAt" json:"updatedAt"`
}
