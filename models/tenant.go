package models

import "time"

// UploadedDocument records one stored document reference.
type UploadedDocument struct {
	Filename string `bson:"filename,omitempty" json:"filename,omitempty"`
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
	MimeType string `bson:"mimetype,omitempty" json:"mimetype,omitempty"`
	Size     int64  `bson:"size,omitempty" json:"size,omitempty"`
}

// Tenant is a registered renting resident.
type Tenant struct {
	ID                 string           `bson:"id" json:"id"`
	FirstName          string           `bson:"firstName" json:"firstName"`
	LastName           string           `bson:"lastName" json:"lastName"`
	EmailAddress       string           `bson:"emailAddress" json:"emailAddress"`
	PhoneNumber        string           `bson:"phoneNumber" json:"phoneNumber"`
	DateOfBirth        time.Time        `bson:"dateOfBirth" json:"dateOfBirth"`
	Occupation         string           `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Employer           string           `bson:"employer,omitempty" json:"employer,omitempty"`
	AnnualIncome       float64          `bson:"annualIncome,omitempty" json:"annualIncome,omitempty"`
	CurrentAddress     string           `bson:"currentAddress,omitempty" json:"currentAddress,omitempty"`
	City               string           `bson:"city,omitempty" json:"city,omitempty"`
	State              string           `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode            string           `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
	Password           string           `bson:"password" json:"-"`
	RentalAgreement    UploadedDocument `bson:"rentalAgreement" json:"rentalAgreement"`
	PhotoIdentityProof UploadedDocument `bson:"photoIdentityProof" json:"photoIdentityProof"`
	CreatedAt          time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time        `bson:"updatedAt" json:"updatedAt"`
}
