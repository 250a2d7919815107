package models

import "time"

// Admin roles.
const (
	AdminRoleSuper     = "super_admin"
	AdminRoleAdmin     = "admin"
	AdminRoleCollector = "collector"
)

// AdminPermissions gates elevated operations per admin.
type AdminPermissions struct {
	ManageSchedules   bool `bson:"manageSchedules" json:"manageSchedules"`
	ManageUsers       bool `bson:"manageUsers" json:"manageUsers"`
	SendNotifications bool `bson:"sendNotifications" json:"sendNotifications"`
	ViewReports       bool `bson:"viewReports" json:"viewReports"`
	ManageZones       bool `bson:"manageZones" json:"manageZones"`
}

// DefaultAdminPermissions returns the permission set granted on registration.
func DefaultAdminPermissions() AdminPermissions {
	return AdminPermissions{
		ManageSchedules:   true,
		ManageUsers:       true,
		SendNotifications: true,
		ViewReports:       true,
		ManageZones:       true,
	}
}

// AdminLocation is the live-tracking state for a collector.
type AdminLocation struct {
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	LastUpdated time.Time    `bson:"lastUpdated" json:"lastUpdated"`
	IsOnline    bool         `bson:"isOnline" json:"isOnline"`
}

// VehicleInfo describes a collector's vehicle.
type VehicleInfo struct {
	VehicleNumber string `bson:"vehicleNumber,omitempty" json:"vehicleNumber,omitempty"`
	VehicleType   string `bson:"vehicleType,omitempty" json:"vehicleType,omitempty"`
	Capacity      int    `bson:"capacity,omitempty" json:"capacity,omitempty"` // in kg
}

// Admin is an operator account.
type Admin struct {
	ID              string           `bson:"id" json:"id"`
	FirstName       string           `bson:"firstName" json:"firstName"`
	LastName        string           `bson:"lastName" json:"lastName"`
	EmailAddress    string           `bson:"emailAddress" json:"emailAddress"`
	PhoneNumber     string           `bson:"phoneNumber" json:"phoneNumber"`
	Password        string           `bson:"password" json:"-"`
	Role            string           `bson:"role" json:"role"`
	Permissions     AdminPermissions `bson:"permissions" json:"permissions"`
	CurrentLocation AdminLocation    `bson:"currentLocation" json:"currentLocation"`
	AssignedZones   []string         `bson:"assignedZones" json:"assignedZones"`
	VehicleInfo     VehicleInfo      `bson:"vehicleInfo" json:"vehicleInfo"`
	CreatedAt       time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// PublicProfile strips credentials from the admin document.
type AdminProfile struct {
	ID            string           `json:"id"`
	FirstName     string           `json:"firstName"`
	LastName      string           `json:"lastName"`
	EmailAddress  string           `json:"emailAddress"`
	Role          string           `json:"role"`
	Permissions   AdminPermissions `json:"permissions"`
	AssignedZones []string         `json:"assignedZones"`
	VehicleInfo   VehicleInfo      `json:"vehicleInfo"`
}

// Profile returns the externally visible view of the admin.
func (a *Admin) Profile() AdminProfile {
	return AdminProfile{
		ID:            a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		EmailAddress:  a.EmailAddress,
		Role:          a.Role,
		Permissions:   a.Permissions,
		AssignedZones: a.AssignedZones,
		VehicleInfo:   a.VehicleInfo,
	}
}
