package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Accounts & Approval
// ============================================================

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account approval statuses
const (
	StatusApproved = "approved"
	StatusPending  = "pending"
	StatusRejected = "rejected"
)

// User represents the users table. Username and QRCode are written
// once at registration; Status is the only field that changes after
// creation, and only through an admin decision.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:10;not null" json:"role"`
	Status    string    `gorm:"size:10;not null;default:'approved'" json:"status"`
	QRCode    string    `gorm:"type:longtext" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account is an admin account
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse DTO. The password hash and QR code never leave the
// persistence layer through this shape.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// ============================================================
// Residents & Activity Log
// ============================================================

// Resident represents the residents table. PublicID is the UUID the
// clients address residents by.
type Resident struct {
	ID              uint           `gorm:"primaryKey" json:"-" csv:"-"`
	PublicID        string         `gorm:"uniqueIndex;size:36;not null" json:"id" csv:"id"`
	FirstName       string         `gorm:"size:100" json:"firstName" csv:"firstName"`
	MiddleName      string         `gorm:"size:100" json:"middleName" csv:"middleName"`
	LastName        string         `gorm:"size:100" json:"lastName" csv:"lastName"`
	DOB             string         `gorm:"size:20" json:"dob" csv:"dob"`
	Age             int            `json:"age" csv:"age"`
	Sex             string         `gorm:"size:10" json:"sex" csv:"sex"`
	Address         string         `gorm:"size:255" json:"address" csv:"address"`
	Contact         string         `gorm:"size:30" json:"contact" csv:"contact"`
	CivilStatus     string         `gorm:"size:30" json:"civilStatus" csv:"civilStatus"`
	Occupation      string         `gorm:"size:100" json:"occupation" csv:"occupation"`
	VoterStatus     string         `gorm:"size:30" json:"voterStatus" csv:"voterStatus"`
	SpecialCategory string         `gorm:"size:50" json:"specialCategory" csv:"specialCategory"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at" csv:"-"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at" csv:"-"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-" csv:"-"`
}

func (Resident) TableName() string {
	return "residents"
}

// FullName returns the name used in activity log entries
func (r *Resident) FullName() string {
	return r.FirstName + " " + r.LastName
}

// Activity log actions
const (
	ActivityAdded   = "added"
	ActivityUpdated = "updated"
	ActivityDeleted = "deleted"
)

// ResidentActivity is an append-only audit entry for resident writes
type ResidentActivity struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Action       string    `gorm:"size:10;not null" json:"action"`
	ResidentName string    `gorm:"size:200;not null" json:"residentName"`
	Timestamp    time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (ResidentActivity) TableName() string {
	return "resident_activities"
}

// ============================================================
// Emergency Contacts
// ============================================================

// EmergencyContact represents the emergency_contacts table
type EmergencyContact struct {
	ID        uint      `gorm:"primaryKey" json:"-" csv:"-"`
	PublicID  string    `gorm:"uniqueIndex;size:36;not null" json:"id" csv:"id"`
	Name      string    `gorm:"size:100" json:"name" csv:"name"`
	Phone     string    `gorm:"size:30" json:"phone" csv:"phone"`
	Email     string    `gorm:"size:100" json:"email" csv:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at" csv:"-"`
}

func (EmergencyContact) TableName() string {
	return "emergency_contacts"
}

// ============================================================
// Complaints
// ============================================================

// Complaint represents the complaints table
type Complaint struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PublicID  string    `gorm:"uniqueIndex;size:36;not null" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:100" json:"email"`
	Type      string    `gorm:"size:50" json:"type"`
	Message   string    `gorm:"type:text" json:"message"`
	Status    string    `gorm:"size:30" json:"status"`
	Date      string    `gorm:"size:20" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Complaint) TableName() string {
	return "complaints"
}

// ============================================================
// Announcements
// ============================================================

// Announcement represents the announcements table. Image is stored as
// an inline data URL, same as the QR artifacts.
type Announcement struct {
	ID        uint      `gorm:"primaryKey" json:"id" csv:"-"`
	Title     string    `gorm:"size:200" json:"title" csv:"title"`
	Caption   string    `gorm:"type:text" json:"caption" csv:"caption"`
	Image     string    `gorm:"type:longtext" json:"image" csv:"image"`
	Date      time.Time `gorm:"autoCreateTime;index" json:"date" csv:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at" csv:"-"`
}

func (Announcement) TableName() string {
	return "announcements"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Resident{},
		&ResidentActivity{},
		&EmergencyContact{},
		&Complaint{},
		&Announcement{},
	)
}
