package model

import "time"

// Role values stored in loginusers.role.  New accounts always start as
// RoleGuest; the elevated tiers are provisioned out of band.
const (
    RoleGuest      = "guest"
    RoleStaff      = "staff"
    RoleAdmin      = "admin"
    RoleSuperAdmin = "superadmin"
)

// User represents an application user record as stored in the
// `loginusers` table.  Each field corresponds to a column in the
// database.  The json tags are omitted here because these structs
// are primarily used internally by the repository layer; handlers
// define separate response types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  FirstName    – given name supplied at signup.
//  LastName     – family name supplied at signup.
//  Username     – unique login name (guest tier logs in with this).
//  Email        – unique email address (staff tiers log in with this).
//  PasswordHash – bcrypt hashed password; never stored or sent in clear.
//  Role         – privilege tier (guest, staff, admin, superadmin).
//  CreatedAt    – timestamp of creation.
type User struct {
    ID           uint64    // loginusers.id
    FirstName    string    // loginusers.firstname
    LastName     string    // loginusers.lastname
    Username     string    // loginusers.username
    Email        string    // loginusers.email
    PasswordHash string    // loginusers.passwords
    Role         string    // loginusers.role
    CreatedAt    time.Time // loginusers.created_at
}
