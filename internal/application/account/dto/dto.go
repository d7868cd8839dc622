package dto

// CreateAccountRequest carries the input of account provisioning. Role is a
// stored role string; creator attribution comes from the session context,
// not from the caller.
type CreateAccountRequest struct {
	Role            string
	Username        string
	Password        string
	ConfirmPassword string
	DisplayName     string
}

type ChangePasswordRequest struct {
	AccountID       uint
	NewPassword     string
	ConfirmPassword string
}

type SetActiveRequest struct {
	AccountID uint
	Active    bool
}

// EmergencyResetRequest is the unauthenticated recovery path. ResetKey is
// the out-of-band shared secret from configuration.
type EmergencyResetRequest struct {
	ResetKey        string
	Username        string
	NewPassword     string
	ConfirmPassword string
}

// AccountView is a display-ready account row. LastLogin is "Never" until the
// first sign-in and CreatedBy falls back to the blank sentinel.
type AccountView struct {
	ID          uint
	Username    string
	DisplayName string
	Role        string
	Active      bool
	CreatedBy   string
	CreatedAt   string
	LastLogin   string
}

// AccountListing is one role's accounts plus the dashboard counts.
type AccountListing struct {
	Accounts []AccountView
	Total    int
	Active   int
	Inactive int
}
