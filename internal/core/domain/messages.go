package domain

// User-facing texts of the dashboard.
const (
	MsgUnreachable  = "Cannot reach the server. Please try again."
	MsgLoginFailed  = "Login failed"
	MsgAccessDenied = "Only administrators can sign in to the dashboard."
	MsgWelcome      = "Signed in successfully. Welcome back!"
	MsgLoggedOut    = "Signed out successfully"
	MsgSaveFailed   = "Something went wrong"
	MsgUpdateFailed = "Update failed"
	MsgDeleteFailed = "Delete failed"
)

// PageMessages are the toast texts of one CRUD page.
type PageMessages struct {
	Created    string
	Updated    string
	Deleted    string
	Required   string
	SaveFailed string
}

var (
	MotorbikeMessages = PageMessages{
		Created:    "Motorbike added",
		Updated:    "Motorbike updated",
		Deleted:    "Motorbike deleted",
		Required:   "Please fill in all required fields",
		SaveFailed: MsgSaveFailed,
	}
	UserMessages = PageMessages{
		Updated:    "User updated",
		Deleted:    "User deleted",
		Required:   "Please fill in all required fields",
		SaveFailed: MsgUpdateFailed,
	}
	BlogMessages = PageMessages{
		Created:    "Blog post created",
		Updated:    "Blog post updated",
		Deleted:    "Blog post deleted",
		Required:   "Please fill in the title, content and image",
		SaveFailed: MsgSaveFailed,
	}
	PromotionMessages = PageMessages{
		Created:    "Promotion created",
		Updated:    "Promotion updated",
		Deleted:    "Promotion deleted",
		Required:   "Please fill in all required fields",
		SaveFailed: MsgSaveFailed,
	}
	MsgRentalStatusUpdated = "Rental status updated"
)

const (
	MsgCredentialsRequired = "Please enter your email and password"
	MsgSessionSaveFailed   = "Could not save your session. Please try again."
)
