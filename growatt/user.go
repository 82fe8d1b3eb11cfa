package growatt

const (
	userRegisterURI  = "user/user_register"
	userModifyURI    = "user/modify"
	userCheckURI     = "user/check_user"
	userListURI      = "user/c_user_list"
	usernameTakenErr = 10003
)

// UserService manages the end users registered under the API account.
type UserService struct {
	session *Session
}

// UserRegistration describes a new end user. Username, Password, Email and
// Country are required; UserType defaults to 1 (end customer).
type UserRegistrationRequest struct {
	Username      string
	Password      string
	Email         string
	Country       string
	UserType      int
	InstallerCode string
	PhoneNumber   string
	Timezone      string
}

// Register creates a new end user under the account and returns its ID.
func (s *UserService) Register(req UserRegistrationRequest) (*UserRegistration, error) {
	userType := req.UserType
	if userType == 0 {
		userType = 1
	}

	form := newParams().
		set("user_name", req.Username).
		set("user_password", req.Password).
		set("user_email", req.Email).
		setInt("user_type", userType).
		set("user_country", req.Country).
		setOptString("agent_code", req.InstallerCode).
		setOptString("user_tel", req.PhoneNumber).
		setOptString("time", req.Timezone)

	body, err := s.session.post(userRegisterURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[UserRegistration](body)
}

// Modify updates the phone number and optionally the installer code of an end
// user.
func (s *UserService) Modify(userID int, phoneNumber, installerCode string) (*UserModification, error) {
	form := newParams().
		setInt("c_user_id", userID).
		set("mobile", phoneNumber).
		setOptString("agent_code", installerCode)

	body, err := s.session.post(userModifyURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[UserModification](body)
}

// CheckUsername reports whether a username is still free. A taken name is not
// an error: the result's Available field is false and the envelope carries the
// vendor's duplicate-name code.
func (s *UserService) CheckUsername(username string) (*UsernameAvailability, error) {
	body, err := s.session.post(userCheckURI, newParams().set("user_name", username))
	if err != nil {
		return nil, err
	}

	result, err := parseResponse[UsernameAvailability](body)
	if err != nil {
		return nil, err
	}

	if result.ErrorCode.Valid {
		switch result.ErrorCode.Int64 {
		case 0:
			result.Available = BoolOf(true)
		case usernameTakenErr:
			result.Available = BoolOf(false)
		}
	}

	return result, nil
}

// List pages through the end users registered under the account. The vendor
// caps this endpoint at 10 calls per day.
func (s *UserService) List(page, limit int) (*UserList, error) {
	query := newParams().
		setOptInt("page", page).
		setOptInt("perpage", limit)

	body, err := s.session.get(userListURI, query)
	if err != nil {
		return nil, err
	}

	return parseResponse[UserList](body)
}

// UserRegistrationData carries the ID of a freshly registered end user.
type UserRegistrationData struct {
	UserID Int `json:"c_user_id"`
}

// UserRegistration is the response of the registration call.
type UserRegistration struct {
	ResponseMeta
	Data *UserRegistrationData `json:"data"`
}

// UserModification is the response of the modification call.
type UserModification struct {
	ResponseMeta
	Data String `json:"data"`
}

// UsernameAvailability is the response of the duplicate-name check. Available
// is derived from the envelope code and absent when the check itself failed.
type UsernameAvailability struct {
	ResponseMeta
	Available Bool   `json:"username_available"`
	Data      String `json:"data"`
}

// UserInfo is one end user of the account.
type UserInfo struct {
	ID               Int       `json:"c_user_id"`
	Name             String    `json:"c_user_name"`
	Email            String    `json:"c_user_email"`
	PhoneNumber      String    `json:"c_user_tel"`
	RegistrationDate Timestamp `json:"c_user_regtime"`
}

// UserListData pages through the end users.
type UserListData struct {
	Count Int        `json:"count"`
	Users []UserInfo `json:"c_user"`
}

// UserList is the response of the end-user list read.
type UserList struct {
	ResponseMeta
	Data *UserListData `json:"data"`
}
