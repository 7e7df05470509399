package proto
// im.UserService messages.
type RegisterRequest struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (m *RegisterRequest) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.string(1, m.Username)
	e.string(2, m.Password)
	e.string(3, m.Email)
	return e.b
}

func (m *RegisterRequest) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Username = d.string()
		case 2:
			m.Password = d.string()
		case 3:
			m.Email = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *RegisterRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *RegisterRequest) GetPassword() string {
	if m != nil {
		return m.Password
	}
	return ""
}

func (m *RegisterRequest) GetEmail() string {
	if m != nil {
		return m.Email
	}
	return ""
}

type RegisterResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	UserId  int64  `json:"user_id,omitempty"`
}

func (m *RegisterResponse) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.bool(1, m.Success)
	e.string(2, m.Message)
	e.int64(3, m.UserId)
	return e.b
}

func (m *RegisterResponse) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Success = d.bool()
		case 2:
			m.Message = d.string()
		case 3:
			m.UserId = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *RegisterResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *RegisterResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *RegisterResponse) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

func (m *LoginRequest) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.string(1, m.Username)
	e.string(2, m.Password)
	return e.b
}

func (m *LoginRequest) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Username = d.string()
		case 2:
			m.Password = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *LoginRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *LoginRequest) GetPassword() string {
	if m != nil {
		return m.Password
	}
	return ""
}

type LoginResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	UserId  int64  `json:"user_id,omitempty"`
	Token   string `json:"token,omitempty"`
}

func (m *LoginResponse) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.bool(1, m.Success)
	e.string(2, m.Message)
	e.int64(3, m.UserId)
	e.string(4, m.Token)
	return e.b
}

func (m *LoginResponse) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Success = d.bool()
		case 2:
			m.Message = d.string()
		case 3:
			m.UserId = d.int64()
		case 4:
			m.Token = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *LoginResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *LoginResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *LoginResponse) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *LoginResponse) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

type LogoutRequest struct {
	UserId int64  `json:"user_id,omitempty"`
	Token  string `json:"token,omitempty"`
}

func (m *LogoutRequest) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.int64(1, m.UserId)
	e.string(2, m.Token)
	return e.b
}

func (m *LogoutRequest) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.UserId = d.int64()
		case 2:
			m.Token = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *LogoutRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *LogoutRequest) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

type LogoutResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}

func (m *LogoutResponse) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.bool(1, m.Success)
	e.string(2, m.Message)
	return e.b
}

func (m *LogoutResponse) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Success = d.bool()
		case 2:
			m.Message = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *LogoutResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *LogoutResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type RefreshTokenRequest struct {
	UserId int64  `json:"user_id,omitempty"`
	Token  string `json:"token,omitempty"`
}

func (m *RefreshTokenRequest) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.int64(1, m.UserId)
	e.string(2, m.Token)
	return e.b
}

func (m *RefreshTokenRequest) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.UserId = d.int64()
		case 2:
			m.Token = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *RefreshTokenRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *RefreshTokenRequest) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

type RefreshTokenResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

func (m *RefreshTokenResponse) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.bool(1, m.Success)
	e.string(2, m.Message)
	e.string(3, m.Token)
	return e.b
}

func (m *RefreshTokenResponse) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Success = d.bool()
		case 2:
			m.Message = d.string()
		case 3:
			m.Token = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *RefreshTokenResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *RefreshTokenResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *RefreshTokenResponse) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

type ValidateTokenRequest struct {
	Token string `json:"token,omitempty"`
}

func (m *ValidateTokenRequest) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.string(1, m.Token)
	return e.b
}

func (m *ValidateTokenRequest) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Token = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *ValidateTokenRequest) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

type ValidateTokenResponse struct {
	Success bool  `json:"success,omitempty"`
	UserId  int64 `json:"user_id,omitempty"`
}

func (m *ValidateTokenResponse) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.bool(1, m.Success)
	e.int64(2, m.UserId)
	return e.b
}

func (m *ValidateTokenResponse) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Success = d.bool()
		case 2:
			m.UserId = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *ValidateTokenResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *ValidateTokenResponse) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}
