package proto
// im.SessionService messages. The service covers the friend list.
type GetFriendsRequest struct {
	UserId int64 `json:"user_id,omitempty"`
}

func (m *GetFriendsRequest) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.int64(1, m.UserId)
	return e.b
}

func (m *GetFriendsRequest) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.UserId = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *GetFriendsRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

type FriendInfo struct {
	UserId       int64        `json:"user_id,omitempty"`
	Username     string       `json:"username,omitempty"`
	AvatarUrl    string       `json:"avatar_url,omitempty"`
	OnlineStatus OnlineStatus `json:"online_status,omitempty"`
}

func (m *FriendInfo) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.int64(1, m.UserId)
	e.string(2, m.Username)
	e.string(3, m.AvatarUrl)
	e.int32(4, int32(m.OnlineStatus))
	return e.b
}

func (m *FriendInfo) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.UserId = d.int64()
		case 2:
			m.Username = d.string()
		case 3:
			m.AvatarUrl = d.string()
		case 4:
			m.OnlineStatus = OnlineStatus(d.int32())
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *FriendInfo) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *FriendInfo) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *FriendInfo) GetAvatarUrl() string {
	if m != nil {
		return m.AvatarUrl
	}
	return ""
}

func (m *FriendInfo) GetOnlineStatus() OnlineStatus {
	if m != nil {
		return m.OnlineStatus
	}
	return 0
}

type GetFriendsResponse struct {
	Success bool          `json:"success,omitempty"`
	Friends []*FriendInfo `json:"friends,omitempty"`
}

func (m *GetFriendsResponse) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.bool(1, m.Success)
	for _, v := range m.Friends {
		e.message(2, v)
	}
	return e.b
}

func (m *GetFriendsResponse) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Success = d.bool()
		case 2:
			v := &FriendInfo{}
			d.message(v)
			m.Friends = append(m.Friends, v)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *GetFriendsResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *GetFriendsResponse) GetFriends() []*FriendInfo {
	if m != nil {
		return m.Friends
	}
	return nil
}

type AddFriendRequest struct {
	UserId   int64 `json:"user_id,omitempty"`
	FriendId int64 `json:"friend_id,omitempty"`
}

func (m *AddFriendRequest) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.int64(1, m.UserId)
	e.int64(2, m.FriendId)
	return e.b
}

func (m *AddFriendRequest) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.UserId = d.int64()
		case 2:
			m.FriendId = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *AddFriendRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *AddFriendRequest) GetFriendId() int64 {
	if m != nil {
		return m.FriendId
	}
	return 0
}

type AddFriendResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}

func (m *AddFriendResponse) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.bool(1, m.Success)
	e.string(2, m.Message)
	return e.b
}

func (m *AddFriendResponse) UnmarshalWire(b []byte) error {
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

func (m *AddFriendResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *AddFriendResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}
