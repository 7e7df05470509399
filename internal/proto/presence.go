package proto

// OnlineStatus is the im.OnlineStatus enum.
type OnlineStatus int32

const (
	OnlineStatusOffline OnlineStatus = iota
	OnlineStatusOnline
	OnlineStatusAway
)

type SetOnlineRequest struct {
	UserId       int64        `json:"user_id,omitempty"`
	OnlineStatus OnlineStatus `json:"online_status,omitempty"`
}

func (m *SetOnlineRequest) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.int64(1, m.UserId)
	e.int32(2, int32(m.OnlineStatus))
	return e.b
}

func (m *SetOnlineRequest) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.UserId = d.int64()
		case 2:
			m.OnlineStatus = OnlineStatus(d.int32())
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *SetOnlineRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *SetOnlineRequest) GetOnlineStatus() OnlineStatus {
	if m != nil {
		return m.OnlineStatus
	}
	return 0
}

type SetOnlineResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}

func (m *SetOnlineResponse) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.bool(1, m.Success)
	e.string(2, m.Message)
	return e.b
}

func (m *SetOnlineResponse) UnmarshalWire(b []byte) error {
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

func (m *SetOnlineResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *SetOnlineResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type GetOnlineStatusRequest struct {
	UserIds []int64 `json:"user_ids,omitempty"`
}

func (m *GetOnlineStatusRequest) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.packedInt64(1, m.UserIds)
	return e.b
}

func (m *GetOnlineStatusRequest) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.UserIds = d.int64s(m.UserIds)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *GetOnlineStatusRequest) GetUserIds() []int64 {
	if m != nil {
		return m.UserIds
	}
	return nil
}

type UserStatus struct {
	UserId       int64        `json:"user_id,omitempty"`
	OnlineStatus OnlineStatus `json:"online_status,omitempty"`
}

func (m *UserStatus) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.int64(1, m.UserId)
	e.int32(2, int32(m.OnlineStatus))
	return e.b
}

func (m *UserStatus) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.UserId = d.int64()
		case 2:
			m.OnlineStatus = OnlineStatus(d.int32())
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *UserStatus) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *UserStatus) GetOnlineStatus() OnlineStatus {
	if m != nil {
		return m.OnlineStatus
	}
	return 0
}

type GetOnlineStatusResponse struct {
	Success  bool          `json:"success,omitempty"`
	Statuses []*UserStatus `json:"statuses,omitempty"`
}

func (m *GetOnlineStatusResponse) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.bool(1, m.Success)
	for _, v := range m.Statuses {
		e.message(2, v)
	}
	return e.b
}

func (m *GetOnlineStatusResponse) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Success = d.bool()
		case 2:
			v := &UserStatus{}
			d.message(v)
			m.Statuses = append(m.Statuses, v)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *GetOnlineStatusResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *GetOnlineStatusResponse) GetStatuses() []*UserStatus {
	if m != nil {
		return m.Statuses
	}
	return nil
}
