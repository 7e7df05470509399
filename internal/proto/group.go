package proto

type CreateGroupRequest struct {
	GroupName   string `json:"group_name,omitempty"`
	OwnerId     int64  `json:"owner_id,omitempty"`
	Description string `json:"description,omitempty"`
}

func (m *CreateGroupRequest) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.string(1, m.GroupName)
	e.int64(2, m.OwnerId)
	e.string(3, m.Description)
	return e.b
}

func (m *CreateGroupRequest) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.GroupName = d.string()
		case 2:
			m.OwnerId = d.int64()
		case 3:
			m.Description = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *CreateGroupRequest) GetGroupName() string {
	if m != nil {
		return m.GroupName
	}
	return ""
}

func (m *CreateGroupRequest) GetOwnerId() int64 {
	if m != nil {
		return m.OwnerId
	}
	return 0
}

func (m *CreateGroupRequest) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

type CreateGroupResponse struct {
	Success bool   `json:"success,omitempty"`
	GroupId int64  `json:"group_id,omitempty"`
	Message string `json:"message,omitempty"`
}

func (m *CreateGroupResponse) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.bool(1, m.Success)
	e.int64(2, m.GroupId)
	e.string(3, m.Message)
	return e.b
}

func (m *CreateGroupResponse) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Success = d.bool()
		case 2:
			m.GroupId = d.int64()
		case 3:
			m.Message = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *CreateGroupResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *CreateGroupResponse) GetGroupId() int64 {
	if m != nil {
		return m.GroupId
	}
	return 0
}

func (m *CreateGroupResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type GetGroupInfoRequest struct {
	GroupId int64 `json:"group_id,omitempty"`
}

func (m *GetGroupInfoRequest) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.int64(1, m.GroupId)
	return e.b
}

func (m *GetGroupInfoRequest) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.GroupId = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *GetGroupInfoRequest) GetGroupId() int64 {
	if m != nil {
		return m.GroupId
	}
	return 0
}

type GroupInfo struct {
	GroupId     int64  `json:"group_id,omitempty"`
	GroupName   string `json:"group_name,omitempty"`
	Description string `json:"description,omitempty"`
	OwnerId     int64  `json:"owner_id,omitempty"`
	MemberCount int32  `json:"member_count,omitempty"`
}

func (m *GroupInfo) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.int64(1, m.GroupId)
	e.string(2, m.GroupName)
	e.string(3, m.Description)
	e.int64(4, m.OwnerId)
	e.int32(5, m.MemberCount)
	return e.b
}

func (m *GroupInfo) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.GroupId = d.int64()
		case 2:
			m.GroupName = d.string()
		case 3:
			m.Description = d.string()
		case 4:
			m.OwnerId = d.int64()
		case 5:
			m.MemberCount = d.int32()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *GroupInfo) GetGroupId() int64 {
	if m != nil {
		return m.GroupId
	}
	return 0
}

func (m *GroupInfo) GetGroupName() string {
	if m != nil {
		return m.GroupName
	}
	return ""
}

func (m *GroupInfo) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

func (m *GroupInfo) GetOwnerId() int64 {
	if m != nil {
		return m.OwnerId
	}
	return 0
}

func (m *GroupInfo) GetMemberCount() int32 {
	if m != nil {
		return m.MemberCount
	}
	return 0
}

type GetGroupInfoResponse struct {
	Success   bool       `json:"success,omitempty"`
	GroupInfo *GroupInfo `json:"group_info,omitempty"`
}

func (m *GetGroupInfoResponse) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.bool(1, m.Success)
	if m.GroupInfo != nil {
		e.message(2, m.GroupInfo)
	}
	return e.b
}

func (m *GetGroupInfoResponse) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Success = d.bool()
		case 2:
			m.GroupInfo = &GroupInfo{}
			d.message(m.GroupInfo)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *GetGroupInfoResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *GetGroupInfoResponse) GetGroupInfo() *GroupInfo {
	if m != nil {
		return m.GroupInfo
	}
	return nil
}
