package proto

// MessageType is the im.MessageType enum.
type MessageType int32

const (
	MessageTypeText MessageType = iota
	MessageTypeImage
	MessageTypeVoice
	MessageTypeVideo
	MessageTypeFile
	MessageTypeLocation
)

type Message struct {
	MessageId   int64       `json:"message_id,omitempty"`
	SenderId    int64       `json:"sender_id,omitempty"`
	ReceiverId  int64       `json:"receiver_id,omitempty"`
	MessageType MessageType `json:"message_type,omitempty"`
	Content     string      `json:"content,omitempty"`
	Timestamp   int64       `json:"timestamp,omitempty"`
}

func (m *Message) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.int64(1, m.MessageId)
	e.int64(2, m.SenderId)
	e.int64(3, m.ReceiverId)
	e.int32(4, int32(m.MessageType))
	e.string(5, m.Content)
	e.int64(6, m.Timestamp)
	return e.b
}

func (m *Message) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.MessageId = d.int64()
		case 2:
			m.SenderId = d.int64()
		case 3:
			m.ReceiverId = d.int64()
		case 4:
			m.MessageType = MessageType(d.int32())
		case 5:
			m.Content = d.string()
		case 6:
			m.Timestamp = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Message) GetMessageId() int64 {
	if m != nil {
		return m.MessageId
	}
	return 0
}

func (m *Message) GetSenderId() int64 {
	if m != nil {
		return m.SenderId
	}
	return 0
}

func (m *Message) GetReceiverId() int64 {
	if m != nil {
		return m.ReceiverId
	}
	return 0
}

func (m *Message) GetMessageType() MessageType {
	if m != nil {
		return m.MessageType
	}
	return 0
}

func (m *Message) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

func (m *Message) GetTimestamp() int64 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}

type SendMessageRequest struct {
	SenderId    int64       `json:"sender_id,omitempty"`
	ReceiverId  int64       `json:"receiver_id,omitempty"`
	MessageType MessageType `json:"message_type,omitempty"`
	Content     string      `json:"content,omitempty"`
}

func (m *SendMessageRequest) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.int64(1, m.SenderId)
	e.int64(2, m.ReceiverId)
	e.int32(3, int32(m.MessageType))
	e.string(4, m.Content)
	return e.b
}

func (m *SendMessageRequest) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.SenderId = d.int64()
		case 2:
			m.ReceiverId = d.int64()
		case 3:
			m.MessageType = MessageType(d.int32())
		case 4:
			m.Content = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *SendMessageRequest) GetSenderId() int64 {
	if m != nil {
		return m.SenderId
	}
	return 0
}

func (m *SendMessageRequest) GetReceiverId() int64 {
	if m != nil {
		return m.ReceiverId
	}
	return 0
}

func (m *SendMessageRequest) GetMessageType() MessageType {
	if m != nil {
		return m.MessageType
	}
	return 0
}

func (m *SendMessageRequest) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

type SendMessageResponse struct {
	Success   bool   `json:"success,omitempty"`
	MessageId int64  `json:"message_id,omitempty"`
	Message   string `json:"message,omitempty"`
}

func (m *SendMessageResponse) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.bool(1, m.Success)
	e.int64(2, m.MessageId)
	e.string(3, m.Message)
	return e.b
}

func (m *SendMessageResponse) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Success = d.bool()
		case 2:
			m.MessageId = d.int64()
		case 3:
			m.Message = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *SendMessageResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *SendMessageResponse) GetMessageId() int64 {
	if m != nil {
		return m.MessageId
	}
	return 0
}

func (m *SendMessageResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type GetMessagesRequest struct {
	UserId    int64 `json:"user_id,omitempty"`
	PeerId    int64 `json:"peer_id,omitempty"`
	Timestamp int64 `json:"timestamp,omitempty"`
	Limit     int32 `json:"limit,omitempty"`
}

func (m *GetMessagesRequest) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.int64(1, m.UserId)
	e.int64(2, m.PeerId)
	e.int64(3, m.Timestamp)
	e.int32(4, m.Limit)
	return e.b
}

func (m *GetMessagesRequest) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.UserId = d.int64()
		case 2:
			m.PeerId = d.int64()
		case 3:
			m.Timestamp = d.int64()
		case 4:
			m.Limit = d.int32()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *GetMessagesRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *GetMessagesRequest) GetPeerId() int64 {
	if m != nil {
		return m.PeerId
	}
	return 0
}

func (m *GetMessagesRequest) GetTimestamp() int64 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}

func (m *GetMessagesRequest) GetLimit() int32 {
	if m != nil {
		return m.Limit
	}
	return 0
}

type GetMessagesResponse struct {
	Success  bool       `json:"success,omitempty"`
	Messages []*Message `json:"messages,omitempty"`
}

func (m *GetMessagesResponse) AppendWire(b []byte) []byte {
	e := encoder{b: b}
	e.bool(1, m.Success)
	for _, v := range m.Messages {
		e.message(2, v)
	}
	return e.b
}

func (m *GetMessagesResponse) UnmarshalWire(b []byte) error {
	d := decoder{b: b}
	for d.next() {
		switch d.num {
		case 1:
			m.Success = d.bool()
		case 2:
			v := &Message{}
			d.message(v)
			m.Messages = append(m.Messages, v)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *GetMessagesResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *GetMessagesResponse) GetMessages() []*Message {
	if m != nil {
		return m.Messages
	}
	return nil
}
