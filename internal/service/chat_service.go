package service

import (
	"errors"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/model"
	"vetrico-go/internal/realtime"
	"vetrico-go/internal/repository"
	"vetrico-go/pkg/badwords"
	"vetrico-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ChatService struct {
	messageRepo *repository.MessageRepository
	userRepo    *repository.UserRepository
	filter      *badwords.Filter
	pusher      Pusher
	online      OnlineChecker
}

func NewChatService(
	messageRepo *repository.MessageRepository,
	userRepo *repository.UserRepository,
	filter *badwords.Filter,
	pusher Pusher,
	online OnlineChecker,
) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		filter:      filter,
		pusher:      pusher,
		online:      online,
	}
}

// SendMessage 发送私信
// 命中屏蔽词的消息静默丢弃：不落库、不推送、不回执、不报错；
// 通过后先落库再推送，接收方收到 receive_message，
// 发送方只有发起连接收到 message_sent 回执
func (s *ChatService) SendMessage(senderID int64, connID string, recipientID int64, body string) (*dto.MessageInfo, error) {
	if s.filter.Contains(body) {
		logger.Debug("私信命中屏蔽词，已丢弃", zap.Int64("sender_id", senderID))
		return nil, nil
	}

	if _, err := s.userRepo.GetByID(recipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	message := &model.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	timestamp := message.CreatedAt.Format("15:04")
	s.pusher.PushToUser(recipientID, realtime.EventReceiveMessage, realtime.ReceiveMessagePayload{
		SenderID:  senderID,
		Body:      message.Body,
		Timestamp: timestamp,
	})
	s.pusher.PushToConn(connID, realtime.EventMessageSent, realtime.MessageSentPayload{
		Body:      message.Body,
		Timestamp: timestamp,
	})

	return toMessageInfo(message), nil
}

// SetTyping 向对方推送正在输入提示
func (s *ChatService) SetTyping(senderID, recipientID int64) {
	s.pusher.PushToUser(recipientID, realtime.EventDisplayTyping, realtime.TypingSignal{SenderID: senderID})
}

// ClearTyping 撤销正在输入提示
func (s *ChatService) ClearTyping(senderID, recipientID int64) {
	s.pusher.PushToUser(recipientID, realtime.EventHideTyping, realtime.TypingSignal{SenderID: senderID})
}

// MarkConversationRead 将对方发来的未读消息全部置为已读，幂等
func (s *ChatService) MarkConversationRead(readerID, otherUserID int64) error {
	return s.messageRepo.MarkConversationRead(readerID, otherUserID)
}

// GetConversation 会话详情，打开即把对方发来的消息置为已读
func (s *ChatService) GetConversation(readerID, otherUserID int64) (*dto.ConversationData, error) {
	other, err := s.userRepo.GetByID(otherUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.messageRepo.MarkConversationRead(readerID, otherUserID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListBetween(readerID, otherUserID)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.MessageInfo, 0, len(messages))
	for i := range messages {
		infos = append(infos, *toMessageInfo(&messages[i]))
	}

	return &dto.ConversationData{
		OtherUser: toRelationUserInfo(other),
		Messages:  infos,
		IsOnline:  s.online.IsOnline(otherUserID),
	}, nil
}

// ListConversations 会话列表，按最后一条消息时间倒序，每个对端取最新一条
func (s *ChatService) ListConversations(userID int64) ([]dto.ConversationInfo, error) {
	messages, err := s.messageRepo.ListInvolving(userID)
	if err != nil {
		return nil, err
	}

	// 消息已按时间倒序，首次出现的对端即该会话的最后一条消息
	order := make([]int64, 0)
	lastMessage := make(map[int64]*model.Message)
	for i := range messages {
		m := &messages[i]
		otherID := m.SenderID
		if otherID == userID {
			otherID = m.RecipientID
		}
		if _, seen := lastMessage[otherID]; !seen {
			lastMessage[otherID] = m
			order = append(order, otherID)
		}
	}

	users, err := s.userRepo.GetByIDs(order)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*model.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	conversations := make([]dto.ConversationInfo, 0, len(order))
	for _, otherID := range order {
		other, ok := byID[otherID]
		if !ok {
			continue
		}
		conversations = append(conversations, dto.ConversationInfo{
			OtherUser:   toRelationUserInfo(other),
			LastMessage: *toMessageInfo(lastMessage[otherID]),
			IsOnline:    s.online.IsOnline(otherID),
		})
	}
	return conversations, nil
}

func toMessageInfo(m *model.Message) *dto.MessageInfo {
	return &dto.MessageInfo{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}
