package service

import (
	"testing"
	"time"

	"vetrico-go/internal/model"
	"vetrico-go/internal/realtime"
	"vetrico-go/internal/repository"
	"vetrico-go/pkg/badwords"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService(t *testing.T) (*ChatService, *fakePusher, *fakeOnline, *testEnv) {
	t.Helper()
	db := setupTestDB(t)
	pusher := &fakePusher{}
	online := &fakeOnline{online: map[int64]bool{}}
	svc := NewChatService(
		repository.NewMessageRepository(db),
		repository.NewUserRepository(db),
		badwords.New(),
		pusher,
		online,
	)
	return svc, pusher, online, &testEnv{db: db}
}

func TestSendMessage(t *testing.T) {
	svc, pusher, _, env := newChatService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")

	info, err := svc.SendMessage(alice.ID, "conn-1", bob.ID, "selam")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "selam", info.Body)
	assert.False(t, info.IsRead)

	// 接收方收到 receive_message
	require.Len(t, pusher.toUser, 1)
	assert.Equal(t, bob.ID, pusher.toUser[0].UserID)
	assert.Equal(t, realtime.EventReceiveMessage, pusher.toUser[0].Event)
	payload := pusher.toUser[0].Payload.(realtime.ReceiveMessagePayload)
	assert.Equal(t, alice.ID, payload.SenderID)
	assert.Equal(t, "selam", payload.Body)

	// 发送方只有发起连接收到 message_sent 回执
	require.Len(t, pusher.toConn, 1)
	assert.Equal(t, "conn-1", pusher.toConn[0].ConnID)
	assert.Equal(t, realtime.EventMessageSent, pusher.toConn[0].Event)
}

// 命中屏蔽词：不落库、不推送、不报错
func TestSendMessageProfanityDropped(t *testing.T) {
	svc, pusher, _, env := newChatService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")

	info, err := svc.SendMessage(alice.ID, "conn-1", bob.ID, "salak mısın")
	require.NoError(t, err)
	assert.Nil(t, info)

	var count int64
	env.db.Model(&model.Message{}).Count(&count)
	assert.Equal(t, int64(0), count)
	assert.Empty(t, pusher.toUser)
	assert.Empty(t, pusher.toConn)
}

func TestSendMessageUnknownRecipient(t *testing.T) {
	svc, _, _, env := newChatService(t)
	alice := createTestUser(t, env.db, "alice")

	_, err := svc.SendMessage(alice.ID, "conn-1", 9999, "selam")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestTypingSignals(t *testing.T) {
	svc, pusher, _, env := newChatService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")

	svc.SetTyping(alice.ID, bob.ID)
	svc.ClearTyping(alice.ID, bob.ID)

	require.Len(t, pusher.toUser, 2)
	assert.Equal(t, realtime.EventDisplayTyping, pusher.toUser[0].Event)
	assert.Equal(t, realtime.EventHideTyping, pusher.toUser[1].Event)
	assert.Equal(t, bob.ID, pusher.toUser[0].UserID)
}

func TestGetConversationMarksRead(t *testing.T) {
	svc, _, online, env := newChatService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")
	online.online[bob.ID] = true

	_, err := svc.SendMessage(bob.ID, "conn-b", alice.ID, "merhaba")
	require.NoError(t, err)
	_, err = svc.SendMessage(bob.ID, "conn-b", alice.ID, "orada mısın")
	require.NoError(t, err)

	data, err := svc.GetConversation(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, data.IsOnline)
	require.Len(t, data.Messages, 2)
	assert.Equal(t, "merhaba", data.Messages[0].Body)
	for _, m := range data.Messages {
		assert.True(t, m.IsRead)
	}

	// 重复标记已读是幂等的
	require.NoError(t, svc.MarkConversationRead(alice.ID, bob.ID))

	var unread int64
	env.db.Model(&model.Message{}).Where("is_read = ?", false).Count(&unread)
	assert.Equal(t, int64(0), unread)
}

// 已读只针对对方发来的消息，自己发出的消息不受影响
func TestMarkReadOnlyIncoming(t *testing.T) {
	svc, _, _, env := newChatService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")

	_, err := svc.SendMessage(alice.ID, "conn-a", bob.ID, "giden")
	require.NoError(t, err)

	require.NoError(t, svc.MarkConversationRead(alice.ID, bob.ID))

	var message model.Message
	require.NoError(t, env.db.First(&message).Error)
	assert.False(t, message.IsRead)
}

func TestListConversations(t *testing.T) {
	svc, _, online, env := newChatService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")
	carol := createTestUser(t, env.db, "carol")
	online.online[carol.ID] = true

	mustCreateMessage(t, env, bob.ID, alice.ID, "eski", time.Now().Add(-2*time.Hour))
	mustCreateMessage(t, env, alice.ID, bob.ID, "cevap", time.Now().Add(-time.Hour))
	mustCreateMessage(t, env, carol.ID, alice.ID, "yeni", time.Now())

	conversations, err := svc.ListConversations(alice.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	// 最后一条消息最新的会话排在前面
	assert.Equal(t, "carol", conversations[0].OtherUser.Username)
	assert.Equal(t, "yeni", conversations[0].LastMessage.Body)
	assert.True(t, conversations[0].IsOnline)

	assert.Equal(t, "bob", conversations[1].OtherUser.Username)
	assert.Equal(t, "cevap", conversations[1].LastMessage.Body)
	assert.False(t, conversations[1].IsOnline)
}

// 关注后发私信，对方查看会话即视为已读
func TestFollowThenMessageRead(t *testing.T) {
	svc, pusher, _, env := newChatService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")

	relationService := NewRelationService(
		repository.NewRelationRepository(env.db),
		repository.NewUserRepository(env.db),
		NewNotificationService(repository.NewNotificationRepository(env.db), nil),
	)
	result, err := relationService.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, "added", result.Action)

	_, err = svc.SendMessage(alice.ID, "conn-1", bob.ID, "takip ettim, selam")
	require.NoError(t, err)
	require.Len(t, pusher.toUser, 1)
	assert.Equal(t, bob.ID, pusher.toUser[0].UserID)

	// bob 打开会话，消息被标记已读
	data, err := svc.GetConversation(bob.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, data.Messages, 1)
	assert.True(t, data.Messages[0].IsRead)

	var unread int64
	env.db.Model(&model.Message{}).
		Where("recipient_id = ? AND is_read = ?", bob.ID, false).
		Count(&unread)
	assert.Equal(t, int64(0), unread)
}

func mustCreateMessage(t *testing.T, env *testEnv, senderID, recipientID int64, body string, at time.Time) {
	t.Helper()
	require.NoError(t, env.db.Create(&model.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
		CreatedAt:   at,
	}).Error)
}
