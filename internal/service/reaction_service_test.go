package service

import (
	"testing"

	"vetrico-go/internal/realtime"
	"vetrico-go/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 表情反应对全部在线连接广播，发送方自己也收到
func TestReactionBroadcast(t *testing.T) {
	logger.InitNop()
	pusher := &fakePusher{}
	svc := NewReactionService(pusher, "")

	svc.Broadcast(1, 42, "❤️")
	svc.Broadcast(2, 42, "🔥")

	require.Len(t, pusher.broadcasts, 2)
	assert.Equal(t, realtime.EventAnimateReact, pusher.broadcasts[0].Event)

	payload := pusher.broadcasts[0].Payload.(realtime.ReactionPayload)
	assert.Equal(t, int64(42), payload.VideoID)
	assert.Equal(t, "❤️", payload.Emoji)
	assert.Empty(t, pusher.toUser)
	assert.Empty(t, pusher.toConn)
}
