package service

import (
	"fmt"
	"sync"
	"testing"

	"vetrico-go/internal/config"
	"vetrico-go/internal/model"
	"vetrico-go/pkg/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testCoinCfg = config.CoinConfig{
	InitialBalance: 50,
	DailyBonus:     10,
	LikeReward:     1,
	CommentReward:  2,
	GiftAmount:     10,
}

// testEnv 测试用例共享的环境
type testEnv struct {
	db *gorm.DB
}

// setupTestDB 每个测试一个独立的内存库
// cache=shared 让 gorm 连接池里的多条连接看到同一份数据
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.InitNop()
	config.Set(&config.Config{
		App:  config.AppConfig{Name: "vetrico-test"},
		JWT:  config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
		Coin: testCoinCfg,
	})

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Like{},
		&model.Bookmark{},
		&model.Comment{},
		&model.CommentLike{},
		&model.Relation{},
		&model.Notification{},
		&model.Message{},
		&model.Report{},
		&model.Reaction{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{
		UserName: name,
		Password: "hashed",
		Coins:    testCoinCfg.InitialBalance,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestVideo(t *testing.T, db *gorm.DB, authorID int64, caption string) *model.Video {
	t.Helper()
	video := &model.Video{
		AuthorID: authorID,
		Caption:  caption,
		PlayURL:  "/videos/test.mp4",
	}
	require.NoError(t, db.Create(video).Error)
	return video
}

// pushRecord 一次推送调用的记录
type pushRecord struct {
	UserID  int64
	ConnID  string
	Event   string
	Payload interface{}
}

// fakePusher Pusher 的测试替身，记录全部推送调用
type fakePusher struct {
	mu         sync.Mutex
	toUser     []pushRecord
	toConn     []pushRecord
	broadcasts []pushRecord
}

func (f *fakePusher) PushToUser(userID int64, event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toUser = append(f.toUser, pushRecord{UserID: userID, Event: event, Payload: payload})
}

func (f *fakePusher) PushToConn(connID string, event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toConn = append(f.toConn, pushRecord{ConnID: connID, Event: event, Payload: payload})
}

func (f *fakePusher) Broadcast(event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.broadcasts = append(f.broadcasts, pushRecord{Event: event, Payload: payload})
}

// fakeOnline OnlineChecker 的测试替身
type fakeOnline struct {
	online map[int64]bool
}

func (f *fakeOnline) IsOnline(userID int64) bool {
	return f.online[userID]
}
