package service

import (
	"testing"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"
	"vetrico-go/pkg/badwords"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *fakeOnline, *testEnv) {
	t.Helper()
	db := setupTestDB(t)
	online := &fakeOnline{online: map[int64]bool{}}
	svc := NewUserService(
		repository.NewUserRepository(db),
		repository.NewVideoRepository(db),
		repository.NewRelationRepository(db),
		repository.NewLikeRepository(db),
		repository.NewCommentRepository(db),
		badwords.New(),
		online,
	)
	return svc, online, &testEnv{db: db}
}

func TestGetProfile(t *testing.T) {
	svc, online, env := newUserService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")
	createTestVideo(t, env.db, alice.ID, "clip")
	require.NoError(t, env.db.Create(&model.Relation{FollowerID: bob.ID, FollowID: alice.ID}).Error)
	online.online[alice.ID] = true

	data, err := svc.GetProfile("alice", bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", data.User.Username)
	assert.Len(t, data.Videos, 1)
	assert.Equal(t, int64(1), data.FollowerCount)
	assert.Equal(t, int64(0), data.FollowCount)
	assert.True(t, data.IsFollowing)
	assert.True(t, data.IsOnline)

	_, err = svc.GetProfile("nobody", bob.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc, _, env := newUserService(t)
	alice := createTestUser(t, env.db, "alice")

	bio := "yeni biyografi"
	info, err := svc.UpdateProfile(alice.ID, &dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, info.Bio)

	bad := "salak bir bio"
	_, err = svc.UpdateProfile(alice.ID, &dto.UpdateProfileRequest{Bio: &bad})
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestApplyVerification(t *testing.T) {
	svc, _, env := newUserService(t)
	alice := createTestUser(t, env.db, "alice")

	require.NoError(t, svc.ApplyVerification(alice.ID))

	var updated model.User
	require.NoError(t, env.db.First(&updated, alice.ID).Error)
	assert.Equal(t, model.VerificationPending, updated.VerificationStatus)

	// 审核中不能重复申请
	assert.ErrorIs(t, svc.ApplyVerification(alice.ID), ErrVerificationPending)
}
