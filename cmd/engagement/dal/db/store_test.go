package db

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%go%", containsPattern("Go"))
	assert.Equal(t, `%100\%\_sure\\%`, containsPattern(`100%_SURE\`))
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil, "noop"))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound, "get"), dal.ErrRecordNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey, "create"), dal.ErrDuplicate)

	err := translate(errors.New("bad connection"), "GetVideo failed, video_id=%d", 3)
	assert.EqualError(t, err, "GetVideo failed, video_id=3: bad connection")
}

// openTestStore connects to the database named by VIDTUBE_TEST_MYSQL_DSN.
func openTestStore(t *testing.T) *Store {
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}
	dsn := os.Getenv("VIDTUBE_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("VIDTUBE_TEST_MYSQL_DSN not set")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrate(db))
	return New(db)
}

func TestMySQLRelationUniqueness(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	video := &model.Video{OwnerID: 1, Title: "race", Description: "d"}
	require.NoError(t, s.CreateVideo(ctx, video))
	key := model.RelationKey{Kind: model.VideoLikeRelation, TargetID: video.ID, ActorID: 42}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.CreateRelation(ctx, key))
		}()
	}
	wg.Wait()

	count, err := s.CountRelations(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	removed, err := s.DeleteRelation(ctx, key)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = s.DeleteRelation(ctx, key)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestMySQLPlaylistOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := &model.Playlist{OwnerID: 1, Name: "mix", Description: "d"}
	require.NoError(t, s.CreatePlaylist(ctx, p))

	require.NoError(t, s.AppendPlaylistVideo(ctx, p.ID, 30))
	require.NoError(t, s.AppendPlaylistVideo(ctx, p.ID, 10))
	require.NoError(t, s.AppendPlaylistVideo(ctx, p.ID, 20))
	assert.ErrorIs(t, s.AppendPlaylistVideo(ctx, p.ID, 10), dal.ErrDuplicate)

	stale := time.Now().Add(-time.Hour)
	require.NoError(t, s.db.Model(&model.Playlist{}).Where("id = ?", p.ID).Update("updated_at", stale).Error)
	require.NoError(t, s.RemovePlaylistVideo(ctx, p.ID, 10))
	assert.ErrorIs(t, s.RemovePlaylistVideo(ctx, p.ID, 10), dal.ErrNotMember)

	got, err := s.GetPlaylist(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{30, 20}, got.Videos)
	assert.True(t, got.UpdatedAt.After(stale), "removing a video touches updated_at")

	require.NoError(t, s.DeletePlaylist(ctx, p.ID))
	_, err = s.GetPlaylist(ctx, p.ID)
	assert.ErrorIs(t, err, dal.ErrRecordNotFound)
}
