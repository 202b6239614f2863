package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalsite/internal/models"
)

// tags уходят в строку в текстовом формате postgres-массива,
// иначе pq.StringArray.Scan их не примет
func postRows(post *models.Post, tags string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"post_id", "slug", "title", "excerpt", "content", "category", "tags",
		"cover_image", "read_time", "author_name", "author_avatar", "author_bio",
		"created_at", "updated_at",
	}).
		AddRow(
			post.PostID,
			post.Slug,
			post.Title,
			post.Excerpt,
			post.Content,
			post.Category,
			tags,
			post.CoverImage,
			post.ReadTime,
			post.AuthorName,
			post.AuthorAvatar,
			post.AuthorBio,
			time.Now(),
			time.Now(),
		)
}

func TestPostRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное создание поста", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(`INSERT INTO posts`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		post := &models.Post{
			Slug:       "hello-world",
			Title:      "Hello World",
			Content:    "Hi there",
			Tags:       pq.StringArray{"go", "blog"},
			AuthorName: "Admin",
		}

		err := repo.Create(ctx, post)

		require.NoError(t, err)
		_, uuidErr := uuid.Parse(post.PostID)
		assert.NoError(t, uuidErr)
		assert.False(t, post.CreatedAt.IsZero())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Гонка за slug — уникальный индекс возвращает конфликт", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(`INSERT INTO posts`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "posts_slug_key"})

		post := &models.Post{Slug: "hello-world", Title: "Hello", Content: "Hi"}

		err := repo.Create(ctx, post)

		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestPostRepository_GetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное получение поста", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		expected := &models.Post{
			PostID:  uuid.New().String(),
			Slug:    "hello-world",
			Title:   "Hello World",
			Content: "Hi there",
		}

		mock.ExpectQuery(`SELECT \* FROM posts WHERE slug = \$1`).
			WithArgs("hello-world").
			WillReturnRows(postRows(expected, "{go,blog}"))

		post, err := repo.GetBySlug(ctx, "hello-world")

		require.NoError(t, err)
		assert.Equal(t, expected.PostID, post.PostID)
		assert.Equal(t, expected.Title, post.Title)
		assert.Equal(t, pq.StringArray{"go", "blog"}, post.Tags)
	})

	t.Run("Пост не найден", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectQuery(`SELECT \* FROM posts WHERE slug = \$1`).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		post, err := repo.GetBySlug(ctx, "ghost")

		assert.Nil(t, post)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostRepository_GetAll(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	rows := postRows(&models.Post{PostID: "p1", Slug: "newer"}, "{}")
	rows.AddRow("p2", "older", "", "", "", "", "{}", "", 1, "", "", "", time.Now(), time.Now())

	mock.ExpectQuery(`SELECT \* FROM posts ORDER BY created_at DESC`).
		WillReturnRows(rows)

	posts, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Slug)
	assert.Equal(t, "older", posts[1].Slug)
}

func TestPostRepository_SlugExists(t *testing.T) {
	ctx := context.Background()

	t.Run("Занятый slug", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		rows := sqlmock.NewRows([]string{"count"}).AddRow(1)
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts WHERE slug = \$1 AND post_id <> \$2`).
			WithArgs("taken-slug", "").
			WillReturnRows(rows)

		exists, err := repo.SlugExists(ctx, "taken-slug", "")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Собственный slug поста не считается занятым", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		rows := sqlmock.NewRows([]string{"count"}).AddRow(0)
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts WHERE slug = \$1 AND post_id <> \$2`).
			WithArgs("my-slug", "my-post-id").
			WillReturnRows(rows)

		exists, err := repo.SlugExists(ctx, "my-slug", "my-post-id")

		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestPostRepository_Update(t *testing.T) {
	ctx := context.Background()

	post := func() *models.Post {
		return &models.Post{
			PostID:  "post-1",
			Slug:    "hello-world",
			Title:   "Hello v2",
			Content: "Hi again",
			Tags:    pq.StringArray{},
		}
	}

	t.Run("Успешное обновление поста", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(`UPDATE posts SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, post())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Новый slug уже используется", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(`UPDATE posts SET`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "posts_slug_key"})

		err := repo.Update(ctx, post())

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Пост не найден при обновлении", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(`UPDATE posts SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, post())

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное удаление поста", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(`DELETE FROM posts WHERE slug = \$1`).
			WithArgs("hello-world").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, "hello-world")

		assert.NoError(t, err)
	})

	t.Run("Пост не найден при удалении", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(`DELETE FROM posts WHERE slug = \$1`).
			WithArgs("ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, "ghost")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(`DELETE FROM posts WHERE slug = \$1`).
			WithArgs("hello-world").
			WillReturnError(fmt.Errorf("database error"))

		err := repo.Delete(ctx, "hello-world")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка при удалении поста")
	})
}
