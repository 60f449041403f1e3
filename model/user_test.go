package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/muhammadheryan/user-directory/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserView(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entity := &model.UserEntity{
		ID:         7,
		Name:       "Test User",
		Email:      "test@example.com",
		Phone:      "081234567890",
		Occupation: "engineer",
		CreatedAt:  created,
		UpdatedAt:  created.Add(time.Hour),
	}

	view := model.NewUserView(entity)

	assert.Equal(t, entity.ID, view.ID)
	assert.Equal(t, entity.Name, view.Name)
	assert.Equal(t, entity.Email, view.Email)
	assert.Equal(t, entity.Phone, view.Phone)
	assert.Equal(t, entity.Occupation, view.Occupation)
	assert.Equal(t, entity.CreatedAt, view.CreatedAt)
}

func TestUserView_SerializationOmitsUpdatedAt(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	view := model.NewUserView(&model.UserEntity{
		ID:        1,
		Name:      "Test User",
		Email:     "test@example.com",
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	})

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "created_at")
	assert.NotContains(t, fields, "updated_at")
}
