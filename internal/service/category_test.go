package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/eximroyals/backend/internal/errs"
	"github.com/eximroyals/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCategoryUpdate(t *testing.T) {
	testCases := []struct {
		name      string
		details   CategoryDetails
		wantImage *string
	}{
		{
			name:      "keeps image when none supplied",
			details:   CategoryDetails{Title: "Pulses", Description: "Lentils and beans"},
			wantImage: strPtr("/img/old.png"),
		},
		{
			name:      "replaces image when supplied",
			details:   CategoryDetails{Title: "Pulses", Description: "Lentils and beans", ImageURL: strPtr("/img/new.png")},
			wantImage: strPtr("/img/new.png"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeCategoryRepository(model.Category{
				Base:        model.Base{ID: 3},
				Title:       "Grains",
				Description: "Rice",
				ImageURL:    strPtr("/img/old.png"),
			})
			svc := NewCategoryService(repo)

			updated, err := svc.Update(context.Background(), 3, tc.details)
			require.NoError(t, err)

			assert.Equal(t, int64(3), updated.ID)
			assert.Equal(t, "Pulses", updated.Title)
			assert.Equal(t, "Lentils and beans", updated.Description)
			assert.Equal(t, tc.wantImage, updated.ImageURL)
			assert.Equal(t, tc.wantImage, repo.updated.ImageURL)
		})
	}
}

func TestCategoryUpdateMissing(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepository())

	_, err := svc.Update(context.Background(), 99, CategoryDetails{Title: "x", Description: "y"})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Category not found with id: 99", httpErr.Message)
}

func TestCategoryCreateListDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCategoryRepository()
	svc := NewCategoryService(repo)

	empty, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	created, err := svc.Create(ctx, &model.Category{Title: "Spices", Description: "Whole and ground"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Spices", found.Title)

	require.NoError(t, svc.DeleteByID(ctx, created.ID))
	require.NoError(t, svc.DeleteByID(ctx, 1234))

	missing, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
