//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/config/db"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/user"
	"github.com/Endogen/antique-catalogue-sub001/pkg/types"
)

func userClient() *HTTPClient  { return NewHTTPClient(testCtx.Router, testCtx.UserToken) }
func otherClient() *HTTPClient { return NewHTTPClient(testCtx.Router, testCtx.OtherToken) }
func anonClient() *HTTPClient  { return NewHTTPClient(testCtx.Router, "") }
func adminClient() *HTTPClient { return NewHTTPClient(testCtx.Router, testCtx.AdminToken) }

func createCollection(t *testing.T, c *HTTPClient, name string, public bool) uint {
	t.Helper()
	resp, err := c.Do(Request{
		Method: http.MethodPost,
		Path:   "/collections",
		Body:   map[string]any{"name": name, "is_public": public},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	var col struct {
		ID uint `json:"id"`
	}
	require.NoError(t, resp.JSON(&col))
	return col.ID
}

func TestAuthFlow(t *testing.T) {
	c := anonClient()

	resp, err := c.Do(Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   map[string]any{"email": "flow@test.com", "password": "password123"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Login is refused until the email is verified.
	resp, err = c.Do(Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   map[string]any{"email": "flow@test.com", "password": "password123"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var token user.EmailToken
	require.NoError(t, db.DB.Where("token_type = ?", user.TokenTypeVerify).
		Joins("JOIN users ON users.id = email_tokens.user_id").
		Where("users.email = ?", "flow@test.com").
		First(&token).Error)

	resp, err = c.Do(Request{
		Method: http.MethodPost,
		Path:   "/auth/verify",
		Body:   map[string]any{"token": token.Token},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = c.Do(Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   map[string]any{"email": "flow@test.com", "password": "password123"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokens struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, resp.JSON(&tokens))
	assert.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, "bearer", tokens.TokenType)
}

func TestCollectionLifecycle(t *testing.T) {
	c := userClient()
	id := createCollection(t, c, "Pocket Watches", false)

	resp, err := c.Do(Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/collections/%d", id),
		Body:   map[string]any{"description": "Swiss movements only"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Another user cannot see a private collection.
	resp, err = otherClient().Do(Request{Method: http.MethodGet, Path: fmt.Sprintf("/collections/%d", id)})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = c.Do(Request{Method: http.MethodDelete, Path: fmt.Sprintf("/collections/%d", id)})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = c.Do(Request{Method: http.MethodGet, Path: fmt.Sprintf("/collections/%d", id)})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestItemMetadataValidation(t *testing.T) {
	c := userClient()
	id := createCollection(t, c, "Fountain Pens", false)

	resp, err := c.Do(Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/collections/%d/fields", id),
		Body:   map[string]any{"name": "Year", "field_type": "number", "is_required": true},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	// Missing required Year.
	resp, err = c.Do(Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/collections/%d/items", id),
		Body:   map[string]any{"name": "Montblanc 149"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var failure struct {
		Detail []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"detail"`
	}
	require.NoError(t, resp.JSON(&failure))
	require.Len(t, failure.Detail, 1)
	assert.Equal(t, "Year", failure.Detail[0].Field)

	resp, err = c.Do(Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/collections/%d/items", id),
		Body:   map[string]any{"name": "Montblanc 149", "metadata": map[string]any{"Year": 1952}},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
}

func TestPublicBrowsingHidesDraftsAndPrivateMetadata(t *testing.T) {
	c := userClient()
	id := createCollection(t, c, "Cameras", true)

	resp, err := c.Do(Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/collections/%d/fields", id),
		Body:   map[string]any{"name": "Paid", "field_type": "number", "is_private": true},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = c.Do(Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/collections/%d/items", id),
		Body:   map[string]any{"name": "Leica M3", "metadata": map[string]any{"Paid": 1800}},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = c.Do(Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/collections/%d/items", id),
		Body:   map[string]any{"name": "Unfinished entry", "is_draft": true},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = anonClient().Do(Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/public/collections/%d/items", id),
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []struct {
		Name     string         `json:"name"`
		Metadata map[string]any `json:"metadata"`
	}
	require.NoError(t, resp.JSON(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "Leica M3", items[0].Name)
	assert.NotContains(t, items[0].Metadata, "Paid")
}

func TestPublicProfileCountsOnlyPublicContent(t *testing.T) {
	owner := mustCreateVerifiedUser("collector@test.com", "password123")
	token, err := middleware.GenerateToken(owner.ID, types.TokenTypeAccess, false, time.Hour)
	require.NoError(t, err)
	c := NewHTTPClient(testCtx.Router, token)

	showcase := createCollection(t, c, "Showcase", true)
	vault := createCollection(t, c, "Vault", false)
	wentPrivate := createCollection(t, c, "Went Private", true)

	createItem := func(collectionID uint, name string) {
		resp, err := c.Do(Request{
			Method: http.MethodPost,
			Path:   fmt.Sprintf("/collections/%d/items", collectionID),
			Body:   map[string]any{"name": name},
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	}
	createItem(showcase, "Visible piece")
	createItem(vault, "Hidden piece")
	createItem(vault, "Another hidden piece")

	for _, id := range []uint{showcase, wentPrivate} {
		resp, err := otherClient().Do(Request{Method: http.MethodPut, Path: fmt.Sprintf("/collections/%d/star", id)})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := c.Do(Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/collections/%d", wentPrivate),
		Body:   map[string]any{"is_public": false},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = anonClient().Do(Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/profiles/%d", owner.ID),
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Profile struct {
			CollectionCount int64 `json:"collection_count"`
			ItemCount       int64 `json:"item_count"`
			EarnedStarCount int64 `json:"earned_star_count"`
		} `json:"profile"`
	}
	require.NoError(t, resp.JSON(&body))
	assert.Equal(t, int64(1), body.Profile.CollectionCount)
	assert.Equal(t, int64(1), body.Profile.ItemCount, "items in private collections must stay out of the public count")
	assert.Equal(t, int64(1), body.Profile.EarnedStarCount, "stars on a collection that went private must stay out")
}

func TestStarringIsIdempotent(t *testing.T) {
	owner := userClient()
	id := createCollection(t, owner, "Star Target", true)

	c := otherClient()
	for i := 0; i < 2; i++ {
		resp, err := c.Do(Request{Method: http.MethodPut, Path: fmt.Sprintf("/collections/%d/star", id)})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var status struct {
			Starred   bool  `json:"starred"`
			StarCount int64 `json:"star_count"`
		}
		require.NoError(t, resp.JSON(&status))
		assert.True(t, status.Starred)
		assert.Equal(t, int64(1), status.StarCount)
	}
}

func TestActivityFeedListsNewestFirst(t *testing.T) {
	c := userClient()
	id := createCollection(t, c, "Activity Source", false)

	resp, err := c.Do(Request{
		Method:      http.MethodGet,
		Path:        "/activity",
		QueryParams: map[string]string{"limit": "100"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []struct {
		ActionType string  `json:"action_type"`
		TargetPath *string `json:"target_path"`
	}
	require.NoError(t, resp.JSON(&entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, "collection.created", entries[0].ActionType)
	if assert.NotNil(t, entries[0].TargetPath) {
		assert.Equal(t, fmt.Sprintf("/collections/%d", id), *entries[0].TargetPath)
	}
}

func TestTemplateCopyGetsUniqueName(t *testing.T) {
	c := userClient()

	resp, err := c.Do(Request{
		Method: http.MethodPost,
		Path:   "/templates",
		Body: map[string]any{
			"name": "Porcelain",
			"fields": []map[string]any{
				{"name": "Maker", "field_type": "text", "is_required": true},
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	var tpl struct {
		ID uint `json:"id"`
	}
	require.NoError(t, resp.JSON(&tpl))

	resp, err = c.Do(Request{Method: http.MethodPost, Path: fmt.Sprintf("/templates/%d/copy", tpl.ID)})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	var copied struct {
		Name   string `json:"name"`
		Fields []struct {
			Name string `json:"name"`
		} `json:"fields"`
	}
	require.NoError(t, resp.JSON(&copied))
	assert.Equal(t, "Porcelain (Copy)", copied.Name)
	require.Len(t, copied.Fields, 1)
	assert.Equal(t, "Maker", copied.Fields[0].Name)
}

func TestAdminStatsAndFeatured(t *testing.T) {
	owner := userClient()
	id := createCollection(t, owner, "Featured Candidate", true)

	admin := adminClient()

	resp, err := admin.Do(Request{
		Method: http.MethodPost,
		Path:   "/admin/featured",
		Body:   map[string]any{"collection_id": id},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	resp, err = admin.Do(Request{Method: http.MethodGet, Path: "/admin/stats"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalUsers           int64 `json:"total_users"`
		FeaturedCollectionID *uint `json:"featured_collection_id"`
	}
	require.NoError(t, resp.JSON(&stats))
	assert.Greater(t, stats.TotalUsers, int64(0))
	if assert.NotNil(t, stats.FeaturedCollectionID) {
		assert.Equal(t, id, *stats.FeaturedCollectionID)
	}

	// User tokens are rejected on the admin surface.
	resp, err = owner.Do(Request{Method: http.MethodGet, Path: "/admin/stats"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
