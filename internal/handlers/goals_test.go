package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/reachjvc/daygame-coach-api/internal/catalog"
	"github.com/reachjvc/daygame-coach-api/internal/handlers"
	"github.com/reachjvc/daygame-coach-api/internal/database"
	"github.com/reachjvc/daygame-coach-api/internal/journey"
	"github.com/reachjvc/daygame-coach-api/internal/middleware"
	"github.com/reachjvc/daygame-coach-api/internal/models"
	"github.com/reachjvc/daygame-coach-api/internal/routes"
	"github.com/reachjvc/daygame-coach-api/internal/treegen"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Goal{}, &models.Subscription{}))
	database.DB = db

	middleware.Init("test-secret")

	app := fiber.New()
	routes.Setup(app, catalog.Default())
	return app
}

func registerTestUser(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "tester@example.com",
		"password": "hunter22",
		"name":     "Tester",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var auth models.AuthResponse
	decode(t, resp, &auth)
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

func TestCreateGoalBatchPersistsLinkage(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app)

	cat := catalog.Default()
	batch := treegen.Generate(cat, "l1_girlfriend")
	require.NotEmpty(t, batch)

	resp := doJSON(t, app, http.MethodPost, "/api/goals/batch", token, handlers.BatchGoalRequest{Goals: batch})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Goals []models.Goal `json:"goals"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Goals, len(batch))

	root := body.Goals[0]
	assert.Nil(t, root.ParentID)
	assert.Equal(t, 1, root.GoalLevel)

	byTemplate := map[string]models.Goal{}
	for _, g := range body.Goals {
		byTemplate[g.TemplateID] = g
	}
	for _, g := range body.Goals[1:] {
		require.NotNil(t, g.ParentID, "non-root goal %s must be linked", g.TemplateID)
	}
	// Spot-check one L3: its parent row is the goal created for its L2.
	l3 := byTemplate["l3_daily_approaches"]
	l2 := byTemplate["l2_overcome_aa"]
	require.NotNil(t, l3.ParentID)
	assert.Equal(t, l2.ID, *l3.ParentID)

	var count int64
	database.DB.Model(&models.Goal{}).Count(&count)
	assert.Equal(t, int64(len(batch)), count)
}

func TestCreateGoalBatchRejectsUnknownParent(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app)

	batch := treegen.Generate(catalog.Default(), "l1_rotation")
	require.NotEmpty(t, batch)
	batch[len(batch)-1].TempParentID = "tmp_missing"

	resp := doJSON(t, app, http.MethodPost, "/api/goals/batch", token, handlers.BatchGoalRequest{Goals: batch})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Whole-batch semantics: nothing from the failed batch is committed.
	var count int64
	database.DB.Model(&models.Goal{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateGoalBatchRequiresSingleRoot(t *testing.T) {
	app := setupTestApp(t)
	token := registerTestUser(t, app)

	batch := treegen.Generate(catalog.Default(), "l1_rotation")
	require.NotEmpty(t, batch)
	batch[1].TempParentID = "" // second root

	resp := doJSON(t, app, http.MethodPost, "/api/goals/batch", token, handlers.BatchGoalRequest{Goals: batch})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateGoalBatchRequiresAuth(t *testing.T) {
	app := setupTestApp(t)

	batch := treegen.Generate(catalog.Default(), "l1_rotation")
	resp := doJSON(t, app, http.MethodPost, "/api/goals/batch", "", handlers.BatchGoalRequest{Goals: batch})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRecommendationsEndpoint(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/journey/recommendations", "", handlers.RecommendationsRequest{
		Identity:  journey.Identity{Experience: "newcomer"},
		Situation: journey.Situation{Challenge: "approach-anxiety"},
		Vision:    journey.Vision{SuccessVision: "abundance", Timeframe: "3-months"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Recommendations []struct {
			Template struct {
				ID string `json:"id"`
			} `json:"template"`
			Relevance    float64 `json:"relevance"`
			AutoSelected bool    `json:"autoSelected"`
		} `json:"recommendations"`
		TopGoal *struct {
			ID string `json:"id"`
		} `json:"topGoal"`
	}
	decode(t, resp, &body)

	require.NotNil(t, body.TopGoal)
	assert.Equal(t, "l1_rotation", body.TopGoal.ID)

	var sawAA bool
	for _, rec := range body.Recommendations {
		assert.GreaterOrEqual(t, rec.Relevance, 0.0)
		assert.LessOrEqual(t, rec.Relevance, 1.0)
		if rec.Template.ID == "l2_overcome_aa" {
			sawAA = true
			assert.True(t, rec.AutoSelected)
		}
	}
	assert.True(t, sawAA)
}

func TestCatalogChildrenEndpointUnknownID(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/templates/unknown_id_xyz/children", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var children []catalog.Template
	decode(t, resp, &children)
	assert.Empty(t, children)
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
