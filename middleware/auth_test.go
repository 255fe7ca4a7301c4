package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"retail-pos-api/config"
	"retail-pos-api/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	config.DB = db
}

func createUser(t *testing.T, username string, role models.UserRole, active bool) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test " + username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
		IsActive:     active,
	}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

func probeRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthRequired()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  GetUserID(c),
			"username": c.GetString("username"),
			"role":     string(GetRole(c)),
		})
	})
	r.GET("/probe", handlers...)
	return r
}

func doProbe(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenRoundtrip(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "alice", models.RoleManager, true)

	token, err := GenerateToken(user)
	require.NoError(t, err)

	w := doProbe(probeRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	assert.Contains(t, w.Body.String(), `"role":"manager"`)
}

func TestMissingAuthorizationHeader(t *testing.T) {
	setupTestDB(t)

	w := doProbe(probeRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMalformedToken(t *testing.T) {
	setupTestDB(t)

	w := doProbe(probeRouter(), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeletedUserRejected(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "bob", models.RoleStaff, true)

	token, err := GenerateToken(user)
	require.NoError(t, err)

	require.NoError(t, config.DB.Delete(user).Error)

	w := doProbe(probeRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeactivatedUserRejected(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "carol", models.RoleStaff, true)

	token, err := GenerateToken(user)
	require.NoError(t, err)

	// a valid token stops working the moment the account is deactivated
	require.NoError(t, config.DB.Model(user).Update("is_active", false).Error)

	w := doProbe(probeRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Account is deactivated")
}

func TestRoleRequired(t *testing.T) {
	setupTestDB(t)
	staff := createUser(t, "dave", models.RoleStaff, true)
	admin := createUser(t, "erin", models.RoleAdmin, true)

	r := probeRouter(RoleRequired(models.RoleAdmin, models.RoleManager))

	staffToken, err := GenerateToken(staff)
	require.NoError(t, err)
	w := doProbe(r, staffToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin, manager")

	adminToken, err := GenerateToken(admin)
	require.NoError(t, err)
	w = doProbe(r, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
