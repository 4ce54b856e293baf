// internal/handlers/auth_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/craveshop/crave-backend/internal/config"
	"github.com/craveshop/crave-backend/internal/models"
	"github.com/craveshop/crave-backend/internal/services"
	"github.com/craveshop/crave-backend/internal/utils"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret")

	suite.db = newTestDB(suite.T())

	cfg := &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 24},
	}
	handler := NewAuthHandler(services.NewAuthService(suite.db, cfg))

	suite.router = gin.New()
	suite.router.POST("/api/auth/login", handler.Login)

	user := &models.User{Username: "admin", Email: "admin@example.com"}
	suite.Require().NoError(user.SetPassword("correct-horse"))
	suite.Require().NoError(suite.db.Create(user).Error)
}

func (suite *AuthHandlerTestSuite) login(username, password string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(gin.H{"username": username, "password": password})
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestLoginSuccess() {
	w := suite.login("admin", "correct-horse")

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				Username string `json:"username"`
			} `json:"user"`
		} `json:"data"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Success)
	suite.NotEmpty(body.Data.Token)
	suite.Equal("admin", body.Data.User.Username)

	// Password material never leaves the server.
	suite.NotContains(w.Body.String(), "password_hash")

	claims, err := utils.ValidateJWT(body.Data.Token)
	suite.NoError(err)
	suite.Equal("admin", claims.Username)
}

func (suite *AuthHandlerTestSuite) TestLoginWrongPassword() {
	w := suite.login("admin", "wrong-password")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLoginUnknownUser() {
	w := suite.login("nobody", "correct-horse")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLoginMissingFields() {
	w := suite.login("", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLoginUpdatesLastLogin() {
	suite.Equal(http.StatusOK, suite.login("admin", "correct-horse").Code)

	var user models.User
	suite.NoError(suite.db.Where("username = ?", "admin").First(&user).Error)
	suite.NotNil(user.LastLoginAt)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
