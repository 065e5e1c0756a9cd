package authController

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newAuthApp wires the auth routes against an in-memory database. Bcrypt
// runs at the minimum cost so signups stay fast under test.
func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.AllModels()...))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/auth/signup", authValidator.Signup(), Signup)
	app.Post("/auth/login", authValidator.Login(), Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSignup(t *testing.T) {
	app := newAuthApp(t)

	resp := postJSON(t, app, "/auth/signup",
		`{"name":"Asha","email":"asha@example.com","password":"strongpass1"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	app := newAuthApp(t)

	body := `{"name":"Asha","email":"asha@example.com","password":"strongpass1"}`
	resp := postJSON(t, app, "/auth/signup", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// The second signup trips the unique index on email and must read as
	// a conflict, never a server error
	resp = postJSON(t, app, "/auth/signup", body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app := newAuthApp(t)

	resp := postJSON(t, app, "/auth/signup",
		`{"name":"Asha","email":"asha@example.com","password":"strongpass1"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login",
		`{"email":"asha@example.com","password":"wrongpass99"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
